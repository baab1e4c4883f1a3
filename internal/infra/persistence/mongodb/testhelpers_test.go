package mongodb

import (
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func dbRefDoc(collection string, id primitive.ObjectID) bson.D {
	return bson.D{{Key: "$ref", Value: collection}, {Key: "$id", Value: id}}
}

func canteenDoc(id primitive.ObjectID, name string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "location", Value: "North Campus"},
		{Key: "openTime", Value: "07:00-21:00"},
		{Key: "image", Value: ""},
		{Key: "description", Value: ""},
	}
}

func dishDoc(id primitive.ObjectID, name string, price float64, canteenID primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "image", Value: ""},
		{Key: "price", Value: price},
		{Key: "tags", Value: bson.A{"spicy"}},
		{Key: "canteen", Value: dbRefDoc("canteens", canteenID)},
	}
}

func userDoc(id primitive.ObjectID, username, hash string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "username", Value: username},
		{Key: "password", Value: hash},
		{Key: "nickname", Value: "Nick"},
		{Key: "avatar", Value: ""},
		{Key: "email", Value: username + "@campus.edu"},
	}
}

// firstFindFilter returns the filter of the earliest find command the client sent.
func firstFindFilter(mt *mtest.T) bson.Raw {
	mt.Helper()

	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "find", evt.CommandName)

	return evt.Command.Lookup("filter").Document()
}

func requireRefFilter(mt *mtest.T, filter bson.Raw, field string, want primitive.ObjectID) {
	mt.Helper()

	got, ok := filter.Lookup(field).ObjectIDOK()
	require.True(mt, ok, "filter %s has no ObjectID under %q", filter, field)
	require.Equal(mt, want, got)
}

func requireNameRegex(mt *mtest.T, filter bson.Raw, wantPattern string) {
	mt.Helper()

	pattern, options, ok := filter.Lookup("name").RegexOK()
	require.True(mt, ok, "filter %s has no regex on name", filter)
	require.Equal(mt, wantPattern, pattern)
	require.Equal(mt, "i", options)
}
