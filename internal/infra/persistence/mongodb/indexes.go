package mongodb

import (
	"context"

	"canteen/internal/domain/constants"
	"canteen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionIndexes lists the indexes each collection needs.
func collectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		constants.CollectionUsers: {
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_username"),
			},
		},
		constants.CollectionDishes: {
			{
				Keys:    bson.D{{Key: model.RefIDField("canteen"), Value: 1}},
				Options: options.Index().SetName("idx_canteen"),
			},
		},
		constants.CollectionReviews: {
			{
				Keys:    bson.D{{Key: model.RefIDField("canteen"), Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_canteen_created"),
			},
			{
				Keys:    bson.D{{Key: model.RefIDField("dish"), Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_dish_created"),
			},
		},
	}
}

// EnsureIndexes creates missing indexes. Creating an existing index is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, indexes := range collectionIndexes() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", collection)
		}
	}

	return nil
}
