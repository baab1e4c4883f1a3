// Package model holds the BSON documents stored in MongoDB.
// Documents reference each other through DBRef-shaped pointers.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DBRef points at a document in another collection.
type DBRef struct {
	Ref string             `bson:"$ref"`
	ID  primitive.ObjectID `bson:"$id"`
}

// NewDBRef builds a reference from a hex id. Empty or malformed ids yield nil.
func NewDBRef(collection, id string) *DBRef {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	return &DBRef{Ref: collection, ID: oid}
}

// RefIDField is the document path of the id inside a reference field.
func RefIDField(field string) string {
	return field + ".$id"
}

// RatingModel is the embedded rating summary.
type RatingModel struct {
	Average float64 `bson:"average"`
	Count   int     `bson:"count"`
}
