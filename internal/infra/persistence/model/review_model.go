package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewModel mirrors a document in the 'reviews' collection.
type ReviewModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Rating    int                `bson:"rating"`
	User      *DBRef             `bson:"user,omitempty"`
	Canteen   *DBRef             `bson:"canteen,omitempty"`
	Dish      *DBRef             `bson:"dish,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}
