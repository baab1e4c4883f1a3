package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CanteenModel mirrors a document in the 'canteens' collection.
type CanteenModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Location    string             `bson:"location"`
	OpenTime    string             `bson:"openTime"`
	Image       string             `bson:"image"`
	Description string             `bson:"description"`
	Rating      *RatingModel       `bson:"rating,omitempty"`
}
