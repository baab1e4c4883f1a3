package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// DishModel mirrors a document in the 'dishes' collection.
type DishModel struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Image   string             `bson:"image"`
	Price   float64            `bson:"price"`
	Tags    []string           `bson:"tags"`
	Canteen *DBRef             `bson:"canteen,omitempty"`
	Rating  *RatingModel       `bson:"rating,omitempty"`
}
