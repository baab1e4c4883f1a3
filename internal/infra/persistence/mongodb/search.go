package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// nameContains builds the case-insensitive substring filter on the name field.
// The keyword is matched literally; an empty keyword matches every named document.
func nameContains(keyword string) bson.M {
	return bson.M{
		"name": primitive.Regex{
			Pattern: regexp.QuoteMeta(keyword),
			Options: "i",
		},
	}
}
