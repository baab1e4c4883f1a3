package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserModel mirrors a document in the 'users' collection. Username carries a unique index.
type UserModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"` // bcrypt hash
	Nickname string             `bson:"nickname"`
	Avatar   string             `bson:"avatar"`
	Email    string             `bson:"email"`
}
