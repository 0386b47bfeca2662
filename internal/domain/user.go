package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a platform account. The generated UserID string is the
// application-level key; the Mongo _id stays internal and is never exposed
// for users, together with the credential fields.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID      string             `bson:"user_id" json:"user_id"`
	FullName    string             `bson:"full_name" json:"full_name"`
	Email       string             `bson:"email" json:"email"` // Unique, stored lowercase
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	AccountType string             `bson:"account_type,omitempty" json:"account_type,omitempty"`
	Password    string             `bson:"password" json:"-"` // Salted digest, never exposed
	Salt        string             `bson:"salt" json:"-"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
