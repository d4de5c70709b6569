package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User cms users
type User struct {
	// ID unique identifier for the user
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Username login name, lowercased and unique
	Username string `bson:"username" json:"username"`
	// Email unique email address
	Email string `bson:"email" json:"email"`
	// Password hashed password, never serialized
	Password string `bson:"password" json:"-"`
	// FirstName given name
	FirstName string `bson:"first_name" json:"first_name"`
	// LastName family name
	LastName string `bson:"last_name" json:"last_name"`
	// Role free-form role label
	Role string `bson:"role" json:"role"`
	// Language ui language preference
	Language string `bson:"language" json:"language"`
	// SendNotification whether the user receives notifications
	SendNotification bool `bson:"send_notification" json:"send_notification"`
}
