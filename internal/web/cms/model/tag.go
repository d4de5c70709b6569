package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag cms post tags
type Tag struct {
	// ID unique identifier for the tag
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// CreatedAt time when the tag was created
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	// UpdatedAt time when the tag was last modified
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	// Name name of the tag, unique case-insensitively
	Name string `bson:"name" json:"name"`
	// Slug url of the tag, unique case-insensitively
	Slug string `bson:"slug" json:"slug"`
	// Description optional description
	Description string `bson:"description" json:"description"`
	// IsDeleted soft delete flag
	IsDeleted bool `bson:"is_deleted" json:"is_deleted"`
}
