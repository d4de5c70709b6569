package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category cms post categories
type Category struct {
	// ID unique identifier for the category
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// CreatedAt time when the category was created
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	// UpdatedAt time when the category was last modified
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	// Name name of the category
	Name string `bson:"name" json:"name"`
	// Slug url of the category, unique case-insensitively
	Slug string `bson:"slug" json:"slug"`
	// ParentCategory parent reference, zero means root
	ParentCategory primitive.ObjectID `bson:"parent_category,omitempty" json:"parent_category,omitempty"`
	// Description meta description
	Description string `bson:"description" json:"description"`
	// Keywords meta keywords
	Keywords string `bson:"keywords" json:"keywords"`
}
