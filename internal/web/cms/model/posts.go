// Package model contains the mongo documents of the cms module.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the lifecycle state of a post.
type Status string

const (
	// StatusDraft post is being written, not visible
	StatusDraft Status = "draft"
	// StatusPublished post is live, published_at is set
	StatusPublished Status = "published"
	// StatusScheduled post will be published at scheduled_at
	StatusScheduled Status = "scheduled"
	// StatusTrash soft-deleted, restorable to draft
	StatusTrash Status = "trash"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusScheduled, StatusTrash:
		return true
	}

	return false
}

// FeatureImage is the media reference attached to a post. It is produced by
// the media subsystem and stored verbatim.
type FeatureImage struct {
	URL         string `bson:"url" json:"url"`
	Title       string `bson:"title" json:"title"`
	AltText     string `bson:"alt_text" json:"alt_text"`
	Caption     string `bson:"caption" json:"caption"`
	Description string `bson:"description" json:"description"`
	Type        string `bson:"type" json:"type"`
	Format      string `bson:"format" json:"format"`
}

// Post cms posts
type Post struct {
	// ID unique identifier for the post
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// CreatedAt time when the post was created
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	// UpdatedAt time when the post was last modified
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	// Title title of the post
	Title string `bson:"title" json:"title"`
	// Content body of the post
	Content string `bson:"content" json:"content"`
	// Summary short abstract shown in listings
	Summary string `bson:"summary" json:"summary"`
	// Slug url-safe identifier, unique case-insensitively across all posts
	Slug string `bson:"slug" json:"slug"`
	// MetaTitle seo title
	MetaTitle string `bson:"meta_title" json:"meta_title"`
	// MetaDescription seo description
	MetaDescription string `bson:"meta_description" json:"meta_description"`
	// MetaKeywords seo keywords, trimmed
	MetaKeywords []string `bson:"meta_keywords" json:"meta_keywords"`
	// FeatureImage opaque media reference
	FeatureImage *FeatureImage `bson:"feature_image,omitempty" json:"feature_image,omitempty"`
	// Category category reference, zero means none
	Category primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	// Tags tag references
	Tags []primitive.ObjectID `bson:"tags" json:"tags"`
	// AuthorName author name snapshot at publish time, not a live reference
	AuthorName string `bson:"author_name" json:"author_name"`
	// Status lifecycle state
	Status Status `bson:"status" json:"status"`
	// PublishedAt set iff the post is (or was) published
	PublishedAt *time.Time `bson:"published_at" json:"published_at"`
	// ScheduledAt set iff the post is scheduled, always strictly future when set
	ScheduledAt *time.Time `bson:"scheduled_at" json:"scheduled_at"`
}
