package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image media record stored by the upload subsystem. The cms only manages
// the metadata; the binary lives behind the url.
type Image struct {
	// ID unique identifier for the image
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// CreatedAt time when the image was stored
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	// Name original file name
	Name string `bson:"name" json:"name"`
	// Title display title
	Title string `bson:"title" json:"title"`
	// URL public path of the stored file
	URL string `bson:"url" json:"url"`
	// Size file size in bytes
	Size int64 `bson:"size" json:"size"`
	// Dimensions like "1920x1080" for images and videos
	Dimensions string `bson:"dimensions" json:"dimensions"`
	// Format file extension like "jpg", "mp4", "pdf"
	Format string `bson:"format" json:"format"`
	// Type one of image/video/audio/document
	Type string `bson:"type" json:"type"`
	// AltText alternative text for images
	AltText string `bson:"alt_text" json:"alt_text"`
	// Caption short caption
	Caption string `bson:"caption" json:"caption"`
	// Description long description
	Description string `bson:"description" json:"description"`
}
