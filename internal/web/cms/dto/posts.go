// Package dto defines the request and filter payloads of the cms module.
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"

	"github.com/lantern-cms/lantern/internal/web/cms/model"
)

// KeywordList accepts either a JSON array of strings or a single
// comma-separated string, and normalizes every entry by trimming it.
type KeywordList []string

// UnmarshalJSON implements json.Unmarshaler.
func (k *KeywordList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*k = trimKeywords(arr)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return errors.Wrap(err, "meta keywords must be a string or an array of strings")
	}

	*k = trimKeywords(strings.Split(joined, ","))
	return nil
}

func trimKeywords(raw []string) []string {
	keywords := make([]string, 0, len(raw))
	for _, kw := range raw {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}

	return keywords
}

// PostRequest is the shared payload of the create, publish and update entry
// points. Which fields are required depends on the entry point.
type PostRequest struct {
	// ID set on the publish entry point to update in place
	ID string `json:"id"`
	// AuthorName author snapshot, keeps the previous value when empty on update
	AuthorName      string              `json:"author_name"`
	Title           string              `json:"title"`
	Slug            string              `json:"slug"`
	Summary         string              `json:"summary"`
	Content         string              `json:"content"`
	MetaTitle       string              `json:"meta_title"`
	MetaDescription string              `json:"meta_description"`
	MetaKeywords    KeywordList         `json:"meta_keywords"`
	FeatureImage    *model.FeatureImage `json:"feature_image"`
	Status          string              `json:"status"`
	ScheduledAt     *time.Time          `json:"scheduled_at"`
	Category        string              `json:"category"`
	Tags            []string            `json:"tags"`
}

// PostFilter narrows ListPosts. Zero values mean "no filter".
type PostFilter struct {
	// Status matches posts in exactly this state
	Status string `form:"status"`
	// StatusNe matches posts NOT in this state; ignored when Status is set
	StatusNe string `form:"status_ne"`
	// AuthorName case-insensitive substring match
	AuthorName string `form:"author_name"`
	// Month restricts created_at to a YYYY-MM month
	Month string `form:"month"`
	// Search case-insensitive substring match on title or content
	Search string `form:"search"`
	// CategoryIn comma-separated category ids
	CategoryIn string `form:"category_in"`
}
