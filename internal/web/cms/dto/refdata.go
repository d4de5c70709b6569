package dto

// CategoryRequest is the create/update payload for categories.
type CategoryRequest struct {
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	ParentCategory string `json:"parent_category"`
	Description    string `json:"description"`
	Keywords       string `json:"keywords"`
}

// TagRequest is the create/update payload for tags.
type TagRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ImageRegisterRequest registers a stored media record. The binary itself is
// uploaded out of band; callers hand over the resulting url and file facts.
type ImageRegisterRequest struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
	Dimensions string `json:"dimensions"`
	Format     string `json:"format"`
	Type       string `json:"type"`
}

// ImageRequest updates the mutable metadata of a stored media record.
type ImageRequest struct {
	Title       string `json:"title"`
	AltText     string `json:"alt_text"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

// UserRequest is the create/update payload for users. Password is optional on
// update and re-hashed when present.
type UserRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Role             string `json:"role"`
	Language         string `json:"language"`
	SendNotification bool   `json:"send_notification"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
