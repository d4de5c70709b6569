package model

import "github.com/Laisky/errors/v2"

var (
	// ErrNotFound indicates the id does not resolve to a document.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates a missing or malformed request field.
	ErrValidation = errors.New("invalid request")
	// ErrDuplicateSlug indicates a case-insensitive slug or name collision.
	ErrDuplicateSlug = errors.New("slug already exists")
	// ErrInvalidSchedule indicates a missing or non-future scheduled time.
	ErrInvalidSchedule = errors.New("cannot schedule a post in the past")
	// ErrTrashed indicates a single-post read hit a trashed post.
	ErrTrashed = errors.New("post is in the trash")
	// ErrInvalidCredentials indicates the login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
