package entities

import "errors"

// Domain errors
var (
	ErrEmptyTitle    = errors.New("title is required")
	ErrInvalidSlug   = errors.New("slug must be lower-case words joined by dashes")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyAuthor   = errors.New("author is required")
)
