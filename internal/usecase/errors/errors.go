package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInternalError = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// Content errors
var (
	ErrPostNotFound   = errors.New("post not found")
	ErrVideoNotFound  = errors.New("video not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrSlugTaken      = errors.New("slug already in use")
	ErrNotEnoughFAQs  = errors.New("not enough FAQ pairs to publish")
)

// Upload errors
var (
	ErrUploadEmpty       = errors.New("uploaded file is empty")
	ErrUploadTooLarge    = errors.New("uploaded file is too large")
	ErrUploadContentType = errors.New("uploaded file type is not allowed")
)

// Infrastructure errors
var (
	ErrCacheUnavailable = errors.New("cache unavailable")
)
