package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/agency-cms/internal/domain/entities"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create inserts a new post
	Create(ctx context.Context, post *entities.Post) error

	// FindBySlug retrieves a post by its slug
	FindBySlug(ctx context.Context, slug string) (*entities.Post, error)

	// Update saves all fields of an existing post
	Update(ctx context.Context, post *entities.Post) error

	// Delete removes a post
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves posts with filters and pagination
	List(ctx context.Context, filters ContentFilters) ([]*entities.Post, int64, error)
}

// VideoRepository defines the interface for video data access
type VideoRepository interface {
	Create(ctx context.Context, video *entities.Video) error
	FindBySlug(ctx context.Context, slug string) (*entities.Video, error)
	Update(ctx context.Context, video *entities.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters ContentFilters) ([]*entities.Video, int64, error)
}

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	FindBySlug(ctx context.Context, slug string) (*entities.Review, error)
	Update(ctx context.Context, review *entities.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters ContentFilters) ([]*entities.Review, int64, error)
}

// ContentFilters represents filter options for listing content records
type ContentFilters struct {
	Published *bool
	Tag       string // ignored for reviews
	Search    string // Search in title/author and body
	Limit     int
	Offset    int
	SortBy    string // "created_at", "updated_at", "published_at", "title", "author", "rating"
	SortOrder string // "asc", "desc"
}
