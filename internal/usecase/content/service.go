// Package content implements the admin and public use cases for posts,
// videos and reviews.
package content

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
	"github.com/johnquangdev/agency-cms/internal/infrastructure/cache"
	"github.com/johnquangdev/agency-cms/internal/usecase/extract"
)

// PostService defines the post use cases
type PostService interface {
	Create(ctx context.Context, input PostInput) (*entities.Post, error)
	Get(ctx context.Context, slug string) (*entities.Post, error)
	// GetPublished returns a live post, served from cache when possible
	GetPublished(ctx context.Context, slug string) (*entities.Post, error)
	List(ctx context.Context, filters repositories.ContentFilters) ([]*entities.Post, int64, error)
	Update(ctx context.Context, slug string, input PostInput) (*entities.Post, error)
	Delete(ctx context.Context, slug string) error
}

// VideoService defines the video use cases
type VideoService interface {
	Create(ctx context.Context, input VideoInput) (*entities.Video, error)
	Get(ctx context.Context, slug string) (*entities.Video, error)
	GetPublished(ctx context.Context, slug string) (*entities.Video, error)
	List(ctx context.Context, filters repositories.ContentFilters) ([]*entities.Video, int64, error)
	Update(ctx context.Context, slug string, input VideoInput) (*entities.Video, error)
	Delete(ctx context.Context, slug string) error
}

// ReviewService defines the review use cases
type ReviewService interface {
	Create(ctx context.Context, input ReviewInput) (*entities.Review, error)
	Get(ctx context.Context, slug string) (*entities.Review, error)
	List(ctx context.Context, filters repositories.ContentFilters) ([]*entities.Review, int64, error)
	Update(ctx context.Context, slug string, input ReviewInput) (*entities.Review, error)
	Delete(ctx context.Context, slug string) error
}

// Ensure implementations satisfy their interfaces
var (
	_ PostService   = (*postService)(nil)
	_ VideoService  = (*videoService)(nil)
	_ ReviewService = (*reviewService)(nil)
)

// Options wires the collaborators shared by all content services
type Options struct {
	Cache     cache.Store
	CacheTTL  time.Duration
	Extractor *extract.Extractor
	// MinFAQs is the number of FAQ pairs a post or video needs before it
	// can be published. Zero disables the check.
	MinFAQs int
	Logger  *zap.Logger
}

// base carries the shared collaborators
type base struct {
	cache     cache.Store
	cacheTTL  time.Duration
	extractor *extract.Extractor
	minFAQs   int
	logger    *zap.Logger
	now       func() time.Time
}

func newBase(opts Options) base {
	if opts.Extractor == nil {
		opts.Extractor = extract.New(extract.DefaultOptions())
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 10 * time.Minute
	}
	return base{
		cache:     opts.Cache,
		cacheTTL:  opts.CacheTTL,
		extractor: opts.Extractor,
		minFAQs:   opts.MinFAQs,
		logger:    opts.Logger,
		now:       time.Now,
	}
}
