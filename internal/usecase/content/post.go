package content

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
	"github.com/johnquangdev/agency-cms/internal/usecase/extract"
)

const postKind = "post"

// PostInput represents input for creating or replacing a post.
// An empty Slug is derived from Title on create and kept on update.
// A nil FAQs slice means "extract from RawFAQ".
type PostInput struct {
	Slug          string
	Title         string
	Excerpt       string
	Body          string
	CoverImageURL string
	Tags          []string
	RawFAQ        string
	FAQs          []entities.FaqPair
	Published     bool
}

type postService struct {
	base
	repo repositories.PostRepository
}

// NewPostService creates a new post service
func NewPostService(repo repositories.PostRepository, opts Options) PostService {
	return &postService{base: newBase(opts), repo: repo}
}

// Create creates a new post
func (s *postService) Create(ctx context.Context, input PostInput) (*entities.Post, error) {
	slug, err := resolveSlug(input.Slug, input.Title, postKind)
	if err != nil {
		return nil, err
	}
	if err := ensureSlugFree(ctx, slug, s.repo.FindBySlug); err != nil {
		return nil, err
	}

	post := &entities.Post{Slug: slug}
	if err := s.apply(post, input); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, storeError("create post", slug, err, usecaseErrors.ErrPostNotFound)
	}

	s.invalidate(ctx, postKind, slug)
	s.logger.Info("content.post.created", zap.String("slug", slug), zap.Bool("published", post.Published))
	return post, nil
}

// Get retrieves a post by slug, drafts included
func (s *postService) Get(ctx context.Context, slug string) (*entities.Post, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, storeError("get post", slug, err, usecaseErrors.ErrPostNotFound)
	}
	return post, nil
}

// GetPublished retrieves a live post
func (s *postService) GetPublished(ctx context.Context, slug string) (*entities.Post, error) {
	key := cacheKey(postKind, slug)
	if post, ok := cached[entities.Post](ctx, &s.base, key); ok {
		return post, nil
	}

	post, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsLive() {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrPostNotFound, slug)
	}

	s.remember(ctx, key, post)
	return post, nil
}

// List retrieves posts with filters
func (s *postService) List(ctx context.Context, filters repositories.ContentFilters) ([]*entities.Post, int64, error) {
	posts, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, 0, &StoreError{Op: "list posts", Err: err}
	}
	return posts, total, nil
}

// Update replaces the editable fields of a post
func (s *postService) Update(ctx context.Context, slug string, input PostInput) (*entities.Post, error) {
	post, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}

	newSlug := slug
	if strings.TrimSpace(input.Slug) != "" {
		if newSlug, err = resolveSlug(input.Slug, "", postKind); err != nil {
			return nil, err
		}
	}
	if newSlug != slug {
		if err := ensureSlugFree(ctx, newSlug, s.repo.FindBySlug); err != nil {
			return nil, err
		}
		post.Slug = newSlug
	}

	if err := s.apply(post, input); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, storeError("update post", newSlug, err, usecaseErrors.ErrPostNotFound)
	}

	s.invalidate(ctx, postKind, slug, newSlug)
	s.logger.Info("content.post.updated", zap.String("slug", newSlug), zap.Bool("published", post.Published))
	return post, nil
}

// Delete removes a post
func (s *postService) Delete(ctx context.Context, slug string) error {
	post, err := s.Get(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, post.ID); err != nil {
		return storeError("delete post", slug, err, usecaseErrors.ErrPostNotFound)
	}

	s.invalidate(ctx, postKind, slug)
	s.logger.Info("content.post.deleted", zap.String("slug", slug))
	return nil
}

// apply copies input onto post and derives the FAQ block
func (s *postService) apply(post *entities.Post, input PostInput) error {
	post.Title = strings.TrimSpace(input.Title)
	post.Excerpt = strings.TrimSpace(input.Excerpt)
	post.Body = input.Body
	post.CoverImageURL = strings.TrimSpace(input.CoverImageURL)
	post.Tags = cleanTags(input.Tags)
	post.RawFAQ = input.RawFAQ

	if input.FAQs != nil {
		post.FAQs = extract.CleanFAQs(input.FAQs)
	} else {
		post.FAQs = s.extractor.FAQs(input.RawFAQ, 0)
	}

	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, err)
	}
	if err := s.checkPublishable(input.Published, len(post.FAQs)); err != nil {
		return err
	}

	post.SetPublished(input.Published, s.now())
	return nil
}
