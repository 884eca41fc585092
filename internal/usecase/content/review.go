package content

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
)

const reviewKind = "review"

// ReviewInput represents input for creating or replacing a review.
// An empty Slug is derived from Author and Company.
type ReviewInput struct {
	Slug      string
	Author    string
	Company   string
	Role      string
	Rating    int
	Body      string
	AvatarURL string
	Published bool
}

type reviewService struct {
	base
	repo repositories.ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(repo repositories.ReviewRepository, opts Options) ReviewService {
	return &reviewService{base: newBase(opts), repo: repo}
}

// Create creates a new review
func (s *reviewService) Create(ctx context.Context, input ReviewInput) (*entities.Review, error) {
	slug, err := resolveSlug(input.Slug, input.Author+" "+input.Company, reviewKind)
	if err != nil {
		return nil, err
	}
	if err := ensureSlugFree(ctx, slug, s.repo.FindBySlug); err != nil {
		return nil, err
	}

	review := &entities.Review{Slug: slug}
	if err := s.apply(review, input); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, storeError("create review", slug, err, usecaseErrors.ErrReviewNotFound)
	}

	s.logger.Info("content.review.created", zap.String("slug", slug), zap.Int("rating", review.Rating))
	return review, nil
}

// Get retrieves a review by slug
func (s *reviewService) Get(ctx context.Context, slug string) (*entities.Review, error) {
	review, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, storeError("get review", slug, err, usecaseErrors.ErrReviewNotFound)
	}
	return review, nil
}

// List retrieves reviews with filters. Reviews carry no tags.
func (s *reviewService) List(ctx context.Context, filters repositories.ContentFilters) ([]*entities.Review, int64, error) {
	filters.Tag = ""
	reviews, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, 0, &StoreError{Op: "list reviews", Err: err}
	}
	return reviews, total, nil
}

// Update replaces the editable fields of a review
func (s *reviewService) Update(ctx context.Context, slug string, input ReviewInput) (*entities.Review, error) {
	review, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Slug) != "" {
		newSlug, err := resolveSlug(input.Slug, "", reviewKind)
		if err != nil {
			return nil, err
		}
		if newSlug != slug {
			if err := ensureSlugFree(ctx, newSlug, s.repo.FindBySlug); err != nil {
				return nil, err
			}
			review.Slug = newSlug
		}
	}

	if err := s.apply(review, input); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, storeError("update review", review.Slug, err, usecaseErrors.ErrReviewNotFound)
	}

	s.logger.Info("content.review.updated", zap.String("slug", review.Slug))
	return review, nil
}

// Delete removes a review
func (s *reviewService) Delete(ctx context.Context, slug string) error {
	review, err := s.Get(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, review.ID); err != nil {
		return storeError("delete review", slug, err, usecaseErrors.ErrReviewNotFound)
	}

	s.logger.Info("content.review.deleted", zap.String("slug", slug))
	return nil
}

func (s *reviewService) apply(review *entities.Review, input ReviewInput) error {
	review.Author = strings.TrimSpace(input.Author)
	review.Company = strings.TrimSpace(input.Company)
	review.Role = strings.TrimSpace(input.Role)
	review.Rating = input.Rating
	review.Body = strings.TrimSpace(input.Body)
	review.AvatarURL = strings.TrimSpace(input.AvatarURL)

	if err := review.Validate(); err != nil {
		return fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, err)
	}

	review.SetPublished(input.Published, s.now())
	return nil
}
