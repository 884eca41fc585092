package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
)

// reviewRepository implements the ReviewRepository interface
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create creates a new review
func (r *reviewRepository) Create(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// FindBySlug retrieves a review by its slug
func (r *reviewRepository) FindBySlug(ctx context.Context, slug string) (*entities.Review, error) {
	var review entities.Review
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&review).Error

	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Update updates an existing review
func (r *reviewRepository) Update(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

// Delete removes a review
func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&entities.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List retrieves reviews with filters and pagination
func (r *reviewRepository) List(ctx context.Context, filters repositories.ContentFilters) ([]*entities.Review, int64, error) {
	var reviews []*entities.Review
	var total int64

	// reviews carry no tags
	filters.Tag = ""
	query := applyFilters(r.db.WithContext(ctx).Model(&entities.Review{}), filters, "author", "company", "body")

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyPage(query, filters, "author", "rating").Find(&reviews).Error
	return reviews, total, err
}
