package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
)

// postRepository implements the PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post
func (r *postRepository) Create(ctx context.Context, post *entities.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindBySlug retrieves a post by its slug
func (r *postRepository) FindBySlug(ctx context.Context, slug string) (*entities.Post, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&post).Error

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update updates an existing post
func (r *postRepository) Update(ctx context.Context, post *entities.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes a post
func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&entities.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List retrieves posts with filters and pagination
func (r *postRepository) List(ctx context.Context, filters repositories.ContentFilters) ([]*entities.Post, int64, error) {
	var posts []*entities.Post
	var total int64

	query := applyFilters(r.db.WithContext(ctx).Model(&entities.Post{}), filters, "title", "excerpt", "body")

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyPage(query, filters, "title").Find(&posts).Error
	return posts, total, err
}
