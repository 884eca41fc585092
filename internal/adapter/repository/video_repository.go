package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
)

// videoRepository implements the VideoRepository interface
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *gorm.DB) repositories.VideoRepository {
	return &videoRepository{db: db}
}

// Create creates a new video
func (r *videoRepository) Create(ctx context.Context, video *entities.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

// FindBySlug retrieves a video by its slug
func (r *videoRepository) FindBySlug(ctx context.Context, slug string) (*entities.Video, error) {
	var video entities.Video
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&video).Error

	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Update updates an existing video
func (r *videoRepository) Update(ctx context.Context, video *entities.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

// Delete removes a video
func (r *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&entities.Video{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List retrieves videos with filters and pagination
func (r *videoRepository) List(ctx context.Context, filters repositories.ContentFilters) ([]*entities.Video, int64, error) {
	var videos []*entities.Video
	var total int64

	query := applyFilters(r.db.WithContext(ctx).Model(&entities.Video{}), filters, "title", "description", "raw_transcript")

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyPage(query, filters, "title").Find(&videos).Error
	return videos, total, err
}
