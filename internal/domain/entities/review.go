package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Review is a client testimonial
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug      string    `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Author    string    `gorm:"type:varchar(255);not null" json:"author"`
	Company   string    `gorm:"type:varchar(255)" json:"company,omitempty"`
	Role      string    `gorm:"type:varchar(255)" json:"role,omitempty"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	AvatarURL string    `gorm:"type:text" json:"avatar_url,omitempty"`
	Publication
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Review
func (Review) TableName() string {
	return "reviews"
}

// Validate checks the invariants that do not depend on storage
func (r *Review) Validate() error {
	if strings.TrimSpace(r.Author) == "" {
		return ErrEmptyAuthor
	}
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}
	if !IsSlug(r.Slug) {
		return ErrInvalidSlug
	}
	return nil
}
