package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Post is a blog article
type Post struct {
	ID            uuid.UUID                    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug          string                       `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Title         string                       `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt       string                       `gorm:"type:text" json:"excerpt"`
	Body          string                       `gorm:"type:text" json:"body"` // sanitized HTML from the editor
	CoverImageURL string                       `gorm:"type:text" json:"cover_image_url,omitempty"`
	Tags          datatypes.JSONSlice[string]  `gorm:"type:jsonb;default:'[]'" json:"tags"`
	RawFAQ        string                       `gorm:"column:raw_faq;type:text" json:"raw_faq,omitempty"`
	FAQs          datatypes.JSONSlice[FaqPair] `gorm:"column:faqs;type:jsonb;default:'[]'" json:"faqs"`
	Publication
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// Validate checks the invariants that do not depend on storage
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if !IsSlug(p.Slug) {
		return ErrInvalidSlug
	}
	return nil
}
