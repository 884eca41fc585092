package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Video is a published recording with its transcript, chapters and FAQs.
// TranscriptHTML, Chapters and FAQs are derived from RawTranscript and
// RawFAQ unless an editor overrides them.
type Video struct {
	ID              uuid.UUID                    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug            string                       `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Title           string                       `gorm:"type:varchar(255);not null" json:"title"`
	Description     string                       `gorm:"type:text" json:"description"`
	VideoURL        string                       `gorm:"type:text;not null" json:"video_url"`
	ThumbnailURL    string                       `gorm:"type:text" json:"thumbnail_url,omitempty"`
	DurationSeconds int                          `gorm:"not null;default:0" json:"duration_seconds"`
	RawTranscript   string                       `gorm:"type:text" json:"raw_transcript,omitempty"`
	RawFAQ          string                       `gorm:"column:raw_faq;type:text" json:"raw_faq,omitempty"`
	TranscriptHTML  string                       `gorm:"column:transcript_html;type:text" json:"transcript_html"`
	Chapters        datatypes.JSONSlice[Chapter] `gorm:"type:jsonb;default:'[]'" json:"chapters"`
	FAQs            datatypes.JSONSlice[FaqPair] `gorm:"column:faqs;type:jsonb;default:'[]'" json:"faqs"`
	Tags            datatypes.JSONSlice[string]  `gorm:"type:jsonb;default:'[]'" json:"tags"`
	Publication
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Video
func (Video) TableName() string {
	return "videos"
}

// Validate checks the invariants that do not depend on storage
func (v *Video) Validate() error {
	if strings.TrimSpace(v.Title) == "" {
		return ErrEmptyTitle
	}
	if !IsSlug(v.Slug) {
		return ErrInvalidSlug
	}
	return nil
}
