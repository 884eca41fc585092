package content

import "github.com/johnquangdev/agency-cms/internal/domain/entities"

// PostRequest represents the body of a post create or replace
type PostRequest struct {
	Slug          string             `json:"slug,omitempty" validate:"omitempty,slug,max=160"`
	Title         string             `json:"title" validate:"required,max=255"`
	Excerpt       string             `json:"excerpt,omitempty" validate:"max=500"`
	Body          string             `json:"body"`
	CoverImageURL string             `json:"cover_image_url,omitempty" validate:"omitempty,url"`
	Tags          []string           `json:"tags,omitempty" validate:"max=20,dive,max=64"`
	RawFAQ        string             `json:"raw_faq,omitempty"`
	FAQs          []entities.FaqPair `json:"faqs,omitempty" validate:"omitempty,dive"`
	Published     bool               `json:"published"`
}

// VideoRequest represents the body of a video create or replace.
// Omitted chapters and FAQs are extracted from the raw text.
type VideoRequest struct {
	Slug            string             `json:"slug,omitempty" validate:"omitempty,slug,max=160"`
	Title           string             `json:"title" validate:"required,max=255"`
	Description     string             `json:"description,omitempty"`
	VideoURL        string             `json:"video_url" validate:"required,url"`
	ThumbnailURL    string             `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	DurationSeconds int                `json:"duration_seconds" validate:"min=0"`
	RawTranscript   string             `json:"raw_transcript,omitempty"`
	RawFAQ          string             `json:"raw_faq,omitempty"`
	Chapters        []entities.Chapter `json:"chapters,omitempty" validate:"omitempty,dive"`
	FAQs            []entities.FaqPair `json:"faqs,omitempty" validate:"omitempty,dive"`
	Tags            []string           `json:"tags,omitempty" validate:"max=20,dive,max=64"`
	Published       bool               `json:"published"`
}

// ReviewRequest represents the body of a review create or replace
type ReviewRequest struct {
	Slug      string `json:"slug,omitempty" validate:"omitempty,slug,max=160"`
	Author    string `json:"author" validate:"required,max=255"`
	Company   string `json:"company,omitempty" validate:"max=255"`
	Role      string `json:"role,omitempty" validate:"max=255"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Body      string `json:"body" validate:"required"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Published bool   `json:"published"`
}
