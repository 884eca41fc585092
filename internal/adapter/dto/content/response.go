package content

import (
	"time"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
)

// PostResponse represents a post in admin responses
type PostResponse struct {
	ID            string             `json:"id"`
	Slug          string             `json:"slug"`
	Title         string             `json:"title"`
	Excerpt       string             `json:"excerpt"`
	Body          string             `json:"body"`
	CoverImageURL string             `json:"cover_image_url,omitempty"`
	Tags          []string           `json:"tags"`
	RawFAQ        string             `json:"raw_faq,omitempty"`
	FAQs          []entities.FaqPair `json:"faqs"`
	Published     bool               `json:"published"`
	PublishedAt   *time.Time         `json:"published_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// VideoResponse represents a video in admin responses
type VideoResponse struct {
	ID              string             `json:"id"`
	Slug            string             `json:"slug"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	VideoURL        string             `json:"video_url"`
	ThumbnailURL    string             `json:"thumbnail_url,omitempty"`
	DurationSeconds int                `json:"duration_seconds"`
	RawTranscript   string             `json:"raw_transcript,omitempty"`
	RawFAQ          string             `json:"raw_faq,omitempty"`
	TranscriptHTML  string             `json:"transcript_html"`
	Chapters        []entities.Chapter `json:"chapters"`
	FAQs            []entities.FaqPair `json:"faqs"`
	Tags            []string           `json:"tags"`
	Published       bool               `json:"published"`
	PublishedAt     *time.Time         `json:"published_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ReviewResponse represents a review
type ReviewResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Author      string     `json:"author"`
	Company     string     `json:"company,omitempty"`
	Role        string     `json:"role,omitempty"`
	Rating      int        `json:"rating"`
	Body        string     `json:"body"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostSummary is a post in public listings
type PostSummary struct {
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	CoverImageURL string     `json:"cover_image_url,omitempty"`
	Tags          []string   `json:"tags"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
}

// VideoSummary is a video in public listings
type VideoSummary struct {
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ThumbnailURL    string     `json:"thumbnail_url,omitempty"`
	DurationSeconds int        `json:"duration_seconds"`
	Tags            []string   `json:"tags"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
}

// PublicPostResponse is a published post page with its structured data
type PublicPostResponse struct {
	Slug            string             `json:"slug"`
	Title           string             `json:"title"`
	Excerpt         string             `json:"excerpt"`
	Body            string             `json:"body"`
	CoverImageURL   string             `json:"cover_image_url,omitempty"`
	Tags            []string           `json:"tags"`
	FAQs            []entities.FaqPair `json:"faqs"`
	PublishedAt     *time.Time         `json:"published_at,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at"`
	MetaDescription string             `json:"meta_description"`
	JSONLD          []interface{}      `json:"json_ld"`
}

// PublicVideoResponse is a published video page with its structured data
type PublicVideoResponse struct {
	Slug            string             `json:"slug"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	VideoURL        string             `json:"video_url"`
	ThumbnailURL    string             `json:"thumbnail_url,omitempty"`
	DurationSeconds int                `json:"duration_seconds"`
	TranscriptHTML  string             `json:"transcript_html"`
	Chapters        []entities.Chapter `json:"chapters"`
	FAQs            []entities.FaqPair `json:"faqs"`
	Tags            []string           `json:"tags"`
	PublishedAt     *time.Time         `json:"published_at,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at"`
	MetaDescription string             `json:"meta_description"`
	JSONLD          []interface{}      `json:"json_ld"`
}
