// Package seo builds schema.org structured data and meta descriptions for
// public pages.
package seo

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
)

const (
	schemaContext = "https://schema.org"

	// DescriptionLength is the meta description budget in runes
	DescriptionLength = 160
)

// VideoObject is schema.org/VideoObject with key moments
type VideoObject struct {
	Context      string   `json:"@context"`
	Type         string   `json:"@type"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	ContentURL   string   `json:"contentUrl,omitempty"`
	ThumbnailURL []string `json:"thumbnailUrl,omitempty"`
	UploadDate   string   `json:"uploadDate,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	HasPart      []Clip   `json:"hasPart,omitempty"`
}

// Clip is one chapter of a VideoObject
type Clip struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset,omitempty"`
	URL         string `json:"url"`
}

// FAQPage is schema.org/FAQPage
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is a schema.org/Question with its accepted answer
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is a schema.org/Answer
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// BlogPosting is schema.org/BlogPosting
type BlogPosting struct {
	Context          string   `json:"@context"`
	Type             string   `json:"@type"`
	Headline         string   `json:"headline"`
	Description      string   `json:"description,omitempty"`
	URL              string   `json:"url"`
	MainEntityOfPage string   `json:"mainEntityOfPage"`
	Image            []string `json:"image,omitempty"`
	DatePublished    string   `json:"datePublished,omitempty"`
	DateModified     string   `json:"dateModified,omitempty"`
	Keywords         string   `json:"keywords,omitempty"`
}

// PageURL joins the public site root with a section and slug
func PageURL(baseURL, section, slug string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(baseURL, "/"), section, slug)
}

// VideoJSONLD describes a video with one Clip per chapter. A clip ends where
// the next later chapter starts, or at the end of the video. Chapters with
// unreadable timecodes are skipped.
func VideoJSONLD(video *entities.Video, baseURL string) *VideoObject {
	pageURL := PageURL(baseURL, "videos", video.Slug)

	obj := &VideoObject{
		Context:     schemaContext,
		Type:        "VideoObject",
		Name:        video.Title,
		Description: VideoDescription(video),
		URL:         pageURL,
		ContentURL:  video.VideoURL,
		UploadDate:  isoDate(video.PublishedAt, video.CreatedAt),
	}
	if video.ThumbnailURL != "" {
		obj.ThumbnailURL = []string{video.ThumbnailURL}
	}
	if video.DurationSeconds > 0 {
		obj.Duration = ISODuration(video.DurationSeconds)
	}

	type mark struct {
		label string
		start int
	}
	marks := make([]mark, 0, len(video.Chapters))
	for _, c := range video.Chapters {
		if start, ok := TimecodeSeconds(c.T); ok {
			marks = append(marks, mark{label: c.Label, start: start})
		}
	}

	for i, m := range marks {
		clip := Clip{
			Type:        "Clip",
			Name:        m.label,
			StartOffset: m.start,
			URL:         fmt.Sprintf("%s?t=%d", pageURL, m.start),
		}
		for _, next := range marks[i+1:] {
			if next.start > m.start {
				clip.EndOffset = next.start
				break
			}
		}
		if clip.EndOffset == 0 && video.DurationSeconds > m.start {
			clip.EndOffset = video.DurationSeconds
		}
		obj.HasPart = append(obj.HasPart, clip)
	}

	return obj
}

// FAQPageJSONLD describes FAQ pairs; nil when there are none
func FAQPageJSONLD(faqs []entities.FaqPair) *FAQPage {
	if len(faqs) == 0 {
		return nil
	}
	page := &FAQPage{
		Context:    schemaContext,
		Type:       "FAQPage",
		MainEntity: make([]Question, 0, len(faqs)),
	}
	for _, f := range faqs {
		page.MainEntity = append(page.MainEntity, Question{
			Type:           "Question",
			Name:           f.Q,
			AcceptedAnswer: Answer{Type: "Answer", Text: f.A},
		})
	}
	return page
}

// BlogPostingJSONLD describes a blog post
func BlogPostingJSONLD(post *entities.Post, baseURL string) *BlogPosting {
	pageURL := PageURL(baseURL, "blog", post.Slug)

	bp := &BlogPosting{
		Context:          schemaContext,
		Type:             "BlogPosting",
		Headline:         post.Title,
		Description:      PostDescription(post),
		URL:              pageURL,
		MainEntityOfPage: pageURL,
		DatePublished:    isoDate(post.PublishedAt, post.CreatedAt),
		Keywords:         strings.Join(post.Tags, ", "),
	}
	if !post.UpdatedAt.IsZero() {
		bp.DateModified = post.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if post.CoverImageURL != "" {
		bp.Image = []string{post.CoverImageURL}
	}
	return bp
}

// PostDescription prefers the excerpt and falls back to the body text
func PostDescription(post *entities.Post) string {
	if s := strings.TrimSpace(post.Excerpt); s != "" {
		return truncate(strings.Join(strings.Fields(s), " "), DescriptionLength)
	}
	return PlainText(post.Body, DescriptionLength)
}

// VideoDescription prefers the description, then the transcript, then the title
func VideoDescription(video *entities.Video) string {
	if s := strings.TrimSpace(video.Description); s != "" {
		return truncate(strings.Join(strings.Fields(s), " "), DescriptionLength)
	}
	if s := TranscriptExcerpt(video.TranscriptHTML, DescriptionLength); s != "" {
		return s
	}
	return video.Title
}

func isoDate(published *time.Time, fallback time.Time) string {
	if published != nil {
		return published.UTC().Format(time.RFC3339)
	}
	if fallback.IsZero() {
		return ""
	}
	return fallback.UTC().Format(time.RFC3339)
}
