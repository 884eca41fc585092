package presenter

import (
	"github.com/johnquangdev/agency-cms/internal/adapter/dto/common"
	"github.com/johnquangdev/agency-cms/internal/adapter/dto/content"
	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	"github.com/johnquangdev/agency-cms/internal/usecase/seo"
)

// ToPostResponse converts a Post entity to PostResponse DTO
func ToPostResponse(p *entities.Post) *content.PostResponse {
	if p == nil {
		return nil
	}
	return &content.PostResponse{
		ID:            p.ID.String(),
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Body:          p.Body,
		CoverImageURL: p.CoverImageURL,
		Tags:          nonNil(p.Tags),
		RawFAQ:        p.RawFAQ,
		FAQs:          nonNil(p.FAQs),
		Published:     p.Published,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToVideoResponse converts a Video entity to VideoResponse DTO
func ToVideoResponse(v *entities.Video) *content.VideoResponse {
	if v == nil {
		return nil
	}
	return &content.VideoResponse{
		ID:              v.ID.String(),
		Slug:            v.Slug,
		Title:           v.Title,
		Description:     v.Description,
		VideoURL:        v.VideoURL,
		ThumbnailURL:    v.ThumbnailURL,
		DurationSeconds: v.DurationSeconds,
		RawTranscript:   v.RawTranscript,
		RawFAQ:          v.RawFAQ,
		TranscriptHTML:  v.TranscriptHTML,
		Chapters:        nonNil(v.Chapters),
		FAQs:            nonNil(v.FAQs),
		Tags:            nonNil(v.Tags),
		Published:       v.Published,
		PublishedAt:     v.PublishedAt,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// ToReviewResponse converts a Review entity to ReviewResponse DTO
func ToReviewResponse(r *entities.Review) *content.ReviewResponse {
	if r == nil {
		return nil
	}
	return &content.ReviewResponse{
		ID:          r.ID.String(),
		Slug:        r.Slug,
		Author:      r.Author,
		Company:     r.Company,
		Role:        r.Role,
		Rating:      r.Rating,
		Body:        r.Body,
		AvatarURL:   r.AvatarURL,
		Published:   r.Published,
		PublishedAt: r.PublishedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToPostSummary converts a Post entity for public listings
func ToPostSummary(p *entities.Post) *content.PostSummary {
	return &content.PostSummary{
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		CoverImageURL: p.CoverImageURL,
		Tags:          nonNil(p.Tags),
		PublishedAt:   p.PublishedAt,
	}
}

// ToVideoSummary converts a Video entity for public listings
func ToVideoSummary(v *entities.Video) *content.VideoSummary {
	return &content.VideoSummary{
		Slug:            v.Slug,
		Title:           v.Title,
		Description:     v.Description,
		ThumbnailURL:    v.ThumbnailURL,
		DurationSeconds: v.DurationSeconds,
		Tags:            nonNil(v.Tags),
		PublishedAt:     v.PublishedAt,
	}
}

// ToPublicPostResponse builds a post page with BlogPosting and, when the
// post has FAQs, FAQPage structured data
func ToPublicPostResponse(p *entities.Post, baseURL string) *content.PublicPostResponse {
	jsonLD := []interface{}{seo.BlogPostingJSONLD(p, baseURL)}
	if faq := seo.FAQPageJSONLD(p.FAQs); faq != nil {
		jsonLD = append(jsonLD, faq)
	}

	return &content.PublicPostResponse{
		Slug:            p.Slug,
		Title:           p.Title,
		Excerpt:         p.Excerpt,
		Body:            p.Body,
		CoverImageURL:   p.CoverImageURL,
		Tags:            nonNil(p.Tags),
		FAQs:            nonNil(p.FAQs),
		PublishedAt:     p.PublishedAt,
		UpdatedAt:       p.UpdatedAt,
		MetaDescription: seo.PostDescription(p),
		JSONLD:          jsonLD,
	}
}

// ToPublicVideoResponse builds a video page with VideoObject and, when the
// video has FAQs, FAQPage structured data
func ToPublicVideoResponse(v *entities.Video, baseURL string) *content.PublicVideoResponse {
	jsonLD := []interface{}{seo.VideoJSONLD(v, baseURL)}
	if faq := seo.FAQPageJSONLD(v.FAQs); faq != nil {
		jsonLD = append(jsonLD, faq)
	}

	return &content.PublicVideoResponse{
		Slug:            v.Slug,
		Title:           v.Title,
		Description:     v.Description,
		VideoURL:        v.VideoURL,
		ThumbnailURL:    v.ThumbnailURL,
		DurationSeconds: v.DurationSeconds,
		TranscriptHTML:  v.TranscriptHTML,
		Chapters:        nonNil(v.Chapters),
		FAQs:            nonNil(v.FAQs),
		Tags:            nonNil(v.Tags),
		PublishedAt:     v.PublishedAt,
		UpdatedAt:       v.UpdatedAt,
		MetaDescription: seo.VideoDescription(v),
		JSONLD:          jsonLD,
	}
}

// ToListResponse wraps converted items with pagination metadata
func ToListResponse[T any, R any](items []*T, convert func(*T) R, total int64, page, pageSize int) *common.ListResponse {
	data := make([]R, len(items))
	for i, item := range items {
		data[i] = convert(item)
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize != 0 {
			totalPages++
		}
	}

	return &common.ListResponse{
		Data: data,
		Pagination: &common.PaginationResponse{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalItems: total,
		},
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
