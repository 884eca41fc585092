package content

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
	"github.com/johnquangdev/agency-cms/internal/usecase/extract"
)

const videoKind = "video"

// VideoInput represents input for creating or replacing a video.
// Nil Chapters are synthesized from RawTranscript. Nil FAQs are extracted
// from RawFAQ, or from the transcript text when RawFAQ is blank.
type VideoInput struct {
	Slug            string
	Title           string
	Description     string
	VideoURL        string
	ThumbnailURL    string
	DurationSeconds int
	RawTranscript   string
	RawFAQ          string
	Chapters        []entities.Chapter
	FAQs            []entities.FaqPair
	Tags            []string
	Published       bool
}

type videoService struct {
	base
	repo repositories.VideoRepository
}

// NewVideoService creates a new video service
func NewVideoService(repo repositories.VideoRepository, opts Options) VideoService {
	return &videoService{base: newBase(opts), repo: repo}
}

// Create creates a new video
func (s *videoService) Create(ctx context.Context, input VideoInput) (*entities.Video, error) {
	slug, err := resolveSlug(input.Slug, input.Title, videoKind)
	if err != nil {
		return nil, err
	}
	if err := ensureSlugFree(ctx, slug, s.repo.FindBySlug); err != nil {
		return nil, err
	}

	video := &entities.Video{Slug: slug}
	if err := s.apply(video, input); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, video); err != nil {
		return nil, storeError("create video", slug, err, usecaseErrors.ErrVideoNotFound)
	}

	s.invalidate(ctx, videoKind, slug)
	s.logger.Info("content.video.created",
		zap.String("slug", slug),
		zap.Int("chapters", len(video.Chapters)),
		zap.Int("faqs", len(video.FAQs)),
	)
	return video, nil
}

// Get retrieves a video by slug, drafts included
func (s *videoService) Get(ctx context.Context, slug string) (*entities.Video, error) {
	video, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, storeError("get video", slug, err, usecaseErrors.ErrVideoNotFound)
	}
	return video, nil
}

// GetPublished retrieves a live video
func (s *videoService) GetPublished(ctx context.Context, slug string) (*entities.Video, error) {
	key := cacheKey(videoKind, slug)
	if video, ok := cached[entities.Video](ctx, &s.base, key); ok {
		return video, nil
	}

	video, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !video.IsLive() {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrVideoNotFound, slug)
	}

	s.remember(ctx, key, video)
	return video, nil
}

// List retrieves videos with filters
func (s *videoService) List(ctx context.Context, filters repositories.ContentFilters) ([]*entities.Video, int64, error) {
	videos, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, 0, &StoreError{Op: "list videos", Err: err}
	}
	return videos, total, nil
}

// Update replaces the editable fields of a video and re-runs extraction
func (s *videoService) Update(ctx context.Context, slug string, input VideoInput) (*entities.Video, error) {
	video, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}

	newSlug := slug
	if strings.TrimSpace(input.Slug) != "" {
		if newSlug, err = resolveSlug(input.Slug, "", videoKind); err != nil {
			return nil, err
		}
	}
	if newSlug != slug {
		if err := ensureSlugFree(ctx, newSlug, s.repo.FindBySlug); err != nil {
			return nil, err
		}
		video.Slug = newSlug
	}

	if err := s.apply(video, input); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, video); err != nil {
		return nil, storeError("update video", newSlug, err, usecaseErrors.ErrVideoNotFound)
	}

	s.invalidate(ctx, videoKind, slug, newSlug)
	s.logger.Info("content.video.updated", zap.String("slug", newSlug), zap.Bool("published", video.Published))
	return video, nil
}

// Delete removes a video
func (s *videoService) Delete(ctx context.Context, slug string) error {
	video, err := s.Get(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, video.ID); err != nil {
		return storeError("delete video", slug, err, usecaseErrors.ErrVideoNotFound)
	}

	s.invalidate(ctx, videoKind, slug)
	s.logger.Info("content.video.deleted", zap.String("slug", slug))
	return nil
}

// apply copies input onto video and runs the extraction engine over the
// raw transcript and FAQ text
func (s *videoService) apply(video *entities.Video, input VideoInput) error {
	video.Title = strings.TrimSpace(input.Title)
	video.Description = strings.TrimSpace(input.Description)
	video.VideoURL = strings.TrimSpace(input.VideoURL)
	video.ThumbnailURL = strings.TrimSpace(input.ThumbnailURL)
	video.DurationSeconds = input.DurationSeconds
	video.Tags = cleanTags(input.Tags)
	video.RawTranscript = input.RawTranscript
	video.RawFAQ = input.RawFAQ

	video.TranscriptHTML = extract.RenderTranscript(input.RawTranscript)

	if input.Chapters != nil {
		video.Chapters = s.extractor.CleanChapters(input.Chapters)
	} else {
		video.Chapters = s.extractor.Chapters(input.RawTranscript)
	}

	switch {
	case input.FAQs != nil:
		video.FAQs = extract.CleanFAQs(input.FAQs)
	case strings.TrimSpace(input.RawFAQ) != "":
		video.FAQs = s.extractor.FAQs(input.RawFAQ, 0)
	default:
		video.FAQs = s.extractor.FAQs(extract.TranscriptText(input.RawTranscript), 0)
	}

	if err := video.Validate(); err != nil {
		return fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, err)
	}
	if err := s.checkPublishable(input.Published, len(video.FAQs)); err != nil {
		return err
	}

	video.SetPublished(input.Published, s.now())
	return nil
}
