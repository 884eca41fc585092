package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/internal/adapter/dto/common"
	"github.com/johnquangdev/agency-cms/internal/adapter/presenter"
	"github.com/johnquangdev/agency-cms/internal/usecase/content"
)

// Public serves published content to the public site
type Public struct {
	postService   content.PostService
	videoService  content.VideoService
	reviewService content.ReviewService
	baseURL       string
	logger        *zap.Logger
}

// NewPublicHandler creates a new public handler. baseURL is the public site
// origin used in structured data.
func NewPublicHandler(
	postService content.PostService,
	videoService content.VideoService,
	reviewService content.ReviewService,
	baseURL string,
	logger *zap.Logger,
) *Public {
	return &Public{
		postService:   postService,
		videoService:  videoService,
		reviewService: reviewService,
		baseURL:       baseURL,
		logger:        logger,
	}
}

// ListPosts handles GET /posts
// @Summary      List published posts
// @Tags         Public
// @Produce      json
// @Param        tag        query     string  false  "Tag"
// @Param        search     query     string  false  "Search"
// @Param        page       query     int     false  "Page"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  common.ListResponse
// @Router       /posts [get]
func (h *Public) ListPosts(c echo.Context) error {
	var req common.ListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.SortBy == "" {
		req.SortBy = "published_at"
	}

	posts, total, err := h.postService.List(c.Request().Context(), buildFilters(&req, livePtr()))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToListResponse(posts, presenter.ToPostSummary, total, req.Page, req.PageSize))
}

// GetPost handles GET /posts/:slug
// @Summary      Get a published post
// @Description  Returns the post with BlogPosting and FAQPage JSON-LD
// @Tags         Public
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  content.PublicPostResponse
// @Failure      404   {object}  map[string]interface{}  "Post not found"
// @Router       /posts/{slug} [get]
func (h *Public) GetPost(c echo.Context) error {
	post, err := h.postService.GetPublished(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToPublicPostResponse(post, h.baseURL))
}

// ListVideos handles GET /videos
// @Summary      List published videos
// @Tags         Public
// @Produce      json
// @Param        tag        query     string  false  "Tag"
// @Param        search     query     string  false  "Search"
// @Param        page       query     int     false  "Page"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  common.ListResponse
// @Router       /videos [get]
func (h *Public) ListVideos(c echo.Context) error {
	var req common.ListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.SortBy == "" {
		req.SortBy = "published_at"
	}

	videos, total, err := h.videoService.List(c.Request().Context(), buildFilters(&req, livePtr()))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToListResponse(videos, presenter.ToVideoSummary, total, req.Page, req.PageSize))
}

// GetVideo handles GET /videos/:slug
// @Summary      Get a published video
// @Description  Returns the video with VideoObject (key moments) and FAQPage JSON-LD
// @Tags         Public
// @Produce      json
// @Param        slug  path      string  true  "Video slug"
// @Success      200   {object}  content.PublicVideoResponse
// @Failure      404   {object}  map[string]interface{}  "Video not found"
// @Router       /videos/{slug} [get]
func (h *Public) GetVideo(c echo.Context) error {
	video, err := h.videoService.GetPublished(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToPublicVideoResponse(video, h.baseURL))
}

// ListReviews handles GET /reviews
// @Summary      List published reviews
// @Tags         Public
// @Produce      json
// @Param        page       query     int  false  "Page"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  common.ListResponse
// @Router       /reviews [get]
func (h *Public) ListReviews(c echo.Context) error {
	var req common.ListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	reviews, total, err := h.reviewService.List(c.Request().Context(), buildFilters(&req, livePtr()))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToListResponse(reviews, presenter.ToReviewResponse, total, req.Page, req.PageSize))
}

func livePtr() *bool {
	v := true
	return &v
}
