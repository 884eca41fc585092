package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/internal/adapter/dto/common"
	contentDTO "github.com/johnquangdev/agency-cms/internal/adapter/dto/content"
	"github.com/johnquangdev/agency-cms/internal/adapter/presenter"
	"github.com/johnquangdev/agency-cms/internal/usecase/content"
)

// Video handles admin video requests
type Video struct {
	videoService content.VideoService
	logger       *zap.Logger
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videoService content.VideoService, logger *zap.Logger) *Video {
	return &Video{videoService: videoService, logger: logger}
}

// CreateVideo handles POST /admin/videos
// @Summary      Create a video
// @Description  Creates a video. The transcript is rendered to HTML; chapters and FAQs are extracted unless given.
// @Tags         Admin Videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      content.VideoRequest  true  "Video"
// @Success      201      {object}  content.VideoResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Failure      409      {object}  map[string]interface{}  "Slug already in use"
// @Router       /admin/videos [post]
func (h *Video) CreateVideo(c echo.Context) error {
	var req contentDTO.VideoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	video, err := h.videoService.Create(c.Request().Context(), toVideoInput(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToVideoResponse(video))
}

// GetVideo handles GET /admin/videos/:slug
// @Summary      Get a video
// @Tags         Admin Videos
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string  true  "Video slug"
// @Success      200   {object}  content.VideoResponse
// @Failure      404   {object}  map[string]interface{}  "Video not found"
// @Router       /admin/videos/{slug} [get]
func (h *Video) GetVideo(c echo.Context) error {
	video, err := h.videoService.Get(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToVideoResponse(video))
}

// ListVideos handles GET /admin/videos
// @Summary      List videos
// @Description  Lists videos, drafts included
// @Tags         Admin Videos
// @Produce      json
// @Security     BearerAuth
// @Param        published   query     bool    false  "Filter by published flag"
// @Param        tag         query     string  false  "Tag"
// @Param        search      query     string  false  "Search title, description and transcript"
// @Param        page        query     int     false  "Page"
// @Param        page_size   query     int     false  "Page size"
// @Success      200         {object}  common.ListResponse
// @Router       /admin/videos [get]
func (h *Video) ListVideos(c echo.Context) error {
	var req common.ListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	published, err := publishedParam(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	videos, total, err := h.videoService.List(c.Request().Context(), buildFilters(&req, published))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToListResponse(videos, presenter.ToVideoResponse, total, req.Page, req.PageSize))
}

// UpdateVideo handles PUT /admin/videos/:slug
// @Summary      Replace a video
// @Tags         Admin Videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug     path      string                true  "Video slug"
// @Param        request  body      content.VideoRequest  true  "Video"
// @Success      200      {object}  content.VideoResponse
// @Failure      404      {object}  map[string]interface{}  "Video not found"
// @Router       /admin/videos/{slug} [put]
func (h *Video) UpdateVideo(c echo.Context) error {
	var req contentDTO.VideoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	video, err := h.videoService.Update(c.Request().Context(), c.Param("slug"), toVideoInput(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToVideoResponse(video))
}

// DeleteVideo handles DELETE /admin/videos/:slug
// @Summary      Delete a video
// @Tags         Admin Videos
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string  true  "Video slug"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}  "Video not found"
// @Router       /admin/videos/{slug} [delete]
func (h *Video) DeleteVideo(c echo.Context) error {
	slug := c.Param("slug")
	if err := h.videoService.Delete(c.Request().Context(), slug); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"deleted": slug})
}

func toVideoInput(req *contentDTO.VideoRequest) content.VideoInput {
	return content.VideoInput{
		Slug:            req.Slug,
		Title:           req.Title,
		Description:     req.Description,
		VideoURL:        req.VideoURL,
		ThumbnailURL:    req.ThumbnailURL,
		DurationSeconds: req.DurationSeconds,
		RawTranscript:   req.RawTranscript,
		RawFAQ:          req.RawFAQ,
		Chapters:        req.Chapters,
		FAQs:            req.FAQs,
		Tags:            req.Tags,
		Published:       req.Published,
	}
}
