package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/internal/adapter/dto/common"
	contentDTO "github.com/johnquangdev/agency-cms/internal/adapter/dto/content"
	"github.com/johnquangdev/agency-cms/internal/adapter/presenter"
	"github.com/johnquangdev/agency-cms/internal/usecase/content"
)

// Review handles admin review requests
type Review struct {
	reviewService content.ReviewService
	logger        *zap.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService content.ReviewService, logger *zap.Logger) *Review {
	return &Review{reviewService: reviewService, logger: logger}
}

// CreateReview handles POST /admin/reviews
// @Summary      Create a review
// @Tags         Admin Reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      content.ReviewRequest  true  "Review"
// @Success      201      {object}  content.ReviewResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Router       /admin/reviews [post]
func (h *Review) CreateReview(c echo.Context) error {
	var req contentDTO.ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	review, err := h.reviewService.Create(c.Request().Context(), toReviewInput(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToReviewResponse(review))
}

// GetReview handles GET /admin/reviews/:slug
// @Summary      Get a review
// @Tags         Admin Reviews
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string  true  "Review slug"
// @Success      200   {object}  content.ReviewResponse
// @Failure      404   {object}  map[string]interface{}  "Review not found"
// @Router       /admin/reviews/{slug} [get]
func (h *Review) GetReview(c echo.Context) error {
	review, err := h.reviewService.Get(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToReviewResponse(review))
}

// ListReviews handles GET /admin/reviews
// @Summary      List reviews
// @Tags         Admin Reviews
// @Produce      json
// @Security     BearerAuth
// @Param        published   query     bool    false  "Filter by published flag"
// @Param        search      query     string  false  "Search author, company and body"
// @Param        page        query     int     false  "Page"
// @Param        page_size   query     int     false  "Page size"
// @Param        sort_by     query     string  false  "created_at, author or rating"
// @Success      200         {object}  common.ListResponse
// @Router       /admin/reviews [get]
func (h *Review) ListReviews(c echo.Context) error {
	var req common.ListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	published, err := publishedParam(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	reviews, total, err := h.reviewService.List(c.Request().Context(), buildFilters(&req, published))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToListResponse(reviews, presenter.ToReviewResponse, total, req.Page, req.PageSize))
}

// UpdateReview handles PUT /admin/reviews/:slug
// @Summary      Replace a review
// @Tags         Admin Reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug     path      string                 true  "Review slug"
// @Param        request  body      content.ReviewRequest  true  "Review"
// @Success      200      {object}  content.ReviewResponse
// @Failure      404      {object}  map[string]interface{}  "Review not found"
// @Router       /admin/reviews/{slug} [put]
func (h *Review) UpdateReview(c echo.Context) error {
	var req contentDTO.ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	review, err := h.reviewService.Update(c.Request().Context(), c.Param("slug"), toReviewInput(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToReviewResponse(review))
}

// DeleteReview handles DELETE /admin/reviews/:slug
// @Summary      Delete a review
// @Tags         Admin Reviews
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string  true  "Review slug"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}  "Review not found"
// @Router       /admin/reviews/{slug} [delete]
func (h *Review) DeleteReview(c echo.Context) error {
	slug := c.Param("slug")
	if err := h.reviewService.Delete(c.Request().Context(), slug); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"deleted": slug})
}

func toReviewInput(req *contentDTO.ReviewRequest) content.ReviewInput {
	return content.ReviewInput{
		Slug:      req.Slug,
		Author:    req.Author,
		Company:   req.Company,
		Role:      req.Role,
		Rating:    req.Rating,
		Body:      req.Body,
		AvatarURL: req.AvatarURL,
		Published: req.Published,
	}
}
