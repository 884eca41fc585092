package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/errors"
	"github.com/johnquangdev/agency-cms/internal/adapter/dto/common"
	contentDTO "github.com/johnquangdev/agency-cms/internal/adapter/dto/content"
	"github.com/johnquangdev/agency-cms/internal/adapter/presenter"
	"github.com/johnquangdev/agency-cms/internal/usecase/content"
)

// Post handles admin post requests
type Post struct {
	postService content.PostService
	logger      *zap.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService content.PostService, logger *zap.Logger) *Post {
	return &Post{postService: postService, logger: logger}
}

// CreatePost handles POST /admin/posts
// @Summary      Create a post
// @Description  Creates a post. FAQs are extracted from raw_faq unless faqs is given.
// @Tags         Admin Posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      content.PostRequest  true  "Post"
// @Success      201      {object}  content.PostResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Failure      409      {object}  map[string]interface{}  "Slug already in use"
// @Router       /admin/posts [post]
func (h *Post) CreatePost(c echo.Context) error {
	var req contentDTO.PostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	post, err := h.postService.Create(c.Request().Context(), toPostInput(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToPostResponse(post))
}

// GetPost handles GET /admin/posts/:slug
// @Summary      Get a post
// @Tags         Admin Posts
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  content.PostResponse
// @Failure      404   {object}  map[string]interface{}  "Post not found"
// @Router       /admin/posts/{slug} [get]
func (h *Post) GetPost(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToPostResponse(post))
}

// ListPosts handles GET /admin/posts
// @Summary      List posts
// @Description  Lists posts, drafts included
// @Tags         Admin Posts
// @Produce      json
// @Security     BearerAuth
// @Param        published   query     bool    false  "Filter by published flag"
// @Param        tag         query     string  false  "Tag"
// @Param        search      query     string  false  "Search title, excerpt and body"
// @Param        page        query     int     false  "Page"
// @Param        page_size   query     int     false  "Page size"
// @Param        sort_by     query     string  false  "created_at, updated_at, published_at or title"
// @Param        sort_order  query     string  false  "asc or desc"
// @Success      200         {object}  common.ListResponse
// @Router       /admin/posts [get]
func (h *Post) ListPosts(c echo.Context) error {
	var req common.ListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	published, err := publishedParam(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	filters := buildFilters(&req, published)
	posts, total, err := h.postService.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToListResponse(posts, presenter.ToPostResponse, total, req.Page, req.PageSize))
}

// UpdatePost handles PUT /admin/posts/:slug
// @Summary      Replace a post
// @Description  Replaces every editable field. An empty slug keeps the current one.
// @Tags         Admin Posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug     path      string               true  "Post slug"
// @Param        request  body      content.PostRequest  true  "Post"
// @Success      200      {object}  content.PostResponse
// @Failure      404      {object}  map[string]interface{}  "Post not found"
// @Router       /admin/posts/{slug} [put]
func (h *Post) UpdatePost(c echo.Context) error {
	var req contentDTO.PostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	post, err := h.postService.Update(c.Request().Context(), c.Param("slug"), toPostInput(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToPostResponse(post))
}

// DeletePost handles DELETE /admin/posts/:slug
// @Summary      Delete a post
// @Tags         Admin Posts
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}  "Post not found"
// @Router       /admin/posts/{slug} [delete]
func (h *Post) DeletePost(c echo.Context) error {
	slug := c.Param("slug")
	if err := h.postService.Delete(c.Request().Context(), slug); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"deleted": slug})
}

func toPostInput(req *contentDTO.PostRequest) content.PostInput {
	return content.PostInput{
		Slug:          req.Slug,
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Body:          req.Body,
		CoverImageURL: req.CoverImageURL,
		Tags:          req.Tags,
		RawFAQ:        req.RawFAQ,
		FAQs:          req.FAQs,
		Published:     req.Published,
	}
}

// publishedParam parses the optional "published" query parameter
func publishedParam(c echo.Context) (*bool, error) {
	raw := c.QueryParam("published")
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.ErrInvalidArgument("published must be true or false")
	}
	return &v, nil
}
