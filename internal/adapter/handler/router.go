package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/agency-cms/internal/adapter/dto/common"
	"github.com/johnquangdev/agency-cms/pkg/config"
)

// multipartOverhead is allowed on top of the file size limit for form
// boundaries and headers
const multipartOverhead = 1 << 20

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	authMiddleware echo.MiddlewareFunc
	authHandler    *Auth
	publicHandler  *Public
	postHandler    *Post
	videoHandler   *Video
	reviewHandler  *Review
	extractHandler *Extract
	uploadHandler  *Upload
}

// Handlers groups the handlers passed to NewRouter
type Handlers struct {
	Auth    *Auth
	Public  *Public
	Post    *Post
	Video   *Video
	Review  *Review
	Extract *Extract
	Upload  *Upload
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, authMiddleware echo.MiddlewareFunc, h Handlers) *Router {
	return &Router{
		cfg:            cfg,
		authMiddleware: authMiddleware,
		authHandler:    h.Auth,
		publicHandler:  h.Public,
		postHandler:    h.Post,
		videoHandler:   h.Video,
		reviewHandler:  h.Review,
		extractHandler: h.Extract,
		uploadHandler:  h.Upload,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupPublicRoutes(v1)
	rt.setupAuthRoutes(v1)

	admin := v1.Group("/admin", rt.authMiddleware)
	rt.setupExtractRoutes(admin)
	rt.setupContentRoutes(admin)
	rt.setupUploadRoutes(admin)
}

// setupPublicRoutes configures the read-only routes of the public site
func (rt *Router) setupPublicRoutes(g *echo.Group) {
	h := rt.publicHandler
	g.GET("/posts", h.ListPosts)
	g.GET("/posts/:slug", h.GetPost)
	g.GET("/videos", h.ListVideos)
	g.GET("/videos/:slug", h.GetVideo)
	g.GET("/reviews", h.ListReviews)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/login", rt.authHandler.Login)
}

func (rt *Router) setupExtractRoutes(g *echo.Group) {
	extractGroup := g.Group("/extract")
	extractGroup.POST("/transcript", rt.extractHandler.Transcript)
	extractGroup.POST("/faqs", rt.extractHandler.FAQs)
}

// setupContentRoutes configures admin CRUD for posts, videos and reviews
func (rt *Router) setupContentRoutes(g *echo.Group) {
	posts := g.Group("/posts")
	posts.GET("", rt.postHandler.ListPosts)
	posts.POST("", rt.postHandler.CreatePost)
	posts.GET("/:slug", rt.postHandler.GetPost)
	posts.PUT("/:slug", rt.postHandler.UpdatePost)
	posts.DELETE("/:slug", rt.postHandler.DeletePost)

	videos := g.Group("/videos")
	videos.GET("", rt.videoHandler.ListVideos)
	videos.POST("", rt.videoHandler.CreateVideo)
	videos.GET("/:slug", rt.videoHandler.GetVideo)
	videos.PUT("/:slug", rt.videoHandler.UpdateVideo)
	videos.DELETE("/:slug", rt.videoHandler.DeleteVideo)

	reviews := g.Group("/reviews")
	reviews.GET("", rt.reviewHandler.ListReviews)
	reviews.POST("", rt.reviewHandler.CreateReview)
	reviews.GET("/:slug", rt.reviewHandler.GetReview)
	reviews.PUT("/:slug", rt.reviewHandler.UpdateReview)
	reviews.DELETE("/:slug", rt.reviewHandler.DeleteReview)
}

func (rt *Router) setupUploadRoutes(g *echo.Group) {
	limit := fmt.Sprintf("%dB", rt.cfg.Storage.MaxUploadBytes+multipartOverhead)
	g.POST("/uploads", rt.uploadHandler.UploadFile, echoMiddleware.BodyLimit(limit))
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
	})
}
