package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/agency-cms/pkg/validator"

	_ "github.com/johnquangdev/agency-cms/docs"
	"github.com/johnquangdev/agency-cms/internal/adapter/handler"
	"github.com/johnquangdev/agency-cms/internal/adapter/repository"
	"github.com/johnquangdev/agency-cms/internal/infrastructure/cache"
	"github.com/johnquangdev/agency-cms/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/agency-cms/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/agency-cms/internal/infrastructure/storage"
	"github.com/johnquangdev/agency-cms/internal/usecase/auth"
	"github.com/johnquangdev/agency-cms/internal/usecase/content"
	"github.com/johnquangdev/agency-cms/internal/usecase/extract"
	"github.com/johnquangdev/agency-cms/internal/usecase/upload"
	"github.com/johnquangdev/agency-cms/pkg/config"
	"github.com/johnquangdev/agency-cms/pkg/jwt"
	"github.com/johnquangdev/agency-cms/pkg/logger"
)

// @title           Agency CMS API
// @version         1.0
// @description     Content API for the agency site: posts, videos with transcripts, reviews and the text extraction tools used by the admin editors.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run AutoMigrate only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running GORM AutoMigrate (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run AutoMigrate: %v", err)
		}
	} else {
		log.Println("🔄 Skipping GORM AutoMigrate; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize cache
	log.Printf("📦 Initializing %s cache...", cfg.Cache.Driver)
	store, err := cache.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer store.Close()

	// Initialize object storage
	log.Println("🗄️  Connecting to object storage...")
	storageCtx, cancelStorage := context.WithTimeout(context.Background(), cfg.Database.ConnectWait)
	minioClient, err := storage.NewMinIOClient(storageCtx, &cfg.Storage)
	cancelStorage()
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	postRepo := repository.NewPostRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Initialize use cases
	log.Println("✨ Initializing services...")
	extractor := extract.New(extract.Options{
		ChapterMaxWords: cfg.Extraction.ChapterMaxWords,
		ChapterMaxRunes: cfg.Extraction.ChapterMaxRunes,
		FAQMax:          cfg.Extraction.FAQMax,
	})
	contentOpts := content.Options{
		Cache:     store,
		CacheTTL:  cfg.Cache.TTL,
		Extractor: extractor,
		MinFAQs:   cfg.Extraction.MinFAQs,
		Logger:    zapLogger,
	}
	postService := content.NewPostService(postRepo, contentOpts)
	videoService := content.NewVideoService(videoRepo, contentOpts)
	reviewService := content.NewReviewService(reviewRepo, contentOpts)
	uploadService := upload.NewUploadService(minioClient, cfg.Storage.MaxUploadBytes, zapLogger)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry, cfg.JWT.Issuer)
	authService := auth.NewAuthService(cfg.Admin.APIKey, jwtManager, store, zapLogger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, httpmw.EchoAuth(authService, zapLogger), handler.Handlers{
		Auth:    handler.NewAuth(authService, zapLogger),
		Public:  handler.NewPublicHandler(postService, videoService, reviewService, cfg.Server.PublicBaseURL, zapLogger),
		Post:    handler.NewPostHandler(postService, zapLogger),
		Video:   handler.NewVideoHandler(videoService, zapLogger),
		Review:  handler.NewReviewHandler(reviewService, zapLogger),
		Extract: handler.NewExtractHandler(extractor, zapLogger),
		Upload:  handler.NewUploadHandler(uploadService, zapLogger),
	})
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)
		zapLogger.Info("server.start", zap.String("addr", addr))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
