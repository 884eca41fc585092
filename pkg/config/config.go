package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Cache      CacheConfig
	Redis      RedisConfig
	Storage    StorageConfig
	JWT        JWTConfig
	Admin      AdminConfig
	Extraction ExtractionConfig
	Log        LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"SERVER_PORT" default:"8080"`
	Host            string   `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"SERVER_ENVIRONMENT" default:"development"`
	PublicBaseURL   string   `envconfig:"SERVER_PUBLIC_BASE_URL" default:"http://localhost:3000"`
	AllowedOrigins  []string `envconfig:"SERVER_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string        `envconfig:"DB_HOST" default:"localhost"`
	Port        string        `envconfig:"DB_PORT" default:"5432"`
	User        string        `envconfig:"DB_USER" default:"postgres"`
	Password    string        `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string        `envconfig:"DB_NAME" default:"agency_cms"`
	SSLMode     string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int           `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int           `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	ConnectWait time.Duration `envconfig:"DB_CONNECT_WAIT" default:"30s"`
}

// CacheConfig selects the cache backend for public payloads
type CacheConfig struct {
	Driver string        `envconfig:"CACHE_DRIVER" default:"memory"` // "memory" or "redis"
	TTL    time.Duration `envconfig:"CACHE_TTL" default:"10m"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Endpoint        string        `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string        `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string        `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string        `envconfig:"STORAGE_BUCKET" default:"agency-cms"`
	UseSSL          bool          `envconfig:"STORAGE_USE_SSL" default:"false"`
	PublicURL       string        `envconfig:"STORAGE_PUBLIC_URL" default:""`
	URLExpiry       time.Duration `envconfig:"STORAGE_URL_EXPIRY" default:"168h"`
	MaxUploadBytes  int64         `envconfig:"STORAGE_MAX_UPLOAD_BYTES" default:"10485760"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret string        `envconfig:"JWT_ACCESS_SECRET" default:"your-access-secret-change-in-production"`
	AccessExpiry time.Duration `envconfig:"JWT_ACCESS_EXPIRY" default:"12h"`
	Issuer       string        `envconfig:"JWT_ISSUER" default:"agency-cms"`
}

// AdminConfig holds the credentials for the admin console
type AdminConfig struct {
	APIKey string `envconfig:"ADMIN_API_KEY" default:""`
}

// ExtractionConfig holds the limits of the raw-text extraction engine
type ExtractionConfig struct {
	ChapterMaxWords int `envconfig:"EXTRACT_CHAPTER_MAX_WORDS" default:"10"`
	ChapterMaxRunes int `envconfig:"EXTRACT_CHAPTER_MAX_RUNES" default:"60"`
	FAQMax          int `envconfig:"EXTRACT_FAQ_MAX" default:"8"`
	// MinFAQs is enforced when a record is published; 0 disables the check.
	MinFAQs int `envconfig:"EXTRACT_MIN_FAQS" default:"0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	// Sections are processed one by one with fully qualified keys so that
	// envconfig never falls back to bare names such as USER or HOST.
	sections := []interface{}{
		&config.Server,
		&config.Database,
		&config.Cache,
		&config.Redis,
		&config.Storage,
		&config.JWT,
		&config.Admin,
		&config.Extraction,
		&config.Log,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Admin.APIKey == "" {
		return fmt.Errorf("ADMIN_API_KEY is required")
	}
	if c.IsProduction() && c.JWT.AccessSecret == "your-access-secret-change-in-production" {
		return fmt.Errorf("JWT_ACCESS_SECRET must be set in production")
	}
	if c.Cache.Driver != "memory" && c.Cache.Driver != "redis" {
		return fmt.Errorf("CACHE_DRIVER must be memory or redis, got %q", c.Cache.Driver)
	}
	if c.Extraction.MinFAQs < 0 {
		return fmt.Errorf("EXTRACT_MIN_FAQS must not be negative")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
