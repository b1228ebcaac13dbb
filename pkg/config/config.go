package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Upload   UploadConfig
	Groq     GroqConfig
	Assembly AssemblyAIConfig
	Redis    RedisConfig
	Storage  StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"8080"`
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	FrontendURL     string `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	// URL is either a local sqlite file path or a postgres DSN/URL.
	URL         string `envconfig:"DATABASE_URL" default:"meetings.db"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
}

// UploadConfig holds local upload storage configuration
type UploadConfig struct {
	Dir string `envconfig:"UPLOAD_DIR" default:"uploads"`
}

// GroqConfig holds Groq API configuration
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY"`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
}

// AssemblyAIConfig holds AssemblyAI configuration for the alternative
// transcription provider.
type AssemblyAIConfig struct {
	APIKey   string `envconfig:"ASSEMBLYAI_API_KEY"`
	Provider string `envconfig:"TRANSCRIBE_PROVIDER" default:"groq"`
}

// RedisConfig holds Redis configuration. An empty Addr disables Redis and
// the service falls back to the in-memory cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

// StorageConfig holds MinIO archive storage configuration. An empty
// Endpoint disables archiving.
type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-recap"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	return &cfg, nil
}

// IsPostgres reports whether the configured database URL points at postgres
// rather than a local sqlite file.
func (c *Config) IsPostgres() bool {
	url := c.Database.URL
	return strings.HasPrefix(url, "postgres://") ||
		strings.HasPrefix(url, "postgresql://") ||
		strings.Contains(url, "host=")
}

// AllowedOrigins returns the CORS origins: the local dev addresses plus the
// configured frontend URL (scheme-less values are assumed to be https).
func (c *Config) AllowedOrigins() []string {
	frontend := c.Server.FrontendURL
	if !strings.HasPrefix(frontend, "http") {
		frontend = "https://" + frontend
	}

	origins := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	for _, o := range origins {
		if o == frontend {
			return origins
		}
	}
	return append(origins, frontend)
}
