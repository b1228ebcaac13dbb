package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/johnquangdev/meeting-recap/internal/adapter/handler"
	"github.com/johnquangdev/meeting-recap/internal/adapter/repository"
	"github.com/johnquangdev/meeting-recap/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-recap/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-recap/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/meeting-recap/internal/usecase/ai"
	meetinguse "github.com/johnquangdev/meeting-recap/internal/usecase/meeting"
	pkgai "github.com/johnquangdev/meeting-recap/pkg/ai"
	"github.com/johnquangdev/meeting-recap/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-recap/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// Request IDs for log correlation
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, cfg.IsPostgres()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; manage schema with sql-migrate in CI/CD/production")
	}

	// Initialize read cache: Redis when configured, in-memory otherwise
	var cacheStore cache.Store
	if cfg.Redis.Addr != "" {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(&cfg.Redis, logger)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		cacheStore = redisStore
	} else {
		cacheStore = cache.NewMemoryStore()
	}

	// Initialize upload storage
	log.Println("📁 Initializing upload storage...")
	uploads, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Optional MinIO archive for uploaded recordings
	var archiver meetinguse.Archiver
	if cfg.Storage.Endpoint != "" {
		log.Println("🗄️  Initializing MinIO archive storage...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to create MinIO client: %v", err)
		}
		archiver = minioClient
	}

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	if !groqClient.HasKey() {
		log.Println("⚠️  GROQ_API_KEY not set; summaries and transcripts will be degraded")
	}

	var provider aiuse.TranscriptionProvider
	if cfg.Assembly.Provider == "assemblyai" {
		provider = aiuse.NewAssemblyAIProvider(&cfg.Assembly)
	} else {
		provider = aiuse.NewGroqWhisperProvider(groqClient)
	}
	transcriber := aiuse.NewTranscriber(provider, logger)
	summarizer := aiuse.NewSummarizer(groqClient, logger)

	// Initialize repositories and services
	log.Println("⚙️  Initializing meeting service...")
	meetingRepo := repository.NewMeetingRepository(db)
	meetingService := meetinguse.NewService(
		meetingRepo,
		transcriber,
		summarizer,
		uploads,
		archiver,
		cacheStore,
		cfg.Redis.CacheTTL,
		logger,
	)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	router := handler.NewRouter(cfg, meetingHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)

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
