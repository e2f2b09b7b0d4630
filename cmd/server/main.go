package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/joho/godotenv"

	"github.com/fidias-dev/technician-agenda/internal/cache"
	"github.com/fidias-dev/technician-agenda/internal/catalog"
	"github.com/fidias-dev/technician-agenda/internal/config"
	"github.com/fidias-dev/technician-agenda/internal/database"
	"github.com/fidias-dev/technician-agenda/internal/handlers"
	"github.com/fidias-dev/technician-agenda/internal/logging"
	"github.com/fidias-dev/technician-agenda/internal/middleware"
	"github.com/fidias-dev/technician-agenda/internal/routes"
	"github.com/fidias-dev/technician-agenda/internal/services"
	"github.com/fidias-dev/technician-agenda/internal/storage"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Database log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Job catalog seed, no-op once populated
	if err := catalog.SeedJobCategories(database.DB); err != nil {
		slog.Error("job catalog seed failed", "error", err)
		os.Exit(1)
	}

	// Work-list cache: Redis when configured, in-process otherwise
	var listCache cache.Cache
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cfg.RedisAddr)
		if err := redisCache.Ping(context.Background()); err != nil {
			slog.Warn("redis unreachable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
			listCache = cache.NewMemory()
		} else {
			slog.Info("redis cache connected", "addr", cfg.RedisAddr)
			listCache = redisCache
		}
	} else {
		listCache = cache.NewMemory()
	}

	// Upload storage
	store, err := storage.NewLocal(cfg.UploadsDir)
	if err != nil {
		slog.Error("failed to prepare uploads directory", "dir", cfg.UploadsDir, "error", err)
		os.Exit(1)
	}

	// Services
	authService := services.NewAuthService(database.DB, cfg)
	clientService := services.NewClientService(database.DB)
	directionService := services.NewDirectionService(database.DB)
	technicianService := services.NewTechnicianService(database.DB, store, cfg.TechniciansShared)
	workService := services.NewWorkService(database.DB, listCache, store, cfg.TechniciansShared)
	fileService := services.NewFileService(database.DB, store, workService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()
	catalogHandler := handlers.NewCatalogHandler(database.DB)
	clientHandler := handlers.NewClientHandler(clientService)
	directionHandler := handlers.NewDirectionHandler(directionService)
	technicianHandler := handlers.NewTechnicianHandler(technicianService)
	workHandler := handlers.NewWorkHandler(workService)
	fileHandler := handlers.NewFileHandler(fileService)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    32 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Uploaded photos and work files are served straight from disk
	app.Static("/uploads", store.Root())

	// Routes
	routes.Setup(app, cfg, authHandler, healthHandler, catalogHandler, clientHandler, directionHandler, technicianHandler, workHandler, fileHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
