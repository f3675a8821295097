// Package main is the entry point for the TalentPage server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"talentpage/internal/cache"
	"talentpage/internal/config"
	"talentpage/internal/database"
	"talentpage/internal/handlers"
	"talentpage/internal/mirror"
	"talentpage/internal/repository"
	"talentpage/internal/router"
	"talentpage/internal/storage"
	"talentpage/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey. Unlike the database it is optional: without it
	// the repository runs with no write mirror and no page cache.
	var valkeyClient *redis.Client
	valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable — mirror and page cache disabled", "error", err)
		valkeyClient = nil
	} else {
		defer valkeyClient.Close()
	}

	// Initialize data stores.
	companyStore := store.NewCompanyStore(db)
	sectionStore := store.NewSectionStore(db)
	jobStore := store.NewJobStore(db)
	careerPageStore := store.NewCareerPageStore(db)

	// Connect to S3-compatible object storage (optional — the app works
	// without it, asset uploads just return 503).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient == nil {
		slog.Warn("s3 storage not configured — asset uploads disabled")
	} else {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	}

	// Wire the repository: the Valkey mirror takes over on database
	// write failures, the page cache holds rendered careers pages.
	var repo *repository.CompanyRepository
	var publicHandlers *handlers.Public
	if valkeyClient != nil {
		mirrorStore := mirror.NewStore(valkeyClient)
		pageCache := cache.NewCareersCache(valkeyClient, cache.DefaultCareersTTL)
		repo = repository.New(
			companyStore, sectionStore, jobStore, careerPageStore,
			mirrorStore, mirror.DefaultPolicy(), pageCache, logger,
		)
		publicHandlers = handlers.NewPublic(repo, pageCache)
	} else {
		repo = repository.New(
			companyStore, sectionStore, jobStore, careerPageStore,
			nil, mirror.DefaultPolicy(), nil, logger,
		)
		publicHandlers = handlers.NewPublic(repo, nil)
	}

	// Create handler groups with their dependencies.
	var adminHandlers *handlers.Admin
	if storageClient != nil {
		adminHandlers = handlers.NewAdmin(repo, storageClient)
	} else {
		adminHandlers = handlers.NewAdmin(repo, nil)
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(router.Options{
		Admin:      adminHandlers,
		Public:     publicHandlers,
		AdminToken: cfg.AdminToken,
		TokenHash:  cfg.AdminTokenHash,
	})

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
