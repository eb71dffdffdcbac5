// Package main is the entry point for the Spend Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/spendtrack/backend/config"
	"github.com/spendtrack/backend/internal/application/adapter"
	"github.com/spendtrack/backend/internal/infra/cache"
	"github.com/spendtrack/backend/internal/infra/db"
	"github.com/spendtrack/backend/internal/infra/dependency"
	"github.com/spendtrack/backend/internal/infra/storage"
	"github.com/spendtrack/backend/internal/integration/entrypoint/controller"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Spend Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := db.Migrate(database.DB()); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	checks := map[string]controller.HealthCheck{
		"database": database.Ping,
	}

	var appCache adapter.Cache
	if cfg.Redis.URL != "" {
		redisClient, err := cache.NewRedisClient(startupCtx, cfg.Redis.URL)
		if err != nil {
			slog.Error("Redis connection failed", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		appCache = cache.NewRedisCache(redisClient, cfg.Redis.KeyPrefix)
		checks["cache"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
		slog.Info("Using Redis cache")
	} else {
		appCache = cache.NewMemoryCache(cfg.Cache.TTL)
		slog.Info("Redis not configured, using in-process cache")
	}

	objectStorage, err := storage.NewMinioStorage(startupCtx, storage.Config{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		Region:    cfg.MinIO.Region,
		UseSSL:    cfg.MinIO.UseSSL,
	})
	if err != nil {
		slog.Error("Object storage connection failed", "error", err)
		os.Exit(1)
	}
	checks["storage"] = objectStorage.Ping

	injector := dependency.NewInjector(cfg, dependency.Infrastructure{
		DB:           database.DB(),
		Cache:        appCache,
		Storage:      objectStorage,
		HealthChecks: checks,
	})

	if _, err := injector.SeedCategories.Execute(startupCtx); err != nil {
		slog.Error("Failed to seed categories", "error", err)
		os.Exit(1)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
