package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/app"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/config"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/handler"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/infrastructure/database"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/logger"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/middleware"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/service"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/storage"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	// Connect to stores and build the pipeline
	a, err := app.New(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to start import pipeline",
			slog.String("error", err.Error()))
	}
	defer a.Close()

	// Source archive is optional
	var archive storage.Archive
	if cfg.ArchiveEnabled() {
		s3, err := storage.NewS3Storage(cfg)
		if err != nil {
			logger.Fatal("Failed to create source archive",
				slog.String("error", err.Error()))
		}
		archive = s3
	}

	// Initialize services
	importService := service.NewImportService(a.Jobs, a.Resolver, a.Queue, archive, a.Validator, service.ImportConfig{
		MaxUploadSize:    cfg.MaxUploadSize,
		MaxRecords:       cfg.MaxRecords,
		DefaultBatchSize: cfg.BatchSize,
	})
	templateService := service.NewTemplateService(a.Students, a.Resolver, a.Validator)

	// Initialize handlers
	checks := map[string]handler.CheckFunc{
		"database": func(ctx context.Context) error { return database.HealthCheck(ctx, a.Pool) },
	}
	if a.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return database.RedisHealthCheck(ctx, a.Redis) }
	}
	importHandler := handler.NewImportHandler(importService, cfg.MaxUploadSize)
	templateHandler := handler.NewTemplateHandler(templateService)
	progressHandler := handler.NewProgressHandler(importService, a.Broker)
	healthHandler := handler.NewHealthHandler(version, checks)
	limiter := middleware.NewTenantRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1", middleware.Tenant())
	{
		// Import routes
		imports := v1.Group("/imports")
		{
			imports.POST("/students", limiter.Middleware(), importHandler.SubmitStudents)
			imports.POST("/scores", limiter.Middleware(), importHandler.SubmitScores)
			imports.GET("/:id", importHandler.GetImport)
			imports.GET("/:id/errors", importHandler.GetImportErrors)
			imports.POST("/:id/cancel", importHandler.CancelImport)
			imports.GET("/:id/ws", progressHandler.Watch)
		}

		// Template routes
		templates := v1.Group("/templates")
		{
			templates.GET("/students", templateHandler.StudentTemplate)
			templates.POST("/scores", templateHandler.ScoreTemplate)
		}
	}

	// With the memory driver the workers run in this process
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	var workers sync.WaitGroup
	if cfg.QueueDriver == config.QueueDriverMemory {
		workers.Add(1)
		go func() {
			defer workers.Done()
			if err := a.RunWorkers(workerCtx); err != nil {
				logger.Error("Workers stopped",
					slog.String("error", err.Error()))
			}
		}()
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop accepting requests first, then let in-flight batches end
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	stopWorkers()
	workers.Wait()

	logger.Info("Server exited")
}
