package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/app"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/config"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/logger"
)

// The worker consumes import tasks from Redis. Run as many as needed; each
// needs a distinct WORKER_ID.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	if cfg.QueueDriver != config.QueueDriverRedis {
		logger.Fatal("The standalone worker requires QUEUE_DRIVER=redis",
			slog.String("queue_driver", cfg.QueueDriver))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to start import pipeline",
			slog.String("error", err.Error()))
	}
	defer a.Close()

	logger.Info("Starting worker",
		slog.String("worker_id", cfg.WorkerID),
		slog.Int("pool_size", cfg.WorkerPoolSize))

	if err := a.RunWorkers(ctx); err != nil {
		logger.Error("Worker stopped",
			slog.String("error", err.Error()))
		return
	}

	logger.Info("Worker exited")
}
