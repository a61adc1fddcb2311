// Package app wires the import pipeline shared by the API server and the
// standalone worker.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/config"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/infrastructure/database"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/logger"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/metrics"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/progress"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/queue"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/repository"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/service"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/validator"
)

// App holds the connections and components of one process.
type App struct {
	Config *config.Config
	Pool   *pgxpool.Pool
	// Redis is nil with the memory queue driver.
	Redis *redis.Client

	Jobs      *repository.PostgresJobRepository
	Students  *repository.PostgresStudentRepository
	Scores    *repository.PostgresScoreRepository
	Resolver  *repository.PostgresResolverRepository
	Validator *validator.Validator

	Queue  queue.Queue
	Broker progress.Broker
	Worker *service.BatchWorker

	poolStats *metrics.PoolStatsCollector
}

// New connects to the stores and builds the worker and its queue. With the
// redis driver, tasks and progress events cross process boundaries; with the
// memory driver both stay in this process.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := database.NewPostgres(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	a := &App{
		Config:    cfg,
		Pool:      pool,
		Jobs:      repository.NewPostgresJobRepository(pool),
		Students:  repository.NewPostgresStudentRepository(pool),
		Scores:    repository.NewPostgresScoreRepository(pool),
		Resolver:  repository.NewPostgresResolverRepository(pool),
		Validator: validator.NewValidator(),
	}

	a.poolStats = metrics.NewPoolStatsCollector(pool)
	a.poolStats.Start(15 * time.Second)

	if cfg.QueueDriver == config.QueueDriverRedis {
		client, err := database.NewRedis(ctx, cfg)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.Redis = client
		a.Broker = progress.NewRedisBroker(client)
	} else {
		a.Broker = progress.NewMemoryBroker()
	}

	a.Worker = service.NewBatchWorker(a.Jobs, service.Processors{
		Students:  a.Students,
		Scores:    a.Scores,
		Resolver:  a.Resolver,
		Validator: a.Validator,
	}, a.Broker, service.WorkerConfig{
		ErrorCap:   cfg.ErrorCap,
		BatchPause: cfg.BatchPause,
	})

	opts := queue.Options{
		MaxAttempts: cfg.QueueMaxAttempts,
		RetryDelay:  cfg.QueueRetryDelay,
		OnExhausted: a.Worker.Fail,
		Observe: func(task *queue.Task, outcome string, _ time.Duration) {
			metrics.ObserveDelivery(string(task.Kind), outcome, task.Attempt, task.EnqueuedAt)
		},
	}
	if a.Redis != nil {
		a.Queue = queue.NewRedisQueue(a.Redis, cfg.QueueName, cfg.WorkerID, opts)
	} else {
		a.Queue = queue.NewMemoryQueue(cfg.QueueCapacity, opts)
	}

	logger.Info("Import pipeline ready",
		slog.String("queue_driver", cfg.QueueDriver),
		slog.Int("worker_pool_size", cfg.WorkerPoolSize))

	return a, nil
}

// RunWorkers consumes tasks with the configured pool size until ctx ends.
// Queue depth is sampled alongside.
func (a *App) RunWorkers(ctx context.Context) error {
	go metrics.WatchQueueDepth(ctx, a.Queue.Depth, 10*time.Second)

	return a.Queue.Consume(ctx, a.Config.WorkerPoolSize, a.Worker.Process)
}

// Close releases every connection. It is safe on a partially built App.
func (a *App) Close() {
	if a.Queue != nil {
		if err := a.Queue.Close(); err != nil {
			logger.Warn("Queue close failed", slog.String("error", err.Error()))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.poolStats != nil {
		a.poolStats.Stop()
	}
	a.Pool.Close()
}
