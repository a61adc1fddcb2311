package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/logger"
)

const (
	// DefaultPollTimeout is how long a consumer blocks waiting for a task.
	DefaultPollTimeout = 5 * time.Second

	pendingSuffix    = ":pending"
	processingSuffix = ":processing:"
	deadSuffix       = ":dead"
)

// RedisQueue is a reliable list queue. A delivered task is moved atomically
// to the consumer's processing list and removed only after it was handled,
// so a crashed worker's tasks are recovered when it starts again.
type RedisQueue struct {
	client      *redis.Client
	opts        Options
	pollTimeout time.Duration

	pendingKey    string
	processingKey string
	deadKey       string
}

// NewRedisQueue creates a queue stored under name. consumerID must be stable
// across restarts of the same worker for recovery to find its tasks.
func NewRedisQueue(client *redis.Client, name, consumerID string, opts Options) *RedisQueue {
	return &RedisQueue{
		client:        client,
		opts:          opts.withDefaults(),
		pollTimeout:   DefaultPollTimeout,
		pendingKey:    name + pendingSuffix,
		processingKey: name + processingSuffix + consumerID,
		deadKey:       name + deadSuffix,
	}
}

// Enqueue appends a task to the pending list.
func (q *RedisQueue) Enqueue(ctx context.Context, task *Task) error {
	prepare(task)
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}
	if err := q.client.LPush(ctx, q.pendingKey, data).Err(); err != nil {
		return fmt.Errorf("enqueue job %s: %w", task.JobID, err)
	}
	return nil
}

// Consume recovers this consumer's unfinished tasks, then runs workers
// consumers until ctx is cancelled.
func (q *RedisQueue) Consume(ctx context.Context, workers int, handler Handler) error {
	if workers <= 0 {
		workers = 1
	}
	if err := q.recover(ctx); err != nil {
		return err
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.consume(ctx, handler)
		}()
	}
	wg.Wait()
	return nil
}

func (q *RedisQueue) consume(ctx context.Context, handler Handler) {
	for ctx.Err() == nil {
		payload, err := q.client.BRPopLPush(ctx, q.pendingKey, q.processingKey, q.pollTimeout).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			logger.Default().Error("Failed to dequeue import task",
				slog.String("queue", q.pendingKey),
				slog.String("error", err.Error()))
			sleepWithContext(ctx, time.Second)
			continue
		}
		q.handle(ctx, payload, handler)
	}
}

func (q *RedisQueue) handle(ctx context.Context, payload string, handler Handler) {
	var task Task
	if err := json.Unmarshal([]byte(payload), &task); err != nil {
		logger.Default().Error("Discarding undecodable import task",
			slog.String("queue", q.pendingKey),
			slog.String("error", err.Error()))
		q.move(ctx, payload, q.deadKey, "")
		return
	}

	started := time.Now()
	err := run(ctx, handler, &task)
	if err == nil {
		q.opts.observe(&task, OutcomeAcked, started)
		ackCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := q.client.LRem(ackCtx, q.processingKey, 1, payload).Err(); err != nil {
			logger.WithJobID(task.JobID).Error("Failed to acknowledge import task", slog.String("error", err.Error()))
		}
		return
	}

	if ctx.Err() != nil {
		// shutting down; the task stays in the processing list
		return
	}

	log := logger.WithJobID(task.JobID)
	if task.Attempt < q.opts.MaxAttempts {
		log.Warn("Import task failed, scheduling retry",
			slog.Int("attempt", task.Attempt),
			slog.Int("max_attempts", q.opts.MaxAttempts),
			slog.String("error", err.Error()))
		q.opts.observe(&task, OutcomeRetried, started)
		if !sleepWithContext(ctx, q.opts.RetryDelay) {
			return
		}
		task.Attempt++
		next, mErr := json.Marshal(&task)
		if mErr != nil {
			log.Error("Failed to marshal retried task", slog.String("error", mErr.Error()))
			return
		}
		q.move(ctx, payload, q.pendingKey, string(next))
		return
	}

	log.Error("Import task exhausted its attempts",
		slog.Int("attempt", task.Attempt),
		slog.String("error", err.Error()))
	q.opts.observe(&task, OutcomeExhausted, started)
	if q.opts.OnExhausted != nil {
		q.opts.OnExhausted(ctx, &task, err)
	}
	q.move(ctx, payload, q.deadKey, "")
}

// move removes payload from the processing list and pushes replacement (or
// payload itself when empty) onto dest in one transaction.
func (q *RedisQueue) move(ctx context.Context, payload, dest, replacement string) {
	if replacement == "" {
		replacement = payload
	}
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, q.processingKey, 1, payload)
		pipe.LPush(ctx, dest, replacement)
		return nil
	})
	if err != nil {
		logger.Default().Error("Failed to move import task",
			slog.String("from", q.processingKey),
			slog.String("to", dest),
			slog.String("error", err.Error()))
	}
}

// recover returns tasks left in this consumer's processing list to the
// pending list.
func (q *RedisQueue) recover(ctx context.Context) error {
	recovered := 0
	for {
		err := q.client.RPopLPush(ctx, q.processingKey, q.pendingKey).Err()
		if errors.Is(err, redis.Nil) {
			break
		}
		if err != nil {
			return fmt.Errorf("recover processing list: %w", err)
		}
		recovered++
	}
	if recovered > 0 {
		logger.Info("Recovered unfinished import tasks",
			slog.String("queue", q.processingKey),
			slog.Int("count", recovered))
	}
	return nil
}

// Depth returns the number of pending tasks.
func (q *RedisQueue) Depth(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.pendingKey).Result()
}

// DeadLetters returns the number of tasks that exhausted their attempts.
func (q *RedisQueue) DeadLetters(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.deadKey).Result()
}

// Close releases nothing; the client is owned by the caller.
func (q *RedisQueue) Close() error {
	return nil
}

// sleepWithContext waits for d and reports false if ctx ended first.
func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
