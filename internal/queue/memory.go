package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/logger"
)

// SendTimeout bounds how long Enqueue waits for room in a full memory queue.
const SendTimeout = 5 * time.Second

// MemoryQueue is an in-process channel queue for single-binary deployments
// and tests. Tasks do not survive a restart.
type MemoryQueue struct {
	opts Options

	tasks    chan *Task
	stopChan chan struct{}
	retries  sync.WaitGroup
	closed   bool
	mu       sync.RWMutex
}

// NewMemoryQueue creates a queue buffering up to capacity tasks.
func NewMemoryQueue(capacity int, opts Options) *MemoryQueue {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemoryQueue{
		opts:     opts.withDefaults(),
		tasks:    make(chan *Task, capacity),
		stopChan: make(chan struct{}),
	}
}

// Enqueue hands a task to the consumers.
func (q *MemoryQueue) Enqueue(ctx context.Context, task *Task) error {
	q.mu.RLock()
	closed := q.closed
	q.mu.RUnlock()
	if closed {
		return ErrClosed
	}

	prepare(task)
	select {
	case q.tasks <- task:
		return nil
	case <-q.stopChan:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(SendTimeout):
		return fmt.Errorf("enqueue job %s: queue full", task.JobID)
	}
}

// Consume runs workers consumers until ctx is cancelled or the queue is closed.
func (q *MemoryQueue) Consume(ctx context.Context, workers int, handler Handler) error {
	if workers <= 0 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case <-q.stopChan:
					return
				case task := <-q.tasks:
					q.handle(ctx, task, handler)
				}
			}
		}()
	}
	wg.Wait()
	return nil
}

func (q *MemoryQueue) handle(ctx context.Context, task *Task, handler Handler) {
	started := time.Now()
	err := run(ctx, handler, task)
	if err == nil {
		q.opts.observe(task, OutcomeAcked, started)
		return
	}

	log := logger.WithJobID(task.JobID)
	if task.Attempt < q.opts.MaxAttempts {
		log.Warn("Import task failed, scheduling retry",
			slog.Int("attempt", task.Attempt),
			slog.Int("max_attempts", q.opts.MaxAttempts),
			slog.String("error", err.Error()))
		q.opts.observe(task, OutcomeRetried, started)
		task.Attempt++
		q.retry(task)
		return
	}

	log.Error("Import task exhausted its attempts",
		slog.Int("attempt", task.Attempt),
		slog.String("error", err.Error()))
	q.opts.observe(task, OutcomeExhausted, started)
	if q.opts.OnExhausted != nil {
		q.opts.OnExhausted(ctx, task, err)
	}
}

// retry re-sends a task after the retry delay unless the queue closes first.
func (q *MemoryQueue) retry(task *Task) {
	q.retries.Add(1)
	go func() {
		defer q.retries.Done()
		select {
		case <-time.After(q.opts.RetryDelay):
		case <-q.stopChan:
			return
		}
		select {
		case q.tasks <- task:
		case <-q.stopChan:
		}
	}()
}

// Depth returns the number of buffered tasks.
func (q *MemoryQueue) Depth(context.Context) (int64, error) {
	return int64(len(q.tasks)), nil
}

// Close stops the consumers. Buffered tasks are dropped.
func (q *MemoryQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.stopChan)
	q.mu.Unlock()

	q.retries.Wait()
	return nil
}
