// Package queue carries import tasks from the submission path to the batch
// workers. A task holds a whole job; its batches are processed by one worker.
package queue

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

// ErrClosed is returned when enqueueing on a closed queue.
var ErrClosed = errors.New("queue is closed")

const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 2 * time.Second
)

// Task is one durable unit of work: the full record set of one job.
type Task struct {
	JobID      string                   `json:"job_id"`
	TenantID   string                   `json:"tenant_id"`
	ActorID    string                   `json:"actor_id"`
	Kind       domain.ImportKind        `json:"kind"`
	Options    domain.ImportOptions     `json:"options"`
	Students   []domain.StudentRecord   `json:"students,omitempty"`
	Scores     []domain.ScoreRecord     `json:"scores,omitempty"`
	Template   *domain.TemplateMetadata `json:"template,omitempty"`
	RequestID  string                   `json:"request_id,omitempty"`
	Attempt    int                      `json:"attempt"`
	EnqueuedAt time.Time                `json:"enqueued_at"`
}

// Len returns the number of records carried by the task.
func (t *Task) Len() int {
	if t.Kind == domain.ImportKindScores {
		return len(t.Scores)
	}
	return len(t.Students)
}

// Records returns the task's records in file order.
func (t *Task) Records() []domain.Record {
	out := make([]domain.Record, 0, t.Len())
	if t.Kind == domain.ImportKindScores {
		for _, r := range t.Scores {
			out = append(out, r)
		}
		return out
	}
	for _, r := range t.Students {
		out = append(out, r)
	}
	return out
}

// Handler processes one delivery of a task. A returned error fails the
// attempt; the task is redelivered while attempts remain.
type Handler func(ctx context.Context, task *Task) error

// ExhaustedFunc is called once a task failed its last attempt.
type ExhaustedFunc func(ctx context.Context, task *Task, err error)

// Queue is a work queue with at-least-once delivery.
type Queue interface {
	Enqueue(ctx context.Context, task *Task) error
	// Consume runs workers consumers until ctx is cancelled.
	Consume(ctx context.Context, workers int, handler Handler) error
	Depth(ctx context.Context) (int64, error)
	Close() error
}

// Options configures retry behaviour shared by queue implementations.
type Options struct {
	MaxAttempts int
	RetryDelay  time.Duration
	OnExhausted ExhaustedFunc
	// Observe is notified after every delivery with its outcome.
	Observe func(task *Task, outcome string, d time.Duration)
}

// Delivery outcomes reported to Options.Observe.
const (
	OutcomeAcked     = "acked"
	OutcomeRetried   = "retried"
	OutcomeExhausted = "exhausted"
)

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.RetryDelay < 0 {
		o.RetryDelay = 0
	}
	return o
}

func (o Options) observe(task *Task, outcome string, started time.Time) {
	if o.Observe != nil {
		o.Observe(task, outcome, time.Since(started))
	}
}

// run invokes the handler and turns a panic into an attempt failure.
func run(ctx context.Context, handler Handler, task *Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %s panicked: %v\n%s", task.JobID, r, debug.Stack())
		}
	}()
	return handler(ctx, task)
}

func prepare(task *Task) {
	if task.Attempt <= 0 {
		task.Attempt = 1
	}
	if task.EnqueuedAt.IsZero() {
		task.EnqueuedAt = time.Now().UTC()
	}
}
