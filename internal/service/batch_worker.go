package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/logger"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/metrics"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/progress"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/queue"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/repository"
)

const (
	// DefaultErrorCap bounds the errors stored per job.
	DefaultErrorCap = 500
	// DefaultBatchPause is the pause between two batches of one job.
	DefaultBatchPause = 25 * time.Millisecond

	// ReasonCancelled is the job-level error of a cancelled job.
	ReasonCancelled = "cancelled"

	maxReasonLength = 1000
)

// WorkerConfig tunes batch processing.
type WorkerConfig struct {
	ErrorCap   int
	BatchPause time.Duration
}

// BatchWorker processes the batches of one job at a time, applying each batch
// to the job ledger atomically and publishing progress after it.
type BatchWorker struct {
	jobs       repository.JobRepository
	processors Processors
	publisher  progress.Publisher
	cfg        WorkerConfig
	now        func() time.Time
}

// NewBatchWorker creates a worker. A nil publisher disables progress events.
func NewBatchWorker(jobs repository.JobRepository, processors Processors, publisher progress.Publisher, cfg WorkerConfig) *BatchWorker {
	if cfg.ErrorCap <= 0 {
		cfg.ErrorCap = DefaultErrorCap
	}
	if cfg.BatchPause < 0 {
		cfg.BatchPause = 0
	}
	return &BatchWorker{
		jobs:       jobs,
		processors: processors,
		publisher:  publisher,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Process runs a job to completion. It returns an error only for failures
// that should be retried: the store or the ledger being unavailable, or ctx
// ending. Batches already applied to the ledger are skipped on redelivery.
func (w *BatchWorker) Process(ctx context.Context, task *queue.Task) error {
	log := logger.WithJob(task.JobID, task.TenantID, string(task.Kind)).
		With(slog.Int("attempt", task.Attempt))
	if task.RequestID != "" {
		log = log.With(slog.String("request_id", task.RequestID))
	}

	job, err := w.jobs.GetJob(ctx, task.JobID)
	if err != nil {
		return fmt.Errorf("load job %s: %w", task.JobID, err)
	}
	if job == nil {
		log.Warn("Dropping task for unknown job")
		return nil
	}
	if job.Status.IsTerminal() {
		log.Info("Job already finished, skipping task", slog.String("status", string(job.Status)))
		return nil
	}

	job, err = w.jobs.MarkProcessing(ctx, job.ID, w.now())
	if errors.Is(err, domain.ErrJobTerminal) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark job %s processing: %w", task.JobID, err)
	}

	kind := string(task.Kind)
	metrics.StartJob(kind)
	defer metrics.EndJob(kind)
	w.publish(ctx, job)

	records := task.Records()
	if len(records) != job.TotalRecords {
		return w.abort(ctx, log, job, fmt.Sprintf("task carries %d records, job expects %d", len(records), job.TotalRecords))
	}
	processor, err := w.processors.For(task)
	if err != nil {
		return w.abort(ctx, log, job, err.Error())
	}

	batchSize := job.Options.WithDefaults().BatchSize
	log.Info("Processing import job",
		slog.Int("total", job.TotalRecords),
		slog.Int("resume_from", job.ProcessedRecords),
		slog.Int("batch_size", batchSize))

	for offset := job.ProcessedRecords; offset < len(records); offset += batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		if job.CancelRequested {
			return w.abort(ctx, log, job, ReasonCancelled)
		}

		end := offset + batchSize
		if end > len(records) {
			end = len(records)
		}

		timer := metrics.NewTimer()
		result, err := w.processBatch(ctx, processor, records[offset:end])
		if err != nil {
			log.Warn("Batch aborted by an unrecoverable error",
				slog.Int("offset", offset),
				slog.String("error", err.Error()))
			return err
		}

		delta := result.Delta()
		job, err = w.jobs.ApplyBatch(ctx, job.ID, delta, w.cfg.ErrorCap, w.now())
		if errors.Is(err, domain.ErrJobTerminal) {
			log.Info("Job finished elsewhere, stopping")
			return nil
		}
		if err != nil {
			return fmt.Errorf("apply batch at offset %d: %w", offset, err)
		}

		metrics.ObserveBatch(kind, timer.Seconds(), delta.Successful, delta.Failed)
		log.Debug("Batch applied",
			slog.Int("processed", job.ProcessedRecords),
			slog.Int("successful", job.SuccessfulCount),
			slog.Int("failed", job.FailedCount))
		w.publish(ctx, job)

		if end < len(records) && w.cfg.BatchPause > 0 {
			if !sleepWithContext(ctx, w.cfg.BatchPause) {
				return ctx.Err()
			}
		}
	}

	job, err = w.jobs.CompleteJob(ctx, job.ID, w.now())
	if errors.Is(err, domain.ErrJobTerminal) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("complete job %s: %w", task.JobID, err)
	}

	w.publish(ctx, job)
	w.observeFinished(job)
	log.Info("Import job completed",
		slog.Int("total", job.TotalRecords),
		slog.Int("successful", job.SuccessfulCount),
		slog.Int("failed", job.FailedCount),
		slog.Bool("errors_truncated", job.ErrorsTruncated))
	return nil
}

// Fail marks the job of a task FAILED after its last attempt.
func (w *BatchWorker) Fail(ctx context.Context, task *queue.Task, cause error) {
	log := logger.WithJob(task.JobID, task.TenantID, string(task.Kind))
	// the consumer context may already be cancelled at shutdown
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	job, err := w.jobs.FailJob(ctx, task.JobID, truncateReason(cause.Error()), w.now())
	if err != nil {
		if !errors.Is(err, domain.ErrJobTerminal) {
			log.Error("Failed to mark job failed", slog.String("error", err.Error()))
		}
		return
	}
	w.publish(ctx, job)
	w.observeFinished(job)
	log.Error("Import job failed", slog.String("reason", cause.Error()))
}

// abort fails the job for a reason retrying cannot fix.
func (w *BatchWorker) abort(ctx context.Context, log *slog.Logger, job *domain.ImportJob, reason string) error {
	failed, err := w.jobs.FailJob(ctx, job.ID, truncateReason(reason), w.now())
	if errors.Is(err, domain.ErrJobTerminal) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("fail job %s: %w", job.ID, err)
	}
	w.publish(ctx, failed)
	w.observeFinished(failed)
	log.Warn("Import job stopped", slog.String("reason", reason),
		slog.Int("processed", failed.ProcessedRecords))
	return nil
}

// processBatch yields exactly one outcome per record. Panics and store errors
// of a single record become failures of that record; only unrecoverable
// errors abort the batch.
func (w *BatchWorker) processBatch(ctx context.Context, p RecordProcessor, batch []domain.Record) (domain.BatchResult, error) {
	result := domain.BatchResult{Outcomes: make([]domain.RecordOutcome, 0, len(batch))}
	for _, rec := range batch {
		outcome, err := safeProcess(ctx, p, rec)
		if err != nil {
			if domain.IsUnrecoverable(err) {
				return domain.BatchResult{}, err
			}
			outcome = domain.Failed(rec, "record", err.Error())
		}
		outcome.Row = rec.RowIndex()
		result.Outcomes = append(result.Outcomes, outcome)
	}
	return result, nil
}

func safeProcess(ctx context.Context, p RecordProcessor, rec domain.Record) (outcome domain.RecordOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Record processor panicked",
				slog.Int("row", rec.RowIndex()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
			outcome = domain.Failed(rec, "record", fmt.Sprintf("internal error: %v", r))
			err = nil
		}
	}()
	return p.Process(ctx, rec)
}

func (w *BatchWorker) publish(ctx context.Context, job *domain.ImportJob) {
	if w.publisher == nil || job == nil {
		return
	}
	if err := w.publisher.Publish(ctx, domain.ProgressFromJob(job, w.now().UTC())); err != nil {
		logger.WithJobID(job.ID).Warn("Failed to publish progress", slog.String("error", err.Error()))
	}
}

func (w *BatchWorker) observeFinished(job *domain.ImportJob) {
	var seconds float64
	if job.StartedAt != nil && job.CompletedAt != nil {
		seconds = job.CompletedAt.Sub(*job.StartedAt).Seconds()
	}
	metrics.ObserveJobCompletion(string(job.Kind), string(job.Status), seconds)
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func truncateReason(reason string) string {
	reason = strings.TrimSpace(reason)
	if len(reason) <= maxReasonLength {
		return reason
	}
	return reason[:maxReasonLength]
}
