package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

const jobColumns = `id, tenant_id, actor_id, kind, file_name, source_key, status,
	total_records, processed_records, successful_records, failed_records,
	options, context, errors_truncated, attempts, cancel_requested,
	created_at, updated_at, started_at, completed_at`

// PostgresJobRepository implements JobRepository using PostgreSQL.
// Counter updates are additive and run under a row lock.
type PostgresJobRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresJobRepository creates a new PostgresJobRepository.
func NewPostgresJobRepository(pool *pgxpool.Pool) *PostgresJobRepository {
	return &PostgresJobRepository{pool: pool}
}

// CreateJob inserts a new pending job.
func (r *PostgresJobRepository) CreateJob(ctx context.Context, job *domain.ImportJob) error {
	options, err := json.Marshal(job.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	var jobContext []byte
	if job.Context != nil {
		if jobContext, err = json.Marshal(job.Context); err != nil {
			return fmt.Errorf("marshal context: %w", err)
		}
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO import_jobs (id, tenant_id, actor_id, kind, file_name, source_key, status,
			total_records, options, context, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, job.ID, job.TenantID, job.ActorID, job.Kind, job.FileName, nullable(job.SourceKey), job.Status,
		job.TotalRecords, options, jobContext, job.CreatedAt, job.UpdatedAt)

	return mapError("insert import job", err)
}

// GetJob retrieves a job without its error list.
func (r *PostgresJobRepository) GetJob(ctx context.Context, id string) (*domain.ImportJob, error) {
	job, err := scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM import_jobs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get import job", err)
	}
	return job, nil
}

// ListJobErrors returns up to limit stored errors in the order they were recorded.
func (r *PostgresJobRepository) ListJobErrors(ctx context.Context, id string, limit int) ([]domain.JobError, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT row_index, field, message, snapshot
		FROM import_job_errors
		WHERE job_id = $1
		ORDER BY seq
		LIMIT $2
	`, id, limit)
	if err != nil {
		return nil, mapError("list job errors", err)
	}
	defer rows.Close()

	jobErrors := make([]domain.JobError, 0)
	for rows.Next() {
		var je domain.JobError
		var field *string
		var snapshot []byte
		if err := rows.Scan(&je.Row, &field, &je.Message, &snapshot); err != nil {
			return nil, mapError("scan job error", err)
		}
		je.Field = deref(field)
		if len(snapshot) > 0 {
			if err := json.Unmarshal(snapshot, &je.Snapshot); err != nil {
				return nil, fmt.Errorf("unmarshal snapshot: %w", err)
			}
		}
		jobErrors = append(jobErrors, je)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list job errors", err)
	}
	return jobErrors, nil
}

// MarkProcessing moves a pending or processing job to processing, stamps the
// start time once and counts the delivery attempt.
func (r *PostgresJobRepository) MarkProcessing(ctx context.Context, id string, at time.Time) (*domain.ImportJob, error) {
	job, err := scanJob(r.pool.QueryRow(ctx, `
		UPDATE import_jobs
		SET status = 'processing', started_at = COALESCE(started_at, $2),
			attempts = attempts + 1, updated_at = $2
		WHERE id = $1 AND status IN ('pending', 'processing')
		RETURNING `+jobColumns, id, at))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.explainMiss(ctx, id, domain.ErrJobTerminal)
	}
	if err != nil {
		return nil, mapError("mark job processing", err)
	}
	return job, nil
}

// ApplyBatch adds a batch's counts to the ledger and appends its errors up to
// errorCap stored entries. Counters keep counting past the cap.
func (r *PostgresJobRepository) ApplyBatch(ctx context.Context, id string, delta domain.BatchDelta, errorCap int, at time.Time) (*domain.ImportJob, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, mapError("begin apply batch", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status domain.JobStatus
	var processed, total, errorCount int
	err = tx.QueryRow(ctx, `
		SELECT status, processed_records, total_records, error_count
		FROM import_jobs WHERE id = $1 FOR UPDATE
	`, id).Scan(&status, &processed, &total, &errorCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, mapError("lock import job", err)
	}
	if status != domain.JobStatusProcessing {
		return nil, fmt.Errorf("apply batch to %s job: %w", status, domain.ErrInvalidTransition)
	}
	if processed+delta.Processed > total {
		return nil, fmt.Errorf("apply batch: processed %d + %d exceeds total %d", processed, delta.Processed, total)
	}

	stored := delta.Errors
	truncated := false
	if room := errorCap - errorCount; len(stored) > room {
		if room < 0 {
			room = 0
		}
		stored = stored[:room]
		truncated = true
	}
	if err := insertErrors(ctx, tx, id, errorCount, stored); err != nil {
		return nil, err
	}

	job, err := scanJob(tx.QueryRow(ctx, `
		UPDATE import_jobs
		SET processed_records = processed_records + $2,
			successful_records = successful_records + $3,
			failed_records = failed_records + $4,
			error_count = error_count + $5,
			errors_truncated = errors_truncated OR $6,
			updated_at = $7
		WHERE id = $1
		RETURNING `+jobColumns,
		id, delta.Processed, delta.Successful, delta.Failed, len(stored), truncated, at))
	if err != nil {
		return nil, mapError("apply batch", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapError("commit apply batch", err)
	}
	return job, nil
}

// CompleteJob marks a fully processed job as completed.
func (r *PostgresJobRepository) CompleteJob(ctx context.Context, id string, at time.Time) (*domain.ImportJob, error) {
	job, err := scanJob(r.pool.QueryRow(ctx, `
		UPDATE import_jobs
		SET status = 'completed', completed_at = $2, updated_at = $2
		WHERE id = $1 AND status = 'processing' AND processed_records = total_records
		RETURNING `+jobColumns, id, at))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.explainMiss(ctx, id, domain.ErrInvalidTransition)
	}
	if err != nil {
		return nil, mapError("complete import job", err)
	}
	return job, nil
}

// FailJob marks a job as failed and records reason as a job-level error.
// The job-level entry is stored even when the error cap is reached.
func (r *PostgresJobRepository) FailJob(ctx context.Context, id string, reason string, at time.Time) (*domain.ImportJob, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, mapError("begin fail job", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status domain.JobStatus
	var errorCount int
	err = tx.QueryRow(ctx, `SELECT status, error_count FROM import_jobs WHERE id = $1 FOR UPDATE`, id).
		Scan(&status, &errorCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, mapError("lock import job", err)
	}
	if status.IsTerminal() {
		return nil, domain.ErrJobTerminal
	}

	if err := insertErrors(ctx, tx, id, errorCount, []domain.JobError{{Row: 0, Field: "job", Message: reason}}); err != nil {
		return nil, err
	}

	job, err := scanJob(tx.QueryRow(ctx, `
		UPDATE import_jobs
		SET status = 'failed', completed_at = $2, updated_at = $2, error_count = error_count + 1
		WHERE id = $1
		RETURNING `+jobColumns, id, at))
	if err != nil {
		return nil, mapError("fail import job", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapError("commit fail job", err)
	}
	return job, nil
}

// RequestCancel flags a running or pending job for cancellation.
func (r *PostgresJobRepository) RequestCancel(ctx context.Context, id string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE import_jobs SET cancel_requested = TRUE, updated_at = $2
		WHERE id = $1 AND status IN ('pending', 'processing')
	`, id, at)
	if err != nil {
		return mapError("request cancel", err)
	}
	if tag.RowsAffected() == 0 {
		return r.explainMiss(ctx, id, domain.ErrJobTerminal)
	}
	return nil
}

// explainMiss distinguishes a missing job from one whose state rejected the update.
func (r *PostgresJobRepository) explainMiss(ctx context.Context, id string, stateErr error) error {
	job, err := r.GetJob(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrJobNotFound
	}
	return fmt.Errorf("job %s is %s: %w", id, job.Status, stateErr)
}

func insertErrors(ctx context.Context, tx pgx.Tx, jobID string, startSeq int, jobErrors []domain.JobError) error {
	if len(jobErrors) == 0 {
		return nil
	}
	parsed, err := uuid.Parse(jobID)
	if err != nil {
		return fmt.Errorf("insert job errors: %w", err)
	}
	id := pgtype.UUID{Bytes: parsed, Valid: true}

	rows := make([][]any, len(jobErrors))
	for i, je := range jobErrors {
		var snapshot []byte
		if len(je.Snapshot) > 0 {
			var err error
			if snapshot, err = json.Marshal(je.Snapshot); err != nil {
				return fmt.Errorf("marshal snapshot: %w", err)
			}
		}
		rows[i] = []any{id, startSeq + i, je.Row, nullable(je.Field), je.Message, snapshot}
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"import_job_errors"},
		[]string{"job_id", "seq", "row_index", "field", "message", "snapshot"},
		pgx.CopyFromRows(rows),
	)
	return mapError("insert job errors", err)
}

func scanJob(row pgx.Row) (*domain.ImportJob, error) {
	var job domain.ImportJob
	var sourceKey *string
	var options, jobContext []byte

	err := row.Scan(&job.ID, &job.TenantID, &job.ActorID, &job.Kind, &job.FileName, &sourceKey, &job.Status,
		&job.TotalRecords, &job.ProcessedRecords, &job.SuccessfulCount, &job.FailedCount,
		&options, &jobContext, &job.ErrorsTruncated, &job.Attempts, &job.CancelRequested,
		&job.CreatedAt, &job.UpdatedAt, &job.StartedAt, &job.CompletedAt)
	if err != nil {
		return nil, err
	}

	job.SourceKey = deref(sourceKey)
	if len(options) > 0 {
		if err := json.Unmarshal(options, &job.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options: %w", err)
		}
	}
	if len(jobContext) > 0 {
		if err := json.Unmarshal(jobContext, &job.Context); err != nil {
			return nil, fmt.Errorf("unmarshal context: %w", err)
		}
	}
	return &job, nil
}
