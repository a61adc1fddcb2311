package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/logger"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/metrics"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/parser"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/queue"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/repository"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/storage"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/template"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/validator"
)

const (
	// StatusErrorLimit is the number of errors included in a status view.
	StatusErrorLimit = 100
	// archiveTimeout bounds the best-effort source upload.
	archiveTimeout = 30 * time.Second
)

// SubmitRequest is one uploaded file with its import options.
type SubmitRequest struct {
	TenantID  string
	ActorID   string
	RequestID string
	FileName  string
	MediaType string
	Size      int64
	Data      []byte
	Options   domain.ImportOptions
}

// JobStatusView is the caller-facing snapshot of a job.
type JobStatusView struct {
	ID                  string            `json:"id"`
	Kind                domain.ImportKind `json:"kind"`
	FileName            string            `json:"file_name"`
	Status              domain.JobStatus  `json:"status"`
	TotalRecords        int               `json:"total_records"`
	Processed           int               `json:"processed"`
	Successful          int               `json:"successful"`
	Failed              int               `json:"failed"`
	Percentage          float64           `json:"percentage"`
	Errors              []domain.JobError `json:"errors"`
	ErrorsTruncated     bool              `json:"errors_truncated"`
	CancelRequested     bool              `json:"cancel_requested"`
	CreatedAt           time.Time         `json:"created_at"`
	StartedAt           *time.Time        `json:"started_at,omitempty"`
	CompletedAt         *time.Time        `json:"completed_at,omitempty"`
	EstimatedCompletion *time.Time        `json:"estimated_completion,omitempty"`
}

// ImportConfig tunes intake.
type ImportConfig struct {
	MaxUploadSize    int64
	MaxRecords       int
	DefaultBatchSize int
}

// ImportService accepts uploads, creates jobs and hands them to the queue.
type ImportService struct {
	jobs      repository.JobRepository
	resolver  repository.ResolverRepository
	queue     queue.Queue
	archive   storage.Archive
	files     *validator.FileValidator
	validator *validator.Validator
	cfg       ImportConfig
	now       func() time.Time
}

// NewImportService creates a new ImportService. A nil archive disables
// source archiving.
func NewImportService(
	jobs repository.JobRepository,
	resolver repository.ResolverRepository,
	q queue.Queue,
	archive storage.Archive,
	v *validator.Validator,
	cfg ImportConfig,
) *ImportService {
	if cfg.MaxRecords <= 0 {
		cfg.MaxRecords = domain.MaxRecordsPerImport
	}
	if cfg.DefaultBatchSize <= 0 {
		cfg.DefaultBatchSize = domain.DefaultBatchSize
	}
	if v == nil {
		v = validator.NewValidator()
	}
	return &ImportService{
		jobs:      jobs,
		resolver:  resolver,
		queue:     q,
		archive:   archive,
		files:     validator.NewFileValidator(cfg.MaxUploadSize),
		validator: v,
		cfg:       cfg,
		now:       time.Now,
	}
}

// SubmitStudents accepts a student roster (CSV or XLSX).
func (s *ImportService) SubmitStudents(ctx context.Context, req SubmitRequest) (*domain.ImportJob, error) {
	return s.Submit(ctx, domain.ImportKindStudents, req)
}

// SubmitScores accepts a filled score template (XLSX).
func (s *ImportService) SubmitScores(ctx context.Context, req SubmitRequest) (*domain.ImportJob, error) {
	return s.Submit(ctx, domain.ImportKindScores, req)
}

// Submit validates and parses an upload synchronously, then creates a
// PENDING job and enqueues it. It returns without waiting for processing.
// Rejections are reported as *domain.SubmissionError and create no job.
func (s *ImportService) Submit(ctx context.Context, kind domain.ImportKind, req SubmitRequest) (job *domain.ImportJob, err error) {
	log := logger.WithTenantID(req.TenantID).With(
		slog.String("kind", string(kind)),
		slog.String("file_name", req.FileName),
		slog.String("request_id", req.RequestID))

	defer func() {
		var subErr *domain.SubmissionError
		switch {
		case err == nil:
			metrics.ObserveSubmission(string(kind), "accepted")
		case errors.As(err, &subErr):
			metrics.ObserveSubmission(string(kind), subErr.Code)
			log.Info("Import submission rejected",
				slog.String("code", subErr.Code),
				slog.Int("issues", len(subErr.Issues)))
		default:
			metrics.ObserveSubmission(string(kind), "error")
		}
	}()

	check := s.files.Validate(kind, req.Data, req.Size, req.MediaType, req.FileName)
	if !check.OK {
		issues := make([]domain.Issue, len(check.Reasons))
		for i, reason := range check.Reasons {
			issues[i] = domain.Issue{Field: "file", Message: reason}
		}
		return nil, &domain.SubmissionError{Code: domain.CodeFileRejected, Issues: issues}
	}

	opts := req.Options
	if opts.BatchSize == 0 {
		opts.BatchSize = s.cfg.DefaultBatchSize
	}
	if err := s.validator.ValidateOptions(kind, &opts); err != nil {
		return nil, &domain.SubmissionError{
			Code:   domain.CodeInvalidOptions,
			Issues: validator.ConvertValidationErrors(0, err),
		}
	}

	task := &queue.Task{
		TenantID:  req.TenantID,
		ActorID:   req.ActorID,
		Kind:      kind,
		Options:   opts,
		RequestID: req.RequestID,
	}
	var jobContext map[string]any

	switch kind {
	case domain.ImportKindStudents:
		records, err := s.parseStudents(req.Data, check.Extension)
		if err != nil {
			return nil, err
		}
		task.Students = records
	case domain.ImportKindScores:
		meta, records, err := s.parseScores(ctx, req.Data, req.TenantID)
		if err != nil {
			return nil, err
		}
		task.Scores = records
		task.Template = &meta
		jobContext = scoreJobContext(meta)
	}

	total := task.Len()
	if total == 0 {
		return nil, &domain.SubmissionError{
			Code:   domain.CodeParseErrors,
			Issues: []domain.Issue{{Field: "file", Message: parser.ErrNoRows.Error()}},
			Err:    parser.ErrNoRows,
		}
	}
	if total > s.cfg.MaxRecords {
		return nil, &domain.SubmissionError{
			Code: domain.CodeTooManyRecords,
			Issues: []domain.Issue{{
				Field:   "file",
				Message: fmt.Sprintf("file has %d records, at most %d are allowed per import", total, s.cfg.MaxRecords),
			}},
		}
	}

	now := s.now().UTC()
	job = domain.NewImportJob(uuid.NewString(), req.TenantID, req.ActorID, kind, req.FileName, total, opts, now)
	job.Context = jobContext
	task.JobID = job.ID

	s.archiveSource(ctx, log, job, req)

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		s.discardSource(job)
		return nil, fmt.Errorf("create import job: %w", err)
	}

	if err := s.queue.Enqueue(ctx, task); err != nil {
		reason := fmt.Sprintf("enqueue failed: %v", err)
		// the request context may be gone; the job must not stay pending
		failCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if _, failErr := s.jobs.FailJob(failCtx, job.ID, reason, s.now()); failErr != nil {
			log.Error("Failed to mark unqueued job failed",
				slog.String("job_id", job.ID),
				slog.String("error", failErr.Error()))
		}
		return nil, fmt.Errorf("enqueue import job %s: %w", job.ID, err)
	}

	log.Info("Import job queued",
		slog.String("job_id", job.ID),
		slog.Int("total", total),
		slog.Int("batch_size", opts.BatchSize))
	return job, nil
}

func (s *ImportService) parseStudents(data []byte, ext string) ([]domain.StudentRecord, error) {
	table, err := parser.ReadTable(data, ext)
	if err != nil {
		return nil, domain.NewSubmissionError(domain.CodeFileUnreadable, err,
			domain.Issue{Field: "file", Message: err.Error()})
	}
	// spreadsheets follow the generated template column order
	result := parser.ParseStudents(table, ext == validator.ExtXLSX)
	if err := result.Err(); err != nil {
		return nil, err
	}
	return result.Records, nil
}

func (s *ImportService) parseScores(ctx context.Context, data []byte, tenantID string) (domain.TemplateMetadata, []domain.ScoreRecord, error) {
	sheet, err := template.ReadScoreSheet(data, tenantID)
	if err != nil {
		code := domain.CodeTemplateNotRecognized
		if errors.Is(err, domain.ErrFileUnreadable) {
			code = domain.CodeFileUnreadable
		}
		return domain.TemplateMetadata{}, nil, domain.NewSubmissionError(code, err,
			domain.Issue{Field: "file", Message: err.Error()})
	}

	if err := s.checkScope(ctx, sheet.Meta); err != nil {
		return domain.TemplateMetadata{}, nil, err
	}

	result := parser.ParseScores(sheet.Table, sheet.Meta)
	if err := result.Err(); err != nil {
		return domain.TemplateMetadata{}, nil, err
	}
	return sheet.Meta, result.Records, nil
}

// checkScope verifies that the class, subject and term a template was
// generated for still exist.
func (s *ImportService) checkScope(ctx context.Context, meta domain.TemplateMetadata) error {
	var issues []domain.Issue

	class, err := s.resolver.GetClass(ctx, meta.TenantID, meta.ClassID)
	if err != nil {
		return fmt.Errorf("resolve template class: %w", err)
	}
	if class == nil {
		issues = append(issues, domain.Issue{Field: "class_id", Message: fmt.Sprintf("class %s no longer exists", meta.ClassID)})
	}
	subject, err := s.resolver.GetSubject(ctx, meta.TenantID, meta.SubjectID)
	if err != nil {
		return fmt.Errorf("resolve template subject: %w", err)
	}
	if subject == nil {
		issues = append(issues, domain.Issue{Field: "subject_id", Message: fmt.Sprintf("subject %s no longer exists", meta.SubjectID)})
	}
	term, err := s.resolver.GetTerm(ctx, meta.TenantID, meta.TermID)
	if err != nil {
		return fmt.Errorf("resolve template term: %w", err)
	}
	if term == nil {
		issues = append(issues, domain.Issue{Field: "term_id", Message: fmt.Sprintf("term %s no longer exists", meta.TermID)})
	}

	if len(issues) > 0 {
		return &domain.SubmissionError{Code: domain.CodeTemplateStale, Issues: issues, Err: domain.ErrTemplateStale}
	}
	return nil
}

// archiveSource copies the upload to the archive. Failures are logged and
// never reject the submission.
func (s *ImportService) archiveSource(ctx context.Context, log *slog.Logger, job *domain.ImportJob, req SubmitRequest) {
	if s.archive == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, archiveTimeout)
	defer cancel()

	key := storage.ObjectKey(job.TenantID, job.ID, req.FileName)
	err := s.archive.Upload(ctx, key, bytes.NewReader(req.Data), req.MediaType)
	metrics.ObserveArchive(err)
	if err != nil {
		log.Warn("Failed to archive import source",
			slog.String("job_id", job.ID),
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}
	job.SourceKey = key
}

func (s *ImportService) discardSource(job *domain.ImportJob) {
	if s.archive == nil || job.SourceKey == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()
	if err := s.archive.Delete(ctx, job.SourceKey); err != nil {
		logger.WithJobID(job.ID).Warn("Failed to remove archived source", slog.String("error", err.Error()))
	}
}

// GetJob returns a job of the tenant.
func (s *ImportService) GetJob(ctx context.Context, tenantID, jobID string) (*domain.ImportJob, error) {
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get import job: %w", err)
	}
	if job == nil {
		return nil, domain.ErrJobNotFound
	}
	if job.TenantID != tenantID {
		return nil, domain.ErrJobAccessDenied
	}
	return job, nil
}

// GetJobStatus returns the status view of a job with its first errors and an
// estimated completion time while it runs.
func (s *ImportService) GetJobStatus(ctx context.Context, tenantID, jobID string) (*JobStatusView, error) {
	job, err := s.GetJob(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}
	jobErrors, err := s.jobs.ListJobErrors(ctx, job.ID, StatusErrorLimit)
	if err != nil {
		return nil, fmt.Errorf("list job errors: %w", err)
	}

	return &JobStatusView{
		ID:                  job.ID,
		Kind:                job.Kind,
		FileName:            job.FileName,
		Status:              job.Status,
		TotalRecords:        job.TotalRecords,
		Processed:           job.ProcessedRecords,
		Successful:          job.SuccessfulCount,
		Failed:              job.FailedCount,
		Percentage:          job.Percentage(),
		Errors:              jobErrors,
		ErrorsTruncated:     job.ErrorsTruncated,
		CancelRequested:     job.CancelRequested,
		CreatedAt:           job.CreatedAt,
		StartedAt:           job.StartedAt,
		CompletedAt:         job.CompletedAt,
		EstimatedCompletion: job.EstimatedCompletion(s.now()),
	}, nil
}

// GetJobErrors returns up to limit stored errors of a job in row order.
func (s *ImportService) GetJobErrors(ctx context.Context, tenantID, jobID string, limit int) ([]domain.JobError, error) {
	job, err := s.GetJob(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > DefaultErrorCap {
		limit = DefaultErrorCap
	}
	jobErrors, err := s.jobs.ListJobErrors(ctx, job.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list job errors: %w", err)
	}
	return jobErrors, nil
}

// CancelJob asks the worker to stop the job before its next batch.
func (s *ImportService) CancelJob(ctx context.Context, tenantID, jobID string) (*domain.ImportJob, error) {
	job, err := s.GetJob(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.jobs.RequestCancel(ctx, job.ID, s.now()); err != nil {
		return nil, err
	}
	logger.WithJobID(job.ID).Info("Import job cancellation requested")
	job.CancelRequested = true
	return job, nil
}

func scoreJobContext(meta domain.TemplateMetadata) map[string]any {
	assessments := make([]string, len(meta.Assessments))
	for i, a := range meta.Assessments {
		assessments[i] = a.Name
	}
	ctx := map[string]any{
		"class_id":    meta.ClassID,
		"subject_id":  meta.SubjectID,
		"term_id":     meta.TermID,
		"assessments": assessments,
	}
	if meta.SectionID != "" {
		ctx["section_id"] = meta.SectionID
	}
	return ctx
}
