package service

import (
	"bytes"
	"context"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

// ImportServiceInterface defines the interface for import operations.
// Used for dependency injection and mocking in tests.
type ImportServiceInterface interface {
	// SubmitStudents validates a roster upload and queues a job for it.
	SubmitStudents(ctx context.Context, req SubmitRequest) (*domain.ImportJob, error)
	// SubmitScores validates a filled score template and queues a job for it.
	SubmitScores(ctx context.Context, req SubmitRequest) (*domain.ImportJob, error)
	// GetJobStatus returns the status view of a job of the tenant.
	GetJobStatus(ctx context.Context, tenantID, jobID string) (*JobStatusView, error)
	// GetJobErrors returns the stored errors of a job of the tenant.
	GetJobErrors(ctx context.Context, tenantID, jobID string, limit int) ([]domain.JobError, error)
	// CancelJob requests cancellation of a running or pending job.
	CancelJob(ctx context.Context, tenantID, jobID string) (*domain.ImportJob, error)
}

// TemplateServiceInterface defines the interface for template downloads.
type TemplateServiceInterface interface {
	// GenerateScoreTemplate builds a score template for a class, subject and term.
	GenerateScoreTemplate(ctx context.Context, tenantID, actorID string, req ScoreTemplateRequest) (*bytes.Buffer, error)
	// GenerateStudentTemplate builds an empty roster template.
	GenerateStudentTemplate(ctx context.Context) (*bytes.Buffer, error)
}

var (
	_ ImportServiceInterface   = (*ImportService)(nil)
	_ TemplateServiceInterface = (*TemplateService)(nil)
)
