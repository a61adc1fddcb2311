package repository

import (
	"context"
	"time"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

// JobRepository defines the job ledger operations.
// Lookups return nil, nil when the job does not exist.
type JobRepository interface {
	CreateJob(ctx context.Context, job *domain.ImportJob) error
	GetJob(ctx context.Context, id string) (*domain.ImportJob, error)
	ListJobErrors(ctx context.Context, id string, limit int) ([]domain.JobError, error)
	MarkProcessing(ctx context.Context, id string, at time.Time) (*domain.ImportJob, error)
	ApplyBatch(ctx context.Context, id string, delta domain.BatchDelta, errorCap int, at time.Time) (*domain.ImportJob, error)
	CompleteJob(ctx context.Context, id string, at time.Time) (*domain.ImportJob, error)
	FailJob(ctx context.Context, id string, reason string, at time.Time) (*domain.ImportJob, error)
	RequestCancel(ctx context.Context, id string, at time.Time) error
}

// StudentRepository defines tenant-scoped student persistence.
// The natural keys are email (case-insensitive) and admission number.
type StudentRepository interface {
	FindByNaturalKey(ctx context.Context, tenantID, email, admissionNumber string) (*domain.Student, error)
	Create(ctx context.Context, s *domain.Student) error
	FindOrCreate(ctx context.Context, s *domain.Student) (created bool, err error)
	Update(ctx context.Context, s *domain.Student) error
	ListByClass(ctx context.Context, tenantID, classID string) ([]domain.Student, error)
}

// ScoreRepository defines tenant-scoped score persistence.
// The natural key is (student, subject, term, assessment).
type ScoreRepository interface {
	FindByNaturalKey(ctx context.Context, tenantID, studentID, subjectID, termID, assessment string) (*domain.Score, error)
	Create(ctx context.Context, s *domain.Score) error
	FindOrCreate(ctx context.Context, s *domain.Score) (created bool, err error)
	Update(ctx context.Context, s *domain.Score) error
	ListByClass(ctx context.Context, tenantID, classID, subjectID, termID string) ([]domain.Score, error)
}

// ResolverRepository resolves tenant-scoped references.
type ResolverRepository interface {
	FindClassesByName(ctx context.Context, tenantID, name string) ([]domain.Class, error)
	ListClassNames(ctx context.Context, tenantID string) ([]string, error)
	GetClass(ctx context.Context, tenantID, id string) (*domain.Class, error)
	GetSubject(ctx context.Context, tenantID, id string) (*domain.Subject, error)
	GetTerm(ctx context.Context, tenantID, id string) (*domain.Term, error)
	StudentInClass(ctx context.Context, tenantID, classID, studentID string) (bool, error)
}
