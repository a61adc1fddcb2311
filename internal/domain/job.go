package domain

import (
	"fmt"
	"time"
)

// JobStatus represents the status of an import job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed out of s.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// CanTransitionTo reports whether the ledger may move from s to next.
// Processing -> processing is allowed so a redelivered task can resume.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	switch s {
	case JobStatusPending:
		return next == JobStatusProcessing || next == JobStatusFailed
	case JobStatusProcessing:
		return next == JobStatusProcessing || next == JobStatusCompleted || next == JobStatusFailed
	default:
		return false
	}
}

// ImportKind identifies an import instance.
type ImportKind string

const (
	ImportKindStudents ImportKind = "students"
	ImportKindScores   ImportKind = "scores"
)

// ValidImportKinds contains all supported import instances.
var ValidImportKinds = []ImportKind{ImportKindStudents, ImportKindScores}

// IsValidImportKind checks if an import kind is supported.
func IsValidImportKind(kind string) bool {
	for _, k := range ValidImportKinds {
		if string(k) == kind {
			return true
		}
	}
	return false
}

const (
	// DefaultBatchSize is the number of records per batch when none is requested.
	DefaultBatchSize = 50
	// MaxBatchSize caps client supplied batch sizes.
	MaxBatchSize = 500
	// MaxRecordsPerImport is the largest record set accepted in one submission.
	MaxRecordsPerImport = 5000
)

// ImportOptions is the configuration snapshot a job runs with.
// It is immutable once the job has been created.
type ImportOptions struct {
	BatchSize      int  `json:"batch_size"`
	SkipDuplicates bool `json:"skip_duplicates"`
	UpdateExisting bool `json:"update_existing"`
}

// WithDefaults fills unset fields.
func (o ImportOptions) WithDefaults() ImportOptions {
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	return o
}

// JobError is one entry of the job's error list.
// Row 0 is used for job-level errors that are not tied to a record.
type JobError struct {
	Row      int               `json:"row"`
	Field    string            `json:"field,omitempty"`
	Message  string            `json:"message"`
	Snapshot map[string]string `json:"snapshot,omitempty"`
}

// ImportJob is the job ledger entry for one import attempt.
type ImportJob struct {
	ID               string         `json:"id"`
	TenantID         string         `json:"tenant_id"`
	ActorID          string         `json:"actor_id"`
	Kind             ImportKind     `json:"kind"`
	FileName         string         `json:"file_name"`
	SourceKey        string         `json:"source_key,omitempty"`
	Status           JobStatus      `json:"status"`
	TotalRecords     int            `json:"total_records"`
	ProcessedRecords int            `json:"processed_records"`
	SuccessfulCount  int            `json:"successful_records"`
	FailedCount      int            `json:"failed_records"`
	Options          ImportOptions  `json:"options"`
	Context          map[string]any `json:"context,omitempty"`
	Errors           []JobError     `json:"errors,omitempty"`
	ErrorsTruncated  bool           `json:"errors_truncated"`
	Attempts         int            `json:"attempts"`
	CancelRequested  bool           `json:"cancel_requested"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	StartedAt        *time.Time     `json:"started_at,omitempty"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
}

// NewImportJob creates a pending job for a parsed record set.
func NewImportJob(id, tenantID, actorID string, kind ImportKind, fileName string, total int, opts ImportOptions, now time.Time) *ImportJob {
	return &ImportJob{
		ID:           id,
		TenantID:     tenantID,
		ActorID:      actorID,
		Kind:         kind,
		FileName:     fileName,
		Status:       JobStatusPending,
		TotalRecords: total,
		Options:      opts.WithDefaults(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Percentage returns the processed share of the job, 0-100.
func (j *ImportJob) Percentage() float64 {
	if j.TotalRecords == 0 {
		if j.Status == JobStatusCompleted {
			return 100
		}
		return 0
	}
	pct := float64(j.ProcessedRecords) * 100 / float64(j.TotalRecords)
	// one decimal place is enough for a progress bar
	return float64(int(pct*10)) / 10
}

// EstimatedCompletion extrapolates the finish time from the observed rate.
// It returns nil when the job is not running or nothing has been processed yet.
func (j *ImportJob) EstimatedCompletion(now time.Time) *time.Time {
	if j.Status != JobStatusProcessing || j.StartedAt == nil || j.ProcessedRecords == 0 {
		return nil
	}
	elapsed := now.Sub(*j.StartedAt)
	remaining := j.TotalRecords - j.ProcessedRecords
	eta := now.Add(time.Duration(float64(elapsed) * float64(remaining) / float64(j.ProcessedRecords)))
	return &eta
}

// CheckInvariants verifies the counter relationships the ledger guarantees.
func (j *ImportJob) CheckInvariants() error {
	if j.TotalRecords < 0 || j.ProcessedRecords < 0 || j.SuccessfulCount < 0 || j.FailedCount < 0 {
		return fmt.Errorf("job %s: negative counter", j.ID)
	}
	if j.SuccessfulCount+j.FailedCount != j.ProcessedRecords {
		return fmt.Errorf("job %s: successful(%d)+failed(%d) != processed(%d)",
			j.ID, j.SuccessfulCount, j.FailedCount, j.ProcessedRecords)
	}
	if j.ProcessedRecords > j.TotalRecords {
		return fmt.Errorf("job %s: processed(%d) > total(%d)", j.ID, j.ProcessedRecords, j.TotalRecords)
	}
	if j.Status == JobStatusCompleted && j.ProcessedRecords != j.TotalRecords {
		return fmt.Errorf("job %s: completed with processed(%d) != total(%d)", j.ID, j.ProcessedRecords, j.TotalRecords)
	}
	return nil
}

// BatchDelta is the additive change one batch applies to the ledger.
type BatchDelta struct {
	Processed  int
	Successful int
	Failed     int
	Errors     []JobError
}

// ProgressEvent is the coarse progress signal published after every batch.
type ProgressEvent struct {
	JobID      string    `json:"job_id"`
	TenantID   string    `json:"tenant_id"`
	Status     JobStatus `json:"status"`
	Processed  int       `json:"processed"`
	Total      int       `json:"total"`
	Successful int       `json:"successful"`
	Failed     int       `json:"failed"`
	Percentage float64   `json:"percentage"`
	At         time.Time `json:"at"`
}

// ProgressFromJob builds a progress event from a ledger snapshot.
func ProgressFromJob(j *ImportJob, at time.Time) ProgressEvent {
	return ProgressEvent{
		JobID:      j.ID,
		TenantID:   j.TenantID,
		Status:     j.Status,
		Processed:  j.ProcessedRecords,
		Total:      j.TotalRecords,
		Successful: j.SuccessfulCount,
		Failed:     j.FailedCount,
		Percentage: j.Percentage(),
		At:         at,
	}
}
