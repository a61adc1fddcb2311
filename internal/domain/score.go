package domain

import "time"

// Score represents a persisted assessment score.
// The natural key is (tenant, student, subject, term, assessment).
type Score struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	StudentID  string    `json:"student_id"`
	ClassID    string    `json:"class_id"`
	SubjectID  string    `json:"subject_id"`
	TermID     string    `json:"term_id"`
	Assessment string    `json:"assessment"`
	Score      float64   `json:"score"`
	MaxScore   float64   `json:"max_score"`
	RecordedBy string    `json:"recorded_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Subject is a tenant-scoped subject.
type Subject struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
}

// Term is a tenant-scoped academic term.
type Term struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
}
