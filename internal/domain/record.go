package domain

import "strconv"

// Record is a candidate record parsed from an uploaded file.
// It lives only in the queue payload until it is persisted or reported.
type Record interface {
	RowIndex() int
	Snapshot() map[string]string
}

// StudentRecord is one roster row.
type StudentRecord struct {
	Row             int    `json:"row"`
	FirstName       string `json:"first_name"`
	MiddleName      string `json:"middle_name,omitempty"`
	LastName        string `json:"last_name"`
	Email           string `json:"email,omitempty"`
	Gender          string `json:"gender"`
	DateOfBirth     string `json:"date_of_birth"`
	AdmissionNumber string `json:"admission_number,omitempty"`
	ClassName       string `json:"class_name"`
	Phone           string `json:"phone,omitempty"`
	GuardianName    string `json:"guardian_name,omitempty"`
	GuardianPhone   string `json:"guardian_phone,omitempty"`
	GuardianEmail   string `json:"guardian_email,omitempty"`
	Address         string `json:"address,omitempty"`
}

func (r StudentRecord) RowIndex() int { return r.Row }

func (r StudentRecord) Snapshot() map[string]string {
	s := map[string]string{
		"first_name":    r.FirstName,
		"last_name":     r.LastName,
		"gender":        r.Gender,
		"date_of_birth": r.DateOfBirth,
		"class_name":    r.ClassName,
	}
	for k, v := range map[string]string{
		"middle_name":      r.MiddleName,
		"email":            r.Email,
		"admission_number": r.AdmissionNumber,
		"phone":            r.Phone,
		"guardian_name":    r.GuardianName,
		"guardian_phone":   r.GuardianPhone,
		"guardian_email":   r.GuardianEmail,
		"address":          r.Address,
	} {
		if v != "" {
			s[k] = v
		}
	}
	return s
}

// ScoreRecord is one score cell of an assessment template: a single
// student/assessment pair.
type ScoreRecord struct {
	Row             int     `json:"row"`
	StudentID       string  `json:"student_id"`
	AdmissionNumber string  `json:"admission_number,omitempty"`
	StudentName     string  `json:"student_name,omitempty"`
	Assessment      string  `json:"assessment"`
	Score           float64 `json:"score"`
}

func (r ScoreRecord) RowIndex() int { return r.Row }

func (r ScoreRecord) Snapshot() map[string]string {
	return map[string]string{
		"student_id":       r.StudentID,
		"admission_number": r.AdmissionNumber,
		"student_name":     r.StudentName,
		"assessment":       r.Assessment,
		"score":            strconv.FormatFloat(r.Score, 'f', -1, 64),
	}
}

// RecordOutcome is the tagged result of processing one record.
type RecordOutcome struct {
	Row      int
	Success  bool
	EntityID string
	Updated  bool
	Field    string
	Reason   string
	Snapshot map[string]string
}

// Succeeded builds a success outcome.
func Succeeded(rec Record, entityID string, updated bool) RecordOutcome {
	return RecordOutcome{Row: rec.RowIndex(), Success: true, EntityID: entityID, Updated: updated}
}

// Failed builds a failure outcome.
func Failed(rec Record, field, reason string) RecordOutcome {
	return RecordOutcome{Row: rec.RowIndex(), Field: field, Reason: reason, Snapshot: rec.Snapshot()}
}

// BatchResult holds one outcome per record of a batch, in input order.
type BatchResult struct {
	Outcomes []RecordOutcome
}

// Counts returns the number of successes and failures.
func (b BatchResult) Counts() (succeeded, failed int) {
	for _, o := range b.Outcomes {
		if o.Success {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}

// Delta converts the batch into an additive ledger update.
func (b BatchResult) Delta() BatchDelta {
	ok, failed := b.Counts()
	delta := BatchDelta{Processed: len(b.Outcomes), Successful: ok, Failed: failed}
	for _, o := range b.Outcomes {
		if o.Success {
			continue
		}
		delta.Errors = append(delta.Errors, JobError{
			Row:      o.Row,
			Field:    o.Field,
			Message:  o.Reason,
			Snapshot: o.Snapshot,
		})
	}
	return delta
}
