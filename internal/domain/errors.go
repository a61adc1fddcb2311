package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrJobNotFound           = errors.New("import job not found")
	ErrJobAccessDenied       = errors.New("import job belongs to another tenant")
	ErrJobTerminal           = errors.New("import job already reached a terminal state")
	ErrInvalidTransition     = errors.New("invalid job status transition")
	ErrFileUnreadable        = errors.New("file unreadable")
	ErrTemplateNotRecognized = errors.New("template not recognized")
	ErrTemplateStale         = errors.New("template references data that no longer exists")
	ErrStoreUnavailable      = errors.New("persistence layer unavailable")
	ErrDuplicate             = errors.New("duplicate")
	ErrNotFound              = errors.New("not found")
	ErrCancelled             = errors.New("cancelled")
)

// Submission error codes reported to the caller before any job exists.
const (
	CodeFileRejected          = "file_rejected"
	CodeFileUnreadable        = "file_unreadable"
	CodeTemplateNotRecognized = "template_not_recognized"
	CodeTemplateStale         = "template_stale"
	CodeParseErrors           = "parse_errors"
	CodeInvalidOptions        = "invalid_options"
	CodeTooManyRecords        = "too_many_records"
)

// Issue is one structural problem found while checking a submission.
type Issue struct {
	Row      int               `json:"row,omitempty"`
	Field    string            `json:"field"`
	Message  string            `json:"message"`
	Snapshot map[string]string `json:"snapshot,omitempty"`
}

// SubmissionError rejects a whole submission. It lists every problem found,
// not just the first.
type SubmissionError struct {
	Code   string
	Issues []Issue
	Err    error
}

func (e *SubmissionError) Error() string {
	if len(e.Issues) == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Code, e.Err)
		}
		return e.Code
	}
	return fmt.Sprintf("%s: %d problem(s), first: %s", e.Code, len(e.Issues), e.Issues[0].Message)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Summary groups the issues by field with a count per field.
func (e *SubmissionError) Summary() map[string]int {
	out := make(map[string]int)
	for _, is := range e.Issues {
		out[is.Field]++
	}
	return out
}

// NewSubmissionError builds a rejection with a single cause.
func NewSubmissionError(code string, err error, issues ...Issue) *SubmissionError {
	return &SubmissionError{Code: code, Err: err, Issues: issues}
}

// ResolutionError reports a label that did not resolve to exactly one
// tenant-scoped identifier.
type ResolutionError struct {
	Entity       string
	Label        string
	Matches      int
	Alternatives []string
}

func (e *ResolutionError) Error() string {
	var b strings.Builder
	if e.Matches == 0 {
		fmt.Fprintf(&b, "%s %q not found", e.Entity, e.Label)
	} else {
		fmt.Fprintf(&b, "%s %q is ambiguous (%d matches)", e.Entity, e.Label, e.Matches)
	}
	if len(e.Alternatives) > 0 {
		alts := append([]string(nil), e.Alternatives...)
		sort.Strings(alts)
		fmt.Fprintf(&b, "; valid values: %s", strings.Join(alts, ", "))
	}
	return b.String()
}

func (e *ResolutionError) Is(target error) bool { return target == ErrNotFound && e.Matches == 0 }

// IsUnrecoverable reports whether err escapes the per-record isolation
// boundary and must fail or requeue the whole job.
func IsUnrecoverable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
