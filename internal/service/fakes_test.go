package service_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

// fakeJobs is an in-memory job ledger with the transition rules of the
// postgres implementation.
type fakeJobs struct {
	mu     sync.Mutex
	jobs   map[string]*domain.ImportJob
	errors map[string][]domain.JobError

	applyCalls int
	// afterApply runs with the lock held after every successful batch.
	afterApply func(job *domain.ImportJob)
	// applyErr fails the n-th ApplyBatch call (1-based) when non-nil.
	applyErr func(call int) error
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{
		jobs:   make(map[string]*domain.ImportJob),
		errors: make(map[string][]domain.JobError),
	}
}

func (f *fakeJobs) snapshot(j *domain.ImportJob) *domain.ImportJob {
	cp := *j
	cp.Errors = append([]domain.JobError(nil), f.errors[j.ID]...)
	return &cp
}

func (f *fakeJobs) CreateJob(_ context.Context, job *domain.ImportJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *job
	f.jobs[job.ID] = &cp
	return nil
}

func (f *fakeJobs) GetJob(_ context.Context, id string) (*domain.ImportJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	return f.snapshot(j), nil
}

func (f *fakeJobs) ListJobErrors(_ context.Context, id string, limit int) ([]domain.JobError, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	errs := f.errors[id]
	if len(errs) > limit {
		errs = errs[:limit]
	}
	return append([]domain.JobError(nil), errs...), nil
}

func (f *fakeJobs) MarkProcessing(_ context.Context, id string, at time.Time) (*domain.ImportJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if j.Status.IsTerminal() {
		return nil, domain.ErrJobTerminal
	}
	j.Status = domain.JobStatusProcessing
	j.Attempts++
	if j.StartedAt == nil {
		started := at
		j.StartedAt = &started
	}
	j.UpdatedAt = at
	return f.snapshot(j), nil
}

func (f *fakeJobs) ApplyBatch(_ context.Context, id string, delta domain.BatchDelta, errorCap int, at time.Time) (*domain.ImportJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applyCalls++
	if f.applyErr != nil {
		if err := f.applyErr(f.applyCalls); err != nil {
			return nil, err
		}
	}

	j, ok := f.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if j.Status.IsTerminal() {
		return nil, domain.ErrJobTerminal
	}
	if j.Status != domain.JobStatusProcessing || j.ProcessedRecords+delta.Processed > j.TotalRecords {
		return nil, domain.ErrInvalidTransition
	}

	j.ProcessedRecords += delta.Processed
	j.SuccessfulCount += delta.Successful
	j.FailedCount += delta.Failed
	for _, e := range delta.Errors {
		if len(f.errors[id]) >= errorCap {
			j.ErrorsTruncated = true
			break
		}
		f.errors[id] = append(f.errors[id], e)
	}
	j.UpdatedAt = at
	if f.afterApply != nil {
		f.afterApply(j)
	}
	return f.snapshot(j), nil
}

func (f *fakeJobs) CompleteJob(_ context.Context, id string, at time.Time) (*domain.ImportJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if j.Status.IsTerminal() {
		return nil, domain.ErrJobTerminal
	}
	if j.ProcessedRecords != j.TotalRecords {
		return nil, domain.ErrInvalidTransition
	}
	j.Status = domain.JobStatusCompleted
	completed := at
	j.CompletedAt = &completed
	return f.snapshot(j), nil
}

func (f *fakeJobs) FailJob(_ context.Context, id string, reason string, at time.Time) (*domain.ImportJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if j.Status.IsTerminal() {
		return nil, domain.ErrJobTerminal
	}
	j.Status = domain.JobStatusFailed
	completed := at
	j.CompletedAt = &completed
	f.errors[id] = append(f.errors[id], domain.JobError{Message: reason})
	return f.snapshot(j), nil
}

func (f *fakeJobs) RequestCancel(_ context.Context, id string, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return domain.ErrJobNotFound
	}
	if j.Status.IsTerminal() {
		return domain.ErrJobTerminal
	}
	j.CancelRequested = true
	return nil
}

// fakeStudents keeps students keyed by lowercase email and admission number.
type fakeStudents struct {
	mu       sync.Mutex
	byID     map[string]*domain.Student
	creates  int
	updates  int
	failWith error
	// panicOn makes Create panic for the given email.
	panicOn string
}

func newFakeStudents() *fakeStudents {
	return &fakeStudents{byID: make(map[string]*domain.Student)}
}

func (f *fakeStudents) match(tenantID, email, admission string) *domain.Student {
	for _, s := range f.byID {
		if s.TenantID != tenantID {
			continue
		}
		if email != "" && strings.EqualFold(s.Email, email) {
			return s
		}
		if admission != "" && s.AdmissionNumber == admission {
			return s
		}
	}
	return nil
}

func (f *fakeStudents) FindByNaturalKey(_ context.Context, tenantID, email, admissionNumber string) (*domain.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if s := f.match(tenantID, email, admissionNumber); s != nil {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStudents) Create(_ context.Context, s *domain.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panicOn != "" && s.Email == f.panicOn {
		panic("student store exploded")
	}
	if f.failWith != nil {
		return f.failWith
	}
	if f.match(s.TenantID, s.Email, s.AdmissionNumber) != nil {
		return domain.ErrDuplicate
	}
	cp := *s
	f.byID[s.ID] = &cp
	f.creates++
	return nil
}

func (f *fakeStudents) FindOrCreate(_ context.Context, s *domain.Student) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	if existing := f.match(s.TenantID, s.Email, s.AdmissionNumber); existing != nil {
		s.ID = existing.ID
		return false, nil
	}
	cp := *s
	f.byID[s.ID] = &cp
	f.creates++
	return true, nil
}

func (f *fakeStudents) Update(_ context.Context, s *domain.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	f.byID[s.ID] = &cp
	f.updates++
	return nil
}

func (f *fakeStudents) ListByClass(_ context.Context, tenantID, classID string) ([]domain.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Student
	for _, s := range f.byID {
		if s.TenantID == tenantID && s.ClassID == classID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStudents) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

type scoreKey struct {
	tenant, student, subject, term, assessment string
}

type fakeScores struct {
	mu      sync.Mutex
	scores  map[scoreKey]*domain.Score
	updates int
}

func newFakeScores() *fakeScores {
	return &fakeScores{scores: make(map[scoreKey]*domain.Score)}
}

func keyOf(s *domain.Score) scoreKey {
	return scoreKey{s.TenantID, s.StudentID, s.SubjectID, s.TermID, s.Assessment}
}

func (f *fakeScores) FindByNaturalKey(_ context.Context, tenantID, studentID, subjectID, termID, assessment string) (*domain.Score, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.scores[scoreKey{tenantID, studentID, subjectID, termID, assessment}]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeScores) Create(_ context.Context, s *domain.Score) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.scores[keyOf(s)]; ok {
		return domain.ErrDuplicate
	}
	cp := *s
	f.scores[keyOf(s)] = &cp
	return nil
}

func (f *fakeScores) FindOrCreate(_ context.Context, s *domain.Score) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.scores[keyOf(s)]; ok {
		s.ID = existing.ID
		return false, nil
	}
	cp := *s
	f.scores[keyOf(s)] = &cp
	return true, nil
}

func (f *fakeScores) Update(_ context.Context, s *domain.Score) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.scores[keyOf(s)]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	f.scores[keyOf(s)] = &cp
	f.updates++
	return nil
}

func (f *fakeScores) ListByClass(_ context.Context, tenantID, classID, subjectID, termID string) ([]domain.Score, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Score
	for k, s := range f.scores {
		if k.tenant == tenantID && s.ClassID == classID && k.subject == subjectID && k.term == termID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeScores) get(tenantID, studentID, subjectID, termID, assessment string) *domain.Score {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scores[scoreKey{tenantID, studentID, subjectID, termID, assessment}]
}

// fakeResolver resolves against a fixed set of classes and enrolments.
type fakeResolver struct {
	classes  []domain.Class
	enrolled map[string]string // student id -> class id
	lookups  int
}

func (f *fakeResolver) FindClassesByName(_ context.Context, tenantID, name string) ([]domain.Class, error) {
	f.lookups++
	var out []domain.Class
	for _, c := range f.classes {
		if c.TenantID == tenantID && strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeResolver) ListClassNames(_ context.Context, tenantID string) ([]string, error) {
	var out []string
	for _, c := range f.classes {
		if c.TenantID == tenantID {
			out = append(out, c.Name)
		}
	}
	return out, nil
}

func (f *fakeResolver) GetClass(_ context.Context, tenantID, id string) (*domain.Class, error) {
	for _, c := range f.classes {
		if c.TenantID == tenantID && c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeResolver) GetSubject(_ context.Context, tenantID, id string) (*domain.Subject, error) {
	return &domain.Subject{ID: id, TenantID: tenantID, Name: "Mathematics"}, nil
}

func (f *fakeResolver) GetTerm(_ context.Context, tenantID, id string) (*domain.Term, error) {
	return &domain.Term{ID: id, TenantID: tenantID, Name: "First Term"}, nil
}

func (f *fakeResolver) StudentInClass(_ context.Context, _, classID, studentID string) (bool, error) {
	f.lookups++
	return f.enrolled[studentID] == classID, nil
}

// recordingPublisher collects every published progress event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ProgressEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.ProgressEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) all() []domain.ProgressEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.ProgressEvent(nil), p.events...)
}
