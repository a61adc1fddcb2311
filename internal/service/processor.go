package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/queue"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/repository"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/validator"
)

// ReasonDuplicate is the failure reason of a record whose entity already exists.
const ReasonDuplicate = "duplicate"

// RecordProcessor validates, de-duplicates and persists one record of a job.
// A returned error is a store failure; everything else is an outcome.
type RecordProcessor interface {
	Process(ctx context.Context, rec domain.Record) (domain.RecordOutcome, error)
}

// Processors builds the per-job processor of each import instance.
type Processors struct {
	Students  repository.StudentRepository
	Scores    repository.ScoreRepository
	Resolver  repository.ResolverRepository
	Validator *validator.Validator
	Now       func() time.Time
}

// errNoProcessor fails a job whose task cannot be processed at all.
var errNoProcessor = errors.New("task cannot be processed")

// For returns a fresh processor for the task. Lookups cached by the processor
// live as long as the job.
func (p Processors) For(task *queue.Task) (RecordProcessor, error) {
	now := p.Now
	if now == nil {
		now = time.Now
	}
	v := p.Validator
	if v == nil {
		v = validator.NewValidator()
	}

	switch task.Kind {
	case domain.ImportKindStudents:
		return &studentProcessor{
			students:  p.Students,
			resolver:  p.Resolver,
			validator: v,
			tenantID:  task.TenantID,
			actorID:   task.ActorID,
			opts:      task.Options,
			now:       now,
			classes:   make(map[string]classResolution),
		}, nil
	case domain.ImportKindScores:
		if task.Template == nil {
			return nil, fmt.Errorf("%w: score task carries no template metadata", errNoProcessor)
		}
		return &scoreProcessor{
			scores:    p.Scores,
			resolver:  p.Resolver,
			validator: v,
			tenantID:  task.TenantID,
			actorID:   task.ActorID,
			meta:      *task.Template,
			opts:      task.Options,
			now:       now,
			enrolled:  make(map[string]bool),
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported import kind %q", errNoProcessor, task.Kind)
	}
}

// persistFuncs adapts an entity repository to the shared duplicate policy.
type persistFuncs struct {
	find         func(ctx context.Context) (id string, found bool, err error)
	create       func(ctx context.Context) (id string, err error)
	findOrCreate func(ctx context.Context) (id string, created bool, err error)
	update       func(ctx context.Context, existingID string) error
}

// persist applies the duplicate policy of the job options:
// update_existing updates a match in place and inserts otherwise,
// skip_duplicates reports a match as a duplicate using an atomic
// find-or-create, and neither inserts and reports unique violations as
// duplicates.
func persist(ctx context.Context, rec domain.Record, opts domain.ImportOptions, keyField string, f persistFuncs) (domain.RecordOutcome, error) {
	switch {
	case opts.UpdateExisting:
		id, found, err := f.find(ctx)
		if err != nil {
			return domain.RecordOutcome{}, err
		}
		if found {
			if err := f.update(ctx, id); err != nil {
				return domain.RecordOutcome{}, err
			}
			return domain.Succeeded(rec, id, true), nil
		}
		id, err = f.create(ctx)
		if errors.Is(err, domain.ErrDuplicate) {
			// created concurrently since the lookup
			return domain.Failed(rec, keyField, ReasonDuplicate), nil
		}
		if err != nil {
			return domain.RecordOutcome{}, err
		}
		return domain.Succeeded(rec, id, false), nil

	case opts.SkipDuplicates:
		id, created, err := f.findOrCreate(ctx)
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.Failed(rec, keyField, ReasonDuplicate), nil
		}
		if err != nil {
			return domain.RecordOutcome{}, err
		}
		if !created {
			return domain.Failed(rec, keyField, ReasonDuplicate), nil
		}
		return domain.Succeeded(rec, id, false), nil

	default:
		id, err := f.create(ctx)
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.Failed(rec, keyField, ReasonDuplicate), nil
		}
		if err != nil {
			return domain.RecordOutcome{}, err
		}
		return domain.Succeeded(rec, id, false), nil
	}
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
