package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/repository"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/validator"
)

type scoreProcessor struct {
	scores    repository.ScoreRepository
	resolver  repository.ResolverRepository
	validator *validator.Validator
	tenantID  string
	actorID   string
	meta      domain.TemplateMetadata
	opts      domain.ImportOptions
	now       func() time.Time

	// enrolled caches class membership per student id
	enrolled map[string]bool
}

func (p *scoreProcessor) Process(ctx context.Context, rec domain.Record) (domain.RecordOutcome, error) {
	r, ok := rec.(domain.ScoreRecord)
	if !ok {
		return domain.Failed(rec, "record", "not a score record"), nil
	}

	if err := p.validator.ValidateScore(&r, p.meta); err != nil {
		field, reason := validator.FirstReason(err)
		if field == "score" {
			field = r.Assessment
		}
		return domain.Failed(rec, field, reason), nil
	}

	inClass, err := p.inClass(ctx, r.StudentID)
	if err != nil {
		return domain.RecordOutcome{}, err
	}
	if !inClass {
		return domain.Failed(rec, "student_id",
			fmt.Sprintf("student %q is not enrolled in the template's class", r.StudentID)), nil
	}

	spec, _ := p.meta.Assessment(r.Assessment)
	now := p.now().UTC()
	score := &domain.Score{
		ID:         uuid.NewString(),
		TenantID:   p.tenantID,
		StudentID:  r.StudentID,
		ClassID:    p.meta.ClassID,
		SubjectID:  p.meta.SubjectID,
		TermID:     p.meta.TermID,
		Assessment: r.Assessment,
		Score:      r.Score,
		MaxScore:   spec.MaxScore,
		RecordedBy: p.actorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return persist(ctx, rec, p.opts, r.Assessment, persistFuncs{
		find: func(ctx context.Context) (string, bool, error) {
			existing, err := p.scores.FindByNaturalKey(ctx, p.tenantID, score.StudentID, score.SubjectID, score.TermID, score.Assessment)
			if err != nil || existing == nil {
				return "", false, err
			}
			score.ID = existing.ID
			score.CreatedAt = existing.CreatedAt
			return existing.ID, true, nil
		},
		create: func(ctx context.Context) (string, error) {
			return score.ID, p.scores.Create(ctx, score)
		},
		findOrCreate: func(ctx context.Context) (string, bool, error) {
			created, err := p.scores.FindOrCreate(ctx, score)
			return score.ID, created, err
		},
		update: func(ctx context.Context, _ string) error {
			return p.scores.Update(ctx, score)
		},
	})
}

func (p *scoreProcessor) inClass(ctx context.Context, studentID string) (bool, error) {
	if ok, cached := p.enrolled[studentID]; cached {
		return ok, nil
	}
	ok, err := p.resolver.StudentInClass(ctx, p.tenantID, p.meta.ClassID, studentID)
	if err != nil {
		return false, err
	}
	p.enrolled[studentID] = ok
	return ok, nil
}
