package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/repository"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/validator"
)

type classResolution struct {
	id  string
	err *domain.ResolutionError
}

type studentProcessor struct {
	students  repository.StudentRepository
	resolver  repository.ResolverRepository
	validator *validator.Validator
	tenantID  string
	actorID   string
	opts      domain.ImportOptions
	now       func() time.Time

	classes map[string]classResolution
}

func (p *studentProcessor) Process(ctx context.Context, rec domain.Record) (domain.RecordOutcome, error) {
	r, ok := rec.(domain.StudentRecord)
	if !ok {
		return domain.Failed(rec, "record", "not a student record"), nil
	}

	if err := p.validator.ValidateStudent(&r); err != nil {
		field, reason := validator.FirstReason(err)
		return domain.Failed(rec, field, reason), nil
	}

	classID, resErr, err := p.resolveClass(ctx, r.ClassName)
	if err != nil {
		return domain.RecordOutcome{}, err
	}
	if resErr != nil {
		return domain.Failed(rec, "class_name", resErr.Error()), nil
	}

	student, err := p.toStudent(r, classID)
	if err != nil {
		return domain.Failed(rec, "date_of_birth", err.Error()), nil
	}

	keyField := "email"
	if student.Email == "" {
		keyField = "admission_number"
	}

	return persist(ctx, rec, p.opts, keyField, persistFuncs{
		find: func(ctx context.Context) (string, bool, error) {
			existing, err := p.students.FindByNaturalKey(ctx, p.tenantID, student.Email, student.AdmissionNumber)
			if err != nil || existing == nil {
				return "", false, err
			}
			student.ID = existing.ID
			student.CreatedBy = existing.CreatedBy
			student.CreatedAt = existing.CreatedAt
			return existing.ID, true, nil
		},
		create: func(ctx context.Context) (string, error) {
			return student.ID, p.students.Create(ctx, student)
		},
		findOrCreate: func(ctx context.Context) (string, bool, error) {
			created, err := p.students.FindOrCreate(ctx, student)
			return student.ID, created, err
		},
		update: func(ctx context.Context, _ string) error {
			return p.students.Update(ctx, student)
		},
	})
}

// resolveClass maps a class label to the single matching class of the tenant.
// A label that matches no class or several classes yields a resolution error
// listing the valid names.
func (p *studentProcessor) resolveClass(ctx context.Context, label string) (string, *domain.ResolutionError, error) {
	key := normalizeLabel(label)
	if cached, ok := p.classes[key]; ok {
		return cached.id, cached.err, nil
	}

	classes, err := p.resolver.FindClassesByName(ctx, p.tenantID, label)
	if err != nil {
		return "", nil, err
	}

	var res classResolution
	if len(classes) == 1 {
		res.id = classes[0].ID
	} else {
		names, err := p.resolver.ListClassNames(ctx, p.tenantID)
		if err != nil {
			return "", nil, err
		}
		res.err = &domain.ResolutionError{
			Entity:       "class",
			Label:        strings.TrimSpace(label),
			Matches:      len(classes),
			Alternatives: names,
		}
	}
	p.classes[key] = res
	return res.id, res.err, nil
}

func (p *studentProcessor) toStudent(r domain.StudentRecord, classID string) (*domain.Student, error) {
	dob, err := validator.ParseDate(r.DateOfBirth)
	if err != nil {
		return nil, err
	}
	now := p.now().UTC()
	return &domain.Student{
		ID:              uuid.NewString(),
		TenantID:        p.tenantID,
		ClassID:         classID,
		FirstName:       r.FirstName,
		MiddleName:      r.MiddleName,
		LastName:        r.LastName,
		Email:           strings.ToLower(r.Email),
		Gender:          domain.NormalizeGender(r.Gender),
		DateOfBirth:     dob,
		AdmissionNumber: r.AdmissionNumber,
		Phone:           validator.NormalizePhone(r.Phone),
		GuardianName:    r.GuardianName,
		GuardianPhone:   validator.NormalizePhone(r.GuardianPhone),
		GuardianEmail:   strings.ToLower(r.GuardianEmail),
		Address:         r.Address,
		CreatedBy:       p.actorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

