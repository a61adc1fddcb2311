package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/logger"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/repository"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/template"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/validator"
)

// ScoreTemplateRequest selects the scope and columns of a score template.
type ScoreTemplateRequest struct {
	ClassID     string                  `json:"class_id"`
	SectionID   string                  `json:"section_id,omitempty"`
	SubjectID   string                  `json:"subject_id"`
	TermID      string                  `json:"term_id"`
	Assessments []domain.AssessmentSpec `json:"assessments"`
}

// TemplateService generates downloadable import templates.
type TemplateService struct {
	students  repository.StudentRepository
	resolver  repository.ResolverRepository
	validator *validator.Validator
	now       func() time.Time
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(students repository.StudentRepository, resolver repository.ResolverRepository, v *validator.Validator) *TemplateService {
	if v == nil {
		v = validator.NewValidator()
	}
	return &TemplateService{
		students:  students,
		resolver:  resolver,
		validator: v,
		now:       time.Now,
	}
}

// GenerateScoreTemplate builds a score template pre-filled with the class
// roster. The scope must exist for the tenant.
func (s *TemplateService) GenerateScoreTemplate(ctx context.Context, tenantID, actorID string, req ScoreTemplateRequest) (*bytes.Buffer, error) {
	meta := domain.TemplateMetadata{
		Version:     domain.TemplateMetadataVersion,
		TenantID:    tenantID,
		ClassID:     req.ClassID,
		SectionID:   req.SectionID,
		SubjectID:   req.SubjectID,
		TermID:      req.TermID,
		Assessments: req.Assessments,
		GeneratedAt: s.now().UTC().Truncate(time.Second),
		GeneratedBy: actorID,
	}
	if err := s.validator.ValidateTemplateMetadata(&meta); err != nil {
		return nil, &domain.SubmissionError{
			Code:   domain.CodeInvalidOptions,
			Issues: validator.ConvertValidationErrors(0, err),
			Err:    err,
		}
	}

	class, err := s.resolver.GetClass(ctx, tenantID, req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("resolve class: %w", err)
	}
	if class == nil {
		return nil, &domain.ResolutionError{Entity: "class", Label: req.ClassID}
	}
	subject, err := s.resolver.GetSubject(ctx, tenantID, req.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("resolve subject: %w", err)
	}
	if subject == nil {
		return nil, &domain.ResolutionError{Entity: "subject", Label: req.SubjectID}
	}
	term, err := s.resolver.GetTerm(ctx, tenantID, req.TermID)
	if err != nil {
		return nil, fmt.Errorf("resolve term: %w", err)
	}
	if term == nil {
		return nil, &domain.ResolutionError{Entity: "term", Label: req.TermID}
	}

	students, err := s.students.ListByClass(ctx, tenantID, class.ID)
	if err != nil {
		return nil, fmt.Errorf("list class students: %w", err)
	}

	buf, err := template.GenerateScoreTemplate(meta, students)
	if err != nil {
		return nil, fmt.Errorf("generate score template: %w", err)
	}

	logger.WithTenantID(tenantID).Info("Score template generated",
		slog.String("class_id", class.ID),
		slog.String("subject", subject.Name),
		slog.String("term", term.Name),
		slog.Int("students", len(students)),
		slog.Int("assessments", len(meta.Assessments)))
	return buf, nil
}

// GenerateStudentTemplate builds an empty roster workbook.
func (s *TemplateService) GenerateStudentTemplate(ctx context.Context) (*bytes.Buffer, error) {
	buf, err := template.GenerateStudentTemplate()
	if err != nil {
		return nil, fmt.Errorf("generate student template: %w", err)
	}
	return buf, nil
}
