package validator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

var (
	phoneRegex   = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	phoneCleaner = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	validGenders = []interface{}{domain.GenderMale, domain.GenderFemale}

	// dateLayouts are tried in order; day-first is preferred over month-first.
	dateLayouts = []string{
		"2006-01-02",
		"2006/01/02",
		"02/01/2006",
		"2/1/2006",
		"02-01-2006",
		"2-Jan-2006",
		"02 Jan 2006",
		"Jan 2, 2006",
		"January 2, 2006",
	}
)

// Validator provides semantic validation for candidate records.
type Validator struct {
	now func() time.Time
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// ValidateStudent validates a roster record.
func (v *Validator) ValidateStudent(r *domain.StudentRecord) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName,
			validation.Required.Error("is required"),
			validation.Length(1, 100).Error("must be at most 100 characters"),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("is required"),
			validation.Length(1, 100).Error("must be at most 100 characters"),
		),
		validation.Field(&r.MiddleName,
			validation.Length(0, 100).Error("must be at most 100 characters"),
		),
		validation.Field(&r.Gender,
			validation.Required.Error("is required"),
			validation.In(validGenders...).Error("must be one of: male, female"),
		),
		validation.Field(&r.DateOfBirth,
			validation.Required.Error("is required"),
			validation.By(v.pastDateRule),
		),
		validation.Field(&r.Email,
			is.EmailFormat.Error("must be a valid email address"),
		),
		validation.Field(&r.GuardianEmail,
			is.EmailFormat.Error("must be a valid email address"),
		),
		validation.Field(&r.Phone,
			validation.By(phoneRule),
		),
		validation.Field(&r.GuardianPhone,
			validation.By(phoneRule),
		),
		validation.Field(&r.AdmissionNumber,
			validation.Length(0, 50).Error("must be at most 50 characters"),
		),
		validation.Field(&r.ClassName,
			validation.Required.Error("is required"),
		),
	)
}

// ValidateScore validates a score record against the template schema.
func (v *Validator) ValidateScore(r *domain.ScoreRecord, meta domain.TemplateMetadata) error {
	spec, known := meta.Assessment(r.Assessment)
	return validation.ValidateStruct(r,
		validation.Field(&r.StudentID,
			validation.Required.Error("is required"),
		),
		validation.Field(&r.Assessment,
			validation.Required.Error("is required"),
			validation.By(func(interface{}) error {
				if !known {
					return validation.NewError("unknown_assessment", fmt.Sprintf("%q is not part of this template", r.Assessment))
				}
				return nil
			}),
		),
		validation.Field(&r.Score,
			validation.By(func(interface{}) error {
				if math.IsNaN(r.Score) || math.IsInf(r.Score, 0) {
					return validation.NewError("invalid_score", "must be a number")
				}
				if r.Score < 0 {
					return validation.NewError("score_below_zero", "must not be negative")
				}
				if known && r.Score > spec.MaxScore {
					return validation.NewError("score_above_max", fmt.Sprintf("must not exceed %g", spec.MaxScore))
				}
				return nil
			}),
		),
	)
}

// ValidateOptions validates an options snapshot for an import instance.
func (v *Validator) ValidateOptions(kind domain.ImportKind, o *domain.ImportOptions) error {
	err := validation.ValidateStruct(o,
		validation.Field(&o.BatchSize,
			validation.Min(1).Error("must be at least 1"),
			validation.Max(domain.MaxBatchSize).Error(fmt.Sprintf("must be at most %d", domain.MaxBatchSize)),
		),
	)
	if err != nil {
		return err
	}

	if o.SkipDuplicates && o.UpdateExisting {
		return validation.Errors{
			"update_existing": validation.NewError("mutually_exclusive", "cannot be combined with skip_duplicates"),
		}
	}

	if !domain.IsValidImportKind(string(kind)) {
		return validation.Errors{
			"kind": validation.NewError("invalid_kind", fmt.Sprintf("unsupported import kind %q", kind)),
		}
	}
	return nil
}

// ValidateTemplateMetadata validates the context of a score template before
// it is generated or trusted after extraction.
func (v *Validator) ValidateTemplateMetadata(m *domain.TemplateMetadata) error {
	return validation.ValidateStruct(m,
		validation.Field(&m.TenantID, validation.Required.Error("is required")),
		validation.Field(&m.ClassID, validation.Required.Error("is required")),
		validation.Field(&m.SubjectID, validation.Required.Error("is required")),
		validation.Field(&m.TermID, validation.Required.Error("is required")),
		validation.Field(&m.Assessments,
			validation.Required.Error("at least one assessment is required"),
			validation.Length(1, domain.MaxAssessmentsPerTemplate).
				Error(fmt.Sprintf("at most %d assessments are allowed", domain.MaxAssessmentsPerTemplate)),
			validation.By(assessmentsRule),
		),
	)
}

func assessmentsRule(value interface{}) error {
	specs, _ := value.([]domain.AssessmentSpec)
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return validation.NewError("assessment_name_required", "assessment name is required")
		}
		if seen[name] {
			return validation.NewError("assessment_duplicate", fmt.Sprintf("assessment %q is listed twice", name))
		}
		if s.MaxScore <= 0 {
			return validation.NewError("assessment_max_score", fmt.Sprintf("assessment %q needs a positive max score", name))
		}
		seen[name] = true
	}
	return nil
}

func (v *Validator) pastDateRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return validation.NewError("invalid_date", fmt.Sprintf("%q is not a valid calendar date", s))
	}
	if !d.Before(v.now()) {
		return validation.NewError("date_in_future", "must be in the past")
	}
	return nil
}

func phoneRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !phoneRegex.MatchString(NormalizePhone(s)) {
		return validation.NewError("invalid_phone", fmt.Sprintf("%q is not a valid phone number", s))
	}
	return nil
}

// NormalizePhone removes separators commonly typed into phone numbers.
func NormalizePhone(s string) string {
	return phoneCleaner.Replace(strings.TrimSpace(s))
}

// ParseDate parses a calendar date in any of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ConvertValidationErrors converts ozzo validation errors to issues for a row.
// Issues are ordered by field name so reports are stable.
func ConvertValidationErrors(rowNum int, err error) []domain.Issue {
	var issues []domain.Issue

	var ve validation.Errors
	if errors.As(err, &ve) {
		fields := make([]string, 0, len(ve))
		for field := range ve {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			issues = append(issues, domain.Issue{
				Row:     rowNum,
				Field:   field,
				Message: fmt.Sprintf("%s %s", field, ve[field].Error()),
			})
		}
	} else if err != nil {
		issues = append(issues, domain.Issue{
			Row:     rowNum,
			Field:   "record",
			Message: err.Error(),
		})
	}

	return issues
}

// FirstReason reduces a validation error to the single descriptive reason
// reported for a record.
func FirstReason(err error) (field, reason string) {
	issues := ConvertValidationErrors(0, err)
	if len(issues) == 0 {
		return "", ""
	}
	if len(issues) == 1 {
		return issues[0].Field, issues[0].Message
	}
	msgs := make([]string, len(issues))
	for i, issue := range issues {
		msgs[i] = issue.Message
	}
	return issues[0].Field, strings.Join(msgs, "; ")
}
