package domain

import "time"

// TemplateMetadataVersion is the envelope version written by this service.
const TemplateMetadataVersion = 1

// MaxAssessmentsPerTemplate bounds the assessment columns of a score template.
const MaxAssessmentsPerTemplate = 20

// AssessmentSpec describes one score column of a template.
type AssessmentSpec struct {
	Name     string  `json:"name"`
	MaxScore float64 `json:"max_score"`
}

// TemplateMetadata is the machine context embedded in a generated score
// template so an upload of the same file can be interpreted without relying
// on user-editable cells.
type TemplateMetadata struct {
	Version     int              `json:"v"`
	TenantID    string           `json:"tenant_id"`
	ClassID     string           `json:"class_id"`
	SectionID   string           `json:"section_id,omitempty"`
	SubjectID   string           `json:"subject_id"`
	TermID      string           `json:"term_id"`
	Assessments []AssessmentSpec `json:"assessments"`
	GeneratedAt time.Time        `json:"generated_at"`
	GeneratedBy string           `json:"generated_by"`
}

// Assessment looks up a schema entry by name.
func (m TemplateMetadata) Assessment(name string) (AssessmentSpec, bool) {
	for _, a := range m.Assessments {
		if a.Name == name {
			return a, true
		}
	}
	return AssessmentSpec{}, false
}

// ScoreScope is the resolved context a score import writes into.
type ScoreScope struct {
	ClassID   string `json:"class_id"`
	SectionID string `json:"section_id,omitempty"`
	SubjectID string `json:"subject_id"`
	TermID    string `json:"term_id"`
}
