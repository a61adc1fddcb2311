package domain

import (
	"strings"
	"time"
)

// Student represents a persisted student entity.
type Student struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	ClassID         string    `json:"class_id"`
	FirstName       string    `json:"first_name"`
	MiddleName      string    `json:"middle_name,omitempty"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email,omitempty"`
	Gender          string    `json:"gender"`
	DateOfBirth     time.Time `json:"date_of_birth"`
	AdmissionNumber string    `json:"admission_number,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	GuardianName    string    `json:"guardian_name,omitempty"`
	GuardianPhone   string    `json:"guardian_phone,omitempty"`
	GuardianEmail   string    `json:"guardian_email,omitempty"`
	Address         string    `json:"address,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FullName joins the name parts for display.
func (s Student) FullName() string {
	return strings.Join(strings.Fields(s.FirstName+" "+s.MiddleName+" "+s.LastName), " ")
}

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// ValidGenders contains all canonical gender values.
var ValidGenders = []string{GenderMale, GenderFemale}

// NormalizeGender maps common spellings to the canonical value.
// Unknown input is returned lower-cased so validation can name it.
func NormalizeGender(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "m", "male", "boy":
		return GenderMale
	case "f", "female", "girl":
		return GenderFemale
	default:
		return strings.ToLower(strings.TrimSpace(v))
	}
}

// Class is a tenant-scoped class (grade level plus optional arm).
type Class struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
}
