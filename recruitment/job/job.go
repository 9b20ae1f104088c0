package job

import (
	"strings"
	"time"

	"github.com/Abraxas-365/vatalique/pkg/kernel"
)

// Type is the employment type of a posting
type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
)

// Types lists every valid employment type
func Types() []Type {
	return []Type{TypeFullTime, TypePartTime, TypeContract, TypeInternship}
}

// IsValid checks the type is one of the fixed employment types
func (t Type) IsValid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship:
		return true
	default:
		return false
	}
}

// Job is a posted position
type Job struct {
	ID               kernel.JobID      `db:"id" json:"id"`
	Title            kernel.JobTitle   `db:"title" json:"title"`
	Department       kernel.Department `db:"department" json:"department"`
	Location         kernel.Location   `db:"location" json:"location"`
	Type             Type              `db:"type" json:"type"`
	Description      string            `db:"description" json:"description"`
	Requirements     string            `db:"requirements" json:"requirements"`
	Responsibilities *string           `db:"responsibilities" json:"responsibilities"`
	SalaryRange      *string           `db:"salary_range" json:"salary_range"`
	IsActive         bool              `db:"is_active" json:"is_active"`
	PostedDate       time.Time         `db:"posted_date" json:"posted_date"`
	UpdatedDate      time.Time         `db:"updated_date" json:"updated_date"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// AcceptsApplications checks if the job is open to new applications
func (j *Job) AcceptsApplications() bool {
	return j.IsActive
}

// Validate checks the required fields and the employment type
func (j *Job) Validate() error {
	missing := make([]string, 0)
	if strings.TrimSpace(string(j.Title)) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(string(j.Department)) == "" {
		missing = append(missing, "department")
	}
	if strings.TrimSpace(string(j.Location)) == "" {
		missing = append(missing, "location")
	}
	if strings.TrimSpace(string(j.Type)) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(j.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(j.Requirements) == "" {
		missing = append(missing, "requirements")
	}

	if len(missing) > 0 {
		return ErrMissingFields().WithDetail("fields", missing)
	}

	if !j.Type.IsValid() {
		return ErrInvalidType().
			WithDetail("type", j.Type).
			WithDetail("allowed", Types())
	}

	return nil
}

// Touch advances UpdatedDate to now, keeping it strictly after the previous value
func (j *Job) Touch(now time.Time) {
	next := now
	if !next.After(j.UpdatedDate) {
		next = j.UpdatedDate.Add(time.Microsecond)
	}
	j.UpdatedDate = next
}

// NextUpdatedDate returns the value Touch would assign without mutating the job
func (j *Job) NextUpdatedDate(now time.Time) time.Time {
	probe := *j
	probe.Touch(now)
	return probe.UpdatedDate
}

// ApplyFields replaces every mutable field from the request
func (j *Job) ApplyFields(fields Fields) {
	j.Title = kernel.JobTitle(strings.TrimSpace(string(fields.Title)))
	j.Department = kernel.Department(strings.TrimSpace(string(fields.Department)))
	j.Location = kernel.Location(strings.TrimSpace(string(fields.Location)))
	j.Type = Type(strings.TrimSpace(string(fields.Type)))
	j.Description = fields.Description
	j.Requirements = fields.Requirements
	j.Responsibilities = optional(fields.Responsibilities)
	j.SalaryRange = optional(fields.SalaryRange)
	if fields.IsActive != nil {
		j.IsActive = *fields.IsActive
	}
}

// optional maps blank strings to nil so they are stored as NULL
func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
