package application

import (
	"strings"
	"time"

	"github.com/Abraxas-365/vatalique/pkg/kernel"
)

// Status represents the review status of an application
type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
)

// Statuses lists every valid status
func Statuses() []Status {
	return []Status{StatusPending, StatusReviewed, StatusShortlisted, StatusRejected}
}

// IsValid checks the status is one of the fixed values
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected:
		return true
	default:
		return false
	}
}

// ParseStatus converts raw input into a Status. Matching is exact.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatus().WithDetail("status", raw)
	}
	return s, nil
}

// Application is a candidate's submission against one job
type Application struct {
	ID             kernel.ApplicationID `db:"id" json:"id"`
	JobID          kernel.JobID         `db:"job_id" json:"job_id"`
	ApplicantName  kernel.ApplicantName `db:"applicant_name" json:"applicant_name"`
	ApplicantEmail kernel.Email         `db:"applicant_email" json:"applicant_email"`
	ApplicantPhone kernel.Phone         `db:"applicant_phone" json:"applicant_phone"`
	ResumeURL      kernel.ResumeURL     `db:"resume_url" json:"resume_url"`
	CoverLetter    *string              `db:"cover_letter" json:"cover_letter"`
	Status         Status               `db:"status" json:"status"`
	AppliedDate    time.Time            `db:"applied_date" json:"applied_date"`
}

// EnrichedApplication is an application with its job's title and department attached at read time.
// Both are nil when the job row no longer exists.
type EnrichedApplication struct {
	Application
	JobTitle      *string `db:"job_title" json:"job_title,omitempty"`
	JobDepartment *string `db:"job_department" json:"job_department,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// Validate checks the required applicant fields
func (a *Application) Validate() error {
	missing := make([]string, 0)
	if strings.TrimSpace(string(a.JobID)) == "" {
		missing = append(missing, "job_id")
	}
	if strings.TrimSpace(string(a.ApplicantName)) == "" {
		missing = append(missing, "applicant_name")
	}
	if strings.TrimSpace(string(a.ApplicantEmail)) == "" {
		missing = append(missing, "applicant_email")
	}
	if strings.TrimSpace(string(a.ApplicantPhone)) == "" {
		missing = append(missing, "applicant_phone")
	}
	if strings.TrimSpace(string(a.ResumeURL)) == "" {
		missing = append(missing, "resume_url")
	}

	if len(missing) > 0 {
		return ErrMissingFields().WithDetail("fields", missing)
	}

	if !a.ApplicantEmail.IsPlausible() {
		return ErrInvalidEmail().WithDetail("applicant_email", string(a.ApplicantEmail))
	}

	return nil
}

// ChangeStatus moves the application to any status. There is no enforced ordering.
func (a *Application) ChangeStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus().WithDetail("status", string(s))
	}
	a.Status = s
	return nil
}
