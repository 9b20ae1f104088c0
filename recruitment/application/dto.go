package application

import "github.com/Abraxas-365/vatalique/pkg/kernel"

// SubmitApplicationRequest - DTO for the public application form
type SubmitApplicationRequest struct {
	JobID          kernel.JobID         `json:"job_id"`
	ApplicantName  kernel.ApplicantName `json:"applicant_name"`
	ApplicantEmail kernel.Email         `json:"applicant_email"`
	ApplicantPhone kernel.Phone         `json:"applicant_phone"`
	ResumeURL      kernel.ResumeURL     `json:"resume_url"`
	CoverLetter    *string              `json:"cover_letter,omitempty"`
}

// UpdateStatusRequest - DTO for changing an application's status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// DeleteApplicationResponse - DTO returned after deleting an application
type DeleteApplicationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
