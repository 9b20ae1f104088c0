package job

import "github.com/Abraxas-365/vatalique/pkg/kernel"

// Fields is the writable part of a job, used for both create and full-replace update
type Fields struct {
	Title            kernel.JobTitle   `json:"title"`
	Department       kernel.Department `json:"department"`
	Location         kernel.Location   `json:"location"`
	Type             Type              `json:"type"`
	Description      string            `json:"description"`
	Requirements     string            `json:"requirements"`
	Responsibilities *string           `json:"responsibilities,omitempty"`
	SalaryRange      *string           `json:"salary_range,omitempty"`
	IsActive         *bool             `json:"is_active,omitempty"`
}

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest = Fields

// UpdateJobRequest - DTO for replacing a job's fields
type UpdateJobRequest = Fields

// DeleteJobResponse - DTO returned after deleting a job
type DeleteJobResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
