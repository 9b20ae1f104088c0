package job

import (
	"context"
	"time"

	"github.com/Abraxas-365/vatalique/pkg/kernel"
)

type Repository interface {
	// ListActive retrieves active jobs, newest posting first
	ListActive(ctx context.Context) ([]Job, error)

	// ListAll retrieves every job regardless of status, newest posting first
	ListAll(ctx context.Context) ([]Job, error)

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Create persists a new job
	Create(ctx context.Context, job *Job) error

	// Update replaces the mutable fields of an existing job
	Update(ctx context.Context, job *Job) error

	// ToggleActive flips is_active in the store and stamps updated_date
	ToggleActive(ctx context.Context, id kernel.JobID, updatedDate time.Time) (*Job, error)

	// Delete removes the job's applications and then the job. Missing ids are not an error.
	Delete(ctx context.Context, id kernel.JobID) error
}
