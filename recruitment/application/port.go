package application

import (
	"context"

	"github.com/Abraxas-365/vatalique/pkg/kernel"
)

type Repository interface {
	// ListAll retrieves every application with job details, newest first
	ListAll(ctx context.Context) ([]EnrichedApplication, error)

	// ListByJob retrieves the applications of one job with job details, newest first
	ListByJob(ctx context.Context, jobID kernel.JobID) ([]EnrichedApplication, error)

	// GetByID retrieves an application with job details
	GetByID(ctx context.Context, id kernel.ApplicationID) (*EnrichedApplication, error)

	// Create persists a new application. Returns ErrJobNotAccepting if the job row is gone.
	Create(ctx context.Context, application *Application) error

	// UpdateStatus sets the status of an application
	UpdateStatus(ctx context.Context, id kernel.ApplicationID, status Status) error

	// Delete removes an application. Missing ids are not an error.
	Delete(ctx context.Context, id kernel.ApplicationID) error

	// CountByJob maps each job id that has applications to its application count
	CountByJob(ctx context.Context) (map[kernel.JobID]int, error)
}
