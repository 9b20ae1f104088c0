package jobsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/vatalique/pkg/errx"
	"github.com/Abraxas-365/vatalique/pkg/kernel"
	"github.com/Abraxas-365/vatalique/pkg/logx"
	"github.com/Abraxas-365/vatalique/recruitment/job"
	"github.com/google/uuid"
)

// JobService provides business operations for jobs
type JobService struct {
	jobRepo job.Repository
	now     func() time.Time
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

// timestamp returns the current time the way it is persisted
func (s *JobService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// ListActive retrieves the jobs visible on the public careers page
func (s *JobService) ListActive(ctx context.Context) ([]job.Job, error) {
	jobs, err := s.jobRepo.ListActive(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list active jobs", errx.TypeInternal)
	}
	return jobs, nil
}

// ListAll retrieves every job for the admin dashboard
func (s *JobService) ListAll(ctx context.Context) ([]job.Job, error) {
	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}
	return jobs, nil
}

// GetJob retrieves a job by ID
func (s *JobService) GetJob(ctx context.Context, jobID kernel.JobID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, passThrough(err, "failed to get job")
	}
	return jobEntity, nil
}

// CreateJob validates and persists a new job posting
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	now := s.timestamp()

	newJob := &job.Job{
		ID:          kernel.NewJobID(uuid.NewString()),
		IsActive:    true,
		PostedDate:  now,
		UpdatedDate: now,
	}
	newJob.ApplyFields(req)

	if err := newJob.Validate(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	logx.With("job_id", newJob.ID.String()).Info("job created")
	return newJob, nil
}

// UpdateJob replaces the mutable fields of a job and refreshes updated_date
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, req job.UpdateJobRequest) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, passThrough(err, "failed to get job")
	}

	jobEntity.ApplyFields(req)
	if err := jobEntity.Validate(); err != nil {
		return nil, err
	}
	jobEntity.Touch(s.timestamp())

	if err := s.jobRepo.Update(ctx, jobEntity); err != nil {
		return nil, passThrough(err, "failed to update job")
	}

	return jobEntity, nil
}

// ToggleActive flips whether the job accepts applications
func (s *JobService) ToggleActive(ctx context.Context, jobID kernel.JobID) (*job.Job, error) {
	current, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, passThrough(err, "failed to get job")
	}

	toggled, err := s.jobRepo.ToggleActive(ctx, jobID, current.NextUpdatedDate(s.timestamp()))
	if err != nil {
		return nil, passThrough(err, "failed to toggle job")
	}

	logx.With("job_id", jobID.String(), "is_active", toggled.IsActive).Info("job toggled")
	return toggled, nil
}

// DeleteJob removes a job and all of its applications
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID) error {
	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	logx.With("job_id", jobID.String()).Info("job deleted")
	return nil
}

// passThrough keeps domain errors intact and wraps store failures as internal
func passThrough(err error, message string) error {
	if _, ok := errx.As(err); ok {
		return err
	}
	return errx.Wrap(err, message, errx.TypeInternal)
}
