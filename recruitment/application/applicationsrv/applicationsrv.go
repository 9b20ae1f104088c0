package applicationsrv

import (
	"context"
	"strings"
	"time"

	"github.com/Abraxas-365/vatalique/pkg/errx"
	"github.com/Abraxas-365/vatalique/pkg/kernel"
	"github.com/Abraxas-365/vatalique/pkg/logx"
	"github.com/Abraxas-365/vatalique/recruitment/application"
	"github.com/Abraxas-365/vatalique/recruitment/job"
	"github.com/Abraxas-365/vatalique/recruitment/resume"
	"github.com/google/uuid"
)

// ApplicationService provides business operations for applications
type ApplicationService struct {
	appRepo   application.Repository
	jobRepo   job.Repository
	urlPolicy *resume.URLPolicy
	now       func() time.Time
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	appRepo application.Repository,
	jobRepo job.Repository,
	urlPolicy *resume.URLPolicy,
) *ApplicationService {
	if urlPolicy == nil {
		urlPolicy = resume.NewURLPolicy()
	}
	return &ApplicationService{
		appRepo:   appRepo,
		jobRepo:   jobRepo,
		urlPolicy: urlPolicy,
		now:       time.Now,
	}
}

// ListApplications retrieves every application with job details
func (s *ApplicationService) ListApplications(ctx context.Context) ([]application.EnrichedApplication, error) {
	apps, err := s.appRepo.ListAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}
	return apps, nil
}

// ListByJob retrieves the applications submitted to one job
func (s *ApplicationService) ListByJob(ctx context.Context, jobID kernel.JobID) ([]application.EnrichedApplication, error) {
	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications by job", errx.TypeInternal)
	}
	return apps, nil
}

// GetApplication retrieves an application with job details
func (s *ApplicationService) GetApplication(ctx context.Context, id kernel.ApplicationID) (*application.EnrichedApplication, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, passThrough(err, "failed to get application")
	}
	return app, nil
}

// Submit records a public application against an active job
func (s *ApplicationService) Submit(ctx context.Context, req application.SubmitApplicationRequest) (*application.EnrichedApplication, error) {
	newApp := &application.Application{
		ID:             kernel.NewApplicationID(uuid.NewString()),
		JobID:          kernel.NewJobID(strings.TrimSpace(req.JobID.String())),
		ApplicantName:  kernel.ApplicantName(strings.TrimSpace(string(req.ApplicantName))),
		ApplicantEmail: kernel.Email(strings.TrimSpace(string(req.ApplicantEmail))),
		ApplicantPhone: kernel.Phone(strings.TrimSpace(string(req.ApplicantPhone))),
		ResumeURL:      kernel.ResumeURL(strings.TrimSpace(req.ResumeURL.String())),
		CoverLetter:    optional(req.CoverLetter),
		Status:         application.StatusPending,
		AppliedDate:    s.now().UTC().Truncate(time.Microsecond),
	}

	if err := newApp.Validate(); err != nil {
		return nil, err
	}

	if err := s.urlPolicy.Check(newApp.ResumeURL); err != nil {
		return nil, err
	}

	// The job must exist and be active at submission time only
	target, err := s.jobRepo.GetByID(ctx, newApp.JobID)
	if err != nil {
		if errx.IsCode(err, job.CodeJobNotFound) {
			return nil, application.ErrJobNotAccepting().WithDetail("job_id", newApp.JobID.String())
		}
		return nil, errx.Wrap(err, "failed to get job", errx.TypeInternal)
	}
	if !target.AcceptsApplications() {
		return nil, application.ErrJobNotAccepting().WithDetail("job_id", newApp.JobID.String())
	}

	if err := s.appRepo.Create(ctx, newApp); err != nil {
		return nil, passThrough(err, "failed to create application")
	}

	logx.With("application_id", newApp.ID.String(), "job_id", newApp.JobID.String()).Info("application submitted")

	return s.GetApplication(ctx, newApp.ID)
}

// UpdateStatus moves an application to any of the review statuses
func (s *ApplicationService) UpdateStatus(ctx context.Context, id kernel.ApplicationID, rawStatus string) (*application.EnrichedApplication, error) {
	status, err := application.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	if err := s.appRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, passThrough(err, "failed to update application status")
	}

	return s.GetApplication(ctx, id)
}

// DeleteApplication removes an application
func (s *ApplicationService) DeleteApplication(ctx context.Context, id kernel.ApplicationID) error {
	if err := s.appRepo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete application", errx.TypeInternal)
	}
	return nil
}

// CountsByJob maps job ids to their number of applications
func (s *ApplicationService) CountsByJob(ctx context.Context) (map[kernel.JobID]int, error) {
	counts, err := s.appRepo.CountByJob(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}
	return counts, nil
}

// passThrough keeps domain errors intact and wraps store failures as internal
func passThrough(err error, message string) error {
	if _, ok := errx.As(err); ok {
		return err
	}
	return errx.Wrap(err, message, errx.TypeInternal)
}

func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
