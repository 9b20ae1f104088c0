package applicationsrv

import (
	"context"
	"testing"

	"github.com/Abraxas-365/vatalique/internal/store/storetest"
	"github.com/Abraxas-365/vatalique/pkg/errx"
	"github.com/Abraxas-365/vatalique/pkg/kernel"
	"github.com/Abraxas-365/vatalique/recruitment/application"
	"github.com/Abraxas-365/vatalique/recruitment/application/applicationinfra"
	"github.com/Abraxas-365/vatalique/recruitment/job"
	"github.com/Abraxas-365/vatalique/recruitment/job/jobinfra"
	"github.com/Abraxas-365/vatalique/recruitment/job/jobsrv"
	"github.com/Abraxas-365/vatalique/recruitment/resume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	jobs *jobsrv.JobService
	apps *ApplicationService
}

func newEnv(t *testing.T, policy *resume.URLPolicy) env {
	t.Helper()
	db := storetest.NewDB(t)
	jobRepo := jobinfra.NewSQLJobRepository(db)
	return env{
		jobs: jobsrv.NewJobService(jobRepo),
		apps: NewApplicationService(applicationinfra.NewSQLApplicationRepository(db), jobRepo, policy),
	}
}

func (e env) createJob(t *testing.T, title string) *job.Job {
	t.Helper()
	j, err := e.jobs.CreateJob(context.Background(), job.CreateJobRequest{
		Title:        kernel.JobTitle(title),
		Department:   "Engineering",
		Location:     "Remote",
		Type:         job.TypeFullTime,
		Description:  "desc",
		Requirements: "reqs",
	})
	require.NoError(t, err)
	return j
}

func submission(jobID kernel.JobID) application.SubmitApplicationRequest {
	return application.SubmitApplicationRequest{
		JobID:          jobID,
		ApplicantName:  " Alan Turing ",
		ApplicantEmail: "alan@example.com",
		ApplicantPhone: "555-0199",
		ResumeURL:      "https://cdn.example.com/resumes/alan.pdf",
	}
}

func TestApplicationLifecycle(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	a := e.createJob(t, "Job A")

	app, err := e.apps.Submit(ctx, submission(a.ID))
	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, app.Status)
	assert.Equal(t, kernel.ApplicantName("Alan Turing"), app.ApplicantName)
	require.NotNil(t, app.JobTitle)
	assert.Equal(t, "Job A", *app.JobTitle)

	byJob, err := e.apps.ListByJob(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, byJob, 1)
	assert.Equal(t, application.StatusPending, byJob[0].Status)

	updated, err := e.apps.UpdateStatus(ctx, app.ID, "shortlisted")
	require.NoError(t, err)
	assert.Equal(t, application.StatusShortlisted, updated.Status)

	fetched, err := e.apps.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusShortlisted, fetched.Status)

	require.NoError(t, e.jobs.DeleteJob(ctx, a.ID))

	_, err = e.apps.GetApplication(ctx, app.ID)
	assert.True(t, errx.IsCode(err, application.CodeApplicationNotFound))

	byJob, err = e.apps.ListByJob(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, byJob)
}

func TestSubmitRequiresActiveJob(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	a := e.createJob(t, "Job A")

	_, err := e.jobs.ToggleActive(ctx, a.ID)
	require.NoError(t, err)

	active, err := e.jobs.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = e.apps.Submit(ctx, submission(a.ID))
	assert.True(t, errx.IsCode(err, application.CodeJobNotAccepting))

	_, err = e.apps.Submit(ctx, submission("does-not-exist"))
	assert.True(t, errx.IsCode(err, application.CodeJobNotAccepting))

	all, err := e.apps.ListApplications(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, resume.NewURLPolicy("https://cdn.example.com/resumes/"))
	a := e.createJob(t, "Job A")

	req := submission(a.ID)
	req.ApplicantPhone = "   "
	_, err := e.apps.Submit(ctx, req)
	assert.True(t, errx.IsCode(err, application.CodeMissingFields))

	req = submission(a.ID)
	req.ApplicantEmail = "alan"
	_, err = e.apps.Submit(ctx, req)
	assert.True(t, errx.IsCode(err, application.CodeInvalidEmail))

	req = submission(a.ID)
	req.ResumeURL = "https://elsewhere.example.com/alan.pdf"
	_, err = e.apps.Submit(ctx, req)
	assert.True(t, errx.IsCode(err, resume.CodeInvalidURL))

	blank := "  "
	req = submission(a.ID)
	req.CoverLetter = &blank
	app, err := e.apps.Submit(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, app.CoverLetter)
}

func TestUpdateStatusAcceptsAllSixteenTransitions(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	a := e.createJob(t, "Job A")

	for _, from := range application.Statuses() {
		for _, to := range application.Statuses() {
			app, err := e.apps.Submit(ctx, submission(a.ID))
			require.NoError(t, err)

			_, err = e.apps.UpdateStatus(ctx, app.ID, string(from))
			require.NoError(t, err)

			got, err := e.apps.UpdateStatus(ctx, app.ID, string(to))
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, got.Status)
		}
	}
}

func TestUpdateStatusErrors(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	a := e.createJob(t, "Job A")
	app, err := e.apps.Submit(ctx, submission(a.ID))
	require.NoError(t, err)

	for _, bad := range []string{"", "approved", "PENDING", "withdrawn"} {
		_, err := e.apps.UpdateStatus(ctx, app.ID, bad)
		assert.True(t, errx.IsCode(err, application.CodeInvalidStatus), bad)
	}

	_, err = e.apps.UpdateStatus(ctx, kernel.ApplicationID("missing"), "reviewed")
	assert.True(t, errx.IsCode(err, application.CodeApplicationNotFound))
}

func TestCountsByJobMatchesListAll(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	a := e.createJob(t, "Job A")
	b := e.createJob(t, "Job B")
	empty := e.createJob(t, "Job C")

	for _, id := range []kernel.JobID{a.ID, a.ID, b.ID} {
		_, err := e.apps.Submit(ctx, submission(id))
		require.NoError(t, err)
	}

	counts, err := e.apps.CountsByJob(ctx)
	require.NoError(t, err)
	all, err := e.apps.ListApplications(ctx)
	require.NoError(t, err)

	sum := 0
	for _, n := range counts {
		sum += n
	}
	assert.Equal(t, len(all), sum)
	assert.Equal(t, 2, counts[a.ID])
	assert.Equal(t, 1, counts[b.ID])
	_, present := counts[empty.ID]
	assert.False(t, present)
}

func TestDeleteApplicationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	app, err := e.apps.Submit(ctx, submission(e.createJob(t, "Job A").ID))
	require.NoError(t, err)

	require.NoError(t, e.apps.DeleteApplication(ctx, app.ID))
	require.NoError(t, e.apps.DeleteApplication(ctx, app.ID))

	_, err = e.apps.GetApplication(ctx, app.ID)
	assert.True(t, errx.IsCode(err, application.CodeApplicationNotFound))
}
