package jobapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abraxas-365/vatalique/internal/httpx"
	"github.com/Abraxas-365/vatalique/internal/store/storetest"
	"github.com/Abraxas-365/vatalique/pkg/iam/admin"
	"github.com/Abraxas-365/vatalique/recruitment/job"
	"github.com/Abraxas-365/vatalique/recruitment/job/jobinfra"
	"github.com/Abraxas-365/vatalique/recruitment/job/jobsrv"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobBody = `{
	"title": "Backend Engineer",
	"department": "Engineering",
	"location": "Remote",
	"type": "full-time",
	"description": "Build the platform",
	"requirements": "Go\nSQL",
	"salary_range": "$100k - $120k"
}`

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	service := jobsrv.NewJobService(jobinfra.NewSQLJobRepository(storetest.NewDB(t)))

	app := httpx.NewApp(httpx.Options{})
	RegisterRoutes(app, NewHandlers(service), admin.NewMiddleware(nil, false))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestCreateAndFetchJob(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/jobs", jobBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[job.Job](t, resp)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.SalaryRange)

	resp = do(t, app, http.MethodGet, "/api/jobs/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := decode[job.Job](t, resp)
	assert.Equal(t, created.ID, fetched.ID)

	resp = do(t, app, http.MethodGet, "/api/jobs/active", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]job.Job](t, resp), 1)
}

func TestCreateJobValidationErrors(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/jobs", `{"title":"Only a title"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, string(job.CodeMissingFields), body["code"])

	resp = do(t, app, http.MethodPost, "/api/jobs", strings.Replace(jobBody, "full-time", "gig", 1))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/jobs", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownJobIs404(t *testing.T) {
	app := newTestApp(t)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/jobs/missing", ""},
		{http.MethodPut, "/api/jobs/missing", jobBody},
		{http.MethodPatch, "/api/jobs/missing/toggle", ""},
	} {
		resp := do(t, app, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestToggleHidesJobFromActiveList(t *testing.T) {
	app := newTestApp(t)

	created := decode[job.Job](t, do(t, app, http.MethodPost, "/api/jobs", jobBody))

	resp := do(t, app, http.MethodPatch, "/api/jobs/"+created.ID.String()+"/toggle", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[job.Job](t, resp).IsActive)

	assert.Empty(t, decode[[]job.Job](t, do(t, app, http.MethodGet, "/api/jobs/active", "")))
	assert.Len(t, decode[[]job.Job](t, do(t, app, http.MethodGet, "/api/jobs", "")), 1)
}

func TestUpdateJob(t *testing.T) {
	app := newTestApp(t)

	created := decode[job.Job](t, do(t, app, http.MethodPost, "/api/jobs", jobBody))

	resp := do(t, app, http.MethodPut, "/api/jobs/"+created.ID.String(),
		strings.Replace(jobBody, "Backend Engineer", "Platform Engineer", 1))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[job.Job](t, resp)
	assert.Equal(t, "Platform Engineer", string(updated.Title))
	assert.True(t, updated.UpdatedDate.After(created.UpdatedDate))
}

func TestDeleteJobAlwaysSucceeds(t *testing.T) {
	app := newTestApp(t)

	created := decode[job.Job](t, do(t, app, http.MethodPost, "/api/jobs", jobBody))

	for range 2 {
		resp := do(t, app, http.MethodDelete, "/api/jobs/"+created.ID.String(), "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[job.DeleteJobResponse](t, resp)
		assert.True(t, body.Success)
	}

	resp := do(t, app, http.MethodGet, "/api/jobs/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
