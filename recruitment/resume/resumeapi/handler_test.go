package resumeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Abraxas-365/vatalique/internal/httpx"
	"github.com/Abraxas-365/vatalique/recruitment/resume"
	"github.com/Abraxas-365/vatalique/recruitment/resume/resumesrv"
	"github.com/Abraxas-365/vatalique/recruitment/resume/resumetest"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discardStorage struct{}

func (discardStorage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := io.Copy(io.Discard, body)
	return "https://cdn.example.com/" + key, err
}

func newTestApp(storage resume.Storage) *fiber.App {
	app := httpx.NewApp(httpx.Options{})
	RegisterRoutes(app, NewHandlers(resumesrv.NewService(storage)))
	return app
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads/resume", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadResume(t *testing.T) {
	app := newTestApp(discardStorage{})

	resp, err := app.Test(multipartRequest(t, "file", "cv.pdf", resumetest.MinimalPDF()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result resume.UploadResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Contains(t, result.URL.String(), "https://cdn.example.com/resumes/")
	assert.Equal(t, int64(len(resumetest.MinimalPDF())), result.Size)
}

func TestUploadResumeRejections(t *testing.T) {
	app := newTestApp(discardStorage{})

	resp, err := app.Test(multipartRequest(t, "file", "cv.docx", []byte("PK\x03\x04 not a pdf")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(multipartRequest(t, "attachment", "cv.pdf", resumetest.MinimalPDF()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadResumeWithoutStorage(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(multipartRequest(t, "file", "cv.pdf", resumetest.MinimalPDF()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
