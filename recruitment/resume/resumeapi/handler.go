package resumeapi

import (
	"io"

	"github.com/Abraxas-365/vatalique/recruitment/resume"
	"github.com/Abraxas-365/vatalique/recruitment/resume/resumesrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for resume uploads
type Handlers struct {
	service *resumesrv.Service
}

// NewHandlers creates a new resume handlers instance
func NewHandlers(service *resumesrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// UploadResume stores a PDF resume and returns its URL for the application form
// POST /api/uploads/resume
func (h *Handlers) UploadResume(c *fiber.Ctx) error {
	if !h.service.Enabled() {
		return resume.ErrStorageUnavailable()
	}

	header, err := c.FormFile("file")
	if err != nil {
		return resume.ErrMissingFile()
	}
	if header.Size > resume.MaxSize {
		return resume.ErrFileTooLarge().WithDetail("size", header.Size)
	}

	file, err := header.Open()
	if err != nil {
		return resume.ErrMissingFile().WithDetail("reason", err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, resume.MaxSize+1))
	if err != nil {
		return resume.ErrMissingFile().WithDetail("reason", err.Error())
	}

	result, err := h.service.Upload(c.Context(), data)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// RegisterRoutes registers resume upload routes. Uploads are public: applicants
// upload before submitting the application form.
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/uploads")

	api.Post("/resume", handlers.UploadResume)
}
