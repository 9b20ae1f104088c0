package jobapi

import (
	"github.com/Abraxas-365/vatalique/pkg/iam/admin"
	"github.com/Abraxas-365/vatalique/pkg/kernel"
	"github.com/Abraxas-365/vatalique/recruitment/job"
	"github.com/Abraxas-365/vatalique/recruitment/job/jobsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListActiveJobs retrieves the jobs shown on the careers page
// GET /api/jobs/active
func (h *Handlers) ListActiveJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListActive(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// ListJobs retrieves every job
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// GetJobByID retrieves a job by ID
// GET /api/jobs/:id
func (h *Handlers) GetJobByID(c *fiber.Ctx) error {
	jobEntity, err := h.service.GetJob(c.Context(), kernel.NewJobID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(jobEntity)
}

// CreateJob creates a new job posting
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidBody().WithDetail("parse_error", err.Error())
	}

	newJob, err := h.service.CreateJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// UpdateJob replaces the fields of an existing job
// PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidBody().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateJob(c.Context(), kernel.NewJobID(c.Params("id")), req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// ToggleJob flips whether the job is active
// PATCH /api/jobs/:id/toggle
func (h *Handlers) ToggleJob(c *fiber.Ctx) error {
	toggled, err := h.service.ToggleActive(c.Context(), kernel.NewJobID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(toggled)
}

// DeleteJob deletes a job together with its applications
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	if err := h.service.DeleteJob(c.Context(), kernel.NewJobID(c.Params("id"))); err != nil {
		return err
	}

	return c.JSON(job.DeleteJobResponse{
		Success: true,
		Message: "Job deleted successfully",
	})
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, adminMiddleware *admin.Middleware) {
	api := app.Group("/api/jobs")
	requireAdmin := adminMiddleware.RequireAdmin()

	// Public routes. /active must be registered before /:id.
	api.Get("/active", handlers.ListActiveJobs)
	api.Get("/:id", handlers.GetJobByID)

	// Admin routes
	api.Get("/", requireAdmin, handlers.ListJobs)
	api.Post("/", requireAdmin, handlers.CreateJob)
	api.Put("/:id", requireAdmin, handlers.UpdateJob)
	api.Patch("/:id/toggle", requireAdmin, handlers.ToggleJob)
	api.Delete("/:id", requireAdmin, handlers.DeleteJob)
}
