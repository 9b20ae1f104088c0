package applicationapi

import (
	"github.com/Abraxas-365/vatalique/pkg/iam/admin"
	"github.com/Abraxas-365/vatalique/pkg/kernel"
	"github.com/Abraxas-365/vatalique/recruitment/application"
	"github.com/Abraxas-365/vatalique/recruitment/application/applicationsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListApplications retrieves every application
// GET /api/applications
func (h *Handlers) ListApplications(c *fiber.Ctx) error {
	apps, err := h.service.ListApplications(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// ListByJob retrieves the applications for one job
// GET /api/applications/job/:jobId
func (h *Handlers) ListByJob(c *fiber.Ctx) error {
	apps, err := h.service.ListByJob(c.Context(), kernel.NewJobID(c.Params("jobId")))
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// CountsByJob returns the number of applications per job
// GET /api/applications/count/by-job
func (h *Handlers) CountsByJob(c *fiber.Ctx) error {
	counts, err := h.service.CountsByJob(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(counts)
}

// GetApplication retrieves an application by ID
// GET /api/applications/:id
func (h *Handlers) GetApplication(c *fiber.Ctx) error {
	app, err := h.service.GetApplication(c.Context(), kernel.NewApplicationID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// SubmitApplication records a public application
// POST /api/applications
func (h *Handlers) SubmitApplication(c *fiber.Ctx) error {
	var req application.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidBody().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.Submit(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// UpdateStatus changes an application's review status
// PATCH /api/applications/:id/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidBody().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.UpdateStatus(c.Context(), kernel.NewApplicationID(c.Params("id")), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// DeleteApplication deletes an application
// DELETE /api/applications/:id
func (h *Handlers) DeleteApplication(c *fiber.Ctx) error {
	if err := h.service.DeleteApplication(c.Context(), kernel.NewApplicationID(c.Params("id"))); err != nil {
		return err
	}

	return c.JSON(application.DeleteApplicationResponse{
		Success: true,
		Message: "Application deleted successfully",
	})
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, adminMiddleware *admin.Middleware) {
	api := app.Group("/api/applications")
	requireAdmin := adminMiddleware.RequireAdmin()

	// Public submission
	api.Post("/", handlers.SubmitApplication)

	// Admin routes. Literal paths come before /:id.
	api.Get("/", requireAdmin, handlers.ListApplications)
	api.Get("/count/by-job", requireAdmin, handlers.CountsByJob)
	api.Get("/job/:jobId", requireAdmin, handlers.ListByJob)
	api.Get("/:id", requireAdmin, handlers.GetApplication)
	api.Patch("/:id/status", requireAdmin, handlers.UpdateStatus)
	api.Delete("/:id", requireAdmin, handlers.DeleteApplication)
}
