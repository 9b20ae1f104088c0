package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Abraxas-365/vatalique/internal/ai/concierge"
	"github.com/Abraxas-365/vatalique/internal/httpx"
	"github.com/Abraxas-365/vatalique/pkg/config"
	"github.com/Abraxas-365/vatalique/pkg/iam/admin"
	"github.com/Abraxas-365/vatalique/pkg/logx"
	"github.com/Abraxas-365/vatalique/recruitment/application/applicationapi"
	"github.com/Abraxas-365/vatalique/recruitment/job/jobapi"
	"github.com/Abraxas-365/vatalique/recruitment/resume"
	"github.com/Abraxas-365/vatalique/recruitment/resume/resumeapi"
	"github.com/gofiber/fiber/v2"
)

func main() {
	// 1. Load configuration and initialize logger
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Invalid configuration: %v", err)
	}
	logx.SetLevel(logx.ParseLevel(cfg.LogLevel))
	logx.SetFormat(cfg.LogFormat)
	logx.Info("Starting Vatalique API Server...")

	// 2. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.Close()

	// 3. Create Fiber App with shared error handler and middleware
	app := httpx.NewApp(httpx.Options{
		AppName:     "Vatalique API",
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
		BodyLimit:   resume.MaxSize + 1<<20, // multipart overhead on top of the largest resume
	})

	// 4. Health Check
	health := func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
		}
		if container.Redis != nil {
			status["redis"] = container.Redis.Ping(c.Context()).Err() == nil
		}
		return c.JSON(status)
	}
	app.Get("/health", health)
	app.Get("/api/health", health)

	// 5. Register Routes

	// Admin: /api/admin/login, /api/admin/session
	admin.RegisterRoutes(app, container.AdminHandlers)

	// Jobs: /api/jobs
	jobapi.RegisterRoutes(app, container.JobHandlers, container.AdminMiddleware)

	// Applications: /api/applications
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers, container.AdminMiddleware)

	// Resume uploads: /api/uploads/resume
	resumeapi.RegisterRoutes(app, container.ResumeHandlers)

	// Concierge: /api/concierge/chat
	concierge.RegisterRoutes(app, container.ConciergeHandlers)

	// 6. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}
