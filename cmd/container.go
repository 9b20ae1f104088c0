package main

import (
	"context"
	"time"

	"github.com/Abraxas-365/vatalique/internal/ai/concierge"
	"github.com/Abraxas-365/vatalique/internal/store"
	"github.com/Abraxas-365/vatalique/pkg/config"
	"github.com/Abraxas-365/vatalique/pkg/iam/admin"
	"github.com/Abraxas-365/vatalique/pkg/logx"
	"github.com/Abraxas-365/vatalique/recruitment/application/applicationapi"
	"github.com/Abraxas-365/vatalique/recruitment/application/applicationinfra"
	"github.com/Abraxas-365/vatalique/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/vatalique/recruitment/job"
	"github.com/Abraxas-365/vatalique/recruitment/job/jobapi"
	"github.com/Abraxas-365/vatalique/recruitment/job/jobinfra"
	"github.com/Abraxas-365/vatalique/recruitment/job/jobsrv"
	"github.com/Abraxas-365/vatalique/recruitment/resume"
	"github.com/Abraxas-365/vatalique/recruitment/resume/resumeapi"
	"github.com/Abraxas-365/vatalique/recruitment/resume/resumeinfra"
	"github.com/Abraxas-365/vatalique/recruitment/resume/resumesrv"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/openai/openai-go/v3/option"
)

// Container holds all application dependencies
type Container struct {
	Config config.Config

	// Infrastructure
	DB            *sqlx.DB
	Redis         *redis.Client // nil when REDIS_ADDR is unset
	S3Client      *s3.Client    // nil when AWS_BUCKET is unset
	ResumeStorage resume.Storage

	// Admin gate
	AdminGate       *admin.Gate
	AdminTokens     *admin.TokenService
	AdminMiddleware *admin.Middleware

	// Recruitment Services
	JobService         *jobsrv.JobService
	ApplicationService *applicationsrv.ApplicationService
	ResumeService      *resumesrv.Service

	// API Handlers
	AdminHandlers       *admin.Handlers
	JobHandlers         *jobapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	ResumeHandlers      *resumeapi.Handlers
	ConciergeHandlers   *concierge.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initRepositories()
	return c
}

func (c *Container) initInfrastructure() {
	ctx := context.Background()

	// 1. Database connection and schema
	db, err := store.Open(c.Config.Database)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	if err := store.Migrate(ctx, db); err != nil {
		logx.Fatalf("Failed to migrate database: %v", err)
	}
	c.DB = db
	logx.Infof("Database ready (driver=%s)", c.Config.Database.Driver)

	// 2. Redis connection (optional)
	if c.Config.Redis.Enabled() {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     c.Config.Redis.Addr,
			Password: c.Config.Redis.Password,
			DB:       0,
		})
		if _, err := c.Redis.Ping(ctx).Result(); err != nil {
			logx.Warnf("Failed to connect to Redis, active jobs will be read from the database until it recovers: %v", err)
		}
	} else {
		logx.Info("REDIS_ADDR is not set, active jobs cache disabled")
	}

	// 3. AWS S3 resume storage (optional)
	if c.Config.Resume.StorageEnabled() {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.Config.Resume.AWSRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.S3Client = s3.NewFromConfig(awsCfg)
		c.ResumeStorage = resumeinfra.NewS3Storage(
			c.S3Client,
			c.Config.Resume.Bucket,
			c.Config.Resume.AWSRegion,
			c.Config.Resume.PublicBaseURL,
		)
	} else {
		logx.Warn("AWS_BUCKET is not set, resume uploads are disabled")
	}

	// 4. Admin gate
	c.AdminGate = admin.NewGate(c.Config.Admin.Password, c.Config.Admin.PasswordBcrypt)
	if !c.AdminGate.Configured() {
		logx.Warn("ADMIN_PASSWORD is not set, every admin login will fail")
	}
	c.AdminTokens = admin.NewTokenService(c.Config.Admin.TokenSecret, c.Config.Admin.TokenTTL)
	c.AdminMiddleware = admin.NewMiddleware(c.AdminTokens, c.Config.Admin.EnforceToken)
	if !c.Config.Admin.EnforceToken {
		logx.Warn("Admin routes are not verified per request; set ADMIN_TOKEN_SECRET and ADMIN_ENFORCE_TOKEN=true to require tokens")
	}
}

func (c *Container) initRepositories() {
	// --- Recruitment Repositories ---
	var jobRepo job.Repository = jobinfra.NewSQLJobRepository(c.DB)
	if c.Redis != nil {
		jobRepo = jobinfra.NewCachedJobRepository(jobRepo, c.Redis, c.Config.Redis.JobsTTL)
	}
	applicationRepo := applicationinfra.NewSQLApplicationRepository(c.DB)

	// Resume URLs must come from the configured prefixes, plus our own bucket when uploads are on
	prefixes := c.Config.Resume.URLPrefixes
	if s3Storage, ok := c.ResumeStorage.(*resumeinfra.S3Storage); ok && len(prefixes) > 0 {
		prefixes = append(prefixes, s3Storage.BaseURL())
	}
	urlPolicy := resume.NewURLPolicy(prefixes...)

	// --- Domain Services ---
	c.JobService = jobsrv.NewJobService(jobRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, jobRepo, urlPolicy)
	c.ResumeService = resumesrv.NewService(c.ResumeStorage)

	// --- API Handlers ---
	c.AdminHandlers = admin.NewHandlers(c.AdminGate, c.AdminTokens)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.ResumeHandlers = resumeapi.NewHandlers(c.ResumeService)

	var assistant *concierge.Concierge
	if c.Config.OpenAI.APIKey != "" {
		assistant = concierge.New(c.Config.OpenAI.APIKey, c.Config.OpenAI.Model, option.WithRequestTimeout(30*time.Second))
	} else {
		logx.Warn("OPENAI_API_KEY is not set, concierge chat is disabled")
	}
	c.ConciergeHandlers = concierge.NewHandlers(assistant)
}

// Close releases connections held by the container
func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Warnf("Failed to close Redis: %v", err)
		}
	}
	if err := c.DB.Close(); err != nil {
		logx.Warnf("Failed to close database: %v", err)
	}
}
