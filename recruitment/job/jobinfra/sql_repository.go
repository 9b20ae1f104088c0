package jobinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/vatalique/internal/store"
	"github.com/Abraxas-365/vatalique/pkg/kernel"
	"github.com/Abraxas-365/vatalique/recruitment/job"
	"github.com/jmoiron/sqlx"
)

// SQLJobRepository implements job.Repository on PostgreSQL or SQLite
type SQLJobRepository struct {
	db *sqlx.DB
}

// NewSQLJobRepository creates a new SQL job repository
func NewSQLJobRepository(db *sqlx.DB) *SQLJobRepository {
	return &SQLJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID               string         `db:"id"`
	Title            string         `db:"title"`
	Department       string         `db:"department"`
	Location         string         `db:"location"`
	Type             string         `db:"type"`
	Description      string         `db:"description"`
	Requirements     string         `db:"requirements"`
	Responsibilities sql.NullString `db:"responsibilities"`
	SalaryRange      sql.NullString `db:"salary_range"`
	IsActive         bool           `db:"is_active"`
	PostedDate       time.Time      `db:"posted_date"`
	UpdatedDate      time.Time      `db:"updated_date"`
}

const jobColumns = `
	id, title, department, location, type, description, requirements,
	responsibilities, salary_range, is_active, posted_date, updated_date`

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() *job.Job {
	return &job.Job{
		ID:               kernel.JobID(m.ID),
		Title:            kernel.JobTitle(m.Title),
		Department:       kernel.Department(m.Department),
		Location:         kernel.Location(m.Location),
		Type:             job.Type(m.Type),
		Description:      m.Description,
		Requirements:     m.Requirements,
		Responsibilities: nullable(m.Responsibilities),
		SalaryRange:      nullable(m.SalaryRange),
		IsActive:         m.IsActive,
		PostedDate:       m.PostedDate.UTC(),
		UpdatedDate:      m.UpdatedDate.UTC(),
	}
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) *jobModel {
	return &jobModel{
		ID:               string(j.ID),
		Title:            string(j.Title),
		Department:       string(j.Department),
		Location:         string(j.Location),
		Type:             string(j.Type),
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: nullString(j.Responsibilities),
		SalaryRange:      nullString(j.SalaryRange),
		IsActive:         j.IsActive,
		PostedDate:       j.PostedDate.UTC(),
		UpdatedDate:      j.UpdatedDate.UTC(),
	}
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toEntities(models []jobModel) []job.Job {
	entities := make([]job.Job, 0, len(models))
	for i := range models {
		entities = append(entities, *models[i].toEntity())
	}
	return entities
}

// ============================================================================
// Repository Implementation
// ============================================================================

// ListActive retrieves active jobs ordered by posted_date descending
func (r *SQLJobRepository) ListActive(ctx context.Context) ([]job.Job, error) {
	query := r.db.Rebind(`SELECT ` + jobColumns + `
		FROM jobs
		WHERE is_active = ?
		ORDER BY posted_date DESC, id`)

	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, true); err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}

	return toEntities(models), nil
}

// ListAll retrieves every job ordered by posted_date descending
func (r *SQLJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM jobs
		ORDER BY posted_date DESC, id`

	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return toEntities(models), nil
}

// GetByID retrieves a job by ID
func (r *SQLJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := r.db.Rebind(`SELECT ` + jobColumns + `
		FROM jobs
		WHERE id = ?`)

	var model jobModel
	if err := r.db.GetContext(ctx, &model, query, string(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity(), nil
}

// Create creates a new job
func (r *SQLJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	query := `
		INSERT INTO jobs (
			id, title, department, location, type, description, requirements,
			responsibilities, salary_range, is_active, posted_date, updated_date
		) VALUES (
			:id, :title, :department, :location, :type, :description, :requirements,
			:responsibilities, :salary_range, :is_active, :posted_date, :updated_date
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(jobEntity)); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// Update replaces the mutable fields of a job
func (r *SQLJobRepository) Update(ctx context.Context, jobEntity *job.Job) error {
	query := `
		UPDATE jobs SET
			title = :title,
			department = :department,
			location = :location,
			type = :type,
			description = :description,
			requirements = :requirements,
			responsibilities = :responsibilities,
			salary_range = :salary_range,
			is_active = :is_active,
			updated_date = :updated_date
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, fromEntity(jobEntity))
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound().WithDetail("job_id", jobEntity.ID.String())
	}

	return nil
}

// ToggleActive flips is_active with a single statement so concurrent toggles never lose a flip
func (r *SQLJobRepository) ToggleActive(ctx context.Context, id kernel.JobID, updatedDate time.Time) (*job.Job, error) {
	query := r.db.Rebind(`
		UPDATE jobs
		SET is_active = NOT is_active,
		    updated_date = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query, updatedDate.UTC(), string(id))
	if err != nil {
		return nil, fmt.Errorf("failed to toggle job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
	}

	return r.GetByID(ctx, id)
}

// Delete removes the job's applications and then the job inside one transaction.
// Deleting a missing job succeeds.
func (r *SQLJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	return store.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM applications WHERE job_id = ?`), string(id)); err != nil {
			return fmt.Errorf("failed to delete job applications: %w", err)
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM jobs WHERE id = ?`), string(id)); err != nil {
			return fmt.Errorf("failed to delete job: %w", err)
		}

		return nil
	})
}
