package applicationinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/vatalique/pkg/kernel"
	"github.com/Abraxas-365/vatalique/recruitment/application"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLApplicationRepository implements application.Repository on PostgreSQL or SQLite
type SQLApplicationRepository struct {
	db *sqlx.DB
}

// NewSQLApplicationRepository creates a new SQL application repository
func NewSQLApplicationRepository(db *sqlx.DB) *SQLApplicationRepository {
	return &SQLApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type applicationModel struct {
	ID             string         `db:"id"`
	JobID          string         `db:"job_id"`
	ApplicantName  string         `db:"applicant_name"`
	ApplicantEmail string         `db:"applicant_email"`
	ApplicantPhone string         `db:"applicant_phone"`
	ResumeURL      string         `db:"resume_url"`
	CoverLetter    sql.NullString `db:"cover_letter"`
	Status         string         `db:"status"`
	AppliedDate    time.Time      `db:"applied_date"`
}

// enrichedModel for joined queries
type enrichedModel struct {
	applicationModel
	JobTitle      sql.NullString `db:"job_title"`
	JobDepartment sql.NullString `db:"job_department"`
}

const enrichedSelect = `
	SELECT
		a.id, a.job_id, a.applicant_name, a.applicant_email, a.applicant_phone,
		a.resume_url, a.cover_letter, a.status, a.applied_date,
		j.title AS job_title, j.department AS job_department
	FROM applications a
	LEFT JOIN jobs j ON j.id = a.job_id`

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() application.Application {
	return application.Application{
		ID:             kernel.ApplicationID(m.ID),
		JobID:          kernel.JobID(m.JobID),
		ApplicantName:  kernel.ApplicantName(m.ApplicantName),
		ApplicantEmail: kernel.Email(m.ApplicantEmail),
		ApplicantPhone: kernel.Phone(m.ApplicantPhone),
		ResumeURL:      kernel.ResumeURL(m.ResumeURL),
		CoverLetter:    nullable(m.CoverLetter),
		Status:         application.Status(m.Status),
		AppliedDate:    m.AppliedDate.UTC(),
	}
}

func (m *enrichedModel) toEntity() application.EnrichedApplication {
	return application.EnrichedApplication{
		Application:   m.applicationModel.toEntity(),
		JobTitle:      nullable(m.JobTitle),
		JobDepartment: nullable(m.JobDepartment),
	}
}

// fromEntity converts domain entity to database model
func fromEntity(app *application.Application) *applicationModel {
	model := &applicationModel{
		ID:             string(app.ID),
		JobID:          string(app.JobID),
		ApplicantName:  string(app.ApplicantName),
		ApplicantEmail: string(app.ApplicantEmail),
		ApplicantPhone: string(app.ApplicantPhone),
		ResumeURL:      string(app.ResumeURL),
		Status:         string(app.Status),
		AppliedDate:    app.AppliedDate.UTC(),
	}
	if app.CoverLetter != nil {
		model.CoverLetter = sql.NullString{String: *app.CoverLetter, Valid: true}
	}
	return model
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toEntities(models []enrichedModel) []application.EnrichedApplication {
	entities := make([]application.EnrichedApplication, 0, len(models))
	for i := range models {
		entities = append(entities, models[i].toEntity())
	}
	return entities
}

// isForeignKeyViolation recognizes FK failures from both supported drivers
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		// extended result codes are not always enabled, so fall back to the primary code
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY ||
			(liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "FOREIGN KEY"))
	}
	return false
}

// ============================================================================
// Repository Implementation
// ============================================================================

// ListAll retrieves every application with job details ordered by applied_date descending
func (r *SQLApplicationRepository) ListAll(ctx context.Context) ([]application.EnrichedApplication, error) {
	query := enrichedSelect + `
		ORDER BY a.applied_date DESC, a.id`

	var models []enrichedModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return toEntities(models), nil
}

// ListByJob retrieves one job's applications ordered by applied_date descending
func (r *SQLApplicationRepository) ListByJob(ctx context.Context, jobID kernel.JobID) ([]application.EnrichedApplication, error) {
	query := r.db.Rebind(enrichedSelect + `
		WHERE a.job_id = ?
		ORDER BY a.applied_date DESC, a.id`)

	var models []enrichedModel
	if err := r.db.SelectContext(ctx, &models, query, string(jobID)); err != nil {
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}

	return toEntities(models), nil
}

// GetByID retrieves an application with job details
func (r *SQLApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.EnrichedApplication, error) {
	query := r.db.Rebind(enrichedSelect + `
		WHERE a.id = ?`)

	var model enrichedModel
	if err := r.db.GetContext(ctx, &model, query, string(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	entity := model.toEntity()
	return &entity, nil
}

// Create creates a new application
func (r *SQLApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	query := `
		INSERT INTO applications (
			id, job_id, applicant_name, applicant_email, applicant_phone,
			resume_url, cover_letter, status, applied_date
		) VALUES (
			:id, :job_id, :applicant_name, :applicant_email, :applicant_phone,
			:resume_url, :cover_letter, :status, :applied_date
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(app)); err != nil {
		if isForeignKeyViolation(err) {
			return application.ErrJobNotAccepting().WithDetail("job_id", app.JobID.String())
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// UpdateStatus sets the status of an application
func (r *SQLApplicationRepository) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.Status) error {
	query := r.db.Rebind(`UPDATE applications SET status = ? WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, string(status), string(id))
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	return nil
}

// Delete deletes an application by ID
func (r *SQLApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	query := r.db.Rebind(`DELETE FROM applications WHERE id = ?`)

	if _, err := r.db.ExecContext(ctx, query, string(id)); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	return nil
}

// CountByJob counts applications per job. Jobs without applications are absent.
func (r *SQLApplicationRepository) CountByJob(ctx context.Context) (map[kernel.JobID]int, error) {
	query := `
		SELECT job_id, COUNT(*) AS count
		FROM applications
		GROUP BY job_id
	`

	var rows []struct {
		JobID string `db:"job_id"`
		Count int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to count applications by job: %w", err)
	}

	counts := make(map[kernel.JobID]int, len(rows))
	for _, row := range rows {
		counts[kernel.JobID(row.JobID)] = row.Count
	}
	return counts, nil
}
