package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
	"github.com/khaledkhbro/microjob-backend/internal/models"
	"github.com/khaledkhbro/microjob-backend/internal/utils/mapping"
)

const jobColumns = `
	job_id, employer_id, title, approval_type, manual_approval_days,
	workers_needed, budget_min, budget_max, status,
	created_at, created_by, last_updated_at, last_updated_by`

const applicationColumns = `
	application_id, job_id, worker_id, proposed_budget, status,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxJobRepository struct {
	BaseRepository
}

// newPgxJobRepository creates a new repository for job and application data.
func newPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepositoryFacade {
	return &PgxJobRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JobRepositoryFacade = (*PgxJobRepository)(nil)

func scanJob(row pgx.Row) (*models.Job, error) {
	var m models.Job
	err := row.Scan(
		&m.JobID,
		&m.EmployerID,
		&m.Title,
		&m.ApprovalType,
		&m.ManualApprovalDays,
		&m.WorkersNeeded,
		&m.BudgetMin,
		&m.BudgetMax,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanApplication(row pgx.Row) (*models.JobApplication, error) {
	var m models.JobApplication
	err := row.Scan(
		&m.ApplicationID,
		&m.JobID,
		&m.WorkerID,
		&m.ProposedBudget,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE job_id = $1;`
	m, err := scanJob(r.Pool.QueryRow(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find job by ID "+jobID, err)
	}
	job := mapping.ToDomainJob(*m)
	return &job, nil
}

func (r *PgxJobRepository) UpdateJobStatus(ctx context.Context, jobID string, status domain.JobStatus, updatedBy string) error {
	query := `
		UPDATE jobs SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE job_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, jobID, string(status), time.Now(), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of job "+jobID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("job not found: " + jobID)
	}
	return nil
}

func (r *PgxJobRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE application_id = $1;`
	m, err := scanApplication(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find application by ID "+applicationID, err)
	}
	app := mapping.ToDomainApplication(*m)
	return &app, nil
}

func (r *PgxJobRepository) FindAcceptedApplication(ctx context.Context, jobID, workerID string) (*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE job_id = $1 AND worker_id = $2 AND status = 'accepted'
		ORDER BY created_at DESC
		LIMIT 1;
	`
	m, err := scanApplication(r.Pool.QueryRow(ctx, query, jobID, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find accepted application for job "+jobID, err)
	}
	app := mapping.ToDomainApplication(*m)
	return &app, nil
}

func (r *PgxJobRepository) FindAnyAcceptedApplication(ctx context.Context, jobID string) (*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE job_id = $1 AND status = 'accepted'
		ORDER BY created_at ASC
		LIMIT 1;
	`
	m, err := scanApplication(r.Pool.QueryRow(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find accepted application for job "+jobID, err)
	}
	app := mapping.ToDomainApplication(*m)
	return &app, nil
}
