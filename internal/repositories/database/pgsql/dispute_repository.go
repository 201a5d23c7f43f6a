package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
	"github.com/khaledkhbro/microjob-backend/internal/models"
	"github.com/khaledkhbro/microjob-backend/internal/utils/mapping"
	"github.com/khaledkhbro/microjob-backend/internal/utils/pagination"
)

const disputeColumns = `
	dispute_id, job_id, work_proof_id, worker_id, employer_id,
	job_title, amount, reason, evidence, requested_action,
	status, priority, resolution, admin_id, admin_notes, resolved_at,
	created_at, created_by, last_updated_at, last_updated_by`

// activeDisputeConstraint backs the one-active-dispute-per-proof rule via a
// partial unique index.
const activeDisputeConstraint = "disputes_active_per_proof_uniq"

type PgxDisputeRepository struct {
	BaseRepository
}

// newPgxDisputeRepository creates a new repository for dispute data.
func newPgxDisputeRepository(pool *pgxpool.Pool) portsrepo.DisputeRepositoryFacade {
	return &PgxDisputeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DisputeRepositoryFacade = (*PgxDisputeRepository)(nil)

func scanDispute(row pgx.Row) (*models.Dispute, error) {
	var m models.Dispute
	err := row.Scan(
		&m.DisputeID,
		&m.JobID,
		&m.WorkProofID,
		&m.WorkerID,
		&m.EmployerID,
		&m.JobTitle,
		&m.Amount,
		&m.Reason,
		&m.Evidence,
		&m.RequestedAction,
		&m.Status,
		&m.Priority,
		&m.Resolution,
		&m.AdminID,
		&m.AdminNotes,
		&m.ResolvedAt,
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

func (r *PgxDisputeRepository) SaveDispute(ctx context.Context, dispute domain.Dispute) error {
	m := mapping.ToModelDispute(dispute)
	query := `
		INSERT INTO disputes (` + disputeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DisputeID, m.JobID, m.WorkProofID, m.WorkerID, m.EmployerID,
		m.JobTitle, m.Amount, m.Reason, m.Evidence, m.RequestedAction,
		m.Status, m.Priority, m.Resolution, m.AdminID, m.AdminNotes, m.ResolvedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == activeDisputeConstraint {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert dispute "+m.DisputeID, err)
	}
	return nil
}

func (r *PgxDisputeRepository) UpdateDispute(ctx context.Context, dispute domain.Dispute) error {
	m := mapping.ToModelDispute(dispute)
	query := `
		UPDATE disputes SET
			status = $2, priority = $3, resolution = $4,
			admin_id = $5, admin_notes = $6, resolved_at = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE dispute_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DisputeID,
		m.Status, m.Priority, m.Resolution,
		m.AdminID, m.AdminNotes, m.ResolvedAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update dispute "+m.DisputeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("dispute not found: " + m.DisputeID)
	}
	return nil
}

func (r *PgxDisputeRepository) FindDisputeByID(ctx context.Context, disputeID string) (*domain.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE dispute_id = $1;`
	m, err := scanDispute(r.Pool.QueryRow(ctx, query, disputeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find dispute by ID "+disputeID, err)
	}
	dispute := mapping.ToDomainDispute(*m)
	return &dispute, nil
}

func (r *PgxDisputeRepository) FindActiveDisputeByWorkProof(ctx context.Context, proofID string) (*domain.Dispute, error) {
	query := `
		SELECT ` + disputeColumns + `
		FROM disputes
		WHERE work_proof_id = $1 AND status IN ('pending', 'under_review', 'escalated');
	`
	m, err := scanDispute(r.Pool.QueryRow(ctx, query, proofID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find active dispute for work proof "+proofID, err)
	}
	dispute := mapping.ToDomainDispute(*m)
	return &dispute, nil
}

func (r *PgxDisputeRepository) ListDisputes(ctx context.Context, status *domain.DisputeStatus, limit int, nextToken *string) ([]domain.Dispute, *string, error) {
	baseQuery := `SELECT ` + disputeColumns + ` FROM disputes WHERE 1=1`
	args := []interface{}{}
	if status != nil {
		args = append(args, string(*status))
		baseQuery += ` AND status = $` + strconv.Itoa(len(args))
	}
	return r.listDisputes(ctx, baseQuery, args, limit, nextToken)
}

func (r *PgxDisputeRepository) ListDisputesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Dispute, *string, error) {
	baseQuery := `SELECT ` + disputeColumns + ` FROM disputes WHERE (worker_id = $1 OR employer_id = $1)`
	return r.listDisputes(ctx, baseQuery, []interface{}{userID}, limit, nextToken)
}

func (r *PgxDisputeRepository) listDisputes(ctx context.Context, baseQuery string, args []interface{}, limit int, nextToken *string) ([]domain.Dispute, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1
	orderByClause := `ORDER BY created_at DESC, dispute_id DESC`

	if nextToken != nil && *nextToken != "" {
		fields, decodeErr := pagination.DecodeMultiFieldToken(*nextToken)
		if decodeErr != nil || len(fields) != 2 {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		lastCreatedAt, parseErr := time.Parse(time.RFC3339Nano, fields[0])
		if parseErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", parseErr)
		}
		args = append(args, lastCreatedAt, fields[1])
		baseQuery += ` AND (created_at, dispute_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + ` ` + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query disputes", err)
	}
	defer rows.Close()

	disputes := []models.Dispute{}
	for rows.Next() {
		m, err := scanDispute(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan dispute row", err)
		}
		disputes = append(disputes, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating dispute rows", err)
	}

	var token *string
	if len(disputes) > limit {
		disputes = disputes[:limit]
		last := disputes[len(disputes)-1]
		t := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.DisputeID)
		token = &t
	}

	return mapping.ToDomainDisputeSlice(disputes), token, nil
}
