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

const workProofColumns = `
	proof_id, job_id, application_id, worker_id, employer_id,
	title, submission_text, proof_files, proof_links, screenshots,
	status, payment_amount, amount_repaired,
	submission_number, revision_count,
	submitted_at, reviewed_at, review_feedback,
	rejection_deadline, revision_deadline,
	worker_response, worker_response_at,
	dispute_reason, dispute_evidence, dispute_requested_action,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxWorkProofRepository struct {
	BaseRepository
}

// newPgxWorkProofRepository creates a new repository for work proof data.
func newPgxWorkProofRepository(pool *pgxpool.Pool) portsrepo.WorkProofRepositoryFacade {
	return &PgxWorkProofRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkProofRepositoryFacade = (*PgxWorkProofRepository)(nil)

func scanWorkProof(row pgx.Row) (*models.WorkProof, error) {
	var m models.WorkProof
	err := row.Scan(
		&m.ProofID,
		&m.JobID,
		&m.ApplicationID,
		&m.WorkerID,
		&m.EmployerID,
		&m.Title,
		&m.SubmissionText,
		&m.ProofFiles,
		&m.ProofLinks,
		&m.Screenshots,
		&m.Status,
		&m.PaymentAmount,
		&m.AmountRepaired,
		&m.SubmissionNumber,
		&m.RevisionCount,
		&m.SubmittedAt,
		&m.ReviewedAt,
		&m.ReviewFeedback,
		&m.RejectionDeadline,
		&m.RevisionDeadline,
		&m.WorkerResponse,
		&m.WorkerResponseAt,
		&m.DisputeReason,
		&m.DisputeEvidence,
		&m.DisputeRequestedAction,
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

func (r *PgxWorkProofRepository) SaveWorkProof(ctx context.Context, proof domain.WorkProof) error {
	m := mapping.ToModelWorkProof(proof)
	query := `
		INSERT INTO work_proofs (` + workProofColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		        $21, $22, $23, $24, $25, $26, $27, $28, $29);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProofID, m.JobID, m.ApplicationID, m.WorkerID, m.EmployerID,
		m.Title, m.SubmissionText, m.ProofFiles, m.ProofLinks, m.Screenshots,
		m.Status, m.PaymentAmount, m.AmountRepaired,
		m.SubmissionNumber, m.RevisionCount,
		m.SubmittedAt, m.ReviewedAt, m.ReviewFeedback,
		m.RejectionDeadline, m.RevisionDeadline,
		m.WorkerResponse, m.WorkerResponseAt,
		m.DisputeReason, m.DisputeEvidence, m.DisputeRequestedAction,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			// One submission per application.
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert work proof "+m.ProofID, err)
	}
	return nil
}

func (r *PgxWorkProofRepository) UpdateWorkProof(ctx context.Context, proof domain.WorkProof) error {
	m := mapping.ToModelWorkProof(proof)
	query := `
		UPDATE work_proofs SET
			title = $2, submission_text = $3, proof_files = $4, proof_links = $5, screenshots = $6,
			status = $7, payment_amount = $8, amount_repaired = $9,
			submission_number = $10, revision_count = $11,
			submitted_at = $12, reviewed_at = $13, review_feedback = $14,
			rejection_deadline = $15, revision_deadline = $16,
			worker_response = $17, worker_response_at = $18,
			dispute_reason = $19, dispute_evidence = $20, dispute_requested_action = $21,
			last_updated_at = $22, last_updated_by = $23
		WHERE proof_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProofID,
		m.Title, m.SubmissionText, m.ProofFiles, m.ProofLinks, m.Screenshots,
		m.Status, m.PaymentAmount, m.AmountRepaired,
		m.SubmissionNumber, m.RevisionCount,
		m.SubmittedAt, m.ReviewedAt, m.ReviewFeedback,
		m.RejectionDeadline, m.RevisionDeadline,
		m.WorkerResponse, m.WorkerResponseAt,
		m.DisputeReason, m.DisputeEvidence, m.DisputeRequestedAction,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update work proof "+m.ProofID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("work proof not found: " + m.ProofID)
	}
	return nil
}

func (r *PgxWorkProofRepository) FindWorkProofByID(ctx context.Context, proofID string) (*domain.WorkProof, error) {
	query := `SELECT ` + workProofColumns + ` FROM work_proofs WHERE proof_id = $1;`
	m, err := scanWorkProof(r.Pool.QueryRow(ctx, query, proofID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find work proof by ID "+proofID, err)
	}
	proof := mapping.ToDomainWorkProof(*m)
	return &proof, nil
}

func (r *PgxWorkProofRepository) FindWorkProofByApplication(ctx context.Context, applicationID string) (*domain.WorkProof, error) {
	query := `SELECT ` + workProofColumns + ` FROM work_proofs WHERE application_id = $1;`
	m, err := scanWorkProof(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find work proof for application "+applicationID, err)
	}
	proof := mapping.ToDomainWorkProof(*m)
	return &proof, nil
}

func (r *PgxWorkProofRepository) ListWorkProofsByJob(ctx context.Context, jobID string, statuses []domain.WorkProofStatus, limit int, nextToken *string) ([]domain.WorkProof, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + workProofColumns + ` FROM work_proofs WHERE job_id = $1`
	args := []interface{}{jobID}

	if len(statuses) > 0 {
		statusStrs := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrs[i] = string(s)
		}
		args = append(args, statusStrs)
		baseQuery += ` AND status = ANY($` + strconv.Itoa(len(args)) + `)`
	}

	return r.listProofs(ctx, baseQuery, args, limit, fetchLimit, nextToken)
}

func (r *PgxWorkProofRepository) ListWorkProofsByWorker(ctx context.Context, workerID string, limit int, nextToken *string) ([]domain.WorkProof, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	baseQuery := `SELECT ` + workProofColumns + ` FROM work_proofs WHERE worker_id = $1`
	return r.listProofs(ctx, baseQuery, []interface{}{workerID}, limit, limit+1, nextToken)
}

// listProofs runs a cursor-paginated proof query ordered by newest first.
func (r *PgxWorkProofRepository) listProofs(ctx context.Context, baseQuery string, args []interface{}, limit, fetchLimit int, nextToken *string) ([]domain.WorkProof, *string, error) {
	orderByClause := `ORDER BY created_at DESC, proof_id DESC`

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
		baseQuery += ` AND (created_at, proof_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + ` ` + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query work proofs", err)
	}
	defer rows.Close()

	proofs := []models.WorkProof{}
	for rows.Next() {
		m, err := scanWorkProof(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan work proof row", err)
		}
		proofs = append(proofs, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating work proof rows", err)
	}

	var token *string
	if len(proofs) > limit {
		proofs = proofs[:limit]
		last := proofs[len(proofs)-1]
		t := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.ProofID)
		token = &t
	}

	return mapping.ToDomainWorkProofSlice(proofs), token, nil
}

// ListExpiredWorkProofs finds proofs whose rejection or revision deadline is
// past and that are still waiting on the worker.
func (r *PgxWorkProofRepository) ListExpiredWorkProofs(ctx context.Context, now time.Time, limit int) ([]domain.WorkProof, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT ` + workProofColumns + `
		FROM work_proofs
		WHERE (status = 'rejected' AND rejection_deadline IS NOT NULL AND rejection_deadline < $1)
		   OR (status = 'revision_requested' AND revision_deadline IS NOT NULL AND revision_deadline < $1)
		ORDER BY COALESCE(rejection_deadline, revision_deadline) ASC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expired work proofs", err)
	}
	defer rows.Close()

	proofs := []models.WorkProof{}
	for rows.Next() {
		m, err := scanWorkProof(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expired work proof row", err)
		}
		proofs = append(proofs, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expired work proof rows", err)
	}

	return mapping.ToDomainWorkProofSlice(proofs), nil
}

// ListStaleSubmittedWorkProofs finds submitted proofs on manual-approval jobs
// whose review window has lapsed without an employer decision.
func (r *PgxWorkProofRepository) ListStaleSubmittedWorkProofs(ctx context.Context, now time.Time, limit int) ([]domain.WorkProof, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT ` + workProofColumns + `
		FROM work_proofs wp
		WHERE wp.status = 'submitted'
		  AND EXISTS (
			SELECT 1 FROM jobs j
			WHERE j.job_id = wp.job_id
			  AND j.approval_type = 'manual'
			  AND wp.submitted_at + make_interval(days => j.manual_approval_days) < $1
		  )
		ORDER BY wp.submitted_at ASC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stale submitted work proofs", err)
	}
	defer rows.Close()

	proofs := []models.WorkProof{}
	for rows.Next() {
		m, err := scanWorkProof(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stale submitted work proof row", err)
		}
		proofs = append(proofs, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stale submitted work proof rows", err)
	}

	return mapping.ToDomainWorkProofSlice(proofs), nil
}

// CountApprovedWorkers counts distinct workers with a paid outcome on the job.
func (r *PgxWorkProofRepository) CountApprovedWorkers(ctx context.Context, jobID string) (int, error) {
	query := `
		SELECT COUNT(DISTINCT worker_id)
		FROM work_proofs
		WHERE job_id = $1 AND status IN ('approved', 'completed');
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, jobID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count approved workers for job "+jobID, err)
	}
	return count, nil
}
