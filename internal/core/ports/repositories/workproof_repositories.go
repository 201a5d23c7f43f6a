package repositories

import (
	"context"
	"time"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

// WorkProofReader defines read operations for work proof data
type WorkProofReader interface {
	// FindWorkProofByID retrieves a specific work proof by its unique identifier.
	FindWorkProofByID(ctx context.Context, proofID string) (*domain.WorkProof, error)

	// FindWorkProofByApplication retrieves the proof submitted for a given application, if any.
	FindWorkProofByApplication(ctx context.Context, applicationID string) (*domain.WorkProof, error)

	// ListWorkProofsByJob retrieves a paginated list of proofs for a job using token-based pagination.
	// It returns the proofs, a token for the next page, and an error.
	ListWorkProofsByJob(ctx context.Context, jobID string, statuses []domain.WorkProofStatus, limit int, nextToken *string) ([]domain.WorkProof, *string, error)

	// ListWorkProofsByWorker retrieves a paginated list of proofs submitted by a worker.
	ListWorkProofsByWorker(ctx context.Context, workerID string, limit int, nextToken *string) ([]domain.WorkProof, *string, error)

	// ListExpiredWorkProofs retrieves proofs whose rejection or revision deadline
	// has passed as of the given instant and that are still awaiting a worker response.
	ListExpiredWorkProofs(ctx context.Context, now time.Time, limit int) ([]domain.WorkProof, error)

	// ListStaleSubmittedWorkProofs retrieves submitted proofs on manual-approval
	// jobs whose review window (submittedAt + manualApprovalDays) has lapsed.
	ListStaleSubmittedWorkProofs(ctx context.Context, now time.Time, limit int) ([]domain.WorkProof, error)

	// CountApprovedWorkers returns the number of distinct workers with an approved
	// or completed proof on the given job.
	CountApprovedWorkers(ctx context.Context, jobID string) (int, error)
}

// WorkProofWriter defines write operations for work proof data
type WorkProofWriter interface {
	// SaveWorkProof persists a newly submitted work proof.
	SaveWorkProof(ctx context.Context, proof domain.WorkProof) error

	// UpdateWorkProof persists changes to an existing work proof.
	UpdateWorkProof(ctx context.Context, proof domain.WorkProof) error
}

// WorkProofRepositoryFacade combines all work-proof repository interfaces
type WorkProofRepositoryFacade interface {
	WorkProofReader
	WorkProofWriter
}
