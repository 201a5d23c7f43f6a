package repositories

import (
	"context"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

// DisputeReader defines read operations for dispute data
type DisputeReader interface {
	// FindDisputeByID retrieves a specific dispute by its unique identifier.
	FindDisputeByID(ctx context.Context, disputeID string) (*domain.Dispute, error)

	// FindActiveDisputeByWorkProof retrieves the pending, under-review or escalated
	// dispute for a work proof, if one exists.
	FindActiveDisputeByWorkProof(ctx context.Context, proofID string) (*domain.Dispute, error)

	// ListDisputes retrieves a paginated list of disputes, optionally filtered by
	// status, using token-based pagination.
	ListDisputes(ctx context.Context, status *domain.DisputeStatus, limit int, nextToken *string) ([]domain.Dispute, *string, error)

	// ListDisputesByUser retrieves disputes in which the user is worker or employer.
	ListDisputesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Dispute, *string, error)
}

// DisputeWriter defines write operations for dispute data
type DisputeWriter interface {
	// SaveDispute persists a newly created dispute.
	SaveDispute(ctx context.Context, dispute domain.Dispute) error

	// UpdateDispute persists changes to an existing dispute.
	UpdateDispute(ctx context.Context, dispute domain.Dispute) error
}

// DisputeRepositoryFacade combines all dispute repository interfaces
type DisputeRepositoryFacade interface {
	DisputeReader
	DisputeWriter
}
