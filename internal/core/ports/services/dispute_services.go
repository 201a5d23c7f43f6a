package services

import (
	"context"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
)

// DisputeReaderSvc defines read operations for dispute data
type DisputeReaderSvc interface {
	// GetDisputeByID retrieves a specific dispute. Only a party to the dispute
	// or an admin may read it.
	GetDisputeByID(ctx context.Context, disputeID string, requestingUserID string, isAdmin bool) (*domain.Dispute, error)

	// ListDisputes retrieves a paginated, optionally status-filtered list of
	// disputes for the admin queue.
	ListDisputes(ctx context.Context, params dto.ListDisputesParams) (*dto.ListDisputesResponse, error)

	// ListDisputesByUser retrieves disputes the user is a party to.
	ListDisputesByUser(ctx context.Context, userID string, params dto.ListDisputesParams) (*dto.ListDisputesResponse, error)
}

// DisputeWriterSvc defines the admin lifecycle operations on a dispute
type DisputeWriterSvc interface {
	// OpenDispute creates a dispute against a work proof. Invoked by the review
	// engine when a worker contests a rejection, never directly by handlers.
	OpenDispute(ctx context.Context, proof *domain.WorkProof, jobTitle string, req dto.DisputeWorkRequest) (*domain.Dispute, error)

	// StartReview moves a pending dispute under review by the given admin.
	StartReview(ctx context.Context, disputeID string, adminID string) (*domain.Dispute, error)

	// EscalateDispute raises the dispute priority and marks it escalated.
	EscalateDispute(ctx context.Context, disputeID string, adminID string, req dto.EscalateDisputeRequest) (*domain.Dispute, error)

	// ResolveDispute applies the admin decision, moves the money accordingly
	// and finalizes the underlying work proof.
	ResolveDispute(ctx context.Context, disputeID string, adminID string, req dto.ResolveDisputeRequest) (*domain.Dispute, error)
}

// DisputeSvcFacade combines all dispute service interfaces
type DisputeSvcFacade interface {
	DisputeReaderSvc
	DisputeWriterSvc
}
