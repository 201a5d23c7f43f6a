package services

import (
	"context"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
)

// WorkProofReaderSvc defines read operations for work proof data
type WorkProofReaderSvc interface {
	// GetWorkProofByID retrieves a specific work proof by its ID. Only the
	// proof's worker, employer or an admin may read it.
	GetWorkProofByID(ctx context.Context, proofID string, requestingUserID string, isAdmin bool) (*domain.WorkProof, error)

	// ListWorkProofsByJob retrieves a paginated list of proofs on a job.
	ListWorkProofsByJob(ctx context.Context, jobID string, requestingUserID string, params dto.ListWorkProofsParams) (*dto.ListWorkProofsResponse, error)

	// ListWorkProofsByWorker retrieves a paginated list of proofs submitted by a worker.
	ListWorkProofsByWorker(ctx context.Context, workerID string, params dto.ListWorkProofsParams) (*dto.ListWorkProofsResponse, error)
}

// WorkProofWriterSvc defines the lifecycle operations on a work proof
type WorkProofWriterSvc interface {
	// SubmitWorkProof records a new submission for an accepted application.
	// Instant-approval jobs are paid immediately; payment failure degrades the
	// proof to submitted rather than failing the submission.
	SubmitWorkProof(ctx context.Context, workerID string, req dto.SubmitWorkProofRequest) (*domain.WorkProof, error)

	// ApproveWorkProof approves a submitted proof and releases payment.
	ApproveWorkProof(ctx context.Context, proofID string, employerID string, req dto.ReviewDecisionRequest) (*domain.WorkProof, error)

	// RejectWorkProof rejects a submitted proof and opens the worker's
	// rejection response window.
	RejectWorkProof(ctx context.Context, proofID string, employerID string, req dto.ReviewDecisionRequest) (*domain.WorkProof, error)

	// RequestRevision asks the worker to revise the submission, bounded by the
	// revision policy's maximum.
	RequestRevision(ctx context.Context, proofID string, employerID string, req dto.ReviewDecisionRequest) (*domain.WorkProof, error)

	// ResubmitWork replaces the submission content after a revision request.
	ResubmitWork(ctx context.Context, proofID string, workerID string, req dto.ResubmitWorkRequest) (*domain.WorkProof, error)

	// AcceptRejection finalizes a rejection; the employer is refunded when
	// automatic refunds are enabled.
	AcceptRejection(ctx context.Context, proofID string, workerID string) (*domain.WorkProof, error)

	// CancelByWorker withdraws the submission and refunds the employer.
	CancelByWorker(ctx context.Context, proofID string, workerID string) (*domain.WorkProof, error)

	// DisputeWorkProof contests a rejection or revision request, freezing the
	// proof until an admin resolves the dispute.
	DisputeWorkProof(ctx context.Context, proofID string, workerID string, req dto.DisputeWorkRequest) (*domain.WorkProof, error)
}

// WorkProofSvcFacade combines all work-proof service interfaces
type WorkProofSvcFacade interface {
	WorkProofReaderSvc
	WorkProofWriterSvc
}
