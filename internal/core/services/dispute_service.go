package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
	"github.com/khaledkhbro/microjob-backend/internal/utils/fees"
)

type disputeService struct {
	disputeRepo   portsrepo.DisputeRepositoryFacade
	workProofRepo portsrepo.WorkProofRepositoryFacade
	wallet        portssvc.WalletSvcFacade
	jobs          portssvc.JobSvc
	notifier      portssvc.NotifierSvc
	locks         *EntityLocks
}

// NewDisputeService creates the dispute resolution service.
func NewDisputeService(
	disputeRepo portsrepo.DisputeRepositoryFacade,
	workProofRepo portsrepo.WorkProofRepositoryFacade,
	wallet portssvc.WalletSvcFacade,
	jobs portssvc.JobSvc,
	notifier portssvc.NotifierSvc,
	locks *EntityLocks,
) portssvc.DisputeSvcFacade {
	return &disputeService{
		disputeRepo:   disputeRepo,
		workProofRepo: workProofRepo,
		wallet:        wallet,
		jobs:          jobs,
		notifier:      notifier,
		locks:         locks,
	}
}

var _ portssvc.DisputeSvcFacade = (*disputeService)(nil)

// priorityForAmount buckets dispute priority by the money at stake.
func priorityForAmount(amount decimal.Decimal) domain.DisputePriority {
	switch {
	case amount.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return domain.PriorityUrgent
	case amount.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return domain.PriorityHigh
	case amount.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

func (s *disputeService) GetDisputeByID(ctx context.Context, disputeID string, requestingUserID string, isAdmin bool) (*domain.Dispute, error) {
	dispute, err := s.disputeRepo.FindDisputeByID(ctx, disputeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dispute: %w", err)
	}
	if !isAdmin && dispute.WorkerID != requestingUserID && dispute.EmployerID != requestingUserID {
		return nil, fmt.Errorf("%w: not a party to this dispute", apperrors.ErrForbidden)
	}
	return dispute, nil
}

func (s *disputeService) ListDisputes(ctx context.Context, params dto.ListDisputesParams) (*dto.ListDisputesResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	disputes, nextToken, err := s.disputeRepo.ListDisputes(ctx, params.Status, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list disputes: %w", err)
	}
	return &dto.ListDisputesResponse{
		Disputes:  dto.ToDisputeResponses(disputes),
		NextToken: nextToken,
	}, nil
}

func (s *disputeService) ListDisputesByUser(ctx context.Context, userID string, params dto.ListDisputesParams) (*dto.ListDisputesResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	disputes, nextToken, err := s.disputeRepo.ListDisputesByUser(ctx, userID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list disputes: %w", err)
	}
	return &dto.ListDisputesResponse{
		Disputes:  dto.ToDisputeResponses(disputes),
		NextToken: nextToken,
	}, nil
}

// OpenDispute records a new dispute for a work proof. At most one active
// dispute may exist per proof.
func (s *disputeService) OpenDispute(ctx context.Context, proof *domain.WorkProof, jobTitle string, req dto.DisputeWorkRequest) (*domain.Dispute, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if existing, err := s.disputeRepo.FindActiveDisputeByWorkProof(ctx, proof.ProofID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: an active dispute already exists for this work proof", apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for active dispute: %w", err)
	}

	now := time.Now()
	dispute := domain.Dispute{
		DisputeID:       uuid.NewString(),
		JobID:           proof.JobID,
		WorkProofID:     proof.ProofID,
		WorkerID:        proof.WorkerID,
		EmployerID:      proof.EmployerID,
		JobTitle:        jobTitle,
		Amount:          proof.PaymentAmount,
		Reason:          req.Reason,
		Evidence:        req.Evidence,
		RequestedAction: req.RequestedAction,
		Status:          domain.DisputePending,
		Priority:        priorityForAmount(proof.PaymentAmount),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     proof.WorkerID,
			LastUpdatedAt: now,
			LastUpdatedBy: proof.WorkerID,
		},
	}

	if err := s.disputeRepo.SaveDispute(ctx, dispute); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: an active dispute already exists for this work proof", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save dispute: %w", err)
	}
	logger.Info("Dispute opened",
		slog.String("dispute_id", dispute.DisputeID),
		slog.String("proof_id", proof.ProofID),
		slog.String("priority", string(dispute.Priority)),
		slog.String("amount", dispute.Amount.String()))
	return &dispute, nil
}

func (s *disputeService) StartReview(ctx context.Context, disputeID string, adminID string) (*domain.Dispute, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	dispute, err := s.disputeRepo.FindDisputeByID(ctx, disputeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dispute: %w", err)
	}
	if dispute.Status != domain.DisputePending {
		return nil, fmt.Errorf("%w: cannot start review on a %s dispute", apperrors.ErrInvalidState, dispute.Status)
	}

	now := time.Now()
	dispute.Status = domain.DisputeUnderReview
	dispute.AdminID = adminID
	dispute.LastUpdatedAt = now
	dispute.LastUpdatedBy = adminID

	if err := s.disputeRepo.UpdateDispute(ctx, *dispute); err != nil {
		return nil, fmt.Errorf("failed to update dispute: %w", err)
	}
	logger.Info("Dispute moved under review", slog.String("dispute_id", disputeID), slog.String("admin_id", adminID))
	return dispute, nil
}

func (s *disputeService) EscalateDispute(ctx context.Context, disputeID string, adminID string, req dto.EscalateDisputeRequest) (*domain.Dispute, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	dispute, err := s.disputeRepo.FindDisputeByID(ctx, disputeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dispute: %w", err)
	}
	if !dispute.Status.IsActive() {
		return nil, fmt.Errorf("%w: cannot escalate a %s dispute", apperrors.ErrInvalidState, dispute.Status)
	}

	now := time.Now()
	dispute.Status = domain.DisputeEscalated
	dispute.Priority = domain.PriorityUrgent
	dispute.AdminID = adminID
	if req.Reason != "" {
		dispute.AdminNotes = req.Reason
	}
	dispute.LastUpdatedAt = now
	dispute.LastUpdatedBy = adminID

	if err := s.disputeRepo.UpdateDispute(ctx, *dispute); err != nil {
		return nil, fmt.Errorf("failed to update dispute: %w", err)
	}
	logger.Info("Dispute escalated", slog.String("dispute_id", disputeID), slog.String("admin_id", adminID))
	return dispute, nil
}

// ResolveDispute applies the admin decision. The dispute is marked resolved
// before money moves; a payment failure rolls it back to pending so it can
// be resolved again, while already-recorded movements count as success.
func (s *disputeService) ResolveDispute(ctx context.Context, disputeID string, adminID string, req dto.ResolveDisputeRequest) (*domain.Dispute, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	dispute, err := s.disputeRepo.FindDisputeByID(ctx, disputeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dispute: %w", err)
	}

	s.locks.Lock(dispute.WorkProofID)
	defer s.locks.Unlock(dispute.WorkProofID)

	// Re-read under the lock; a concurrent resolve may have won.
	dispute, err = s.disputeRepo.FindDisputeByID(ctx, disputeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dispute: %w", err)
	}
	if dispute.Status == domain.DisputeResolved {
		return nil, fmt.Errorf("%w: dispute is already resolved", apperrors.ErrAlreadyResolved)
	}
	if !dispute.Status.IsActive() {
		return nil, fmt.Errorf("%w: cannot resolve a %s dispute", apperrors.ErrInvalidState, dispute.Status)
	}
	if !req.Decision.Valid() {
		return nil, fmt.Errorf("%w: unknown decision %q", apperrors.ErrValidation, req.Decision)
	}

	proof, err := s.workProofRepo.FindWorkProofByID(ctx, dispute.WorkProofID)
	if err != nil {
		return nil, fmt.Errorf("failed to load disputed work proof: %w", err)
	}

	prev := *dispute
	now := time.Now()
	decision := req.Decision
	dispute.Status = domain.DisputeResolved
	dispute.Resolution = &decision
	dispute.AdminID = adminID
	dispute.AdminNotes = req.AdminNotes
	dispute.ResolvedAt = &now
	dispute.LastUpdatedAt = now
	dispute.LastUpdatedBy = adminID

	if err := s.disputeRepo.UpdateDispute(ctx, *dispute); err != nil {
		return nil, fmt.Errorf("failed to record resolution: %w", err)
	}

	if err := s.settle(ctx, dispute, proof, decision, adminID); err != nil {
		prev.LastUpdatedAt = time.Now()
		prev.LastUpdatedBy = adminID
		if rbErr := s.disputeRepo.UpdateDispute(ctx, prev); rbErr != nil {
			logger.Error("Failed to roll back dispute resolution",
				slog.String("dispute_id", disputeID),
				slog.String("error", rbErr.Error()))
		}
		return nil, err
	}

	logger.Info("Dispute resolved",
		slog.String("dispute_id", disputeID),
		slog.String("decision", string(decision)),
		slog.String("admin_id", adminID))

	s.notifier.Notify(ctx, dispute.WorkerID, domain.NotifyDisputeResolved,
		"Dispute resolved", fmt.Sprintf("Your dispute on %q was resolved: %s.", dispute.JobTitle, decision),
		"/work-proofs/"+dispute.WorkProofID)
	s.notifier.Notify(ctx, dispute.EmployerID, domain.NotifyDisputeResolved,
		"Dispute resolved", fmt.Sprintf("The dispute on %q was resolved: %s.", dispute.JobTitle, decision),
		"/work-proofs/"+dispute.WorkProofID)
	return dispute, nil
}

// settle moves the money for a resolution and finalizes the work proof.
func (s *disputeService) settle(ctx context.Context, dispute *domain.Dispute, proof *domain.WorkProof, decision domain.DisputeDecision, adminID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	amount := dispute.Amount

	var proofStatus domain.WorkProofStatus
	switch decision {
	case domain.DecisionApproveWorker:
		// Admin resolutions pay the full escrowed amount; no platform fee is
		// taken on a dispute payout.
		desc := fmt.Sprintf("Dispute resolution payout for %q", dispute.JobTitle)
		err := s.wallet.Credit(ctx, dispute.WorkerID, amount, domain.BalanceEarnings, domain.TxnEarning, desc, dispute.DisputeID, domain.RefDisputeResolution)
		if err != nil && !errors.Is(err, apperrors.ErrAlreadyProcessed) {
			return fmt.Errorf("%w: dispute payout failed: %v", apperrors.ErrPayment, err)
		}
		proofStatus = domain.ProofCompleted

	case domain.DecisionApproveEmployer:
		// The refund shares the rejection-refund idempotency key, so a later
		// AcceptRejection on the standing rejection cannot pay out twice.
		desc := fmt.Sprintf("Dispute resolution refund for %q", dispute.JobTitle)
		err := s.wallet.Credit(ctx, dispute.EmployerID, amount, domain.BalanceDeposit, domain.TxnRefund, desc, proof.ProofID, domain.RefWorkRejectionRefund)
		if err != nil && !errors.Is(err, apperrors.ErrAlreadyProcessed) {
			return fmt.Errorf("%w: dispute refund failed: %v", apperrors.ErrPayment, err)
		}
		proofStatus = domain.ProofRejected

	case domain.DecisionPartialRefund:
		// Even split, no platform fee: the worker's share rounds to cents and
		// the employer receives the exact remainder.
		workerShare, employerShare := fees.SplitHalf(amount)
		desc := fmt.Sprintf("Partial dispute payout for %q", dispute.JobTitle)
		err := s.wallet.Credit(ctx, dispute.WorkerID, workerShare, domain.BalanceEarnings, domain.TxnEarning, desc, dispute.DisputeID, domain.RefDisputeResolution)
		if err != nil && !errors.Is(err, apperrors.ErrAlreadyProcessed) {
			return fmt.Errorf("%w: partial payout failed: %v", apperrors.ErrPayment, err)
		}
		refundDesc := fmt.Sprintf("Partial dispute refund for %q", dispute.JobTitle)
		err = s.wallet.Credit(ctx, dispute.EmployerID, employerShare, domain.BalanceDeposit, domain.TxnRefund, refundDesc, dispute.DisputeID, domain.RefDisputeResolution)
		if err != nil && !errors.Is(err, apperrors.ErrAlreadyProcessed) {
			return fmt.Errorf("%w: partial refund failed: %v", apperrors.ErrPayment, err)
		}
		proofStatus = domain.ProofCompleted

	default:
		return fmt.Errorf("%w: unknown decision %q", apperrors.ErrValidation, decision)
	}

	now := time.Now()
	proof.Status = proofStatus
	proof.ReviewedAt = &now
	proof.LastUpdatedAt = now
	proof.LastUpdatedBy = adminID
	if err := s.workProofRepo.UpdateWorkProof(ctx, *proof); err != nil {
		return fmt.Errorf("failed to finalize disputed work proof: %w", err)
	}

	if proofStatus == domain.ProofCompleted {
		if err := s.jobs.RecomputeCompletion(ctx, proof.JobID, adminID); err != nil {
			logger.Error("Failed to recompute job completion",
				slog.String("job_id", proof.JobID),
				slog.String("error", err.Error()))
		}
	}
	return nil
}
