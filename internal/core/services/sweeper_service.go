package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
)

type sweeperService struct {
	workProofRepo portsrepo.WorkProofRepositoryFacade
	approver      portssvc.WorkProofWriterSvc
	wallet        portssvc.WalletSvcFacade
	notifier      portssvc.NotifierSvc
	policy        portssvc.PolicyProviderSvc
	locks         *EntityLocks
	batchSize     int
}

// NewSweeperService creates the deadline sweeper.
func NewSweeperService(
	workProofRepo portsrepo.WorkProofRepositoryFacade,
	approver portssvc.WorkProofWriterSvc,
	wallet portssvc.WalletSvcFacade,
	notifier portssvc.NotifierSvc,
	policy portssvc.PolicyProviderSvc,
	locks *EntityLocks,
	batchSize int,
) portssvc.SweeperSvc {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &sweeperService{
		workProofRepo: workProofRepo,
		approver:      approver,
		wallet:        wallet,
		notifier:      notifier,
		policy:        policy,
		locks:         locks,
		batchSize:     batchSize,
	}
}

var _ portssvc.SweeperSvc = (*sweeperService)(nil)

// SweepExpiredDeadlines finalizes proofs whose worker response window has
// lapsed. Each proof is handled independently so one failure never stalls
// the rest of the batch.
func (s *sweeperService) SweepExpiredDeadlines(ctx context.Context) (portssvc.SweepSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	summary := portssvc.SweepSummary{}

	revision, err := s.policy.GetRevisionPolicy(ctx)
	if err != nil {
		return summary, err
	}

	now := time.Now()
	expired, err := s.workProofRepo.ListExpiredWorkProofs(ctx, now, s.batchSize)
	if err != nil {
		return summary, fmt.Errorf("failed to list expired work proofs: %w", err)
	}
	summary.Scanned = len(expired)

	for i := range expired {
		if err := s.sweepOne(ctx, expired[i].ProofID, revision, &summary); err != nil {
			summary.Failed++
			logger.Error("Failed to sweep work proof",
				slog.String("proof_id", expired[i].ProofID),
				slog.String("error", err.Error()))
		}
	}

	stale, err := s.workProofRepo.ListStaleSubmittedWorkProofs(ctx, now, s.batchSize)
	if err != nil {
		return summary, fmt.Errorf("failed to list stale submitted work proofs: %w", err)
	}
	summary.Scanned += len(stale)

	for i := range stale {
		if err := s.autoApprove(ctx, &stale[i], &summary); err != nil {
			summary.Failed++
			logger.Error("Failed to auto-approve work proof",
				slog.String("proof_id", stale[i].ProofID),
				slog.String("error", err.Error()))
		}
	}

	logger.Info("Deadline sweep finished",
		slog.Int("scanned", summary.Scanned),
		slog.Int("rejections_final", summary.RejectionsFinal),
		slog.Int("revisions_final", summary.RevisionsFinal),
		slog.Int("auto_approved", summary.AutoApproved),
		slog.Int("refunded", summary.Refunded),
		slog.Int("failed", summary.Failed))
	return summary, nil
}

// autoApprove releases payment for a submitted proof whose manual review
// window lapsed. The approve path takes the entity lock and re-checks status
// itself, so an employer decision that lands first simply wins.
func (s *sweeperService) autoApprove(ctx context.Context, proof *domain.WorkProof, summary *portssvc.SweepSummary) error {
	req := dto.ReviewDecisionRequest{Feedback: "Automatically approved after the review window lapsed"}
	_, err := s.approver.ApproveWorkProof(ctx, proof.ProofID, proof.EmployerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			return nil
		}
		return err
	}
	summary.AutoApproved++
	return nil
}

func (s *sweeperService) sweepOne(ctx context.Context, proofID string, revision *domain.RevisionPolicy, summary *portssvc.SweepSummary) error {
	s.locks.Lock(proofID)
	defer s.locks.Unlock(proofID)

	// Re-read under the lock; the worker may have responded meanwhile.
	proof, err := s.workProofRepo.FindWorkProofByID(ctx, proofID)
	if err != nil {
		return err
	}

	now := time.Now()
	switch {
	case proof.Status == domain.ProofRejected &&
		proof.RejectionDeadline != nil && proof.RejectionDeadline.Before(now):
		return s.finalizeRejection(ctx, proof, revision, summary)

	case proof.Status == domain.ProofRevisionRequested &&
		proof.RevisionDeadline != nil && proof.RevisionDeadline.Before(now):
		return s.finalizeRevisionTimeout(ctx, proof, revision, summary)
	}
	// Deadline no longer applies.
	return nil
}

// finalizeRejection treats a lapsed rejection window as the worker accepting
// the rejection.
func (s *sweeperService) finalizeRejection(ctx context.Context, proof *domain.WorkProof, revision *domain.RevisionPolicy, summary *portssvc.SweepSummary) error {
	next, err := domain.NextProofStatus(proof.Status, domain.ActionAcceptRejection)
	if err != nil {
		return err
	}

	now := time.Now()
	proof.Status = next
	proof.WorkerResponse = domain.ResponseAccepted
	proof.WorkerResponseAt = &now
	proof.RejectionDeadline = nil
	proof.LastUpdatedAt = now

	if err := s.workProofRepo.UpdateWorkProof(ctx, *proof); err != nil {
		return err
	}
	summary.RejectionsFinal++

	if revision.EnableAutomaticRefunds && revision.RefundOnRejectionExpiry {
		if err := s.refund(ctx, proof, domain.RefWorkRejectionRefund); err != nil {
			return err
		}
		summary.Refunded++
	}

	s.notifier.Notify(ctx, proof.WorkerID, domain.NotifyDeadlineExpired,
		"Response deadline passed", "The rejection on your submission was finalized because the response window lapsed.",
		"/work-proofs/"+proof.ProofID)
	return nil
}

// finalizeRevisionTimeout treats a lapsed revision window as the worker
// abandoning the submission.
func (s *sweeperService) finalizeRevisionTimeout(ctx context.Context, proof *domain.WorkProof, revision *domain.RevisionPolicy, summary *portssvc.SweepSummary) error {
	next, err := domain.NextProofStatus(proof.Status, domain.ActionCancel)
	if err != nil {
		return err
	}

	now := time.Now()
	proof.Status = next
	proof.WorkerResponse = domain.ResponseCancelled
	proof.WorkerResponseAt = &now
	proof.RevisionDeadline = nil
	proof.LastUpdatedAt = now

	if err := s.workProofRepo.UpdateWorkProof(ctx, *proof); err != nil {
		return err
	}
	summary.RevisionsFinal++

	if revision.EnableAutomaticRefunds && revision.RefundOnRevisionExpiry {
		if err := s.refund(ctx, proof, domain.RefJobCancellationRefund); err != nil {
			return err
		}
		summary.Refunded++
	}

	s.notifier.Notify(ctx, proof.WorkerID, domain.NotifyDeadlineExpired,
		"Revision deadline passed", "Your submission was closed because the revision window lapsed.",
		"/work-proofs/"+proof.ProofID)
	return nil
}

// refund returns the escrowed amount to the employer. An already-recorded
// refund counts as success so reruns of the sweep stay idempotent.
func (s *sweeperService) refund(ctx context.Context, proof *domain.WorkProof, referenceType string) error {
	if !proof.PaymentAmount.IsPositive() {
		return nil
	}
	desc := fmt.Sprintf("Refund for expired work proof %s", proof.ProofID)
	err := s.wallet.Credit(ctx, proof.EmployerID, proof.PaymentAmount, domain.BalanceDeposit, domain.TxnRefund, desc, proof.ProofID, referenceType)
	if err != nil && !errors.Is(err, apperrors.ErrAlreadyProcessed) {
		return fmt.Errorf("%w: sweep refund failed: %v", apperrors.ErrPayment, err)
	}
	return nil
}
