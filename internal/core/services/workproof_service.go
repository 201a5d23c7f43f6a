package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
	"github.com/khaledkhbro/microjob-backend/internal/utils/fees"
)

type workProofService struct {
	workProofRepo     portsrepo.WorkProofRepositoryFacade
	disputes          portssvc.DisputeWriterSvc
	wallet            portssvc.WalletSvcFacade
	jobs              portssvc.JobSvc
	applications      portssvc.ApplicationSvc
	notifier          portssvc.NotifierSvc
	policy            portssvc.PolicyProviderSvc
	locks             *EntityLocks
	platformAccountID string
}

// NewWorkProofService creates the work proof review service.
func NewWorkProofService(
	workProofRepo portsrepo.WorkProofRepositoryFacade,
	disputes portssvc.DisputeWriterSvc,
	wallet portssvc.WalletSvcFacade,
	jobs portssvc.JobSvc,
	applications portssvc.ApplicationSvc,
	notifier portssvc.NotifierSvc,
	policy portssvc.PolicyProviderSvc,
	locks *EntityLocks,
	platformAccountID string,
) portssvc.WorkProofSvcFacade {
	return &workProofService{
		workProofRepo:     workProofRepo,
		disputes:          disputes,
		wallet:            wallet,
		jobs:              jobs,
		applications:      applications,
		notifier:          notifier,
		policy:            policy,
		locks:             locks,
		platformAccountID: platformAccountID,
	}
}

var _ portssvc.WorkProofSvcFacade = (*workProofService)(nil)

func (s *workProofService) GetWorkProofByID(ctx context.Context, proofID string, requestingUserID string, isAdmin bool) (*domain.WorkProof, error) {
	proof, err := s.workProofRepo.FindWorkProofByID(ctx, proofID)
	if err != nil {
		return nil, fmt.Errorf("failed to get work proof: %w", err)
	}
	if !isAdmin && proof.WorkerID != requestingUserID && proof.EmployerID != requestingUserID {
		return nil, fmt.Errorf("%w: not a party to this work proof", apperrors.ErrForbidden)
	}
	return proof, nil
}

func (s *workProofService) ListWorkProofsByJob(ctx context.Context, jobID string, requestingUserID string, params dto.ListWorkProofsParams) (*dto.ListWorkProofsResponse, error) {
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != requestingUserID {
		return nil, fmt.Errorf("%w: only the employer can list a job's work proofs", apperrors.ErrForbidden)
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	proofs, nextToken, err := s.workProofRepo.ListWorkProofsByJob(ctx, jobID, params.Statuses, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list work proofs: %w", err)
	}
	return &dto.ListWorkProofsResponse{
		Proofs:    dto.ToWorkProofResponses(proofs),
		NextToken: nextToken,
	}, nil
}

func (s *workProofService) ListWorkProofsByWorker(ctx context.Context, workerID string, params dto.ListWorkProofsParams) (*dto.ListWorkProofsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	proofs, nextToken, err := s.workProofRepo.ListWorkProofsByWorker(ctx, workerID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list work proofs: %w", err)
	}
	return &dto.ListWorkProofsResponse{
		Proofs:    dto.ToWorkProofResponses(proofs),
		NextToken: nextToken,
	}, nil
}

func (s *workProofService) SubmitWorkProof(ctx context.Context, workerID string, req dto.SubmitWorkProofRequest) (*domain.WorkProof, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	job, err := s.jobs.GetJob(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if job.Status == domain.JobCompleted {
		return nil, fmt.Errorf("%w: job is already completed", apperrors.ErrInvalidState)
	}

	app, err := s.applications.GetApplication(ctx, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app.JobID != req.JobID {
		return nil, fmt.Errorf("%w: application does not belong to this job", apperrors.ErrValidation)
	}
	if app.WorkerID != workerID {
		return nil, fmt.Errorf("%w: application belongs to another worker", apperrors.ErrForbidden)
	}
	if app.Status != domain.ApplicationAccepted {
		return nil, fmt.Errorf("%w: application is not accepted", apperrors.ErrInvalidState)
	}

	if existing, err := s.workProofRepo.FindWorkProofByApplication(ctx, req.ApplicationID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: work already submitted for this application", apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing submission: %w", err)
	}

	amount, repaired, err := s.applications.ResolvePaymentAmount(ctx, job, req.ApplicationID, workerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	proof := domain.WorkProof{
		ProofID:          uuid.NewString(),
		JobID:            job.JobID,
		ApplicationID:    req.ApplicationID,
		WorkerID:         workerID,
		EmployerID:       job.EmployerID,
		Title:            req.Title,
		SubmissionText:   req.SubmissionText,
		ProofFiles:       req.ProofFiles,
		ProofLinks:       req.ProofLinks,
		Screenshots:      req.Screenshots,
		Status:           domain.ProofSubmitted,
		PaymentAmount:    amount,
		AmountRepaired:   repaired,
		SubmissionNumber: 1,
		SubmittedAt:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     workerID,
			LastUpdatedAt: now,
			LastUpdatedBy: workerID,
		},
	}

	if err := s.workProofRepo.SaveWorkProof(ctx, proof); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: work already submitted for this application", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save work proof: %w", err)
	}
	logger.Info("Work proof submitted",
		slog.String("proof_id", proof.ProofID),
		slog.String("job_id", job.JobID),
		slog.String("worker_id", workerID),
		slog.String("amount", amount.String()))

	approval, err := s.policy.GetApprovalPolicy(ctx)
	if err != nil {
		return nil, err
	}

	if job.ApprovalType == domain.ApprovalInstant && approval.InstantEnabled {
		// Pay immediately; a payment failure degrades to a normal submitted
		// proof instead of failing the submission.
		if err := s.payWorker(ctx, &proof, domain.RefInstantPayment); err != nil {
			logger.Error("Instant payment failed, leaving proof submitted",
				slog.String("proof_id", proof.ProofID),
				slog.String("error", err.Error()))
		} else {
			proof.Status = domain.ProofApproved
			proof.ReviewedAt = &now
			proof.LastUpdatedAt = now
			if err := s.workProofRepo.UpdateWorkProof(ctx, proof); err != nil {
				return nil, fmt.Errorf("failed to finalize instant approval: %w", err)
			}
			if err := s.jobs.RecomputeCompletion(ctx, job.JobID, workerID); err != nil {
				logger.Error("Failed to recompute job completion", slog.String("job_id", job.JobID), slog.String("error", err.Error()))
			}
			s.notifier.Notify(ctx, workerID, domain.NotifyPaymentReceived,
				"Payment received", fmt.Sprintf("Your work on %q was approved instantly.", job.Title),
				"/work-proofs/"+proof.ProofID)
		}
	}

	s.notifier.Notify(ctx, job.EmployerID, domain.NotifyWorkSubmitted,
		"Work submitted", fmt.Sprintf("A worker submitted work for %q.", job.Title),
		"/work-proofs/"+proof.ProofID)

	return &proof, nil
}

func (s *workProofService) ApproveWorkProof(ctx context.Context, proofID string, employerID string, req dto.ReviewDecisionRequest) (*domain.WorkProof, error) {
	s.locks.Lock(proofID)
	defer s.locks.Unlock(proofID)

	logger := middleware.GetLoggerFromCtx(ctx)

	proof, err := s.loadForEmployer(ctx, proofID, employerID)
	if err != nil {
		return nil, err
	}

	next, err := domain.NextProofStatus(proof.Status, domain.ActionApprove)
	if err != nil {
		return nil, err
	}

	if err := s.repairZeroAmount(ctx, proof); err != nil {
		return nil, err
	}

	// Money moves first: an approval without a payment must not be recorded.
	if err := s.payWorker(ctx, proof, domain.RefWorkCompletion); err != nil {
		return nil, err
	}

	now := time.Now()
	proof.Status = next
	proof.ReviewedAt = &now
	proof.ReviewFeedback = req.Feedback
	proof.RejectionDeadline = nil
	proof.RevisionDeadline = nil
	proof.LastUpdatedAt = now
	proof.LastUpdatedBy = employerID

	if err := s.workProofRepo.UpdateWorkProof(ctx, *proof); err != nil {
		return nil, fmt.Errorf("failed to record approval: %w", err)
	}
	logger.Info("Work proof approved",
		slog.String("proof_id", proofID),
		slog.String("amount", proof.PaymentAmount.String()))

	if err := s.jobs.RecomputeCompletion(ctx, proof.JobID, employerID); err != nil {
		logger.Error("Failed to recompute job completion", slog.String("job_id", proof.JobID), slog.String("error", err.Error()))
	}

	s.notifier.Notify(ctx, proof.WorkerID, domain.NotifyWorkApproved,
		"Work approved", "Your submission was approved and payment released.",
		"/work-proofs/"+proofID)
	return proof, nil
}

func (s *workProofService) RejectWorkProof(ctx context.Context, proofID string, employerID string, req dto.ReviewDecisionRequest) (*domain.WorkProof, error) {
	s.locks.Lock(proofID)
	defer s.locks.Unlock(proofID)

	logger := middleware.GetLoggerFromCtx(ctx)

	proof, err := s.loadForEmployer(ctx, proofID, employerID)
	if err != nil {
		return nil, err
	}
	next, err := domain.NextProofStatus(proof.Status, domain.ActionReject)
	if err != nil {
		return nil, err
	}
	if req.Feedback == "" {
		return nil, fmt.Errorf("%w: rejection requires feedback", apperrors.ErrValidation)
	}

	revision, err := s.policy.GetRevisionPolicy(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	deadline := now.Add(revision.RejectionTimeout.Duration())
	proof.Status = next
	proof.ReviewedAt = &now
	proof.ReviewFeedback = req.Feedback
	proof.RejectionDeadline = &deadline
	proof.RevisionDeadline = nil
	proof.WorkerResponse = ""
	proof.WorkerResponseAt = nil
	proof.LastUpdatedAt = now
	proof.LastUpdatedBy = employerID

	if err := s.workProofRepo.UpdateWorkProof(ctx, *proof); err != nil {
		return nil, fmt.Errorf("failed to record rejection: %w", err)
	}
	logger.Info("Work proof rejected",
		slog.String("proof_id", proofID),
		slog.Time("rejection_deadline", deadline))

	s.notifier.Notify(ctx, proof.WorkerID, domain.NotifyWorkRejected,
		"Work rejected", "Your submission was rejected. You can accept the rejection or open a dispute before the deadline.",
		"/work-proofs/"+proofID)
	return proof, nil
}

func (s *workProofService) RequestRevision(ctx context.Context, proofID string, employerID string, req dto.ReviewDecisionRequest) (*domain.WorkProof, error) {
	s.locks.Lock(proofID)
	defer s.locks.Unlock(proofID)

	logger := middleware.GetLoggerFromCtx(ctx)

	proof, err := s.loadForEmployer(ctx, proofID, employerID)
	if err != nil {
		return nil, err
	}
	next, err := domain.NextProofStatus(proof.Status, domain.ActionRequestRevision)
	if err != nil {
		return nil, err
	}
	if req.Feedback == "" {
		return nil, fmt.Errorf("%w: revision request requires feedback", apperrors.ErrValidation)
	}

	revision, err := s.policy.GetRevisionPolicy(ctx)
	if err != nil {
		return nil, err
	}
	if proof.RevisionCount >= revision.MaxRevisionRequests {
		return nil, fmt.Errorf("%w: revision limit of %d reached", apperrors.ErrLimitExceeded, revision.MaxRevisionRequests)
	}

	now := time.Now()
	deadline := now.Add(revision.RevisionTimeout.Duration())
	proof.Status = next
	proof.ReviewedAt = &now
	proof.ReviewFeedback = req.Feedback
	proof.RevisionCount++
	proof.RevisionDeadline = &deadline
	proof.RejectionDeadline = nil
	proof.WorkerResponse = ""
	proof.WorkerResponseAt = nil
	proof.LastUpdatedAt = now
	proof.LastUpdatedBy = employerID

	if err := s.workProofRepo.UpdateWorkProof(ctx, *proof); err != nil {
		return nil, fmt.Errorf("failed to record revision request: %w", err)
	}
	logger.Info("Revision requested",
		slog.String("proof_id", proofID),
		slog.Int("revision_count", proof.RevisionCount),
		slog.Time("revision_deadline", deadline))

	s.notifier.Notify(ctx, proof.WorkerID, domain.NotifyRevisionRequested,
		"Revision requested", "The employer asked for changes to your submission.",
		"/work-proofs/"+proofID)
	return proof, nil
}

func (s *workProofService) ResubmitWork(ctx context.Context, proofID string, workerID string, req dto.ResubmitWorkRequest) (*domain.WorkProof, error) {
	s.locks.Lock(proofID)
	defer s.locks.Unlock(proofID)

	logger := middleware.GetLoggerFromCtx(ctx)

	proof, err := s.loadForWorker(ctx, proofID, workerID)
	if err != nil {
		return nil, err
	}
	next, err := domain.NextProofStatus(proof.Status, domain.ActionResubmit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	proof.Status = next
	proof.SubmissionText = req.SubmissionText
	proof.ProofFiles = req.ProofFiles
	proof.ProofLinks = req.ProofLinks
	proof.Screenshots = req.Screenshots
	proof.SubmissionNumber++
	proof.SubmittedAt = now
	proof.RevisionDeadline = nil
	proof.RejectionDeadline = nil
	proof.WorkerResponse = ""
	proof.WorkerResponseAt = nil
	proof.LastUpdatedAt = now
	proof.LastUpdatedBy = workerID

	if err := s.workProofRepo.UpdateWorkProof(ctx, *proof); err != nil {
		return nil, fmt.Errorf("failed to record resubmission: %w", err)
	}
	logger.Info("Work resubmitted",
		slog.String("proof_id", proofID),
		slog.Int("submission_number", proof.SubmissionNumber))

	s.notifier.Notify(ctx, proof.EmployerID, domain.NotifyWorkResubmitted,
		"Work resubmitted", "The worker submitted a revised version.",
		"/work-proofs/"+proofID)
	return proof, nil
}

func (s *workProofService) AcceptRejection(ctx context.Context, proofID string, workerID string) (*domain.WorkProof, error) {
	s.locks.Lock(proofID)
	defer s.locks.Unlock(proofID)

	logger := middleware.GetLoggerFromCtx(ctx)

	proof, err := s.loadForWorker(ctx, proofID, workerID)
	if err != nil {
		return nil, err
	}
	// A repeated acceptance is already settled; return it as a success.
	if proof.Status == domain.ProofRejectedAccepted {
		return proof, nil
	}
	next, err := domain.NextProofStatus(proof.Status, domain.ActionAcceptRejection)
	if err != nil {
		return nil, err
	}

	prev := *proof
	now := time.Now()
	proof.Status = next
	proof.WorkerResponse = domain.ResponseAccepted
	proof.WorkerResponseAt = &now
	proof.RejectionDeadline = nil
	proof.LastUpdatedAt = now
	proof.LastUpdatedBy = workerID

	if err := s.workProofRepo.UpdateWorkProof(ctx, *proof); err != nil {
		return nil, fmt.Errorf("failed to record rejection acceptance: %w", err)
	}

	// The worker accepting a rejection always releases the escrow back to
	// the employer; the automatic-refund flags only govern the sweeper.
	if err := s.refundEmployer(ctx, proof, domain.RefWorkRejectionRefund); err != nil {
		// Roll the proof back so the worker can retry; a refund that was
		// already recorded counts as success.
		if rbErr := s.workProofRepo.UpdateWorkProof(ctx, prev); rbErr != nil {
			logger.Error("Failed to roll back rejection acceptance",
				slog.String("proof_id", proofID),
				slog.String("error", rbErr.Error()))
		}
		return nil, err
	}

	logger.Info("Rejection accepted", slog.String("proof_id", proofID))
	s.notifier.Notify(ctx, proof.EmployerID, domain.NotifyWorkRejected,
		"Rejection finalized", "The worker accepted the rejection.",
		"/work-proofs/"+proofID)
	return proof, nil
}

func (s *workProofService) CancelByWorker(ctx context.Context, proofID string, workerID string) (*domain.WorkProof, error) {
	s.locks.Lock(proofID)
	defer s.locks.Unlock(proofID)

	logger := middleware.GetLoggerFromCtx(ctx)

	proof, err := s.loadForWorker(ctx, proofID, workerID)
	if err != nil {
		return nil, err
	}
	next, err := domain.NextProofStatus(proof.Status, domain.ActionCancel)
	if err != nil {
		return nil, err
	}

	prev := *proof
	now := time.Now()
	proof.Status = next
	proof.WorkerResponse = domain.ResponseCancelled
	proof.WorkerResponseAt = &now
	proof.RejectionDeadline = nil
	proof.RevisionDeadline = nil
	proof.LastUpdatedAt = now
	proof.LastUpdatedBy = workerID

	if err := s.workProofRepo.UpdateWorkProof(ctx, *proof); err != nil {
		return nil, fmt.Errorf("failed to record cancellation: %w", err)
	}

	if err := s.refundEmployer(ctx, proof, domain.RefJobCancellationRefund); err != nil {
		if rbErr := s.workProofRepo.UpdateWorkProof(ctx, prev); rbErr != nil {
			logger.Error("Failed to roll back cancellation",
				slog.String("proof_id", proofID),
				slog.String("error", rbErr.Error()))
		}
		return nil, err
	}

	logger.Info("Work proof cancelled by worker", slog.String("proof_id", proofID))
	s.notifier.Notify(ctx, proof.EmployerID, domain.NotifyWorkCancelled,
		"Submission withdrawn", "The worker withdrew the submission; your funds were refunded.",
		"/work-proofs/"+proofID)
	return proof, nil
}

func (s *workProofService) DisputeWorkProof(ctx context.Context, proofID string, workerID string, req dto.DisputeWorkRequest) (*domain.WorkProof, error) {
	s.locks.Lock(proofID)
	defer s.locks.Unlock(proofID)

	logger := middleware.GetLoggerFromCtx(ctx)

	proof, err := s.loadForWorker(ctx, proofID, workerID)
	if err != nil {
		return nil, err
	}
	next, err := domain.NextProofStatus(proof.Status, domain.ActionDispute)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetJob(ctx, proof.JobID)
	if err != nil {
		return nil, err
	}

	if _, err := s.disputes.OpenDispute(ctx, proof, job.Title, req); err != nil {
		return nil, err
	}

	now := time.Now()
	proof.Status = next
	proof.WorkerResponse = domain.ResponseDisputed
	proof.WorkerResponseAt = &now
	proof.RejectionDeadline = nil
	proof.RevisionDeadline = nil
	proof.DisputeReason = req.Reason
	proof.DisputeEvidence = req.Evidence
	proof.DisputeRequestedAction = req.RequestedAction
	proof.LastUpdatedAt = now
	proof.LastUpdatedBy = workerID

	if err := s.workProofRepo.UpdateWorkProof(ctx, *proof); err != nil {
		return nil, fmt.Errorf("failed to record dispute: %w", err)
	}
	logger.Info("Work proof disputed", slog.String("proof_id", proofID))

	s.notifier.Notify(ctx, proof.EmployerID, domain.NotifyDisputeCreated,
		"Dispute opened", "The worker disputed your review decision. An admin will resolve it.",
		"/work-proofs/"+proofID)
	return proof, nil
}

// loadForEmployer loads a proof and checks the caller is its employer.
func (s *workProofService) loadForEmployer(ctx context.Context, proofID, employerID string) (*domain.WorkProof, error) {
	proof, err := s.workProofRepo.FindWorkProofByID(ctx, proofID)
	if err != nil {
		return nil, fmt.Errorf("failed to load work proof: %w", err)
	}
	if proof.EmployerID != employerID {
		return nil, fmt.Errorf("%w: only the employer can review this work proof", apperrors.ErrForbidden)
	}
	return proof, nil
}

// loadForWorker loads a proof and checks the caller is its worker.
func (s *workProofService) loadForWorker(ctx context.Context, proofID, workerID string) (*domain.WorkProof, error) {
	proof, err := s.workProofRepo.FindWorkProofByID(ctx, proofID)
	if err != nil {
		return nil, fmt.Errorf("failed to load work proof: %w", err)
	}
	if proof.WorkerID != workerID {
		return nil, fmt.Errorf("%w: only the worker can perform this action", apperrors.ErrForbidden)
	}
	return proof, nil
}

// repairZeroAmount re-resolves a zero payment amount once, right before the
// money would move. Legacy rows can reach approval with no amount fixed.
func (s *workProofService) repairZeroAmount(ctx context.Context, proof *domain.WorkProof) error {
	if proof.PaymentAmount.IsPositive() || proof.AmountRepaired {
		return nil
	}
	job, err := s.jobs.GetJob(ctx, proof.JobID)
	if err != nil {
		return err
	}
	amount, _, err := s.applications.ResolvePaymentAmount(ctx, job, proof.ApplicationID, proof.WorkerID)
	if err != nil {
		return err
	}
	proof.PaymentAmount = amount
	proof.AmountRepaired = true
	middleware.GetLoggerFromCtx(ctx).Warn("Repaired zero payment amount",
		slog.String("proof_id", proof.ProofID),
		slog.String("amount", amount.String()))
	return nil
}

// payWorker credits the worker's earnings with the net amount and routes the
// platform fee to the platform account. Idempotent per reference type.
func (s *workProofService) payWorker(ctx context.Context, proof *domain.WorkProof, referenceType string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	feePolicy, err := s.policy.GetFeePolicy(ctx)
	if err != nil {
		return err
	}
	breakdown := fees.ComputePlatformFee(proof.PaymentAmount, *feePolicy)

	desc := fmt.Sprintf("Payment for work proof %s", proof.ProofID)
	err = s.wallet.Credit(ctx, proof.WorkerID, breakdown.Net, domain.BalanceEarnings, domain.TxnEarning, desc, proof.ProofID, referenceType)
	if err != nil && !errors.Is(err, apperrors.ErrAlreadyProcessed) {
		return fmt.Errorf("%w: worker payout failed: %v", apperrors.ErrPayment, err)
	}

	if breakdown.Fee.IsPositive() && s.platformAccountID != "" {
		feeDesc := fmt.Sprintf("Platform fee for work proof %s", proof.ProofID)
		err = s.wallet.Credit(ctx, s.platformAccountID, breakdown.Fee, domain.BalanceDeposit, domain.TxnPlatformFee, feeDesc, proof.ProofID, domain.RefWorkCompletionFee)
		if err != nil && !errors.Is(err, apperrors.ErrAlreadyProcessed) {
			// The worker is already paid; log and continue rather than
			// failing the approval.
			logger.Error("Failed to record platform fee",
				slog.String("proof_id", proof.ProofID),
				slog.String("fee", breakdown.Fee.String()),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// refundEmployer returns the escrowed gross amount to the employer's deposit
// balance. A refund already recorded for the same reference is success.
func (s *workProofService) refundEmployer(ctx context.Context, proof *domain.WorkProof, referenceType string) error {
	if !proof.PaymentAmount.IsPositive() {
		return nil
	}
	desc := fmt.Sprintf("Refund for work proof %s", proof.ProofID)
	err := s.wallet.Credit(ctx, proof.EmployerID, proof.PaymentAmount, domain.BalanceDeposit, domain.TxnRefund, desc, proof.ProofID, referenceType)
	if err != nil && !errors.Is(err, apperrors.ErrAlreadyProcessed) {
		return fmt.Errorf("%w: employer refund failed: %v", apperrors.ErrPayment, err)
	}
	return nil
}
