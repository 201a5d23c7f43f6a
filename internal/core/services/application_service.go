package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
)

type applicationService struct {
	jobRepo portsrepo.JobRepositoryFacade
	policy  portssvc.PolicyProviderSvc
}

// NewApplicationService creates the application read-model service.
func NewApplicationService(jobRepo portsrepo.JobRepositoryFacade, policy portssvc.PolicyProviderSvc) portssvc.ApplicationSvc {
	return &applicationService{jobRepo: jobRepo, policy: policy}
}

var _ portssvc.ApplicationSvc = (*applicationService)(nil)

func (s *applicationService) GetApplication(ctx context.Context, applicationID string) (*domain.Application, error) {
	app, err := s.jobRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ResolvePaymentAmount walks the fallback chain for a proof's gross payment:
// the named application's budget, then the worker's accepted application,
// then any accepted application on the job, then the job's minimum budget,
// then the platform payment floor. The boolean reports whether a fallback
// supplied the amount.
func (s *applicationService) ResolvePaymentAmount(ctx context.Context, job *domain.Job, applicationID, workerID string) (decimal.Decimal, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	app, err := s.jobRepo.FindApplicationByID(ctx, applicationID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, false, fmt.Errorf("failed to resolve payment amount: %w", err)
	}
	if app != nil && app.Status == domain.ApplicationAccepted && app.ProposedBudget.GreaterThan(decimal.Zero) {
		return app.ProposedBudget, false, nil
	}

	if accepted, err := s.jobRepo.FindAcceptedApplication(ctx, job.JobID, workerID); err == nil &&
		accepted.ProposedBudget.GreaterThan(decimal.Zero) {
		logger.Warn("Payment amount repaired from worker's accepted application",
			slog.String("job_id", job.JobID), slog.String("worker_id", workerID))
		return accepted.ProposedBudget, true, nil
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, false, fmt.Errorf("failed to resolve payment amount: %w", err)
	}

	if any, err := s.jobRepo.FindAnyAcceptedApplication(ctx, job.JobID); err == nil &&
		any.ProposedBudget.GreaterThan(decimal.Zero) {
		logger.Warn("Payment amount repaired from another accepted application",
			slog.String("job_id", job.JobID), slog.String("worker_id", workerID))
		return any.ProposedBudget, true, nil
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, false, fmt.Errorf("failed to resolve payment amount: %w", err)
	}

	if job.BudgetMin.GreaterThan(decimal.Zero) {
		logger.Warn("Payment amount repaired from job minimum budget",
			slog.String("job_id", job.JobID), slog.String("worker_id", workerID))
		return job.BudgetMin, true, nil
	}

	approval, err := s.policy.GetApprovalPolicy(ctx)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to resolve payment amount: %w", err)
	}
	logger.Warn("Payment amount repaired to platform floor",
		slog.String("job_id", job.JobID),
		slog.String("worker_id", workerID),
		slog.String("floor", approval.MinimumPayment.String()))
	return approval.MinimumPayment, true, nil
}
