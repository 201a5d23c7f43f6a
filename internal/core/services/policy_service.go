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
	"github.com/khaledkhbro/microjob-backend/internal/dto"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
)

// Defaults used until an admin stores the first policy version.
func defaultFeePolicy() domain.FeePolicy {
	return domain.FeePolicy{
		Enabled:    true,
		Percentage: decimal.NewFromInt(5),
		FixedFee:   decimal.Zero,
		MinimumFee: decimal.Zero,
		MaximumFee: decimal.Zero,
	}
}

func defaultRevisionPolicy() domain.RevisionPolicy {
	return domain.RevisionPolicy{
		MaxRevisionRequests:     2,
		RejectionTimeout:        domain.Timeout{Value: 3, Unit: domain.UnitDays},
		RevisionTimeout:         domain.Timeout{Value: 24, Unit: domain.UnitHours},
		EnableAutomaticRefunds:  true,
		RefundOnRejectionExpiry: true,
		RefundOnRevisionExpiry:  true,
	}
}

func defaultApprovalPolicy() domain.ApprovalPolicy {
	return domain.ApprovalPolicy{
		InstantEnabled:     true,
		ManualApprovalDays: 3,
		MinimumPayment:     decimal.NewFromInt(25),
	}
}

type policyService struct {
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewPolicyService creates the platform policy service.
func NewPolicyService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.PolicySvcFacade {
	return &policyService{settingsRepo: settingsRepo}
}

var _ portssvc.PolicySvcFacade = (*policyService)(nil)

func (s *policyService) GetFeePolicy(ctx context.Context) (*domain.FeePolicy, error) {
	policy, err := s.settingsRepo.GetFeePolicy(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			p := defaultFeePolicy()
			return &p, nil
		}
		return nil, fmt.Errorf("failed to get fee policy: %w", err)
	}
	return policy, nil
}

func (s *policyService) GetRevisionPolicy(ctx context.Context) (*domain.RevisionPolicy, error) {
	policy, err := s.settingsRepo.GetRevisionPolicy(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			p := defaultRevisionPolicy()
			return &p, nil
		}
		return nil, fmt.Errorf("failed to get revision policy: %w", err)
	}
	return policy, nil
}

func (s *policyService) GetApprovalPolicy(ctx context.Context) (*domain.ApprovalPolicy, error) {
	policy, err := s.settingsRepo.GetApprovalPolicy(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			p := defaultApprovalPolicy()
			return &p, nil
		}
		return nil, fmt.Errorf("failed to get approval policy: %w", err)
	}
	return policy, nil
}

func (s *policyService) UpdateFeePolicy(ctx context.Context, adminID string, req dto.UpdateFeePolicyRequest) (*domain.FeePolicy, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Percentage.IsNegative() || req.Percentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: percentage must be between 0 and 100", apperrors.ErrValidation)
	}
	if req.FixedFee.IsNegative() || req.MinimumFee.IsNegative() || req.MaximumFee.IsNegative() {
		return nil, fmt.Errorf("%w: fee components must not be negative", apperrors.ErrValidation)
	}
	if req.MaximumFee.GreaterThan(decimal.Zero) && req.MaximumFee.LessThan(req.MinimumFee) {
		return nil, fmt.Errorf("%w: maximum fee must not be below minimum fee", apperrors.ErrValidation)
	}

	policy := domain.FeePolicy{
		Enabled:    *req.Enabled,
		Percentage: req.Percentage,
		FixedFee:   req.FixedFee,
		MinimumFee: req.MinimumFee,
		MaximumFee: req.MaximumFee,
	}
	if err := s.settingsRepo.SaveFeePolicy(ctx, policy, adminID); err != nil {
		return nil, fmt.Errorf("failed to save fee policy: %w", err)
	}
	logger.Info("Fee policy updated", slog.String("admin_id", adminID), slog.String("percentage", policy.Percentage.String()))
	return &policy, nil
}

func (s *policyService) UpdateRevisionPolicy(ctx context.Context, adminID string, req dto.UpdateRevisionPolicyRequest) (*domain.RevisionPolicy, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.MaxRevisionRequests < 0 {
		return nil, fmt.Errorf("%w: max revision requests must not be negative", apperrors.ErrValidation)
	}
	for _, t := range []dto.TimeoutDTO{req.RejectionTimeout, req.RevisionTimeout} {
		if t.Value < 1 {
			return nil, fmt.Errorf("%w: timeout value must be at least 1", apperrors.ErrValidation)
		}
		if !domain.TimeoutUnit(t.Unit).Valid() {
			return nil, fmt.Errorf("%w: unknown timeout unit %q", apperrors.ErrValidation, t.Unit)
		}
	}

	policy := domain.RevisionPolicy{
		MaxRevisionRequests: req.MaxRevisionRequests,
		RejectionTimeout: domain.Timeout{
			Value: req.RejectionTimeout.Value,
			Unit:  domain.TimeoutUnit(req.RejectionTimeout.Unit),
		},
		RevisionTimeout: domain.Timeout{
			Value: req.RevisionTimeout.Value,
			Unit:  domain.TimeoutUnit(req.RevisionTimeout.Unit),
		},
		EnableAutomaticRefunds:  *req.EnableAutomaticRefunds,
		RefundOnRejectionExpiry: *req.RefundOnRejectionExpiry,
		RefundOnRevisionExpiry:  *req.RefundOnRevisionExpiry,
	}
	if err := s.settingsRepo.SaveRevisionPolicy(ctx, policy, adminID); err != nil {
		return nil, fmt.Errorf("failed to save revision policy: %w", err)
	}
	logger.Info("Revision policy updated", slog.String("admin_id", adminID), slog.Int("max_revisions", policy.MaxRevisionRequests))
	return &policy, nil
}

func (s *policyService) UpdateApprovalPolicy(ctx context.Context, adminID string, req dto.UpdateApprovalPolicyRequest) (*domain.ApprovalPolicy, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.MinimumPayment.IsNegative() {
		return nil, fmt.Errorf("%w: minimum payment must not be negative", apperrors.ErrValidation)
	}

	policy := domain.ApprovalPolicy{
		InstantEnabled:     *req.InstantEnabled,
		ManualApprovalDays: req.ManualApprovalDays,
		MinimumPayment:     req.MinimumPayment,
	}
	if err := s.settingsRepo.SaveApprovalPolicy(ctx, policy, adminID); err != nil {
		return nil, fmt.Errorf("failed to save approval policy: %w", err)
	}
	logger.Info("Approval policy updated", slog.String("admin_id", adminID))
	return &policy, nil
}
