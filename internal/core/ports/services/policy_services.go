package services

import (
	"context"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
)

// PolicyProviderSvc exposes the current platform policies to other services.
type PolicyProviderSvc interface {
	// GetFeePolicy returns the current platform fee policy.
	GetFeePolicy(ctx context.Context) (*domain.FeePolicy, error)

	// GetRevisionPolicy returns the current revision and deadline policy.
	GetRevisionPolicy(ctx context.Context) (*domain.RevisionPolicy, error)

	// GetApprovalPolicy returns the current approval policy.
	GetApprovalPolicy(ctx context.Context) (*domain.ApprovalPolicy, error)
}

// PolicyWriterSvc defines the admin operations that change platform policies.
type PolicyWriterSvc interface {
	// UpdateFeePolicy replaces the fee policy with a new version.
	UpdateFeePolicy(ctx context.Context, adminID string, req dto.UpdateFeePolicyRequest) (*domain.FeePolicy, error)

	// UpdateRevisionPolicy replaces the revision policy with a new version.
	UpdateRevisionPolicy(ctx context.Context, adminID string, req dto.UpdateRevisionPolicyRequest) (*domain.RevisionPolicy, error)

	// UpdateApprovalPolicy replaces the approval policy with a new version.
	UpdateApprovalPolicy(ctx context.Context, adminID string, req dto.UpdateApprovalPolicyRequest) (*domain.ApprovalPolicy, error)
}

// PolicySvcFacade combines the policy service interfaces
type PolicySvcFacade interface {
	PolicyProviderSvc
	PolicyWriterSvc
}
