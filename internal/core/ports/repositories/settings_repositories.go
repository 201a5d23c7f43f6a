package repositories

import (
	"context"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

// SettingsReader defines read operations for platform settings
type SettingsReader interface {
	// GetFeePolicy retrieves the current platform fee policy.
	GetFeePolicy(ctx context.Context) (*domain.FeePolicy, error)

	// GetRevisionPolicy retrieves the current revision and deadline policy.
	GetRevisionPolicy(ctx context.Context) (*domain.RevisionPolicy, error)

	// GetApprovalPolicy retrieves the current approval policy.
	GetApprovalPolicy(ctx context.Context) (*domain.ApprovalPolicy, error)
}

// SettingsWriter defines write operations for platform settings
type SettingsWriter interface {
	// SaveFeePolicy persists a new fee policy version.
	SaveFeePolicy(ctx context.Context, policy domain.FeePolicy, updatedBy string) error

	// SaveRevisionPolicy persists a new revision policy version.
	SaveRevisionPolicy(ctx context.Context, policy domain.RevisionPolicy, updatedBy string) error

	// SaveApprovalPolicy persists a new approval policy version.
	SaveApprovalPolicy(ctx context.Context, policy domain.ApprovalPolicy, updatedBy string) error
}

// SettingsRepositoryFacade combines all settings repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
