package repositories

import (
	"context"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

// WalletReader defines read operations for wallet data
type WalletReader interface {
	// FindWalletByUserID retrieves the wallet owned by the given user.
	FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error)

	// FindTransactionByReference retrieves the transaction recorded for the given
	// (user, reference) pair, if any. Used to detect already-processed payments.
	FindTransactionByReference(ctx context.Context, userID, referenceID, referenceType string) (*domain.WalletTransaction, error)

	// ListTransactionsByUser retrieves a paginated list of wallet transactions
	// for a user using token-based pagination.
	ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.WalletTransaction, *string, error)
}

// WalletWriter defines write operations for wallet data
type WalletWriter interface {
	// SaveWallet persists a newly created wallet.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error

	// ApplyTransaction atomically adjusts the wallet balance and records the
	// transaction row. It returns apperrors.ErrAlreadyProcessed when a transaction
	// with the same (user, reference ID, reference type) already exists, and
	// apperrors.ErrValidation when the adjustment would drive a balance negative.
	ApplyTransaction(ctx context.Context, txn domain.WalletTransaction) error
}

// WalletRepositoryFacade combines all wallet repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
