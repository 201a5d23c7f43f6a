package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
)

// WalletReaderSvc defines read operations for wallet data
type WalletReaderSvc interface {
	// GetWallet retrieves the user's wallet, creating it on first access.
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)

	// ListTransactions retrieves a paginated list of the user's wallet transactions.
	ListTransactions(ctx context.Context, userID string, params dto.ListWalletTransactionsParams) (*dto.ListWalletTransactionsResponse, error)
}

// WalletWriterSvc defines balance-moving operations
type WalletWriterSvc interface {
	// Credit adds amount to the given balance of the user's wallet,
	// idempotent on (user, reference ID, reference type).
	Credit(ctx context.Context, userID string, amount decimal.Decimal, balanceType domain.BalanceType, txnType domain.TransactionType, description, referenceID, referenceType string) error

	// Debit removes amount from the given balance of the user's wallet,
	// idempotent on (user, reference ID, reference type).
	Debit(ctx context.Context, userID string, amount decimal.Decimal, balanceType domain.BalanceType, txnType domain.TransactionType, description, referenceID, referenceType string) error
}

// WalletSvcFacade combines all wallet service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
