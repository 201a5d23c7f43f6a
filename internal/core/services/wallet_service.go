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
)

type walletService struct {
	walletRepo portsrepo.WalletRepositoryFacade
}

// NewWalletService creates the wallet service.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: walletRepo}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// GetWallet retrieves the user's wallet, creating an empty one on first access.
func (s *walletService) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByUserID(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()
	fresh := domain.Wallet{
		WalletID:        uuid.NewString(),
		UserID:          userID,
		DepositBalance:  decimal.Zero,
		EarningsBalance: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.walletRepo.SaveWallet(ctx, fresh); err != nil {
		// Lost a race with a concurrent first access; re-read.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.walletRepo.FindWalletByUserID(ctx, userID)
		}
		logger.Error("Failed to create wallet", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	logger.Info("Wallet created", slog.String("user_id", userID), slog.String("wallet_id", fresh.WalletID))
	return &fresh, nil
}

func (s *walletService) ListTransactions(ctx context.Context, userID string, params dto.ListWalletTransactionsParams) (*dto.ListWalletTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	txns, nextToken, err := s.walletRepo.ListTransactionsByUser(ctx, userID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}
	return &dto.ListWalletTransactionsResponse{
		Transactions: dto.ToWalletTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// Credit adds amount to the given balance, idempotent on the reference tuple.
func (s *walletService) Credit(ctx context.Context, userID string, amount decimal.Decimal, balanceType domain.BalanceType, txnType domain.TransactionType, description, referenceID, referenceType string) error {
	return s.apply(ctx, userID, amount, balanceType, txnType, description, referenceID, referenceType)
}

// Debit removes amount from the given balance, idempotent on the reference tuple.
func (s *walletService) Debit(ctx context.Context, userID string, amount decimal.Decimal, balanceType domain.BalanceType, txnType domain.TransactionType, description, referenceID, referenceType string) error {
	return s.apply(ctx, userID, amount.Neg(), balanceType, txnType, description, referenceID, referenceType)
}

// apply records a signed balance movement. Positive amounts credit the
// balance, negative amounts debit it.
func (s *walletService) apply(ctx context.Context, userID string, amount decimal.Decimal, balanceType domain.BalanceType, txnType domain.TransactionType, description, referenceID, referenceType string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if amount.IsZero() {
		return nil
	}
	if referenceID == "" || referenceType == "" {
		return fmt.Errorf("%w: wallet transaction requires a reference", apperrors.ErrValidation)
	}

	// Make sure the wallet row exists before adjusting it.
	if _, err := s.GetWallet(ctx, userID); err != nil {
		return err
	}

	now := time.Now()
	txn := domain.WalletTransaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          txnType,
		Amount:        amount,
		BalanceType:   balanceType,
		Description:   description,
		ReferenceID:   referenceID,
		ReferenceType: referenceType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.walletRepo.ApplyTransaction(ctx, txn); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyProcessed) {
			logger.Info("Wallet transaction already processed",
				slog.String("user_id", userID),
				slog.String("reference_id", referenceID),
				slog.String("reference_type", referenceType))
			return err
		}
		logger.Error("Failed to apply wallet transaction",
			slog.String("user_id", userID),
			slog.String("reference_id", referenceID),
			slog.String("reference_type", referenceType),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to apply wallet transaction: %w", err)
	}

	logger.Info("Wallet transaction applied",
		slog.String("user_id", userID),
		slog.String("type", string(txnType)),
		slog.String("balance_type", string(balanceType)),
		slog.String("amount", amount.String()),
		slog.String("reference_type", referenceType))
	return nil
}
