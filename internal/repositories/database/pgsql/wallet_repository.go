package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
	"github.com/khaledkhbro/microjob-backend/internal/models"
	"github.com/khaledkhbro/microjob-backend/internal/utils/mapping"
	"github.com/khaledkhbro/microjob-backend/internal/utils/pagination"
)

// uniqueViolation is the Postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// walletTxnReferenceConstraint backs transaction idempotency: one row per
// (user_id, reference_id, reference_type).
const walletTxnReferenceConstraint = "wallet_transactions_reference_uniq"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet and wallet transaction data.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

func (r *PgxWalletRepository) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `
		SELECT wallet_id, user_id, deposit_balance, earnings_balance,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM wallets
		WHERE user_id = $1;
	`
	var m models.Wallet
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.WalletID,
		&m.UserID,
		&m.DepositBalance,
		&m.EarningsBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find wallet for user "+userID, err)
	}
	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)
	query := `
		INSERT INTO wallets (wallet_id, user_id, deposit_balance, earnings_balance,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WalletID,
		m.UserID,
		m.DepositBalance,
		m.EarningsBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save wallet "+m.WalletID, err)
	}
	return nil
}

func (r *PgxWalletRepository) FindTransactionByReference(ctx context.Context, userID, referenceID, referenceType string) (*domain.WalletTransaction, error) {
	query := `
		SELECT transaction_id, user_id, type, amount, balance_type, description,
		       reference_id, reference_type,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM wallet_transactions
		WHERE user_id = $1 AND reference_id = $2 AND reference_type = $3;
	`
	var m models.WalletTransaction
	err := r.Pool.QueryRow(ctx, query, userID, referenceID, referenceType).Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Type,
		&m.Amount,
		&m.BalanceType,
		&m.Description,
		&m.ReferenceID,
		&m.ReferenceType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find wallet transaction by reference", err)
	}
	txn := mapping.ToDomainWalletTransaction(m)
	return &txn, nil
}

// ApplyTransaction adjusts the wallet balance and records the transaction row
// atomically. The signed amount credits (positive) or debits (negative) the
// selected balance; the unique reference index turns a replay into
// apperrors.ErrAlreadyProcessed.
func (r *PgxWalletRepository) ApplyTransaction(ctx context.Context, txn domain.WalletTransaction) error {
	m := mapping.ToModelWalletTransaction(txn)

	balanceColumn := "deposit_balance"
	if txn.BalanceType == domain.BalanceEarnings {
		balanceColumn = "earnings_balance"
	}

	return r.InTx(ctx, func(tx pgx.Tx) error {
		// Lock the wallet row, apply the delta and reject negative balances
		// in one statement.
		updateQuery := `
			UPDATE wallets
			SET ` + balanceColumn + ` = ` + balanceColumn + ` + $1,
			    last_updated_at = $2,
			    last_updated_by = $3
			WHERE user_id = $4
			RETURNING ` + balanceColumn + `;
		`
		var newBalance decimal.Decimal
		err := tx.QueryRow(ctx, updateQuery, m.Amount, time.Now(), m.UserID, m.UserID).Scan(&newBalance)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("wallet not found for user " + m.UserID)
			}
			var pgErr *pgconn.PgError
			// check_violation from the non-negative balance constraint
			if errors.As(err, &pgErr) && pgErr.Code == "23514" {
				return apperrors.ErrValidation
			}
			return apperrors.NewAppError(500, "failed to update wallet balance for user "+m.UserID, err)
		}
		if newBalance.IsNegative() {
			return apperrors.ErrValidation
		}

		insertQuery := `
			INSERT INTO wallet_transactions (
				transaction_id, user_id, type, amount, balance_type, description,
				reference_id, reference_type,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
		`
		_, err = tx.Exec(ctx, insertQuery,
			m.TransactionID,
			m.UserID,
			m.Type,
			m.Amount,
			m.BalanceType,
			m.Description,
			m.ReferenceID,
			m.ReferenceType,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == walletTxnReferenceConstraint {
				// The rollback leaves the balance untouched.
				return apperrors.ErrAlreadyProcessed
			}
			return apperrors.NewAppError(500, "failed to insert wallet transaction "+m.TransactionID, err)
		}
		return nil
	})
}

func (r *PgxWalletRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.WalletTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT transaction_id, user_id, type, amount, balance_type, description,
		       reference_id, reference_type,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM wallet_transactions
		WHERE user_id = $1
	`
	orderByClause := `ORDER BY created_at DESC, transaction_id DESC`

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		fields, decodeErr := pagination.DecodeMultiFieldToken(*nextToken)
		if decodeErr != nil || len(fields) != 2 {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		lastCreatedAt, parseErr := time.Parse(time.RFC3339Nano, fields[0])
		if parseErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", parseErr)
		}
		query := baseQuery + ` AND (created_at, transaction_id) < ($2, $3) ` + orderByClause + ` LIMIT $4;`
		rows, err = r.Pool.Query(ctx, query, userID, lastCreatedAt, fields[1], fetchLimit)
	} else {
		query := baseQuery + ` ` + orderByClause + ` LIMIT $2;`
		rows, err = r.Pool.Query(ctx, query, userID, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query wallet transactions for user "+userID, err)
	}
	defer rows.Close()

	txns := []models.WalletTransaction{}
	for rows.Next() {
		var m models.WalletTransaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.Type,
			&m.Amount,
			&m.BalanceType,
			&m.Description,
			&m.ReferenceID,
			&m.ReferenceType,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan wallet transaction row", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating wallet transaction rows", err)
	}

	var token *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		t := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.TransactionID)
		token = &t
	}

	return mapping.ToDomainWalletTransactionSlice(txns), token, nil
}
