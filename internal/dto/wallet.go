package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

// WalletResponse defines the data returned for a user's wallet.
type WalletResponse struct {
	WalletID        string          `json:"walletID"`
	UserID          string          `json:"userID"`
	DepositBalance  decimal.Decimal `json:"depositBalance"`
	EarningsBalance decimal.Decimal `json:"earningsBalance"`
	TotalBalance    decimal.Decimal `json:"totalBalance"`
}

// WalletTransactionResponse defines the data returned for a wallet transaction.
type WalletTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceType   string          `json:"balanceType"`
	Description   string          `json:"description"`
	ReferenceID   string          `json:"referenceID,omitempty"`
	ReferenceType string          `json:"referenceType,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListWalletTransactionsParams defines the query parameters for listing
// wallet transactions.
type ListWalletTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListWalletTransactionsResponse is the paginated transaction listing.
type ListWalletTransactionsResponse struct {
	Transactions []WalletTransactionResponse `json:"transactions"`
	NextToken    *string                     `json:"nextToken,omitempty"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:        w.WalletID,
		UserID:          w.UserID,
		DepositBalance:  w.DepositBalance,
		EarningsBalance: w.EarningsBalance,
		TotalBalance:    w.DepositBalance.Add(w.EarningsBalance),
	}
}

// ToWalletTransactionResponse converts a domain.WalletTransaction to its DTO.
func ToWalletTransactionResponse(t *domain.WalletTransaction) WalletTransactionResponse {
	return WalletTransactionResponse{
		TransactionID: t.TransactionID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		BalanceType:   string(t.BalanceType),
		Description:   t.Description,
		ReferenceID:   t.ReferenceID,
		ReferenceType: t.ReferenceType,
		CreatedAt:     t.CreatedAt,
	}
}

// ToWalletTransactionResponses converts a slice of transactions to DTOs.
func ToWalletTransactionResponses(txns []domain.WalletTransaction) []WalletTransactionResponse {
	responses := make([]WalletTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToWalletTransactionResponse(&txns[i])
	}
	return responses
}
