package models

import "github.com/shopspring/decimal"

// Wallet mirrors the wallets table.
type Wallet struct {
	WalletID        string          `json:"walletID"`
	UserID          string          `json:"userID"`
	DepositBalance  decimal.Decimal `json:"depositBalance"`
	EarningsBalance decimal.Decimal `json:"earningsBalance"`
	AuditFields
}

// WalletTransaction mirrors the wallet_transactions table.
type WalletTransaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceType   string          `json:"balanceType"`
	Description   string          `json:"description"`
	ReferenceID   string          `json:"referenceID"`
	ReferenceType string          `json:"referenceType"`
	AuditFields
}
