package domain

import "github.com/shopspring/decimal"

// BalanceType selects which sub-balance of a wallet a transaction mutates.
type BalanceType string

const (
	// BalanceDeposit holds employer funds restricted to paying for job work;
	// refundable but not withdrawable.
	BalanceDeposit BalanceType = "deposit"
	// BalanceEarnings holds worker funds from completed work; withdrawable.
	BalanceEarnings BalanceType = "earnings"
)

// TransactionType classifies a wallet mutation.
type TransactionType string

const (
	TxnEarning     TransactionType = "earning"
	TxnRefund      TransactionType = "refund"
	TxnPayment     TransactionType = "payment"
	TxnPlatformFee TransactionType = "platform_fee"
)

// Reference types stamped on wallet transactions. Together with the reference
// ID and user ID they form the idempotency key that prevents duplicate
// settlement for the same lifecycle event.
const (
	RefWorkCompletion        = "work_completion"
	RefWorkCompletionFee     = "work_completion_fee"
	RefInstantPayment        = "instant_payment"
	RefWorkRejectionRefund   = "work_rejection_refund"
	RefJobCancellationRefund = "job_cancellation_refund"
	RefDisputeResolution     = "dispute_resolution"
)

// Wallet is a user's pair of sub-balances.
type Wallet struct {
	WalletID        string          `json:"walletID"`
	UserID          string          `json:"userID"`
	DepositBalance  decimal.Decimal `json:"depositBalance"`
	EarningsBalance decimal.Decimal `json:"earningsBalance"`
	AuditFields
}

// WalletTransaction is an immutable record of a single balance mutation.
type WalletTransaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // positive, 2 decimal places
	BalanceType   BalanceType     `json:"balanceType"`
	Description   string          `json:"description"`
	ReferenceID   string          `json:"referenceID"`
	ReferenceType string          `json:"referenceType"`
	AuditFields
}
