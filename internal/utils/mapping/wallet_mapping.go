package mapping

import (
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	"github.com/khaledkhbro/microjob-backend/internal/models"
)

// ToModelWallet converts a domain Wallet to a model Wallet
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:        d.WalletID,
		UserID:          d.UserID,
		DepositBalance:  d.DepositBalance,
		EarningsBalance: d.EarningsBalance,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:        m.WalletID,
		UserID:          m.UserID,
		DepositBalance:  m.DepositBalance,
		EarningsBalance: m.EarningsBalance,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelWalletTransaction converts a domain WalletTransaction to its model
func ToModelWalletTransaction(d domain.WalletTransaction) models.WalletTransaction {
	return models.WalletTransaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		BalanceType:   string(d.BalanceType),
		Description:   d.Description,
		ReferenceID:   d.ReferenceID,
		ReferenceType: d.ReferenceType,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWalletTransaction converts a model WalletTransaction to its domain form
func ToDomainWalletTransaction(m models.WalletTransaction) domain.WalletTransaction {
	return domain.WalletTransaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		BalanceType:   domain.BalanceType(m.BalanceType),
		Description:   m.Description,
		ReferenceID:   m.ReferenceID,
		ReferenceType: m.ReferenceType,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWalletTransactionSlice converts model transactions to domain ones
func ToDomainWalletTransactionSlice(ms []models.WalletTransaction) []domain.WalletTransaction {
	ds := make([]domain.WalletTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWalletTransaction(m)
	}
	return ds
}
