package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkProofRepo:    newPgxWorkProofRepository(dbPool),
		DisputeRepo:      newPgxDisputeRepository(dbPool),
		WalletRepo:       newPgxWalletRepository(dbPool),
		SettingsRepo:     newPgxSettingsRepository(dbPool),
		JobRepo:          newPgxJobRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
