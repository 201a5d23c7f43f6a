package services

import (
	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Proof and dispute mutations on the same entity are serialized through
	// one shared lock set.
	locks := NewEntityLocks()

	// Leaf services first; the review engine depends on all of them.
	container.Notifier = NewNotifierService(repos.NotificationRepo)
	container.Policy = NewPolicyService(repos.SettingsRepo)
	container.Wallet = NewWalletService(repos.WalletRepo)
	container.Job = NewJobService(repos.JobRepo, repos.WorkProofRepo)
	container.Application = NewApplicationService(repos.JobRepo, container.Policy)

	container.Dispute = NewDisputeService(
		repos.DisputeRepo,
		repos.WorkProofRepo,
		container.Wallet,
		container.Job,
		container.Notifier,
		locks,
	)

	container.WorkProof = NewWorkProofService(
		repos.WorkProofRepo,
		container.Dispute,
		container.Wallet,
		container.Job,
		container.Application,
		container.Notifier,
		container.Policy,
		locks,
		cfg.PlatformAccountID,
	)

	container.Sweeper = NewSweeperService(
		repos.WorkProofRepo,
		container.WorkProof,
		container.Wallet,
		container.Notifier,
		container.Policy,
		locks,
		cfg.SweepBatch,
	)

	return container
}
