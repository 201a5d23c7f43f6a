package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
)

// JobSvc exposes the job read model and the completion recompute used by the
// review engine after an approval.
type JobSvc interface {
	// GetJob retrieves a job by ID.
	GetJob(ctx context.Context, jobID string) (*domain.Job, error)

	// RecomputeCompletion re-derives the job status from the count of approved
	// workers versus workers needed.
	RecomputeCompletion(ctx context.Context, jobID string, updatedBy string) error
}

// ApplicationSvc exposes application reads and the payment amount resolution
// fallback chain.
type ApplicationSvc interface {
	// GetApplication retrieves an application by ID.
	GetApplication(ctx context.Context, applicationID string) (*domain.Application, error)

	// ResolvePaymentAmount determines the gross payment for a proof: the
	// worker's accepted application budget, then any accepted application on
	// the job, then the job's minimum budget, then the platform payment floor.
	// The boolean reports whether a fallback (not the worker's own accepted
	// budget) supplied the amount.
	ResolvePaymentAmount(ctx context.Context, job *domain.Job, applicationID, workerID string) (decimal.Decimal, bool, error)
}

// NotifierSvc records in-app notifications for lifecycle events. Failures are
// logged by implementations and never propagate to callers.
type NotifierSvc interface {
	// Notify persists a notification for the user.
	Notify(ctx context.Context, userID string, kind domain.NotificationType, title, description, actionURL string)

	// ListNotifications retrieves the user's notifications.
	ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error)

	// MarkRead marks a notification as read.
	MarkRead(ctx context.Context, notificationID, userID string) error
}
