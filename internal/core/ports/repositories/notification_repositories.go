package repositories

import (
	"context"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

// NotificationWriter defines write operations for notification data
type NotificationWriter interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead marks a notification as read by its owner.
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error
}

// NotificationReader defines read operations for notification data
type NotificationReader interface {
	// ListNotificationsByUser retrieves a paginated list of notifications for a user.
	ListNotificationsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Notification, *string, error)
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
