package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
)

type notifierService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotifierService creates the in-app notification service.
func NewNotifierService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotifierSvc {
	return &notifierService{notificationRepo: notificationRepo}
}

var _ portssvc.NotifierSvc = (*notifierService)(nil)

// Notify persists a notification. Failures are logged and swallowed so a
// notification hiccup never fails the lifecycle operation that raised it.
func (s *notifierService) Notify(ctx context.Context, userID string, kind domain.NotificationType, title, description, actionURL string) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Type:           kind,
		Title:          title,
		Description:    description,
		ActionURL:      actionURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		logger.Error("Failed to save notification",
			slog.String("user_id", userID),
			slog.String("type", string(kind)),
			slog.String("error", err.Error()))
	}
}

func (s *notifierService) ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	notifications, nextToken, err := s.notificationRepo.ListNotificationsByUser(ctx, userID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return &dto.ListNotificationsResponse{
		Notifications: dto.ToNotificationResponses(notifications),
		NextToken:     nextToken,
	}, nil
}

func (s *notifierService) MarkRead(ctx context.Context, notificationID, userID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, userID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
