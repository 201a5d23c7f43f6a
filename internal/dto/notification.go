package dto

import (
	"time"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

// ListNotificationsParams defines the query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ActionURL      string    `json:"actionUrl,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListNotificationsResponse is the paginated notification listing.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	NextToken     *string                `json:"nextToken,omitempty"`
}

// ToNotificationResponse converts a domain.Notification to its DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Type:           string(n.Type),
		Title:          n.Title,
		Description:    n.Description,
		ActionURL:      n.ActionURL,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

// ToNotificationResponses converts a slice of notifications to DTOs.
func ToNotificationResponses(ns []domain.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(ns))
	for i := range ns {
		responses[i] = ToNotificationResponse(&ns[i])
	}
	return responses
}
