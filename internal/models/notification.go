package models

// Notification mirrors the notifications table.
type Notification struct {
	NotificationID string `json:"notificationID"`
	UserID         string `json:"userID"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ActionURL      string `json:"actionUrl"`
	Read           bool   `json:"read"`
	AuditFields
}
