package domain

// NotificationType categorizes lifecycle notifications sent to workers,
// employers and admins.
type NotificationType string

const (
	NotifyWorkSubmitted     NotificationType = "work_submitted"
	NotifyWorkApproved      NotificationType = "work_approved"
	NotifyWorkRejected      NotificationType = "work_rejected"
	NotifyRevisionRequested NotificationType = "revision_requested"
	NotifyWorkResubmitted   NotificationType = "work_resubmitted"
	NotifyWorkCancelled     NotificationType = "work_cancelled"
	NotifyDisputeCreated    NotificationType = "dispute_created"
	NotifyDisputeResolved   NotificationType = "dispute_resolved"
	NotifyDeadlineExpired   NotificationType = "deadline_expired"
	NotifyPaymentReceived   NotificationType = "payment_received"
)

// Notification is a persisted in-app notification row.
type Notification struct {
	NotificationID string           `json:"notificationID"`
	UserID         string           `json:"userID"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	ActionURL      string           `json:"actionUrl,omitempty"`
	Read           bool             `json:"read"`
	AuditFields
}
