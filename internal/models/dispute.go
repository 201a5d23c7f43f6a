package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dispute mirrors the disputes table.
type Dispute struct {
	DisputeID       string          `json:"disputeID"`
	JobID           string          `json:"jobID"`
	WorkProofID     string          `json:"workProofID"`
	WorkerID        string          `json:"workerID"`
	EmployerID      string          `json:"employerID"`
	JobTitle        string          `json:"jobTitle"`
	Amount          decimal.Decimal `json:"amount"`
	Reason          string          `json:"reason"`
	Evidence        string          `json:"evidence"`
	RequestedAction string          `json:"requestedAction"`
	Status          string          `json:"status"`
	Priority        string          `json:"priority"`
	Resolution      *string         `json:"resolution"`
	AdminID         string          `json:"adminID"`
	AdminNotes      string          `json:"adminNotes"`
	ResolvedAt      *time.Time      `json:"resolvedAt"`
	AuditFields
}
