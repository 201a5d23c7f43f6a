package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisputeStatus indicates the state of an escalated disagreement.
type DisputeStatus string

const (
	DisputePending     DisputeStatus = "pending"
	DisputeUnderReview DisputeStatus = "under_review"
	DisputeResolved    DisputeStatus = "resolved"
	DisputeEscalated   DisputeStatus = "escalated"
)

// IsActive reports whether the dispute still blocks a new dispute for the same
// (job, worker, employer) triple.
func (s DisputeStatus) IsActive() bool {
	return s == DisputePending || s == DisputeUnderReview || s == DisputeEscalated
}

// DisputePriority orders the admin review queue.
type DisputePriority string

const (
	PriorityLow    DisputePriority = "low"
	PriorityMedium DisputePriority = "medium"
	PriorityHigh   DisputePriority = "high"
	PriorityUrgent DisputePriority = "urgent"
)

// DisputeDecision is the admin's monetary ruling.
type DisputeDecision string

const (
	DecisionApproveWorker   DisputeDecision = "approve_worker"
	DecisionApproveEmployer DisputeDecision = "approve_employer"
	DecisionPartialRefund   DisputeDecision = "partial_refund"
)

// Valid reports whether the decision is one of the three supported rulings.
func (d DisputeDecision) Valid() bool {
	switch d {
	case DecisionApproveWorker, DecisionApproveEmployer, DecisionPartialRefund:
		return true
	}
	return false
}

// Dispute is a worker's contestation of a rejected work proof, adjudicated by
// an admin into one of three monetary outcomes.
type Dispute struct {
	DisputeID       string          `json:"disputeID"`
	JobID           string          `json:"jobID"`
	WorkProofID     string          `json:"workProofID"`
	WorkerID        string          `json:"workerID"`
	EmployerID      string          `json:"employerID"`
	JobTitle        string          `json:"jobTitle"`
	Amount          decimal.Decimal `json:"amount"` // gross proof amount at stake
	Reason          string          `json:"reason"`
	Evidence        string          `json:"evidence"`
	RequestedAction string          `json:"requestedAction"`
	Status          DisputeStatus   `json:"status"`
	Priority        DisputePriority `json:"priority"`

	Resolution *DisputeDecision `json:"resolution,omitempty"`
	AdminID    string           `json:"adminID,omitempty"`
	AdminNotes string           `json:"adminNotes,omitempty"`
	ResolvedAt *time.Time       `json:"resolvedAt,omitempty"`

	AuditFields
}
