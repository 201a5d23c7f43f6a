package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

// ResolveDisputeRequest defines the payload for an admin resolving a dispute.
type ResolveDisputeRequest struct {
	Decision   domain.DisputeDecision `json:"decision" binding:"required,oneof=approve_worker approve_employer partial_refund"`
	AdminNotes string                 `json:"adminNotes" binding:"omitempty,max=5000"`
}

// EscalateDisputeRequest defines the payload for escalating a dispute.
type EscalateDisputeRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=2000"`
}

// ListDisputesParams defines the query parameters for listing disputes.
type ListDisputesParams struct {
	Status    *domain.DisputeStatus `form:"status"`
	Limit     int                   `form:"limit"`
	NextToken *string               `form:"nextToken"`
}

// DisputeResponse defines the data returned for a dispute.
type DisputeResponse struct {
	DisputeID       string          `json:"disputeID"`
	JobID           string          `json:"jobID"`
	WorkProofID     string          `json:"workProofID"`
	WorkerID        string          `json:"workerID"`
	EmployerID      string          `json:"employerID"`
	JobTitle        string          `json:"jobTitle"`
	Amount          decimal.Decimal `json:"amount"`
	Reason          string          `json:"reason"`
	Evidence        string          `json:"evidence,omitempty"`
	RequestedAction string          `json:"requestedAction,omitempty"`
	Status          string          `json:"status"`
	Priority        string          `json:"priority"`
	Resolution      *string         `json:"resolution,omitempty"`
	AdminID         string          `json:"adminID,omitempty"`
	AdminNotes      string          `json:"adminNotes,omitempty"`
	ResolvedAt      *time.Time      `json:"resolvedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListDisputesResponse is the paginated response for listing disputes.
type ListDisputesResponse struct {
	Disputes  []DisputeResponse `json:"disputes"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToDisputeResponse converts a domain.Dispute to DisputeResponse DTO.
func ToDisputeResponse(d *domain.Dispute) DisputeResponse {
	resp := DisputeResponse{
		DisputeID:       d.DisputeID,
		JobID:           d.JobID,
		WorkProofID:     d.WorkProofID,
		WorkerID:        d.WorkerID,
		EmployerID:      d.EmployerID,
		JobTitle:        d.JobTitle,
		Amount:          d.Amount,
		Reason:          d.Reason,
		Evidence:        d.Evidence,
		RequestedAction: d.RequestedAction,
		Status:          string(d.Status),
		Priority:        string(d.Priority),
		AdminID:         d.AdminID,
		AdminNotes:      d.AdminNotes,
		ResolvedAt:      d.ResolvedAt,
		CreatedAt:       d.CreatedAt,
	}
	if d.Resolution != nil {
		res := string(*d.Resolution)
		resp.Resolution = &res
	}
	return resp
}

// ToDisputeResponses converts a slice of domain.Dispute to []DisputeResponse.
func ToDisputeResponses(disputes []domain.Dispute) []DisputeResponse {
	responses := make([]DisputeResponse, len(disputes))
	for i := range disputes {
		responses[i] = ToDisputeResponse(&disputes[i])
	}
	return responses
}
