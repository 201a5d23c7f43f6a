package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

// SubmitWorkProofRequest defines the payload for submitting work on a job.
type SubmitWorkProofRequest struct {
	JobID          string   `json:"jobID" binding:"required"`
	ApplicationID  string   `json:"applicationID" binding:"required"`
	Title          string   `json:"title" binding:"required,max=200"`
	SubmissionText string   `json:"submissionText" binding:"required"`
	ProofFiles     []string `json:"proofFiles"`
	ProofLinks     []string `json:"proofLinks" binding:"omitempty,dive,url"`
	Screenshots    []string `json:"screenshots"`
}

// ReviewDecisionRequest carries the employer's feedback for an approve,
// reject or revision-request action.
type ReviewDecisionRequest struct {
	Feedback string `json:"feedback" binding:"omitempty,max=2000"`
}

// ResubmitWorkRequest defines the payload for resubmitting revised work.
type ResubmitWorkRequest struct {
	SubmissionText string   `json:"submissionText" binding:"required"`
	ProofFiles     []string `json:"proofFiles"`
	ProofLinks     []string `json:"proofLinks" binding:"omitempty,dive,url"`
	Screenshots    []string `json:"screenshots"`
}

// DisputeWorkRequest defines the payload for a worker disputing a rejection.
type DisputeWorkRequest struct {
	Reason          string `json:"reason" binding:"required,max=2000"`
	Evidence        string `json:"evidence" binding:"omitempty,max=5000"`
	RequestedAction string `json:"requestedAction" binding:"omitempty,max=200"`
}

// ListWorkProofsParams defines the query parameters for listing work proofs.
type ListWorkProofsParams struct {
	Statuses  []domain.WorkProofStatus `form:"status"`
	Limit     int                      `form:"limit"`
	NextToken *string                  `form:"nextToken"`
}

// WorkProofResponse defines the data returned for a work proof.
type WorkProofResponse struct {
	ProofID           string           `json:"proofID"`
	JobID             string           `json:"jobID"`
	ApplicationID     string           `json:"applicationID"`
	WorkerID          string           `json:"workerID"`
	EmployerID        string           `json:"employerID"`
	Title             string           `json:"title"`
	SubmissionText    string           `json:"submissionText"`
	ProofFiles        []string         `json:"proofFiles"`
	ProofLinks        []string         `json:"proofLinks"`
	Screenshots       []string         `json:"screenshots"`
	Status            string           `json:"status"`
	PaymentAmount     decimal.Decimal  `json:"paymentAmount"`
	SubmissionNumber  int              `json:"submissionNumber"`
	RevisionCount     int              `json:"revisionCount"`
	SubmittedAt       time.Time        `json:"submittedAt"`
	ReviewedAt        *time.Time       `json:"reviewedAt,omitempty"`
	ReviewFeedback    string           `json:"reviewFeedback,omitempty"`
	RejectionDeadline *time.Time       `json:"rejectionDeadline,omitempty"`
	RevisionDeadline  *time.Time       `json:"revisionDeadline,omitempty"`
	WorkerResponse    string           `json:"workerResponse,omitempty"`
	WorkerResponseAt  *time.Time       `json:"workerResponseAt,omitempty"`
	Dispute           *DisputeDetails  `json:"dispute,omitempty"`
}

// DisputeDetails is the dispute context embedded in a work proof response.
type DisputeDetails struct {
	Reason          string `json:"reason"`
	Evidence        string `json:"evidence,omitempty"`
	RequestedAction string `json:"requestedAction,omitempty"`
}

// ListWorkProofsResponse is the paginated response for listing work proofs.
type ListWorkProofsResponse struct {
	Proofs    []WorkProofResponse `json:"proofs"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ToWorkProofResponse converts a domain.WorkProof to WorkProofResponse DTO.
func ToWorkProofResponse(p *domain.WorkProof) WorkProofResponse {
	resp := WorkProofResponse{
		ProofID:           p.ProofID,
		JobID:             p.JobID,
		ApplicationID:     p.ApplicationID,
		WorkerID:          p.WorkerID,
		EmployerID:        p.EmployerID,
		Title:             p.Title,
		SubmissionText:    p.SubmissionText,
		ProofFiles:        p.ProofFiles,
		ProofLinks:        p.ProofLinks,
		Screenshots:       p.Screenshots,
		Status:            string(p.Status),
		PaymentAmount:     p.PaymentAmount,
		SubmissionNumber:  p.SubmissionNumber,
		RevisionCount:     p.RevisionCount,
		SubmittedAt:       p.SubmittedAt,
		ReviewedAt:        p.ReviewedAt,
		ReviewFeedback:    p.ReviewFeedback,
		RejectionDeadline: p.RejectionDeadline,
		RevisionDeadline:  p.RevisionDeadline,
		WorkerResponse:    string(p.WorkerResponse),
		WorkerResponseAt:  p.WorkerResponseAt,
	}
	if p.DisputeReason != "" {
		resp.Dispute = &DisputeDetails{
			Reason:          p.DisputeReason,
			Evidence:        p.DisputeEvidence,
			RequestedAction: p.DisputeRequestedAction,
		}
	}
	return resp
}

// ToWorkProofResponses converts a slice of domain.WorkProof to []WorkProofResponse.
func ToWorkProofResponses(proofs []domain.WorkProof) []WorkProofResponse {
	responses := make([]WorkProofResponse, len(proofs))
	for i := range proofs {
		responses[i] = ToWorkProofResponse(&proofs[i])
	}
	return responses
}
