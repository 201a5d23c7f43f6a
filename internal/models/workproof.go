package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkProof mirrors the work_proofs table.
type WorkProof struct {
	ProofID        string          `json:"proofID"`
	JobID          string          `json:"jobID"`
	ApplicationID  string          `json:"applicationID"`
	WorkerID       string          `json:"workerID"`
	EmployerID     string          `json:"employerID"`
	Title          string          `json:"title"`
	SubmissionText string          `json:"submissionText"`
	ProofFiles     []string        `json:"proofFiles"`
	ProofLinks     []string        `json:"proofLinks"`
	Screenshots    []string        `json:"screenshots"`
	Status         string          `json:"status"`
	PaymentAmount  decimal.Decimal `json:"paymentAmount"`
	AmountRepaired bool            `json:"amountRepaired"`

	SubmissionNumber int `json:"submissionNumber"`
	RevisionCount    int `json:"revisionCount"`

	SubmittedAt    time.Time  `json:"submittedAt"`
	ReviewedAt     *time.Time `json:"reviewedAt"`
	ReviewFeedback string     `json:"reviewFeedback"`

	RejectionDeadline *time.Time `json:"rejectionDeadline"`
	RevisionDeadline  *time.Time `json:"revisionDeadline"`

	WorkerResponse   string     `json:"workerResponse"`
	WorkerResponseAt *time.Time `json:"workerResponseAt"`

	DisputeReason          string `json:"disputeReason"`
	DisputeEvidence        string `json:"disputeEvidence"`
	DisputeRequestedAction string `json:"disputeRequestedAction"`

	AuditFields
}
