package domain

import (
	"fmt"
	"time"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// WorkProofStatus indicates where a submission sits in the review lifecycle.
type WorkProofStatus string

const (
	ProofSubmitted         WorkProofStatus = "submitted"
	ProofApproved          WorkProofStatus = "approved"
	ProofRejected          WorkProofStatus = "rejected"
	ProofRevisionRequested WorkProofStatus = "revision_requested"
	ProofRejectedAccepted  WorkProofStatus = "rejected_accepted"
	ProofDisputed          WorkProofStatus = "disputed"
	ProofCancelledByWorker WorkProofStatus = "cancelled_by_worker"
	// ProofCompleted is set only through dispute resolution; the review engine
	// itself never produces it.
	ProofCompleted WorkProofStatus = "completed"
)

// IsTerminal reports whether the review engine will never mutate this proof again.
func (s WorkProofStatus) IsTerminal() bool {
	switch s {
	case ProofApproved, ProofRejectedAccepted, ProofCancelledByWorker, ProofCompleted:
		return true
	}
	return false
}

// ProofAction is an actor- or sweeper-initiated transition on a work proof.
type ProofAction string

const (
	ActionApprove         ProofAction = "approve"
	ActionReject          ProofAction = "reject"
	ActionRequestRevision ProofAction = "request_revision"
	ActionResubmit        ProofAction = "resubmit"
	ActionAcceptRejection ProofAction = "accept_rejection"
	ActionDispute         ProofAction = "dispute"
	ActionCancel          ProofAction = "cancel"
)

// proofTransitions encodes transition legality centrally: from-status × action
// → to-status. Anything absent is an invalid transition.
var proofTransitions = map[WorkProofStatus]map[ProofAction]WorkProofStatus{
	ProofSubmitted: {
		ActionApprove:         ProofApproved,
		ActionReject:          ProofRejected,
		ActionRequestRevision: ProofRevisionRequested,
		ActionCancel:          ProofCancelledByWorker,
	},
	ProofRejected: {
		ActionAcceptRejection: ProofRejectedAccepted,
		ActionDispute:         ProofDisputed,
	},
	ProofRevisionRequested: {
		ActionResubmit: ProofSubmitted,
		ActionCancel:   ProofCancelledByWorker,
		ActionDispute:  ProofDisputed,
	},
}

// NextProofStatus resolves the target status for an action, or
// apperrors.ErrInvalidState when the action is not legal from the current status.
func NextProofStatus(from WorkProofStatus, action ProofAction) (WorkProofStatus, error) {
	if actions, ok := proofTransitions[from]; ok {
		if to, ok := actions[action]; ok {
			return to, nil
		}
	}
	return "", fmt.Errorf("%w: cannot %s a proof in status %s", apperrors.ErrInvalidState, action, from)
}

// WorkerResponse records how the worker reacted to a rejection or revision request.
type WorkerResponse string

const (
	ResponseAccepted  WorkerResponse = "accepted"
	ResponseDisputed  WorkerResponse = "disputed"
	ResponseCancelled WorkerResponse = "cancelled"
)

// WorkProof is one worker's evidence submission for one job assignment, the
// aggregate root of the review workflow.
type WorkProof struct {
	ProofID        string          `json:"proofID"`
	JobID          string          `json:"jobID"`
	ApplicationID  string          `json:"applicationID"`
	WorkerID       string          `json:"workerID"`
	EmployerID     string          `json:"employerID"`
	Title          string          `json:"title"`
	SubmissionText string          `json:"submissionText"`
	ProofFiles     []string        `json:"proofFiles"`  // stored object keys
	ProofLinks     []string        `json:"proofLinks"`  // external URLs
	Screenshots    []string        `json:"screenshots"` // subset of files flagged as images
	Status         WorkProofStatus `json:"status"`

	// PaymentAmount is the gross amount fixed at submission time. It is
	// immutable except for the one-shot zero-amount repair on approval,
	// tracked by AmountRepaired.
	PaymentAmount  decimal.Decimal `json:"paymentAmount"`
	AmountRepaired bool            `json:"amountRepaired"`

	SubmissionNumber int `json:"submissionNumber"`
	RevisionCount    int `json:"revisionCount"`

	SubmittedAt    time.Time  `json:"submittedAt"`
	ReviewedAt     *time.Time `json:"reviewedAt,omitempty"`
	ReviewFeedback string     `json:"reviewFeedback,omitempty"`

	// Exactly one of these is set, and only while the status is rejected or
	// revision_requested respectively.
	RejectionDeadline *time.Time `json:"rejectionDeadline,omitempty"`
	RevisionDeadline  *time.Time `json:"revisionDeadline,omitempty"`

	WorkerResponse   WorkerResponse `json:"workerResponse,omitempty"`
	WorkerResponseAt *time.Time     `json:"workerResponseAt,omitempty"`

	DisputeReason          string `json:"disputeReason,omitempty"`
	DisputeEvidence        string `json:"disputeEvidence,omitempty"`
	DisputeRequestedAction string `json:"disputeRequestedAction,omitempty"`

	AuditFields
}
