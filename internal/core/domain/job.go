package domain

import "github.com/shopspring/decimal"

// ApprovalType selects how a job releases payment for submitted work.
type ApprovalType string

const (
	// ApprovalManual requires employer review within a time window.
	ApprovalManual ApprovalType = "manual"
	// ApprovalInstant releases payment automatically at submission time.
	ApprovalInstant ApprovalType = "instant"
)

// JobStatus is the lifecycle status of a job posting. Only the values the
// settlement engine writes are modeled here.
type JobStatus string

const (
	JobOpen       JobStatus = "open"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
)

// Job is the read model the review engine consumes; posting and browsing
// live outside this service.
type Job struct {
	JobID              string          `json:"jobID"`
	EmployerID         string          `json:"employerID"`
	Title              string          `json:"title"`
	ApprovalType       ApprovalType    `json:"approvalType"`
	ManualApprovalDays int             `json:"manualApprovalDays"`
	WorkersNeeded      int             `json:"workersNeeded"`
	BudgetMin          decimal.Decimal `json:"budgetMin"`
	BudgetMax          decimal.Decimal `json:"budgetMax"`
	Status             JobStatus       `json:"status"`
	AuditFields
}

// ApplicationStatus is the lifecycle status of a job application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is a worker's accepted (or pending) offer on a job; the review
// engine reads it only to resolve the proof payment amount.
type Application struct {
	ApplicationID  string            `json:"applicationID"`
	JobID          string            `json:"jobID"`
	WorkerID       string            `json:"workerID"`
	ProposedBudget decimal.Decimal   `json:"proposedBudget"`
	Status         ApplicationStatus `json:"status"`
	AuditFields
}
