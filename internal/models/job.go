package models

import "github.com/shopspring/decimal"

// Job mirrors the jobs table.
type Job struct {
	JobID              string          `json:"jobID"`
	EmployerID         string          `json:"employerID"`
	Title              string          `json:"title"`
	ApprovalType       string          `json:"approvalType"`
	ManualApprovalDays int             `json:"manualApprovalDays"`
	WorkersNeeded      int             `json:"workersNeeded"`
	BudgetMin          decimal.Decimal `json:"budgetMin"`
	BudgetMax          decimal.Decimal `json:"budgetMax"`
	Status             string          `json:"status"`
	AuditFields
}

// JobApplication mirrors the job_applications table.
type JobApplication struct {
	ApplicationID  string          `json:"applicationID"`
	JobID          string          `json:"jobID"`
	WorkerID       string          `json:"workerID"`
	ProposedBudget decimal.Decimal `json:"proposedBudget"`
	Status         string          `json:"status"`
	AuditFields
}
