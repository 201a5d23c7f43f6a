package mapping

import (
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	"github.com/khaledkhbro/microjob-backend/internal/models"
)

// ToDomainJob converts a model Job to a domain Job
func ToDomainJob(m models.Job) domain.Job {
	return domain.Job{
		JobID:              m.JobID,
		EmployerID:         m.EmployerID,
		Title:              m.Title,
		ApprovalType:       domain.ApprovalType(m.ApprovalType),
		ManualApprovalDays: m.ManualApprovalDays,
		WorkersNeeded:      m.WorkersNeeded,
		BudgetMin:          m.BudgetMin,
		BudgetMax:          m.BudgetMax,
		Status:             domain.JobStatus(m.Status),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainApplication converts a model JobApplication to a domain Application
func ToDomainApplication(m models.JobApplication) domain.Application {
	return domain.Application{
		ApplicationID:  m.ApplicationID,
		JobID:          m.JobID,
		WorkerID:       m.WorkerID,
		ProposedBudget: m.ProposedBudget,
		Status:         domain.ApplicationStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
