package mapping

import (
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	"github.com/khaledkhbro/microjob-backend/internal/models"
)

// ToModelDispute converts a domain Dispute to a model Dispute
func ToModelDispute(d domain.Dispute) models.Dispute {
	m := models.Dispute{
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
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.Resolution != nil {
		res := string(*d.Resolution)
		m.Resolution = &res
	}
	return m
}

// ToDomainDispute converts a model Dispute to a domain Dispute
func ToDomainDispute(m models.Dispute) domain.Dispute {
	d := domain.Dispute{
		DisputeID:       m.DisputeID,
		JobID:           m.JobID,
		WorkProofID:     m.WorkProofID,
		WorkerID:        m.WorkerID,
		EmployerID:      m.EmployerID,
		JobTitle:        m.JobTitle,
		Amount:          m.Amount,
		Reason:          m.Reason,
		Evidence:        m.Evidence,
		RequestedAction: m.RequestedAction,
		Status:          domain.DisputeStatus(m.Status),
		Priority:        domain.DisputePriority(m.Priority),
		AdminID:         m.AdminID,
		AdminNotes:      m.AdminNotes,
		ResolvedAt:      m.ResolvedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.Resolution != nil {
		res := domain.DisputeDecision(*m.Resolution)
		d.Resolution = &res
	}
	return d
}

// ToDomainDisputeSlice converts model Disputes to domain Disputes
func ToDomainDisputeSlice(ms []models.Dispute) []domain.Dispute {
	ds := make([]domain.Dispute, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDispute(m)
	}
	return ds
}
