package mapping

import (
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	"github.com/khaledkhbro/microjob-backend/internal/models"
)

// ToModelWorkProof converts a domain WorkProof to a model WorkProof
func ToModelWorkProof(d domain.WorkProof) models.WorkProof {
	return models.WorkProof{
		ProofID:                d.ProofID,
		JobID:                  d.JobID,
		ApplicationID:          d.ApplicationID,
		WorkerID:               d.WorkerID,
		EmployerID:             d.EmployerID,
		Title:                  d.Title,
		SubmissionText:         d.SubmissionText,
		ProofFiles:             d.ProofFiles,
		ProofLinks:             d.ProofLinks,
		Screenshots:            d.Screenshots,
		Status:                 string(d.Status),
		PaymentAmount:          d.PaymentAmount,
		AmountRepaired:         d.AmountRepaired,
		SubmissionNumber:       d.SubmissionNumber,
		RevisionCount:          d.RevisionCount,
		SubmittedAt:            d.SubmittedAt,
		ReviewedAt:             d.ReviewedAt,
		ReviewFeedback:         d.ReviewFeedback,
		RejectionDeadline:      d.RejectionDeadline,
		RevisionDeadline:       d.RevisionDeadline,
		WorkerResponse:         string(d.WorkerResponse),
		WorkerResponseAt:       d.WorkerResponseAt,
		DisputeReason:          d.DisputeReason,
		DisputeEvidence:        d.DisputeEvidence,
		DisputeRequestedAction: d.DisputeRequestedAction,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkProof converts a model WorkProof to a domain WorkProof
func ToDomainWorkProof(m models.WorkProof) domain.WorkProof {
	return domain.WorkProof{
		ProofID:                m.ProofID,
		JobID:                  m.JobID,
		ApplicationID:          m.ApplicationID,
		WorkerID:               m.WorkerID,
		EmployerID:             m.EmployerID,
		Title:                  m.Title,
		SubmissionText:         m.SubmissionText,
		ProofFiles:             m.ProofFiles,
		ProofLinks:             m.ProofLinks,
		Screenshots:            m.Screenshots,
		Status:                 domain.WorkProofStatus(m.Status),
		PaymentAmount:          m.PaymentAmount,
		AmountRepaired:         m.AmountRepaired,
		SubmissionNumber:       m.SubmissionNumber,
		RevisionCount:          m.RevisionCount,
		SubmittedAt:            m.SubmittedAt,
		ReviewedAt:             m.ReviewedAt,
		ReviewFeedback:         m.ReviewFeedback,
		RejectionDeadline:      m.RejectionDeadline,
		RevisionDeadline:       m.RevisionDeadline,
		WorkerResponse:         domain.WorkerResponse(m.WorkerResponse),
		WorkerResponseAt:       m.WorkerResponseAt,
		DisputeReason:          m.DisputeReason,
		DisputeEvidence:        m.DisputeEvidence,
		DisputeRequestedAction: m.DisputeRequestedAction,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkProofSlice converts model WorkProofs to domain WorkProofs
func ToDomainWorkProofSlice(ms []models.WorkProof) []domain.WorkProof {
	ds := make([]domain.WorkProof, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkProof(m)
	}
	return ds
}
