package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
)

type jobService struct {
	jobRepo       portsrepo.JobRepositoryFacade
	workProofRepo portsrepo.WorkProofReader
}

// NewJobService creates the job read-model service.
func NewJobService(jobRepo portsrepo.JobRepositoryFacade, workProofRepo portsrepo.WorkProofReader) portssvc.JobSvc {
	return &jobService{jobRepo: jobRepo, workProofRepo: workProofRepo}
}

var _ portssvc.JobSvc = (*jobService)(nil)

func (s *jobService) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// RecomputeCompletion re-derives the job status from work proof outcomes.
// A job is completed once the count of distinct approved workers reaches the
// number of workers needed; otherwise it stays in progress.
func (s *jobService) RecomputeCompletion(ctx context.Context, jobID string, updatedBy string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load job for completion recompute: %w", err)
	}

	approved, err := s.workProofRepo.CountApprovedWorkers(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to count approved workers: %w", err)
	}

	target := job.Status
	if job.WorkersNeeded > 0 && approved >= job.WorkersNeeded {
		target = domain.JobCompleted
	} else if approved > 0 {
		target = domain.JobInProgress
	}

	if target == job.Status {
		return nil
	}

	if err := s.jobRepo.UpdateJobStatus(ctx, jobID, target, updatedBy); err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	logger.Info("Job status recomputed",
		slog.String("job_id", jobID),
		slog.String("status", string(target)),
		slog.Int("approved_workers", approved),
		slog.Int("workers_needed", job.WorkersNeeded))
	return nil
}
