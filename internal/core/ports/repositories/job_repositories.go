package repositories

import (
	"context"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

// JobReader defines read operations for job data
type JobReader interface {
	// FindJobByID retrieves a specific job by its unique identifier.
	FindJobByID(ctx context.Context, jobID string) (*domain.Job, error)
}

// JobWriter defines write operations for job data
type JobWriter interface {
	// UpdateJobStatus updates the lifecycle status of a job.
	UpdateJobStatus(ctx context.Context, jobID string, status domain.JobStatus, updatedBy string) error
}

// ApplicationReader defines read operations for job application data
type ApplicationReader interface {
	// FindApplicationByID retrieves a specific application by its unique identifier.
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error)

	// FindAcceptedApplication retrieves the accepted application for (job, worker), if any.
	FindAcceptedApplication(ctx context.Context, jobID, workerID string) (*domain.Application, error)

	// FindAnyAcceptedApplication retrieves any accepted application on the job, if any.
	FindAnyAcceptedApplication(ctx context.Context, jobID string) (*domain.Application, error)
}

// JobRepositoryFacade combines job and application repository interfaces
type JobRepositoryFacade interface {
	JobReader
	JobWriter
	ApplicationReader
}
