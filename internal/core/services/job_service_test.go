package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/core/services"
)

type JobServiceTestSuite struct {
	suite.Suite
	mockJobRepo   *MockJobRepository
	mockProofRepo *MockWorkProofRepository
	service       portssvc.JobSvc
}

func (suite *JobServiceTestSuite) SetupTest() {
	suite.mockJobRepo = new(MockJobRepository)
	suite.mockProofRepo = new(MockWorkProofRepository)
	suite.service = services.NewJobService(suite.mockJobRepo, suite.mockProofRepo)
}

func (suite *JobServiceTestSuite) TestRecomputeCompletion_CompletesWhenTargetReached() {
	ctx := context.Background()
	jobID := uuid.NewString()
	updatedBy := uuid.NewString()
	job := &domain.Job{JobID: jobID, WorkersNeeded: 2, Status: domain.JobInProgress}

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(job, nil).Once()
	suite.mockProofRepo.On("CountApprovedWorkers", ctx, jobID).Return(2, nil).Once()
	suite.mockJobRepo.On("UpdateJobStatus", ctx, jobID, domain.JobCompleted, updatedBy).Return(nil).Once()

	err := suite.service.RecomputeCompletion(ctx, jobID, updatedBy)

	suite.Require().NoError(err)
	suite.mockJobRepo.AssertExpectations(suite.T())
	suite.mockProofRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestRecomputeCompletion_MovesOpenJobInProgress() {
	ctx := context.Background()
	jobID := uuid.NewString()
	updatedBy := uuid.NewString()
	job := &domain.Job{JobID: jobID, WorkersNeeded: 3, Status: domain.JobOpen}

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(job, nil).Once()
	suite.mockProofRepo.On("CountApprovedWorkers", ctx, jobID).Return(1, nil).Once()
	suite.mockJobRepo.On("UpdateJobStatus", ctx, jobID, domain.JobInProgress, updatedBy).Return(nil).Once()

	err := suite.service.RecomputeCompletion(ctx, jobID, updatedBy)

	suite.Require().NoError(err)
	suite.mockJobRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestRecomputeCompletion_NoChangeSkipsUpdate() {
	ctx := context.Background()
	jobID := uuid.NewString()
	job := &domain.Job{JobID: jobID, WorkersNeeded: 3, Status: domain.JobOpen}

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(job, nil).Once()
	suite.mockProofRepo.On("CountApprovedWorkers", ctx, jobID).Return(0, nil).Once()

	err := suite.service.RecomputeCompletion(ctx, jobID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockJobRepo.AssertNotCalled(suite.T(), "UpdateJobStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockJobRepo.AssertExpectations(suite.T())
}

func TestJobServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}
