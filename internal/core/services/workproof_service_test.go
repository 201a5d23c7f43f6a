package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/core/services"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
)

const testPlatformAccountID = "platform-account"

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// decEq matches a decimal argument by numeric value rather than representation.
func decEq(s string) interface{} {
	want := dec(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

type WorkProofServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockWorkProofRepository
	mockDisputes *MockDisputeWriterSvc
	mockWallet   *MockWalletSvc
	mockJobs     *MockJobSvc
	mockApps     *MockApplicationSvc
	mockNotifier *MockNotifierSvc
	mockPolicy   *MockPolicyProviderSvc
	service      portssvc.WorkProofSvcFacade

	workerID   string
	employerID string
}

func (suite *WorkProofServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockWorkProofRepository)
	suite.mockDisputes = new(MockDisputeWriterSvc)
	suite.mockWallet = new(MockWalletSvc)
	suite.mockJobs = new(MockJobSvc)
	suite.mockApps = new(MockApplicationSvc)
	suite.mockNotifier = new(MockNotifierSvc)
	suite.mockPolicy = new(MockPolicyProviderSvc)
	suite.service = services.NewWorkProofService(
		suite.mockRepo,
		suite.mockDisputes,
		suite.mockWallet,
		suite.mockJobs,
		suite.mockApps,
		suite.mockNotifier,
		suite.mockPolicy,
		services.NewEntityLocks(),
		testPlatformAccountID,
	)
	suite.workerID = uuid.NewString()
	suite.employerID = uuid.NewString()
}

func (suite *WorkProofServiceTestSuite) assertAllMocks() {
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockDisputes.AssertExpectations(suite.T())
	suite.mockWallet.AssertExpectations(suite.T())
	suite.mockJobs.AssertExpectations(suite.T())
	suite.mockApps.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
	suite.mockPolicy.AssertExpectations(suite.T())
}

func (suite *WorkProofServiceTestSuite) newJob(approval domain.ApprovalType) *domain.Job {
	return &domain.Job{
		JobID:         uuid.NewString(),
		EmployerID:    suite.employerID,
		Title:         "Test the signup flow",
		ApprovalType:  approval,
		WorkersNeeded: 3,
		BudgetMin:     dec("10"),
		BudgetMax:     dec("100"),
		Status:        domain.JobOpen,
	}
}

func (suite *WorkProofServiceTestSuite) newProof(status domain.WorkProofStatus) *domain.WorkProof {
	return &domain.WorkProof{
		ProofID:          uuid.NewString(),
		JobID:            uuid.NewString(),
		ApplicationID:    uuid.NewString(),
		WorkerID:         suite.workerID,
		EmployerID:       suite.employerID,
		Title:            "Signup flow tested",
		SubmissionText:   "Completed as requested.",
		Status:           status,
		PaymentAmount:    dec("50"),
		SubmissionNumber: 1,
		SubmittedAt:      time.Now(),
	}
}

func defaultRevision() *domain.RevisionPolicy {
	return &domain.RevisionPolicy{
		MaxRevisionRequests:     2,
		RejectionTimeout:        domain.Timeout{Value: 3, Unit: domain.UnitDays},
		RevisionTimeout:         domain.Timeout{Value: 24, Unit: domain.UnitHours},
		EnableAutomaticRefunds:  true,
		RefundOnRejectionExpiry: true,
		RefundOnRevisionExpiry:  true,
	}
}

func tenPercentFee() *domain.FeePolicy {
	return &domain.FeePolicy{
		Enabled:    true,
		Percentage: dec("10"),
		FixedFee:   decimal.Zero,
		MinimumFee: decimal.Zero,
		MaximumFee: decimal.Zero,
	}
}

// --- Submit ---

func (suite *WorkProofServiceTestSuite) TestSubmitWorkProof_Success_Manual() {
	ctx := context.Background()
	job := suite.newJob(domain.ApprovalManual)
	app := &domain.Application{
		ApplicationID:  uuid.NewString(),
		JobID:          job.JobID,
		WorkerID:       suite.workerID,
		ProposedBudget: dec("50"),
		Status:         domain.ApplicationAccepted,
	}
	req := dto.SubmitWorkProofRequest{
		JobID:          job.JobID,
		ApplicationID:  app.ApplicationID,
		Title:          "Signup flow tested",
		SubmissionText: "Completed as requested.",
	}

	suite.mockJobs.On("GetJob", ctx, job.JobID).Return(job, nil).Once()
	suite.mockApps.On("GetApplication", ctx, app.ApplicationID).Return(app, nil).Once()
	suite.mockRepo.On("FindWorkProofByApplication", ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockApps.On("ResolvePaymentAmount", ctx, job, app.ApplicationID, suite.workerID).Return(dec("50"), false, nil).Once()
	suite.mockRepo.On("SaveWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofSubmitted &&
			p.PaymentAmount.Equal(dec("50")) &&
			p.SubmissionNumber == 1 &&
			p.WorkerID == suite.workerID &&
			p.EmployerID == suite.employerID
	})).Return(nil).Once()
	suite.mockPolicy.On("GetApprovalPolicy", ctx).Return(&domain.ApprovalPolicy{InstantEnabled: true}, nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyWorkSubmitted, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	proof, err := suite.service.SubmitWorkProof(ctx, suite.workerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(proof)
	suite.Equal(domain.ProofSubmitted, proof.Status)
	suite.True(proof.PaymentAmount.Equal(dec("50")))
	suite.False(proof.AmountRepaired)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestSubmitWorkProof_Instant_PaysImmediately() {
	ctx := context.Background()
	job := suite.newJob(domain.ApprovalInstant)
	app := &domain.Application{
		ApplicationID:  uuid.NewString(),
		JobID:          job.JobID,
		WorkerID:       suite.workerID,
		ProposedBudget: dec("50"),
		Status:         domain.ApplicationAccepted,
	}
	req := dto.SubmitWorkProofRequest{
		JobID:          job.JobID,
		ApplicationID:  app.ApplicationID,
		Title:          "Signup flow tested",
		SubmissionText: "Completed as requested.",
	}

	suite.mockJobs.On("GetJob", ctx, job.JobID).Return(job, nil).Once()
	suite.mockApps.On("GetApplication", ctx, app.ApplicationID).Return(app, nil).Once()
	suite.mockRepo.On("FindWorkProofByApplication", ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockApps.On("ResolvePaymentAmount", ctx, job, app.ApplicationID, suite.workerID).Return(dec("50"), false, nil).Once()
	suite.mockRepo.On("SaveWorkProof", ctx, mock.AnythingOfType("domain.WorkProof")).Return(nil).Once()
	suite.mockPolicy.On("GetApprovalPolicy", ctx).Return(&domain.ApprovalPolicy{InstantEnabled: true}, nil).Once()
	suite.mockPolicy.On("GetFeePolicy", ctx).Return(tenPercentFee(), nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.workerID, decEq("45"), domain.BalanceEarnings, domain.TxnEarning,
		mock.Anything, mock.Anything, domain.RefInstantPayment).Return(nil).Once()
	suite.mockWallet.On("Credit", ctx, testPlatformAccountID, decEq("5"), domain.BalanceDeposit, domain.TxnPlatformFee,
		mock.Anything, mock.Anything, domain.RefWorkCompletionFee).Return(nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofApproved && p.ReviewedAt != nil
	})).Return(nil).Once()
	suite.mockJobs.On("RecomputeCompletion", ctx, job.JobID, suite.workerID).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.workerID, domain.NotifyPaymentReceived, mock.Anything, mock.Anything, mock.Anything).Return().Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyWorkSubmitted, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	proof, err := suite.service.SubmitWorkProof(ctx, suite.workerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ProofApproved, proof.Status)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestSubmitWorkProof_Instant_PaymentFailureDegradesToSubmitted() {
	ctx := context.Background()
	job := suite.newJob(domain.ApprovalInstant)
	app := &domain.Application{
		ApplicationID:  uuid.NewString(),
		JobID:          job.JobID,
		WorkerID:       suite.workerID,
		ProposedBudget: dec("50"),
		Status:         domain.ApplicationAccepted,
	}
	req := dto.SubmitWorkProofRequest{
		JobID:          job.JobID,
		ApplicationID:  app.ApplicationID,
		Title:          "Signup flow tested",
		SubmissionText: "Completed as requested.",
	}

	suite.mockJobs.On("GetJob", ctx, job.JobID).Return(job, nil).Once()
	suite.mockApps.On("GetApplication", ctx, app.ApplicationID).Return(app, nil).Once()
	suite.mockRepo.On("FindWorkProofByApplication", ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockApps.On("ResolvePaymentAmount", ctx, job, app.ApplicationID, suite.workerID).Return(dec("50"), false, nil).Once()
	suite.mockRepo.On("SaveWorkProof", ctx, mock.AnythingOfType("domain.WorkProof")).Return(nil).Once()
	suite.mockPolicy.On("GetApprovalPolicy", ctx).Return(&domain.ApprovalPolicy{InstantEnabled: true}, nil).Once()
	suite.mockPolicy.On("GetFeePolicy", ctx).Return(tenPercentFee(), nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.workerID, decEq("45"), domain.BalanceEarnings, domain.TxnEarning,
		mock.Anything, mock.Anything, domain.RefInstantPayment).Return(assert.AnError).Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyWorkSubmitted, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	proof, err := suite.service.SubmitWorkProof(ctx, suite.workerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ProofSubmitted, proof.Status)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestSubmitWorkProof_DuplicateApplication() {
	ctx := context.Background()
	job := suite.newJob(domain.ApprovalManual)
	app := &domain.Application{
		ApplicationID: uuid.NewString(),
		JobID:         job.JobID,
		WorkerID:      suite.workerID,
		Status:        domain.ApplicationAccepted,
	}
	existing := suite.newProof(domain.ProofSubmitted)
	req := dto.SubmitWorkProofRequest{
		JobID:          job.JobID,
		ApplicationID:  app.ApplicationID,
		Title:          "Again",
		SubmissionText: "Same application.",
	}

	suite.mockJobs.On("GetJob", ctx, job.JobID).Return(job, nil).Once()
	suite.mockApps.On("GetApplication", ctx, app.ApplicationID).Return(app, nil).Once()
	suite.mockRepo.On("FindWorkProofByApplication", ctx, app.ApplicationID).Return(existing, nil).Once()

	proof, err := suite.service.SubmitWorkProof(ctx, suite.workerID, req)

	suite.Require().Error(err)
	suite.Nil(proof)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestSubmitWorkProof_CompletedJob() {
	ctx := context.Background()
	job := suite.newJob(domain.ApprovalManual)
	job.Status = domain.JobCompleted
	req := dto.SubmitWorkProofRequest{
		JobID:          job.JobID,
		ApplicationID:  uuid.NewString(),
		Title:          "Too late",
		SubmissionText: "Job is done.",
	}

	suite.mockJobs.On("GetJob", ctx, job.JobID).Return(job, nil).Once()

	proof, err := suite.service.SubmitWorkProof(ctx, suite.workerID, req)

	suite.Require().Error(err)
	suite.Nil(proof)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestSubmitWorkProof_ApplicationNotAccepted() {
	ctx := context.Background()
	job := suite.newJob(domain.ApprovalManual)
	app := &domain.Application{
		ApplicationID: uuid.NewString(),
		JobID:         job.JobID,
		WorkerID:      suite.workerID,
		Status:        domain.ApplicationPending,
	}
	req := dto.SubmitWorkProofRequest{
		JobID:          job.JobID,
		ApplicationID:  app.ApplicationID,
		Title:          "Premature",
		SubmissionText: "Not accepted yet.",
	}

	suite.mockJobs.On("GetJob", ctx, job.JobID).Return(job, nil).Once()
	suite.mockApps.On("GetApplication", ctx, app.ApplicationID).Return(app, nil).Once()

	proof, err := suite.service.SubmitWorkProof(ctx, suite.workerID, req)

	suite.Require().Error(err)
	suite.Nil(proof)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestSubmitWorkProof_OtherWorkersApplication() {
	ctx := context.Background()
	job := suite.newJob(domain.ApprovalManual)
	app := &domain.Application{
		ApplicationID: uuid.NewString(),
		JobID:         job.JobID,
		WorkerID:      uuid.NewString(),
		Status:        domain.ApplicationAccepted,
	}
	req := dto.SubmitWorkProofRequest{
		JobID:          job.JobID,
		ApplicationID:  app.ApplicationID,
		Title:          "Not mine",
		SubmissionText: "Wrong worker.",
	}

	suite.mockJobs.On("GetJob", ctx, job.JobID).Return(job, nil).Once()
	suite.mockApps.On("GetApplication", ctx, app.ApplicationID).Return(app, nil).Once()

	proof, err := suite.service.SubmitWorkProof(ctx, suite.workerID, req)

	suite.Require().Error(err)
	suite.Nil(proof)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.assertAllMocks()
}

// --- Approve ---

func (suite *WorkProofServiceTestSuite) TestApproveWorkProof_PaysThenPersists() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockPolicy.On("GetFeePolicy", ctx).Return(tenPercentFee(), nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.workerID, decEq("45"), domain.BalanceEarnings, domain.TxnEarning,
		mock.Anything, proof.ProofID, domain.RefWorkCompletion).Return(nil).Once()
	suite.mockWallet.On("Credit", ctx, testPlatformAccountID, decEq("5"), domain.BalanceDeposit, domain.TxnPlatformFee,
		mock.Anything, proof.ProofID, domain.RefWorkCompletionFee).Return(nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofApproved && p.ReviewedAt != nil && p.RejectionDeadline == nil
	})).Return(nil).Once()
	suite.mockJobs.On("RecomputeCompletion", ctx, proof.JobID, suite.employerID).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.workerID, domain.NotifyWorkApproved, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	updated, err := suite.service.ApproveWorkProof(ctx, proof.ProofID, suite.employerID, dto.ReviewDecisionRequest{Feedback: "Nice work"})

	suite.Require().NoError(err)
	suite.Equal(domain.ProofApproved, updated.Status)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestApproveWorkProof_PaymentFailureLeavesProofUntouched() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockPolicy.On("GetFeePolicy", ctx).Return(tenPercentFee(), nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.workerID, decEq("45"), domain.BalanceEarnings, domain.TxnEarning,
		mock.Anything, proof.ProofID, domain.RefWorkCompletion).Return(assert.AnError).Once()

	updated, err := suite.service.ApproveWorkProof(ctx, proof.ProofID, suite.employerID, dto.ReviewDecisionRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrPayment)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateWorkProof", mock.Anything, mock.Anything)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestApproveWorkProof_AlreadyPaidCountsAsSuccess() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockPolicy.On("GetFeePolicy", ctx).Return(tenPercentFee(), nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.workerID, decEq("45"), domain.BalanceEarnings, domain.TxnEarning,
		mock.Anything, proof.ProofID, domain.RefWorkCompletion).Return(apperrors.ErrAlreadyProcessed).Once()
	suite.mockWallet.On("Credit", ctx, testPlatformAccountID, decEq("5"), domain.BalanceDeposit, domain.TxnPlatformFee,
		mock.Anything, proof.ProofID, domain.RefWorkCompletionFee).Return(apperrors.ErrAlreadyProcessed).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.AnythingOfType("domain.WorkProof")).Return(nil).Once()
	suite.mockJobs.On("RecomputeCompletion", ctx, proof.JobID, suite.employerID).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.workerID, domain.NotifyWorkApproved, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	updated, err := suite.service.ApproveWorkProof(ctx, proof.ProofID, suite.employerID, dto.ReviewDecisionRequest{})

	suite.Require().NoError(err)
	suite.Equal(domain.ProofApproved, updated.Status)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestApproveWorkProof_InvalidState() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofRejected)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()

	updated, err := suite.service.ApproveWorkProof(ctx, proof.ProofID, suite.employerID, dto.ReviewDecisionRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestApproveWorkProof_NotEmployer() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)
	stranger := uuid.NewString()

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()

	updated, err := suite.service.ApproveWorkProof(ctx, proof.ProofID, stranger, dto.ReviewDecisionRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestApproveWorkProof_RepairsZeroAmount() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)
	proof.PaymentAmount = decimal.Zero
	job := suite.newJob(domain.ApprovalManual)
	job.JobID = proof.JobID

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockJobs.On("GetJob", ctx, proof.JobID).Return(job, nil).Once()
	suite.mockApps.On("ResolvePaymentAmount", ctx, job, proof.ApplicationID, suite.workerID).Return(dec("30"), true, nil).Once()
	suite.mockPolicy.On("GetFeePolicy", ctx).Return(tenPercentFee(), nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.workerID, decEq("27"), domain.BalanceEarnings, domain.TxnEarning,
		mock.Anything, proof.ProofID, domain.RefWorkCompletion).Return(nil).Once()
	suite.mockWallet.On("Credit", ctx, testPlatformAccountID, decEq("3"), domain.BalanceDeposit, domain.TxnPlatformFee,
		mock.Anything, proof.ProofID, domain.RefWorkCompletionFee).Return(nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofApproved && p.AmountRepaired && p.PaymentAmount.Equal(dec("30"))
	})).Return(nil).Once()
	suite.mockJobs.On("RecomputeCompletion", ctx, proof.JobID, suite.employerID).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.workerID, domain.NotifyWorkApproved, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	updated, err := suite.service.ApproveWorkProof(ctx, proof.ProofID, suite.employerID, dto.ReviewDecisionRequest{})

	suite.Require().NoError(err)
	suite.True(updated.AmountRepaired)
	suite.True(updated.PaymentAmount.Equal(dec("30")))
	suite.assertAllMocks()
}

// --- Reject / revision ---

func (suite *WorkProofServiceTestSuite) TestRejectWorkProof_OpensResponseWindow() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockPolicy.On("GetRevisionPolicy", ctx).Return(defaultRevision(), nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofRejected &&
			p.RejectionDeadline != nil &&
			p.RevisionDeadline == nil &&
			p.ReviewFeedback == "Does not match the brief"
	})).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.workerID, domain.NotifyWorkRejected, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	updated, err := suite.service.RejectWorkProof(ctx, proof.ProofID, suite.employerID, dto.ReviewDecisionRequest{Feedback: "Does not match the brief"})

	suite.Require().NoError(err)
	suite.Equal(domain.ProofRejected, updated.Status)
	suite.Require().NotNil(updated.RejectionDeadline)
	suite.WithinDuration(time.Now().Add(3*24*time.Hour), *updated.RejectionDeadline, time.Minute)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestRejectWorkProof_RequiresFeedback() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()

	updated, err := suite.service.RejectWorkProof(ctx, proof.ProofID, suite.employerID, dto.ReviewDecisionRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestRequestRevision_IncrementsCount() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)
	proof.RevisionCount = 1

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockPolicy.On("GetRevisionPolicy", ctx).Return(defaultRevision(), nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofRevisionRequested &&
			p.RevisionCount == 2 &&
			p.RevisionDeadline != nil &&
			p.RejectionDeadline == nil
	})).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.workerID, domain.NotifyRevisionRequested, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	updated, err := suite.service.RequestRevision(ctx, proof.ProofID, suite.employerID, dto.ReviewDecisionRequest{Feedback: "Please redo the screenshots"})

	suite.Require().NoError(err)
	suite.Equal(2, updated.RevisionCount)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestRequestRevision_LimitReached() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)
	proof.RevisionCount = 2

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockPolicy.On("GetRevisionPolicy", ctx).Return(defaultRevision(), nil).Once()

	updated, err := suite.service.RequestRevision(ctx, proof.ProofID, suite.employerID, dto.ReviewDecisionRequest{Feedback: "One more time"})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrLimitExceeded)
	suite.assertAllMocks()
}

// --- Resubmit ---

func (suite *WorkProofServiceTestSuite) TestResubmitWork_ReplacesContent() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofRevisionRequested)
	deadline := time.Now().Add(24 * time.Hour)
	proof.RevisionDeadline = &deadline
	req := dto.ResubmitWorkRequest{
		SubmissionText: "Revised per feedback.",
		ProofLinks:     []string{"https://example.com/v2"},
	}

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofSubmitted &&
			p.SubmissionNumber == 2 &&
			p.SubmissionText == "Revised per feedback." &&
			p.RevisionDeadline == nil
	})).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyWorkResubmitted, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	updated, err := suite.service.ResubmitWork(ctx, proof.ProofID, suite.workerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ProofSubmitted, updated.Status)
	suite.Equal(2, updated.SubmissionNumber)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestResubmitWork_InvalidFromSubmitted() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()

	updated, err := suite.service.ResubmitWork(ctx, proof.ProofID, suite.workerID, dto.ResubmitWorkRequest{SubmissionText: "x"})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.assertAllMocks()
}

// --- Accept rejection ---

func (suite *WorkProofServiceTestSuite) TestAcceptRejection_RefundsEmployer() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofRejected)
	deadline := time.Now().Add(24 * time.Hour)
	proof.RejectionDeadline = &deadline

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofRejectedAccepted && p.WorkerResponse == domain.ResponseAccepted
	})).Return(nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.employerID, decEq("50"), domain.BalanceDeposit, domain.TxnRefund,
		mock.Anything, proof.ProofID, domain.RefWorkRejectionRefund).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyWorkRejected, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	updated, err := suite.service.AcceptRejection(ctx, proof.ProofID, suite.workerID)

	suite.Require().NoError(err)
	suite.Equal(domain.ProofRejectedAccepted, updated.Status)
	suite.Nil(updated.RejectionDeadline)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestAcceptRejection_RefundFailureRollsBack() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofRejected)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofRejectedAccepted
	})).Return(nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.employerID, decEq("50"), domain.BalanceDeposit, domain.TxnRefund,
		mock.Anything, proof.ProofID, domain.RefWorkRejectionRefund).Return(assert.AnError).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofRejected
	})).Return(nil).Once()

	updated, err := suite.service.AcceptRejection(ctx, proof.ProofID, suite.workerID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrPayment)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestAcceptRejection_AlreadyRefundedIsSuccess() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofRejected)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.AnythingOfType("domain.WorkProof")).Return(nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.employerID, decEq("50"), domain.BalanceDeposit, domain.TxnRefund,
		mock.Anything, proof.ProofID, domain.RefWorkRejectionRefund).Return(apperrors.ErrAlreadyProcessed).Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyWorkRejected, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	updated, err := suite.service.AcceptRejection(ctx, proof.ProofID, suite.workerID)

	suite.Require().NoError(err)
	suite.Equal(domain.ProofRejectedAccepted, updated.Status)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestAcceptRejection_RepeatedCallIsNoOp() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofRejectedAccepted)
	proof.WorkerResponse = domain.ResponseAccepted

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()

	updated, err := suite.service.AcceptRejection(ctx, proof.ProofID, suite.workerID)

	suite.Require().NoError(err)
	suite.Equal(domain.ProofRejectedAccepted, updated.Status)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateWorkProof", mock.Anything, mock.Anything)
	suite.mockWallet.AssertNotCalled(suite.T(), "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestAcceptRejection_RefundsRegardlessOfPolicyFlags() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofRejected)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.AnythingOfType("domain.WorkProof")).Return(nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.employerID, decEq("50"), domain.BalanceDeposit, domain.TxnRefund,
		mock.Anything, proof.ProofID, domain.RefWorkRejectionRefund).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyWorkRejected, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	_, err := suite.service.AcceptRejection(ctx, proof.ProofID, suite.workerID)

	suite.Require().NoError(err)
	// The automatic-refund policy flags only govern the sweeper; the manual
	// path never consults them.
	suite.mockPolicy.AssertNotCalled(suite.T(), "GetRevisionPolicy", mock.Anything)
	suite.assertAllMocks()
}

// --- Cancel ---

func (suite *WorkProofServiceTestSuite) TestCancelByWorker_RefundsEmployer() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofCancelledByWorker && p.WorkerResponse == domain.ResponseCancelled
	})).Return(nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.employerID, decEq("50"), domain.BalanceDeposit, domain.TxnRefund,
		mock.Anything, proof.ProofID, domain.RefJobCancellationRefund).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyWorkCancelled, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	updated, err := suite.service.CancelByWorker(ctx, proof.ProofID, suite.workerID)

	suite.Require().NoError(err)
	suite.Equal(domain.ProofCancelledByWorker, updated.Status)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestCancelByWorker_NotWorker() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()

	updated, err := suite.service.CancelByWorker(ctx, proof.ProofID, suite.employerID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.assertAllMocks()
}

// --- Dispute ---

func (suite *WorkProofServiceTestSuite) TestDisputeWorkProof_OpensDisputeAndFreezesProof() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofRejected)
	job := suite.newJob(domain.ApprovalManual)
	job.JobID = proof.JobID
	req := dto.DisputeWorkRequest{
		Reason:          "Work met every requirement",
		Evidence:        "See the attached recording",
		RequestedAction: "Release payment",
	}

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockJobs.On("GetJob", ctx, proof.JobID).Return(job, nil).Once()
	suite.mockDisputes.On("OpenDispute", ctx, mock.AnythingOfType("*domain.WorkProof"), job.Title, req).
		Return(&domain.Dispute{DisputeID: uuid.NewString()}, nil).Once()
	suite.mockRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofDisputed &&
			p.WorkerResponse == domain.ResponseDisputed &&
			p.DisputeReason == req.Reason
	})).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyDisputeCreated, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	updated, err := suite.service.DisputeWorkProof(ctx, proof.ProofID, suite.workerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ProofDisputed, updated.Status)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestDisputeWorkProof_DuplicateDispute() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofRejected)
	job := suite.newJob(domain.ApprovalManual)
	job.JobID = proof.JobID
	req := dto.DisputeWorkRequest{Reason: "Disagree"}

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()
	suite.mockJobs.On("GetJob", ctx, proof.JobID).Return(job, nil).Once()
	suite.mockDisputes.On("OpenDispute", ctx, mock.AnythingOfType("*domain.WorkProof"), job.Title, req).
		Return(nil, apperrors.ErrDuplicate).Once()

	updated, err := suite.service.DisputeWorkProof(ctx, proof.ProofID, suite.workerID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestDisputeWorkProof_ApprovedProofCannotBeDisputed() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofApproved)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Once()

	updated, err := suite.service.DisputeWorkProof(ctx, proof.ProofID, suite.workerID, dto.DisputeWorkRequest{Reason: "Too late"})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.assertAllMocks()
}

// --- Reads ---

func (suite *WorkProofServiceTestSuite) TestGetWorkProofByID_ForbiddenForStranger() {
	ctx := context.Background()
	proof := suite.newProof(domain.ProofSubmitted)

	suite.mockRepo.On("FindWorkProofByID", ctx, proof.ProofID).Return(proof, nil).Twice()

	got, err := suite.service.GetWorkProofByID(ctx, proof.ProofID, uuid.NewString(), false)
	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	got, err = suite.service.GetWorkProofByID(ctx, proof.ProofID, uuid.NewString(), true)
	suite.Require().NoError(err)
	suite.Equal(proof, got)
	suite.assertAllMocks()
}

func (suite *WorkProofServiceTestSuite) TestListWorkProofsByJob_EmployerOnly() {
	ctx := context.Background()
	job := suite.newJob(domain.ApprovalManual)

	suite.mockJobs.On("GetJob", ctx, job.JobID).Return(job, nil).Once()

	resp, err := suite.service.ListWorkProofsByJob(ctx, job.JobID, uuid.NewString(), dto.ListWorkProofsParams{})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.assertAllMocks()
}

func TestWorkProofServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkProofServiceTestSuite))
}
