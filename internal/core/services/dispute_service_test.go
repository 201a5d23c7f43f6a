package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/core/services"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
)

type DisputeServiceTestSuite struct {
	suite.Suite
	mockDisputeRepo *MockDisputeRepository
	mockProofRepo   *MockWorkProofRepository
	mockWallet      *MockWalletSvc
	mockJobs        *MockJobSvc
	mockNotifier    *MockNotifierSvc
	service         portssvc.DisputeSvcFacade

	workerID   string
	employerID string
	adminID    string
}

func (suite *DisputeServiceTestSuite) SetupTest() {
	suite.mockDisputeRepo = new(MockDisputeRepository)
	suite.mockProofRepo = new(MockWorkProofRepository)
	suite.mockWallet = new(MockWalletSvc)
	suite.mockJobs = new(MockJobSvc)
	suite.mockNotifier = new(MockNotifierSvc)
	suite.service = services.NewDisputeService(
		suite.mockDisputeRepo,
		suite.mockProofRepo,
		suite.mockWallet,
		suite.mockJobs,
		suite.mockNotifier,
		services.NewEntityLocks(),
	)
	suite.workerID = uuid.NewString()
	suite.employerID = uuid.NewString()
	suite.adminID = uuid.NewString()
}

func (suite *DisputeServiceTestSuite) assertAllMocks() {
	suite.mockDisputeRepo.AssertExpectations(suite.T())
	suite.mockProofRepo.AssertExpectations(suite.T())
	suite.mockWallet.AssertExpectations(suite.T())
	suite.mockJobs.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *DisputeServiceTestSuite) newDispute(status domain.DisputeStatus) *domain.Dispute {
	return &domain.Dispute{
		DisputeID:   uuid.NewString(),
		JobID:       uuid.NewString(),
		WorkProofID: uuid.NewString(),
		WorkerID:    suite.workerID,
		EmployerID:  suite.employerID,
		JobTitle:    "Test the signup flow",
		Amount:      dec("50"),
		Reason:      "Work met every requirement",
		Status:      status,
		Priority:    domain.PriorityHigh,
	}
}

func (suite *DisputeServiceTestSuite) newDisputedProof(dispute *domain.Dispute) *domain.WorkProof {
	return &domain.WorkProof{
		ProofID:       dispute.WorkProofID,
		JobID:         dispute.JobID,
		ApplicationID: uuid.NewString(),
		WorkerID:      suite.workerID,
		EmployerID:    suite.employerID,
		Status:        domain.ProofDisputed,
		PaymentAmount: dispute.Amount,
	}
}

// --- Open ---

func (suite *DisputeServiceTestSuite) TestOpenDispute_Success() {
	ctx := context.Background()
	proof := &domain.WorkProof{
		ProofID:       uuid.NewString(),
		JobID:         uuid.NewString(),
		WorkerID:      suite.workerID,
		EmployerID:    suite.employerID,
		Status:        domain.ProofRejected,
		PaymentAmount: dec("75"),
	}
	req := dto.DisputeWorkRequest{Reason: "Work met every requirement", Evidence: "Recording attached"}

	suite.mockDisputeRepo.On("FindActiveDisputeByWorkProof", ctx, proof.ProofID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockDisputeRepo.On("SaveDispute", ctx, mock.MatchedBy(func(d domain.Dispute) bool {
		return d.WorkProofID == proof.ProofID &&
			d.Status == domain.DisputePending &&
			d.Priority == domain.PriorityHigh &&
			d.Amount.Equal(dec("75")) &&
			d.Reason == req.Reason
	})).Return(nil).Once()

	dispute, err := suite.service.OpenDispute(ctx, proof, "Test the signup flow", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(dispute)
	suite.Equal(domain.DisputePending, dispute.Status)
	suite.Equal(domain.PriorityHigh, dispute.Priority)
	suite.assertAllMocks()
}

func (suite *DisputeServiceTestSuite) TestOpenDispute_PriorityBuckets() {
	ctx := context.Background()
	cases := []struct {
		amount   string
		priority domain.DisputePriority
	}{
		{"150", domain.PriorityUrgent},
		{"100", domain.PriorityUrgent},
		{"50", domain.PriorityHigh},
		{"20", domain.PriorityMedium},
		{"19.99", domain.PriorityLow},
	}

	for _, tc := range cases {
		proof := &domain.WorkProof{
			ProofID:       uuid.NewString(),
			JobID:         uuid.NewString(),
			WorkerID:      suite.workerID,
			EmployerID:    suite.employerID,
			PaymentAmount: dec(tc.amount),
		}
		suite.mockDisputeRepo.On("FindActiveDisputeByWorkProof", ctx, proof.ProofID).Return(nil, apperrors.ErrNotFound).Once()
		suite.mockDisputeRepo.On("SaveDispute", ctx, mock.AnythingOfType("domain.Dispute")).Return(nil).Once()

		dispute, err := suite.service.OpenDispute(ctx, proof, "Job", dto.DisputeWorkRequest{Reason: "r"})

		suite.Require().NoError(err)
		suite.Equal(tc.priority, dispute.Priority, "amount %s", tc.amount)
	}
	suite.assertAllMocks()
}

func (suite *DisputeServiceTestSuite) TestOpenDispute_ActiveDisputeExists() {
	ctx := context.Background()
	proof := &domain.WorkProof{ProofID: uuid.NewString(), PaymentAmount: dec("50")}
	existing := suite.newDispute(domain.DisputePending)

	suite.mockDisputeRepo.On("FindActiveDisputeByWorkProof", ctx, proof.ProofID).Return(existing, nil).Once()

	dispute, err := suite.service.OpenDispute(ctx, proof, "Job", dto.DisputeWorkRequest{Reason: "r"})

	suite.Require().Error(err)
	suite.Nil(dispute)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.assertAllMocks()
}

// --- Review / escalate ---

func (suite *DisputeServiceTestSuite) TestStartReview_Success() {
	ctx := context.Background()
	dispute := suite.newDispute(domain.DisputePending)

	suite.mockDisputeRepo.On("FindDisputeByID", ctx, dispute.DisputeID).Return(dispute, nil).Once()
	suite.mockDisputeRepo.On("UpdateDispute", ctx, mock.MatchedBy(func(d domain.Dispute) bool {
		return d.Status == domain.DisputeUnderReview && d.AdminID == suite.adminID
	})).Return(nil).Once()

	updated, err := suite.service.StartReview(ctx, dispute.DisputeID, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.DisputeUnderReview, updated.Status)
	suite.assertAllMocks()
}

func (suite *DisputeServiceTestSuite) TestStartReview_OnlyFromPending() {
	ctx := context.Background()
	dispute := suite.newDispute(domain.DisputeUnderReview)

	suite.mockDisputeRepo.On("FindDisputeByID", ctx, dispute.DisputeID).Return(dispute, nil).Once()

	updated, err := suite.service.StartReview(ctx, dispute.DisputeID, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.assertAllMocks()
}

func (suite *DisputeServiceTestSuite) TestEscalateDispute_RaisesPriority() {
	ctx := context.Background()
	dispute := suite.newDispute(domain.DisputeUnderReview)
	dispute.Priority = domain.PriorityLow

	suite.mockDisputeRepo.On("FindDisputeByID", ctx, dispute.DisputeID).Return(dispute, nil).Once()
	suite.mockDisputeRepo.On("UpdateDispute", ctx, mock.MatchedBy(func(d domain.Dispute) bool {
		return d.Status == domain.DisputeEscalated &&
			d.Priority == domain.PriorityUrgent &&
			d.AdminNotes == "Needs a second opinion"
	})).Return(nil).Once()

	updated, err := suite.service.EscalateDispute(ctx, dispute.DisputeID, suite.adminID, dto.EscalateDisputeRequest{Reason: "Needs a second opinion"})

	suite.Require().NoError(err)
	suite.Equal(domain.DisputeEscalated, updated.Status)
	suite.Equal(domain.PriorityUrgent, updated.Priority)
	suite.assertAllMocks()
}

func (suite *DisputeServiceTestSuite) TestEscalateDispute_ResolvedCannotEscalate() {
	ctx := context.Background()
	dispute := suite.newDispute(domain.DisputeResolved)

	suite.mockDisputeRepo.On("FindDisputeByID", ctx, dispute.DisputeID).Return(dispute, nil).Once()

	updated, err := suite.service.EscalateDispute(ctx, dispute.DisputeID, suite.adminID, dto.EscalateDisputeRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.assertAllMocks()
}

// --- Resolve ---

func (suite *DisputeServiceTestSuite) TestResolveDispute_ApproveWorker() {
	ctx := context.Background()
	dispute := suite.newDispute(domain.DisputeUnderReview)
	proof := suite.newDisputedProof(dispute)
	req := dto.ResolveDisputeRequest{Decision: domain.DecisionApproveWorker, AdminNotes: "Evidence supports the worker"}

	suite.mockDisputeRepo.On("FindDisputeByID", ctx, dispute.DisputeID).Return(dispute, nil).Twice()
	suite.mockProofRepo.On("FindWorkProofByID", ctx, dispute.WorkProofID).Return(proof, nil).Once()
	suite.mockDisputeRepo.On("UpdateDispute", ctx, mock.MatchedBy(func(d domain.Dispute) bool {
		return d.Status == domain.DisputeResolved &&
			d.Resolution != nil && *d.Resolution == domain.DecisionApproveWorker &&
			d.ResolvedAt != nil
	})).Return(nil).Once()
	// The resolution pays out the full escrow; no platform fee is taken.
	suite.mockWallet.On("Credit", ctx, suite.workerID, decEq("50"), domain.BalanceEarnings, domain.TxnEarning,
		mock.Anything, dispute.DisputeID, domain.RefDisputeResolution).Return(nil).Once()
	suite.mockProofRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofCompleted
	})).Return(nil).Once()
	suite.mockJobs.On("RecomputeCompletion", ctx, dispute.JobID, suite.adminID).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.workerID, domain.NotifyDisputeResolved, mock.Anything, mock.Anything, mock.Anything).Return().Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyDisputeResolved, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	resolved, err := suite.service.ResolveDispute(ctx, dispute.DisputeID, suite.adminID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DisputeResolved, resolved.Status)
	suite.Require().NotNil(resolved.Resolution)
	suite.Equal(domain.DecisionApproveWorker, *resolved.Resolution)
	suite.assertAllMocks()
}

func (suite *DisputeServiceTestSuite) TestResolveDispute_ApproveEmployer() {
	ctx := context.Background()
	dispute := suite.newDispute(domain.DisputePending)
	proof := suite.newDisputedProof(dispute)
	req := dto.ResolveDisputeRequest{Decision: domain.DecisionApproveEmployer}

	suite.mockDisputeRepo.On("FindDisputeByID", ctx, dispute.DisputeID).Return(dispute, nil).Twice()
	suite.mockProofRepo.On("FindWorkProofByID", ctx, dispute.WorkProofID).Return(proof, nil).Once()
	suite.mockDisputeRepo.On("UpdateDispute", ctx, mock.MatchedBy(func(d domain.Dispute) bool {
		return d.Status == domain.DisputeResolved
	})).Return(nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.employerID, decEq("50"), domain.BalanceDeposit, domain.TxnRefund,
		mock.Anything, proof.ProofID, domain.RefWorkRejectionRefund).Return(nil).Once()
	suite.mockProofRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofRejected
	})).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.workerID, domain.NotifyDisputeResolved, mock.Anything, mock.Anything, mock.Anything).Return().Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyDisputeResolved, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	resolved, err := suite.service.ResolveDispute(ctx, dispute.DisputeID, suite.adminID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DisputeResolved, resolved.Status)
	suite.mockJobs.AssertNotCalled(suite.T(), "RecomputeCompletion", mock.Anything, mock.Anything, mock.Anything)
	suite.assertAllMocks()
}

func (suite *DisputeServiceTestSuite) TestResolveDispute_PartialRefundSplitsWithoutFee() {
	ctx := context.Background()
	dispute := suite.newDispute(domain.DisputeUnderReview)
	dispute.Amount = dec("33.33")
	proof := suite.newDisputedProof(dispute)
	req := dto.ResolveDisputeRequest{Decision: domain.DecisionPartialRefund}

	suite.mockDisputeRepo.On("FindDisputeByID", ctx, dispute.DisputeID).Return(dispute, nil).Twice()
	suite.mockProofRepo.On("FindWorkProofByID", ctx, dispute.WorkProofID).Return(proof, nil).Once()
	suite.mockDisputeRepo.On("UpdateDispute", ctx, mock.MatchedBy(func(d domain.Dispute) bool {
		return d.Status == domain.DisputeResolved
	})).Return(nil).Once()
	// 33.33 splits into 16.67 (worker, rounded) + 16.66 (employer, remainder).
	suite.mockWallet.On("Credit", ctx, suite.workerID, decEq("16.67"), domain.BalanceEarnings, domain.TxnEarning,
		mock.Anything, dispute.DisputeID, domain.RefDisputeResolution).Return(nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.employerID, decEq("16.66"), domain.BalanceDeposit, domain.TxnRefund,
		mock.Anything, dispute.DisputeID, domain.RefDisputeResolution).Return(nil).Once()
	suite.mockProofRepo.On("UpdateWorkProof", ctx, mock.MatchedBy(func(p domain.WorkProof) bool {
		return p.Status == domain.ProofCompleted
	})).Return(nil).Once()
	suite.mockJobs.On("RecomputeCompletion", ctx, dispute.JobID, suite.adminID).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, suite.workerID, domain.NotifyDisputeResolved, mock.Anything, mock.Anything, mock.Anything).Return().Once()
	suite.mockNotifier.On("Notify", ctx, suite.employerID, domain.NotifyDisputeResolved, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	resolved, err := suite.service.ResolveDispute(ctx, dispute.DisputeID, suite.adminID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DisputeResolved, resolved.Status)
	suite.assertAllMocks()
}

func (suite *DisputeServiceTestSuite) TestResolveDispute_AlreadyResolved() {
	ctx := context.Background()
	dispute := suite.newDispute(domain.DisputeResolved)

	suite.mockDisputeRepo.On("FindDisputeByID", ctx, dispute.DisputeID).Return(dispute, nil).Twice()

	resolved, err := suite.service.ResolveDispute(ctx, dispute.DisputeID, suite.adminID,
		dto.ResolveDisputeRequest{Decision: domain.DecisionApproveWorker})

	suite.Require().Error(err)
	suite.Nil(resolved)
	suite.ErrorIs(err, apperrors.ErrAlreadyResolved)
	suite.assertAllMocks()
}

func (suite *DisputeServiceTestSuite) TestResolveDispute_UnknownDecision() {
	ctx := context.Background()
	dispute := suite.newDispute(domain.DisputeUnderReview)

	suite.mockDisputeRepo.On("FindDisputeByID", ctx, dispute.DisputeID).Return(dispute, nil).Twice()

	resolved, err := suite.service.ResolveDispute(ctx, dispute.DisputeID, suite.adminID,
		dto.ResolveDisputeRequest{Decision: "split_sixty_forty"})

	suite.Require().Error(err)
	suite.Nil(resolved)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.assertAllMocks()
}

func (suite *DisputeServiceTestSuite) TestResolveDispute_PaymentFailureRollsBack() {
	ctx := context.Background()
	dispute := suite.newDispute(domain.DisputeUnderReview)
	proof := suite.newDisputedProof(dispute)
	req := dto.ResolveDisputeRequest{Decision: domain.DecisionApproveEmployer}

	suite.mockDisputeRepo.On("FindDisputeByID", ctx, dispute.DisputeID).Return(dispute, nil).Twice()
	suite.mockProofRepo.On("FindWorkProofByID", ctx, dispute.WorkProofID).Return(proof, nil).Once()
	suite.mockDisputeRepo.On("UpdateDispute", ctx, mock.MatchedBy(func(d domain.Dispute) bool {
		return d.Status == domain.DisputeResolved
	})).Return(nil).Once()
	suite.mockWallet.On("Credit", ctx, suite.employerID, decEq("50"), domain.BalanceDeposit, domain.TxnRefund,
		mock.Anything, proof.ProofID, domain.RefWorkRejectionRefund).Return(assert.AnError).Once()
	suite.mockDisputeRepo.On("UpdateDispute", ctx, mock.MatchedBy(func(d domain.Dispute) bool {
		return d.Status == domain.DisputeUnderReview
	})).Return(nil).Once()

	resolved, err := suite.service.ResolveDispute(ctx, dispute.DisputeID, suite.adminID, req)

	suite.Require().Error(err)
	suite.Nil(resolved)
	suite.ErrorIs(err, apperrors.ErrPayment)
	suite.mockProofRepo.AssertNotCalled(suite.T(), "UpdateWorkProof", mock.Anything, mock.Anything)
	suite.assertAllMocks()
}

// --- Reads ---

func (suite *DisputeServiceTestSuite) TestGetDisputeByID_PartyAccessOnly() {
	ctx := context.Background()
	dispute := suite.newDispute(domain.DisputePending)

	suite.mockDisputeRepo.On("FindDisputeByID", ctx, dispute.DisputeID).Return(dispute, nil).Twice()

	got, err := suite.service.GetDisputeByID(ctx, dispute.DisputeID, uuid.NewString(), false)
	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	got, err = suite.service.GetDisputeByID(ctx, dispute.DisputeID, suite.workerID, false)
	suite.Require().NoError(err)
	suite.Equal(dispute, got)
	suite.assertAllMocks()
}

func (suite *DisputeServiceTestSuite) TestListDisputes_StatusFilterPassthrough() {
	ctx := context.Background()
	status := domain.DisputePending
	disputes := []domain.Dispute{*suite.newDispute(domain.DisputePending)}
	token := "next"

	suite.mockDisputeRepo.On("ListDisputes", ctx, &status, 20, (*string)(nil)).Return(disputes, &token, nil).Once()

	resp, err := suite.service.ListDisputes(ctx, dto.ListDisputesParams{Status: &status})

	suite.Require().NoError(err)
	suite.Len(resp.Disputes, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
	suite.assertAllMocks()
}

func TestDisputeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DisputeServiceTestSuite))
}
