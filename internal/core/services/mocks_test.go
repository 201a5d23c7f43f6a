package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
)

// Shared mocks for the service test suites in this package.

// --- Mock WorkProofRepository ---
type MockWorkProofRepository struct {
	mock.Mock
}

func (m *MockWorkProofRepository) FindWorkProofByID(ctx context.Context, proofID string) (*domain.WorkProof, error) {
	args := m.Called(ctx, proofID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkProof), args.Error(1)
}

func (m *MockWorkProofRepository) FindWorkProofByApplication(ctx context.Context, applicationID string) (*domain.WorkProof, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkProof), args.Error(1)
}

func (m *MockWorkProofRepository) ListWorkProofsByJob(ctx context.Context, jobID string, statuses []domain.WorkProofStatus, limit int, nextToken *string) ([]domain.WorkProof, *string, error) {
	args := m.Called(ctx, jobID, statuses, limit, nextToken)
	var proofs []domain.WorkProof
	if args.Get(0) != nil {
		proofs = args.Get(0).([]domain.WorkProof)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return proofs, token, args.Error(2)
}

func (m *MockWorkProofRepository) ListWorkProofsByWorker(ctx context.Context, workerID string, limit int, nextToken *string) ([]domain.WorkProof, *string, error) {
	args := m.Called(ctx, workerID, limit, nextToken)
	var proofs []domain.WorkProof
	if args.Get(0) != nil {
		proofs = args.Get(0).([]domain.WorkProof)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return proofs, token, args.Error(2)
}

func (m *MockWorkProofRepository) ListExpiredWorkProofs(ctx context.Context, now time.Time, limit int) ([]domain.WorkProof, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkProof), args.Error(1)
}

func (m *MockWorkProofRepository) ListStaleSubmittedWorkProofs(ctx context.Context, now time.Time, limit int) ([]domain.WorkProof, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkProof), args.Error(1)
}

func (m *MockWorkProofRepository) CountApprovedWorkers(ctx context.Context, jobID string) (int, error) {
	args := m.Called(ctx, jobID)
	return args.Int(0), args.Error(1)
}

func (m *MockWorkProofRepository) SaveWorkProof(ctx context.Context, proof domain.WorkProof) error {
	args := m.Called(ctx, proof)
	return args.Error(0)
}

func (m *MockWorkProofRepository) UpdateWorkProof(ctx context.Context, proof domain.WorkProof) error {
	args := m.Called(ctx, proof)
	return args.Error(0)
}

// --- Mock DisputeRepository ---
type MockDisputeRepository struct {
	mock.Mock
}

func (m *MockDisputeRepository) FindDisputeByID(ctx context.Context, disputeID string) (*domain.Dispute, error) {
	args := m.Called(ctx, disputeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) FindActiveDisputeByWorkProof(ctx context.Context, proofID string) (*domain.Dispute, error) {
	args := m.Called(ctx, proofID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) ListDisputes(ctx context.Context, status *domain.DisputeStatus, limit int, nextToken *string) ([]domain.Dispute, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	var disputes []domain.Dispute
	if args.Get(0) != nil {
		disputes = args.Get(0).([]domain.Dispute)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return disputes, token, args.Error(2)
}

func (m *MockDisputeRepository) ListDisputesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Dispute, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var disputes []domain.Dispute
	if args.Get(0) != nil {
		disputes = args.Get(0).([]domain.Dispute)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return disputes, token, args.Error(2)
}

func (m *MockDisputeRepository) SaveDispute(ctx context.Context, dispute domain.Dispute) error {
	args := m.Called(ctx, dispute)
	return args.Error(0)
}

func (m *MockDisputeRepository) UpdateDispute(ctx context.Context, dispute domain.Dispute) error {
	args := m.Called(ctx, dispute)
	return args.Error(0)
}

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindTransactionByReference(ctx context.Context, userID, referenceID, referenceType string) (*domain.WalletTransaction, error) {
	args := m.Called(ctx, userID, referenceID, referenceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletTransaction), args.Error(1)
}

func (m *MockWalletRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.WalletTransaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var txns []domain.WalletTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.WalletTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) ApplyTransaction(ctx context.Context, txn domain.WalletTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetFeePolicy(ctx context.Context) (*domain.FeePolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeePolicy), args.Error(1)
}

func (m *MockSettingsRepository) GetRevisionPolicy(ctx context.Context) (*domain.RevisionPolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevisionPolicy), args.Error(1)
}

func (m *MockSettingsRepository) GetApprovalPolicy(ctx context.Context) (*domain.ApprovalPolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalPolicy), args.Error(1)
}

func (m *MockSettingsRepository) SaveFeePolicy(ctx context.Context, policy domain.FeePolicy, updatedBy string) error {
	args := m.Called(ctx, policy, updatedBy)
	return args.Error(0)
}

func (m *MockSettingsRepository) SaveRevisionPolicy(ctx context.Context, policy domain.RevisionPolicy, updatedBy string) error {
	args := m.Called(ctx, policy, updatedBy)
	return args.Error(0)
}

func (m *MockSettingsRepository) SaveApprovalPolicy(ctx context.Context, policy domain.ApprovalPolicy, updatedBy string) error {
	args := m.Called(ctx, policy, updatedBy)
	return args.Error(0)
}

// --- Mock JobRepository ---
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateJobStatus(ctx context.Context, jobID string, status domain.JobStatus, updatedBy string) error {
	args := m.Called(ctx, jobID, status, updatedBy)
	return args.Error(0)
}

func (m *MockJobRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockJobRepository) FindAcceptedApplication(ctx context.Context, jobID, workerID string) (*domain.Application, error) {
	args := m.Called(ctx, jobID, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockJobRepository) FindAnyAcceptedApplication(ctx context.Context, jobID string) (*domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

// --- Mock WalletSvc ---
type MockWalletSvc struct {
	mock.Mock
}

func (m *MockWalletSvc) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletSvc) ListTransactions(ctx context.Context, userID string, params dto.ListWalletTransactionsParams) (*dto.ListWalletTransactionsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListWalletTransactionsResponse), args.Error(1)
}

func (m *MockWalletSvc) Credit(ctx context.Context, userID string, amount decimal.Decimal, balanceType domain.BalanceType, txnType domain.TransactionType, description, referenceID, referenceType string) error {
	args := m.Called(ctx, userID, amount, balanceType, txnType, description, referenceID, referenceType)
	return args.Error(0)
}

func (m *MockWalletSvc) Debit(ctx context.Context, userID string, amount decimal.Decimal, balanceType domain.BalanceType, txnType domain.TransactionType, description, referenceID, referenceType string) error {
	args := m.Called(ctx, userID, amount, balanceType, txnType, description, referenceID, referenceType)
	return args.Error(0)
}

// --- Mock JobSvc ---
type MockJobSvc struct {
	mock.Mock
}

func (m *MockJobSvc) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobSvc) RecomputeCompletion(ctx context.Context, jobID string, updatedBy string) error {
	args := m.Called(ctx, jobID, updatedBy)
	return args.Error(0)
}

// --- Mock ApplicationSvc ---
type MockApplicationSvc struct {
	mock.Mock
}

func (m *MockApplicationSvc) GetApplication(ctx context.Context, applicationID string) (*domain.Application, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationSvc) ResolvePaymentAmount(ctx context.Context, job *domain.Job, applicationID, workerID string) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, job, applicationID, workerID)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

// --- Mock NotifierSvc ---
type MockNotifierSvc struct {
	mock.Mock
}

func (m *MockNotifierSvc) Notify(ctx context.Context, userID string, kind domain.NotificationType, title, description, actionURL string) {
	m.Called(ctx, userID, kind, title, description, actionURL)
}

func (m *MockNotifierSvc) ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListNotificationsResponse), args.Error(1)
}

func (m *MockNotifierSvc) MarkRead(ctx context.Context, notificationID, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

// --- Mock PolicyProviderSvc ---
type MockPolicyProviderSvc struct {
	mock.Mock
}

func (m *MockPolicyProviderSvc) GetFeePolicy(ctx context.Context) (*domain.FeePolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeePolicy), args.Error(1)
}

func (m *MockPolicyProviderSvc) GetRevisionPolicy(ctx context.Context) (*domain.RevisionPolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevisionPolicy), args.Error(1)
}

func (m *MockPolicyProviderSvc) GetApprovalPolicy(ctx context.Context) (*domain.ApprovalPolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalPolicy), args.Error(1)
}

// --- Mock DisputeWriterSvc ---
type MockDisputeWriterSvc struct {
	mock.Mock
}

func (m *MockDisputeWriterSvc) OpenDispute(ctx context.Context, proof *domain.WorkProof, jobTitle string, req dto.DisputeWorkRequest) (*domain.Dispute, error) {
	args := m.Called(ctx, proof, jobTitle, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dispute), args.Error(1)
}

func (m *MockDisputeWriterSvc) StartReview(ctx context.Context, disputeID string, adminID string) (*domain.Dispute, error) {
	args := m.Called(ctx, disputeID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dispute), args.Error(1)
}

func (m *MockDisputeWriterSvc) EscalateDispute(ctx context.Context, disputeID string, adminID string, req dto.EscalateDisputeRequest) (*domain.Dispute, error) {
	args := m.Called(ctx, disputeID, adminID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dispute), args.Error(1)
}

func (m *MockDisputeWriterSvc) ResolveDispute(ctx context.Context, disputeID string, adminID string, req dto.ResolveDisputeRequest) (*domain.Dispute, error) {
	args := m.Called(ctx, disputeID, adminID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dispute), args.Error(1)
}

type MockWorkProofWriterSvc struct {
	mock.Mock
}

func (m *MockWorkProofWriterSvc) SubmitWorkProof(ctx context.Context, workerID string, req dto.SubmitWorkProofRequest) (*domain.WorkProof, error) {
	args := m.Called(ctx, workerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkProof), args.Error(1)
}

func (m *MockWorkProofWriterSvc) ApproveWorkProof(ctx context.Context, proofID string, employerID string, req dto.ReviewDecisionRequest) (*domain.WorkProof, error) {
	args := m.Called(ctx, proofID, employerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkProof), args.Error(1)
}

func (m *MockWorkProofWriterSvc) RejectWorkProof(ctx context.Context, proofID string, employerID string, req dto.ReviewDecisionRequest) (*domain.WorkProof, error) {
	args := m.Called(ctx, proofID, employerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkProof), args.Error(1)
}

func (m *MockWorkProofWriterSvc) RequestRevision(ctx context.Context, proofID string, employerID string, req dto.ReviewDecisionRequest) (*domain.WorkProof, error) {
	args := m.Called(ctx, proofID, employerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkProof), args.Error(1)
}

func (m *MockWorkProofWriterSvc) ResubmitWork(ctx context.Context, proofID string, workerID string, req dto.ResubmitWorkRequest) (*domain.WorkProof, error) {
	args := m.Called(ctx, proofID, workerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkProof), args.Error(1)
}

func (m *MockWorkProofWriterSvc) AcceptRejection(ctx context.Context, proofID string, workerID string) (*domain.WorkProof, error) {
	args := m.Called(ctx, proofID, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkProof), args.Error(1)
}

func (m *MockWorkProofWriterSvc) CancelByWorker(ctx context.Context, proofID string, workerID string) (*domain.WorkProof, error) {
	args := m.Called(ctx, proofID, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkProof), args.Error(1)
}

func (m *MockWorkProofWriterSvc) DisputeWorkProof(ctx context.Context, proofID string, workerID string, req dto.DisputeWorkRequest) (*domain.WorkProof, error) {
	args := m.Called(ctx, proofID, workerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkProof), args.Error(1)
}
