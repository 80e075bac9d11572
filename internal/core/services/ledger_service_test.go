package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	"github.com/omarionadde/DHOOL/internal/core/domain"
	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/core/services"
	"github.com/omarionadde/DHOOL/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo  *MockLedgerRepository
	mockProductRepo *MockProductRepository
	mockPatientRepo *MockPatientRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.LedgerSvcFacade

	userID     string
	cashier    domain.User
	painkiller domain.Product
	bandage    domain.Product
	patient    domain.Patient
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.mockProductRepo = new(MockProductRepository)
	s.mockPatientRepo = new(MockPatientRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewLedgerService(s.mockLedgerRepo, s.mockProductRepo, s.mockPatientRepo, s.mockUserRepo, false)

	s.userID = uuid.NewString()
	s.cashier = domain.User{UserID: s.userID, Name: "Amina", Role: domain.RoleStaff}
	s.painkiller = domain.Product{ProductID: uuid.NewString(), Name: "Painkiller", Price: decimal.NewFromInt(10), Stock: 20}
	s.bandage = domain.Product{ProductID: uuid.NewString(), Name: "Bandage", Price: decimal.NewFromInt(5), Stock: 8}
	s.patient = domain.Patient{PatientID: uuid.NewString(), Name: "Hodan"}
}

func (s *LedgerServiceTestSuite) saleRequest() dto.ProcessSaleRequest {
	// 2 x 10 + 3 x 5 = 35
	return dto.ProcessSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: s.painkiller.ProductID, Quantity: 2},
			{ProductID: s.bandage.ProductID, Quantity: 3},
		},
		Total:      decimal.NewFromInt(35),
		PaidAmount: decimal.NewFromInt(20),
		Method:     domain.Cash,
	}
}

func (s *LedgerServiceTestSuite) productMap() map[string]domain.Product {
	return map[string]domain.Product{
		s.painkiller.ProductID: s.painkiller,
		s.bandage.ProductID:    s.bandage,
	}
}

func (s *LedgerServiceTestSuite) TestProcessSale_Success() {
	ctx := context.Background()
	req := s.saleRequest()

	s.mockProductRepo.On("FindProductsByIDs", ctx, mock.Anything).Return(s.productMap(), nil).Once()
	s.mockUserRepo.On("FindUserByID", ctx, s.userID).Return(&s.cashier, nil).Once()
	s.mockLedgerRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(nil).Once()

	txn, err := s.service.ProcessSale(ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	assert.True(s.T(), txn.Total.Equal(decimal.NewFromInt(35)))
	assert.True(s.T(), txn.PaidAmount.Equal(decimal.NewFromInt(20)))
	assert.True(s.T(), txn.Balance.Equal(decimal.NewFromInt(15)))
	assert.Equal(s.T(), 5, txn.Items)
	assert.Equal(s.T(), "Amina", txn.CashierName)
	assert.Equal(s.T(), s.userID, txn.UserID)
	assert.False(s.T(), txn.IsSettlement())
	assert.NotEmpty(s.T(), txn.TransactionID)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestProcessSale_FullPaymentLeavesZeroBalance() {
	ctx := context.Background()
	req := s.saleRequest()
	req.PaidAmount = decimal.NewFromInt(35)

	s.mockProductRepo.On("FindProductsByIDs", ctx, mock.Anything).Return(s.productMap(), nil).Once()
	s.mockUserRepo.On("FindUserByID", ctx, s.userID).Return(&s.cashier, nil).Once()
	s.mockLedgerRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(nil).Once()

	txn, err := s.service.ProcessSale(ctx, req, s.userID)

	s.Require().NoError(err)
	assert.True(s.T(), txn.Balance.IsZero())
}

func (s *LedgerServiceTestSuite) TestProcessSale_EmptyCart() {
	ctx := context.Background()
	req := s.saleRequest()
	req.Items = nil

	txn, err := s.service.ProcessSale(ctx, req, s.userID)

	s.Require().ErrorIs(err, services.ErrEmptyCart)
	assert.Nil(s.T(), txn)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestProcessSale_NegativePaidAmount() {
	ctx := context.Background()
	req := s.saleRequest()
	req.PaidAmount = decimal.NewFromInt(-1)

	_, err := s.service.ProcessSale(ctx, req, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestProcessSale_ZeroQuantityLine() {
	ctx := context.Background()
	req := s.saleRequest()
	req.Items[1].Quantity = 0

	_, err := s.service.ProcessSale(ctx, req, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockProductRepo.AssertNotCalled(s.T(), "FindProductsByIDs", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestProcessSale_UnknownProduct() {
	ctx := context.Background()
	req := s.saleRequest()

	// Bandage missing from the returned map
	partial := map[string]domain.Product{s.painkiller.ProductID: s.painkiller}
	s.mockProductRepo.On("FindProductsByIDs", ctx, mock.Anything).Return(partial, nil).Once()

	_, err := s.service.ProcessSale(ctx, req, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestProcessSale_TotalMismatch() {
	ctx := context.Background()
	req := s.saleRequest()
	req.Total = decimal.NewFromInt(30) // stale client price

	s.mockProductRepo.On("FindProductsByIDs", ctx, mock.Anything).Return(s.productMap(), nil).Once()

	_, err := s.service.ProcessSale(ctx, req, s.userID)

	s.Require().ErrorIs(err, services.ErrTotalMismatch)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestProcessSale_RepoFailurePropagates() {
	ctx := context.Background()
	req := s.saleRequest()
	repoErr := errors.New("connection reset")

	s.mockProductRepo.On("FindProductsByIDs", ctx, mock.Anything).Return(s.productMap(), nil).Once()
	s.mockUserRepo.On("FindUserByID", ctx, s.userID).Return(&s.cashier, nil).Once()
	s.mockLedgerRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(repoErr).Once()

	txn, err := s.service.ProcessSale(ctx, req, s.userID)

	s.Require().ErrorIs(err, repoErr)
	assert.Nil(s.T(), txn)
}

func (s *LedgerServiceTestSuite) TestSettleBalance_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(15)

	s.mockPatientRepo.On("FindPatientByID", ctx, s.patient.PatientID).Return(&s.patient, nil).Once()
	s.mockLedgerRepo.On("SumBalanceByPatient", ctx, s.patient.PatientID).Return(decimal.NewFromInt(15), nil).Once()
	s.mockUserRepo.On("FindUserByID", ctx, s.userID).Return(&s.cashier, nil).Once()
	s.mockLedgerRepo.On("SaveSettlement", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := s.service.SettleBalance(ctx, s.patient.PatientID, dto.SettleBalanceRequest{Amount: amount, Method: domain.Zaad}, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	assert.True(s.T(), txn.Total.IsZero())
	assert.True(s.T(), txn.PaidAmount.Equal(amount))
	assert.True(s.T(), txn.Balance.Equal(decimal.NewFromInt(-15)))
	assert.True(s.T(), txn.IsSettlement())
	assert.Equal(s.T(), 0, txn.Items)
	s.Require().NotNil(txn.PatientID)
	assert.Equal(s.T(), s.patient.PatientID, *txn.PatientID)
	s.Require().NotNil(txn.PatientName)
	assert.Equal(s.T(), "Hodan", *txn.PatientName)
}

func (s *LedgerServiceTestSuite) TestSettleBalance_NonPositiveAmount() {
	ctx := context.Background()

	_, err := s.service.SettleBalance(ctx, s.patient.PatientID, dto.SettleBalanceRequest{Amount: decimal.Zero, Method: domain.Cash}, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SaveSettlement", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestSettleBalance_UnknownPatient() {
	ctx := context.Background()

	s.mockPatientRepo.On("FindPatientByID", ctx, s.patient.PatientID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.SettleBalance(ctx, s.patient.PatientID, dto.SettleBalanceRequest{Amount: decimal.NewFromInt(10), Method: domain.Cash}, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestSettleBalance_RejectsOverSettlement() {
	ctx := context.Background()

	s.mockPatientRepo.On("FindPatientByID", ctx, s.patient.PatientID).Return(&s.patient, nil).Once()
	s.mockLedgerRepo.On("SumBalanceByPatient", ctx, s.patient.PatientID).Return(decimal.NewFromInt(10), nil).Once()

	_, err := s.service.SettleBalance(ctx, s.patient.PatientID, dto.SettleBalanceRequest{Amount: decimal.NewFromInt(25), Method: domain.Cash}, s.userID)

	s.Require().ErrorIs(err, services.ErrOverSettlement)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SaveSettlement", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestSettleBalance_OverSettlementAllowedWhenConfigured() {
	ctx := context.Background()
	svc := services.NewLedgerService(s.mockLedgerRepo, s.mockProductRepo, s.mockPatientRepo, s.mockUserRepo, true)

	s.mockPatientRepo.On("FindPatientByID", ctx, s.patient.PatientID).Return(&s.patient, nil).Once()
	s.mockUserRepo.On("FindUserByID", ctx, s.userID).Return(&s.cashier, nil).Once()
	s.mockLedgerRepo.On("SaveSettlement", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := svc.SettleBalance(ctx, s.patient.PatientID, dto.SettleBalanceRequest{Amount: decimal.NewFromInt(25), Method: domain.Cash}, s.userID)

	s.Require().NoError(err)
	assert.True(s.T(), txn.Balance.Equal(decimal.NewFromInt(-25)))
	// Balance is never consulted when over-settlement is allowed
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SumBalanceByPatient", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestGetPatientBalance() {
	ctx := context.Background()

	s.mockLedgerRepo.On("SumBalanceByPatient", ctx, s.patient.PatientID).Return(decimal.NewFromInt(42), nil).Once()

	balance, err := s.service.GetPatientBalance(ctx, s.patient.PatientID)

	s.Require().NoError(err)
	assert.True(s.T(), balance.Equal(decimal.NewFromInt(42)))
}

func (s *LedgerServiceTestSuite) TestGetPatientBalance_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("timeout")

	s.mockLedgerRepo.On("SumBalanceByPatient", ctx, s.patient.PatientID).Return(decimal.Zero, repoErr).Once()

	_, err := s.service.GetPatientBalance(ctx, s.patient.PatientID)

	s.Require().ErrorIs(err, repoErr)
}

func (s *LedgerServiceTestSuite) TestListTransactions_MapsFilter() {
	ctx := context.Background()
	patientID := s.patient.PatientID
	expected := []domain.Transaction{{TransactionID: uuid.NewString()}}

	s.mockLedgerRepo.On("ListTransactions", ctx, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.PatientID != nil && *f.PatientID == patientID && f.Limit == 50
	})).Return(expected, nil).Once()

	txns, err := s.service.ListTransactions(ctx, dto.ListTransactionsParams{PatientID: &patientID, Limit: 50})

	s.Require().NoError(err)
	assert.Equal(s.T(), expected, txns)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
