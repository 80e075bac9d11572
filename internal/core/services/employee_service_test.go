package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	"github.com/omarionadde/DHOOL/internal/core/domain"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/core/services"
	"github.com/omarionadde/DHOOL/internal/dto"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.EmployeeSvcFacade
}

func (s *EmployeeServiceTestSuite) SetupTest() {
	s.mockEmployeeRepo = new(MockEmployeeRepository)
	s.service = services.NewEmployeeService(s.mockEmployeeRepo)
}

func (s *EmployeeServiceTestSuite) TestCreateEmployee_DerivesInitials() {
	ctx := context.Background()

	s.mockEmployeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Initials == "AH" && e.Status == "Active" && e.EmployeeID != ""
	})).Return(nil).Once()

	employee, err := s.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		Name:   "amina hassan warsame",
		Role:   "Cashier",
		Salary: decimal.NewFromInt(400),
	})

	s.Require().NoError(err)
	assert.Equal(s.T(), "AH", employee.Initials)
	s.mockEmployeeRepo.AssertExpectations(s.T())
}

func (s *EmployeeServiceTestSuite) TestCreateEmployee_MultiByteInitials() {
	ctx := context.Background()

	s.mockEmployeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Initials == "ÅÖ"
	})).Return(nil).Once()

	employee, err := s.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		Name:   "åsa öberg",
		Role:   "Nurse",
		Salary: decimal.NewFromInt(500),
	})

	s.Require().NoError(err)
	assert.Equal(s.T(), "ÅÖ", employee.Initials)
}

func (s *EmployeeServiceTestSuite) TestCreateEmployee_NonPositiveSalary() {
	ctx := context.Background()

	_, err := s.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		Name:   "Someone",
		Role:   "Cashier",
		Salary: decimal.Zero,
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockEmployeeRepo.AssertNotCalled(s.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
