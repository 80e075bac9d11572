package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	"github.com/omarionadde/DHOOL/internal/core/domain"
	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/dto"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepository
}

// NewEmployeeService creates the payroll records service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepository) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if !req.Salary.IsPositive() {
		return nil, fmt.Errorf("%w: salary must be positive", apperrors.ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = "Active"
	}

	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		Name:       req.Name,
		Role:       req.Role,
		Salary:     req.Salary,
		StartDate:  req.StartDate,
		Initials:   initialsOf(req.Name),
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}

// initialsOf derives up-to-two uppercase initials from a full name, used for
// avatar badges in the admin panel.
func initialsOf(name string) string {
	var b strings.Builder
	for i, part := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
