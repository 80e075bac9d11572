package repositories

import (
	"context"

	"github.com/omarionadde/DHOOL/internal/core/domain"
)

// ExpenseRepository persists expense records.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}

// EmployeeRepository persists payroll records.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}
