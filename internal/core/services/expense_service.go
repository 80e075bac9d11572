package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	"github.com/omarionadde/DHOOL/internal/core/domain"
	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/dto"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
}

// NewExpenseService creates the expense tracking service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("title", req.Title))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("category", string(expense.Category)))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
