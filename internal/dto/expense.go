package dto

import (
	"time"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest records an outgoing payment.
type CreateExpenseRequest struct {
	Title       string                 `json:"title" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Category    domain.ExpenseCategory `json:"category" binding:"required,oneof=Rent Utilities Supplies Salary Other"`
	Date        time.Time              `json:"date"`
	Description string                 `json:"description"`
}

// CreateEmployeeRequest adds a payroll record.
type CreateEmployeeRequest struct {
	Name      string          `json:"name" binding:"required"`
	Role      string          `json:"role" binding:"required"`
	Salary    decimal.Decimal `json:"salary" binding:"required"`
	StartDate time.Time       `json:"startDate"`
	Status    string          `json:"status"`
}
