package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory enumerates the bookkeeping buckets for outgoing money.
type ExpenseCategory string

const (
	ExpenseRent      ExpenseCategory = "Rent"
	ExpenseUtilities ExpenseCategory = "Utilities"
	ExpenseSupplies  ExpenseCategory = "Supplies"
	ExpenseSalary    ExpenseCategory = "Salary"
	ExpenseOther     ExpenseCategory = "Other"
)

// Expense is a recorded outgoing payment; it reduces net profit in reports.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
