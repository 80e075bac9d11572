package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a payroll record managed from the admin panel.
type Employee struct {
	EmployeeID string          `json:"employeeID"` // Primary Key (UUID)
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Salary     decimal.Decimal `json:"salary"` // Monthly salary
	StartDate  time.Time       `json:"startDate"`
	Initials   string          `json:"initials"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}
