package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates how a sale or settlement was paid.
type PaymentMethod string

const (
	Cash PaymentMethod = "Cash"
	Zaad PaymentMethod = "Zaad"
)

// Transaction is a single ledger record. The ledger is append-only: sale
// transactions carry the sale total and whatever was paid at the counter;
// settlement transactions have a zero total and a negative balance that
// credits a patient's prior debt. A transaction is never updated once written.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Date          time.Time       `json:"date"`          // Recorded in UTC
	Total         decimal.Decimal `json:"total"`         // Sale total, zero for settlements
	PaidAmount    decimal.Decimal `json:"paidAmount"`    // Amount handed over at recording time
	Balance       decimal.Decimal `json:"balance"`       // Total - PaidAmount; negative = credit
	Items         int             `json:"items"`         // Sum of line-item quantities
	Method        PaymentMethod   `json:"method"`        // Cash or Zaad
	CashierName   string          `json:"cashierName"`
	UserID        string          `json:"userID"`                // User who recorded the transaction
	PatientID     *string         `json:"patientID,omitempty"`   // Nil for general (walk-in) sales
	PatientName   *string         `json:"patientName,omitempty"` // Denormalised for receipts
}

// IsSettlement reports whether the record is a standalone balance payment.
func (t Transaction) IsSettlement() bool {
	return t.Total.IsZero()
}

// SaleItem is a (product, quantity) line within a sale.
type SaleItem struct {
	ProductID string `json:"productID"`
	Quantity  int    `json:"quantity"`
}
