package dto

import (
	"time"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one cart line: a product and how many units of it.
type SaleItemRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// ProcessSaleRequest records a checkout. Total is what the client computed and
// displayed; the service recomputes it from current prices and rejects a
// mismatch rather than trusting the wire value.
type ProcessSaleRequest struct {
	Items       []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	Total       decimal.Decimal      `json:"total" binding:"required"`
	PaidAmount  decimal.Decimal      `json:"paidAmount"`
	Method      domain.PaymentMethod `json:"method" binding:"required,paymentmethod"`
	PatientID   *string              `json:"patientID"`
	PatientName *string              `json:"patientName"`
}

// SettleBalanceRequest records a standalone payment against a patient's
// outstanding balance. The patient is addressed in the URL.
type SettleBalanceRequest struct {
	Amount decimal.Decimal      `json:"amount" binding:"required"`
	Method domain.PaymentMethod `json:"method" binding:"required,paymentmethod"`
}

// ListTransactionsParams are the query parameters for listing the ledger.
type ListTransactionsParams struct {
	PatientID *string `form:"patientId"`
	Limit     int     `form:"limit,default=50"`
	Offset    int     `form:"offset,default=0"`
}

// TransactionResponse mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID string               `json:"transactionID"`
	Date          time.Time            `json:"date"`
	Total         decimal.Decimal      `json:"total"`
	PaidAmount    decimal.Decimal      `json:"paidAmount"`
	Balance       decimal.Decimal      `json:"balance"`
	Items         int                  `json:"items"`
	Method        domain.PaymentMethod `json:"method"`
	CashierName   string               `json:"cashierName"`
	UserID        string               `json:"userID"`
	PatientID     *string              `json:"patientID,omitempty"`
	PatientName   *string              `json:"patientName,omitempty"`
	Settlement    bool                 `json:"settlement"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Total:         t.Total,
		PaidAmount:    t.PaidAmount,
		Balance:       t.Balance,
		Items:         t.Items,
		Method:        t.Method,
		CashierName:   t.CashierName,
		UserID:        t.UserID,
		PatientID:     t.PatientID,
		PatientName:   t.PatientName,
		Settlement:    t.IsSettlement(),
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// PatientBalanceResponse is the outstanding-balance query payload.
type PatientBalanceResponse struct {
	PatientID string          `json:"patientID"`
	Balance   decimal.Decimal `json:"balance"`
}
