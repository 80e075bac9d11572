package services

import (
	"context"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	"github.com/omarionadde/DHOOL/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the billing engine: it records sales and settlements on
// the append-only ledger and derives outstanding balances from it.
type LedgerSvcFacade interface {
	// ProcessSale validates the cart, recomputes the total from current
	// product prices, records the transaction and decrements stock atomically.
	ProcessSale(ctx context.Context, req dto.ProcessSaleRequest, userID string) (*domain.Transaction, error)

	// SettleBalance records a standalone payment against a patient's debt as a
	// zero-total transaction with a negative balance.
	SettleBalance(ctx context.Context, patientID string, req dto.SettleBalanceRequest, userID string) (*domain.Transaction, error)

	// GetPatientBalance recomputes the patient's outstanding balance from the
	// ledger. Positive = owed, zero = settled, negative = credit.
	GetPatientBalance(ctx context.Context, patientID string) (decimal.Decimal, error)

	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}
