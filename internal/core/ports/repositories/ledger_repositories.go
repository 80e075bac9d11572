package repositories

import (
	"context"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository persists the append-only transaction ledger.
type LedgerRepository interface {
	// SaveSale inserts the transaction and decrements stock for every line
	// item in a single database transaction. Stock is decremented server-side
	// and floored at zero, so concurrent sales cannot lose an update or drive
	// stock negative. A missing product fails the whole write.
	SaveSale(ctx context.Context, txn domain.Transaction, items []domain.SaleItem) error

	// SaveSettlement inserts a zero-total settlement record. No stock effects.
	SaveSettlement(ctx context.Context, txn domain.Transaction) error

	// SumBalanceByPatient returns the authoritative outstanding balance for a
	// patient: the sum of `balance` over all their transactions, recomputed on
	// every call.
	SumBalanceByPatient(ctx context.Context, patientID string) (decimal.Decimal, error)

	// ListTransactions returns ledger records most-recent-first, optionally
	// restricted to one patient or one recording user.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
}

// TransactionFilter narrows ListTransactions. Nil fields match everything.
type TransactionFilter struct {
	PatientID *string
	UserID    *string
	Limit     int
	Offset    int
}
