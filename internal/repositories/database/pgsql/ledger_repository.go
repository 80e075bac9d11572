package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	"github.com/omarionadde/DHOOL/internal/core/domain"
	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates the repository for the transaction ledger.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

const insertTransactionQuery = `
	INSERT INTO transactions (
		transaction_id, date, total, paid_amount, balance, items,
		method, cashier_name, user_id, patient_id, patient_name
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

// SaveSale inserts the ledger record and decrements stock for every line item
// inside one database transaction. The decrement runs server-side and floors
// at zero, so two concurrent checkouts of the same product cannot lose an
// update or push stock negative.
func (r *PgxLedgerRepository) SaveSale(ctx context.Context, txn domain.Transaction, items []domain.SaleItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, insertTransactionQuery,
		txn.TransactionID,
		txn.Date,
		txn.Total,
		txn.PaidAmount,
		txn.Balance,
		txn.Items,
		txn.Method,
		txn.CashierName,
		txn.UserID,
		txn.PatientID,
		txn.PatientName,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+txn.TransactionID, err)
	}

	stockQuery := `
		UPDATE products
		SET stock = GREATEST(stock - $1, 0)
		WHERE product_id = $2;
	`
	for _, item := range items {
		tag, err := tx.Exec(ctx, stockQuery, item.Quantity, item.ProductID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to decrement stock for product "+item.ProductID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, item.ProductID)
		}
	}

	return r.Commit(ctx, tx)
}

// SaveSettlement inserts a zero-total settlement record. Stock is untouched.
func (r *PgxLedgerRepository) SaveSettlement(ctx context.Context, txn domain.Transaction) error {
	_, err := r.Pool.Exec(ctx, insertTransactionQuery,
		txn.TransactionID,
		txn.Date,
		txn.Total,
		txn.PaidAmount,
		txn.Balance,
		txn.Items,
		txn.Method,
		txn.CashierName,
		txn.UserID,
		txn.PatientID,
		txn.PatientName,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert settlement "+txn.TransactionID, err)
	}
	return nil
}

func (r *PgxLedgerRepository) SumBalanceByPatient(ctx context.Context, patientID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(balance), 0)
		FROM transactions
		WHERE patient_id = $1;
	`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, patientID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum balance for patient %s: %w", patientID, err)
	}
	return sum, nil
}

func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, date, total, paid_amount, balance, items,
		       method, cashier_name, user_id, patient_id, patient_name
		FROM transactions
	`
	args := []any{}
	where := ""
	if filter.PatientID != nil {
		args = append(args, *filter.PatientID)
		where = " WHERE patient_id = $" + strconv.Itoa(len(args))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		where += " user_id = $" + strconv.Itoa(len(args))
	}
	query += where + " ORDER BY date DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.TransactionID,
			&t.Date,
			&t.Total,
			&t.PaidAmount,
			&t.Balance,
			&t.Items,
			&t.Method,
			&t.CashierName,
			&t.UserID,
			&t.PatientID,
			&t.PatientName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}
