package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	"github.com/omarionadde/DHOOL/internal/core/domain"
	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/dto"
)

var (
	ErrEmptyCart      = errors.New("sale must contain at least one line item")
	ErrTotalMismatch  = errors.New("submitted total does not match computed total")
	ErrOverSettlement = errors.New("settlement amount exceeds outstanding balance")
)

// ledgerService is the billing engine. Every monetary fact it produces is a
// ledger record: sales append a transaction and decrement stock atomically,
// settlements append a zero-total transaction, and outstanding balances are
// always recomputed from the ledger rather than read from a stored aggregate.
type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	productRepo portsrepo.ProductRepository
	patientRepo portsrepo.PatientRepository
	userRepo    portsrepo.UserRepository

	// allowOverSettlement permits payments larger than the outstanding
	// balance, leaving the patient in credit.
	allowOverSettlement bool
}

// NewLedgerService creates the billing engine.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepository,
	productRepo portsrepo.ProductRepository,
	patientRepo portsrepo.PatientRepository,
	userRepo portsrepo.UserRepository,
	allowOverSettlement bool,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:          ledgerRepo,
		productRepo:         productRepo,
		patientRepo:         patientRepo,
		userRepo:            userRepo,
		allowOverSettlement: allowOverSettlement,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// ProcessSale records a checkout on the ledger.
//
// The total is recomputed from current product prices and compared against the
// submitted total; the persisted record always carries the server-computed
// value. Insertion and stock decrements happen in one database transaction, so
// a failed write leaves both the ledger and stock untouched.
func (s *ledgerService) ProcessSale(ctx context.Context, req dto.ProcessSaleRequest, userID string) (*domain.Transaction, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if req.PaidAmount.IsNegative() {
		return nil, fmt.Errorf("%w: paid amount must not be negative", apperrors.ErrValidation)
	}

	items := make([]domain.SaleItem, len(req.Items))
	productIDs := make([]string, len(req.Items))
	itemCount := 0
	for i, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for product %s", apperrors.ErrValidation, line.ProductID)
		}
		items[i] = domain.SaleItem{ProductID: line.ProductID, Quantity: line.Quantity}
		productIDs[i] = line.ProductID
		itemCount += line.Quantity
	}

	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch products for sale")
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	total := decimal.Zero
	for _, line := range items {
		product, found := products[line.ProductID]
		if !found {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, line.ProductID)
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	if !total.Equal(req.Total) {
		s.LogWarn(ctx, "Sale total mismatch",
			slog.String("submitted", req.Total.String()),
			slog.String("computed", total.String()))
		return nil, fmt.Errorf("%w: submitted %s, computed %s", ErrTotalMismatch, req.Total, total)
	}

	cashier, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve cashier for sale", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to resolve cashier: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Now().UTC(),
		Total:         total,
		PaidAmount:    req.PaidAmount,
		Balance:       total.Sub(req.PaidAmount),
		Items:         itemCount,
		Method:        req.Method,
		CashierName:   cashier.Name,
		UserID:        userID,
		PatientID:     req.PatientID,
		PatientName:   req.PatientName,
	}

	if err := s.ledgerRepo.SaveSale(ctx, txn, items); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("total", txn.Total.String()),
		slog.String("balance", txn.Balance.String()),
		slog.Int("items", txn.Items))
	return &txn, nil
}

// SettleBalance records a standalone payment against a patient's debt.
// The record has total = 0, paidAmount = amount and balance = -amount, so the
// patient's recomputed outstanding balance drops by exactly the amount paid.
func (s *ledgerService) SettleBalance(ctx context.Context, patientID string, req dto.SettleBalanceRequest, userID string) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: settlement amount must be positive", apperrors.ErrValidation)
	}

	patient, err := s.patientRepo.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find patient %s: %w", patientID, err)
	}

	if !s.allowOverSettlement {
		outstanding, err := s.ledgerRepo.SumBalanceByPatient(ctx, patientID)
		if err != nil {
			s.LogError(ctx, err, "Failed to compute outstanding balance", slog.String("patient_id", patientID))
			return nil, fmt.Errorf("failed to compute outstanding balance: %w", err)
		}
		if req.Amount.GreaterThan(outstanding) {
			return nil, fmt.Errorf("%w: amount %s, outstanding %s", ErrOverSettlement, req.Amount, outstanding)
		}
	}

	cashier, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cashier: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Now().UTC(),
		Total:         decimal.Zero,
		PaidAmount:    req.Amount,
		Balance:       req.Amount.Neg(),
		Items:         0,
		Method:        req.Method,
		CashierName:   cashier.Name,
		UserID:        userID,
		PatientID:     &patient.PatientID,
		PatientName:   &patient.Name,
	}

	if err := s.ledgerRepo.SaveSettlement(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save settlement", slog.String("patient_id", patientID))
		return nil, fmt.Errorf("failed to save settlement: %w", err)
	}

	s.LogInfo(ctx, "Balance settlement recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("patient_id", patientID),
		slog.String("amount", req.Amount.String()))
	return &txn, nil
}

// GetPatientBalance recomputes the patient's outstanding balance from the
// ledger on every call.
func (s *ledgerService) GetPatientBalance(ctx context.Context, patientID string) (decimal.Decimal, error) {
	balance, err := s.ledgerRepo.SumBalanceByPatient(ctx, patientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum patient balance", slog.String("patient_id", patientID))
		return decimal.Zero, fmt.Errorf("failed to sum patient balance: %w", err)
	}
	return balance, nil
}

// ListTransactions returns ledger records most-recent-first.
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionFilter{
		PatientID: params.PatientID,
		Limit:     params.Limit,
		Offset:    params.Offset,
	}
	txns, err := s.ledgerRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
