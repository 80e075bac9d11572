package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/dto"
	"github.com/omarionadde/DHOOL/internal/utils/ledger"
)

// reportingService computes read-only rollups. It reads through the entity
// repositories and does all monetary aggregation in-process with the pure
// folds in utils/ledger, so the arithmetic is shared with the tests.
type reportingService struct {
	BaseService
	ledgerRepo      portsrepo.LedgerRepository
	expenseRepo     portsrepo.ExpenseRepository
	productRepo     portsrepo.ProductRepository
	patientRepo     portsrepo.PatientRepository
	appointmentRepo portsrepo.AppointmentRepository

	lowStockThreshold int
}

// NewReportingService creates the reporting service.
func NewReportingService(
	ledgerRepo portsrepo.LedgerRepository,
	expenseRepo portsrepo.ExpenseRepository,
	productRepo portsrepo.ProductRepository,
	patientRepo portsrepo.PatientRepository,
	appointmentRepo portsrepo.AppointmentRepository,
	lowStockThreshold int,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		ledgerRepo:        ledgerRepo,
		expenseRepo:       expenseRepo,
		productRepo:       productRepo,
		patientRepo:       patientRepo,
		appointmentRepo:   appointmentRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// SalesSummary filters the ledger by cashier and free-text term, then folds
// the matching rows into the financial rollup. The filtered rows are returned
// alongside the summary so the report view can render them.
func (s *reportingService) SalesSummary(ctx context.Context, params dto.SalesReportParams) (*domain.SalesSummary, []domain.Transaction, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx, portsrepo.TransactionFilter{UserID: params.UserID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for sales report")
		return nil, nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	filtered := ledger.FilterBySearch(txns, params.Search)
	summary := ledger.Summarize(filtered)

	s.LogInfo(ctx, "Sales report generated",
		slog.Int("transaction_count", summary.TransactionCount),
		slog.String("total_revenue", summary.TotalRevenue.String()))
	return &summary, filtered, nil
}

// DashboardSummary computes the landing-page snapshot: revenue, expenses, net
// profit and the operational counts.
func (s *reportingService) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for dashboard")
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses for dashboard")
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}

	products, err := s.productRepo.ListProducts(ctx, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products for dashboard")
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	patientCount, err := s.patientRepo.CountPatients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count patients for dashboard")
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}

	todayAppointments, err := s.appointmentRepo.CountAppointmentsOn(ctx, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to count today's appointments for dashboard")
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}

	salesSummary := ledger.Summarize(txns)
	totalExpenses := ledger.SumExpenses(expenses)

	summary := &domain.DashboardSummary{
		TotalRevenue:      salesSummary.TotalRevenue,
		TotalExpenses:     totalExpenses,
		NetProfit:         salesSummary.TotalRevenue.Sub(totalExpenses),
		LowStockCount:     ledger.CountLowStock(products, s.lowStockThreshold),
		PatientCount:      patientCount,
		TodayAppointments: todayAppointments,
	}

	s.LogInfo(ctx, "Dashboard summary generated",
		slog.String("net_profit", summary.NetProfit.String()),
		slog.Int("low_stock_count", summary.LowStockCount))
	return summary, nil
}
