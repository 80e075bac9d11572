package services

import (
	"context"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	"github.com/omarionadde/DHOOL/internal/dto"
)

// ReportingSvcFacade computes read-only financial rollups. Aggregations are
// pure folds over fetched collections; nothing here writes.
type ReportingSvcFacade interface {
	SalesSummary(ctx context.Context, params dto.SalesReportParams) (*domain.SalesSummary, []domain.Transaction, error)
	DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
