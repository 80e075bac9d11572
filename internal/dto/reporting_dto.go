package dto

import "github.com/omarionadde/DHOOL/internal/core/domain"

// SalesReportParams filter the sales report. UserID restricts to one cashier;
// Search matches id, method, cashier name and patient name, case-insensitively.
type SalesReportParams struct {
	UserID *string `form:"userId"`
	Search string  `form:"search"`
}

// SalesReportResponse is the sales report payload: the rollup plus the rows it
// was computed from, most-recent-first.
type SalesReportResponse struct {
	Summary      domain.SalesSummary   `json:"summary"`
	Transactions []TransactionResponse `json:"transactions"`
}
