package domain

import "github.com/shopspring/decimal"

// SalesSummary is the financial rollup over a (possibly filtered) slice of the
// ledger. TotalOutstanding is the sum of transaction balances: sales underpaid
// contribute positively, settlements negatively.
type SalesSummary struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalReceived    decimal.Decimal `json:"totalReceived"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	ItemsSold        int             `json:"itemsSold"`
	TransactionCount int             `json:"transactionCount"`
}

// DashboardSummary is the landing-page snapshot of the whole operation.
type DashboardSummary struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	LowStockCount     int             `json:"lowStockCount"`
	PatientCount      int             `json:"patientCount"`
	TodayAppointments int             `json:"todayAppointments"`
}
