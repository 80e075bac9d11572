// Package ledger holds the pure arithmetic over ledger records. Everything
// here is a fold over in-memory slices so services and tests share one
// implementation of the money math.
package ledger

import (
	"strings"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize folds a slice of transactions into the financial rollup.
// The sums are order-independent.
func Summarize(txns []domain.Transaction) domain.SalesSummary {
	summary := domain.SalesSummary{
		TotalRevenue:     decimal.Zero,
		TotalReceived:    decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}
	for _, t := range txns {
		summary.TotalRevenue = summary.TotalRevenue.Add(t.Total)
		summary.TotalReceived = summary.TotalReceived.Add(t.PaidAmount)
		summary.TotalOutstanding = summary.TotalOutstanding.Add(t.Balance)
		summary.ItemsSold += t.Items
	}
	summary.TransactionCount = len(txns)
	return summary
}

// SumBalances returns the sum of the balance field over the given records.
// Sale records underpaid contribute positively, settlements negatively.
func SumBalances(txns []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		sum = sum.Add(t.Balance)
	}
	return sum
}

// FilterBySearch keeps transactions whose id, payment method, cashier name or
// patient name contains the term, case-insensitively. An empty term keeps
// everything.
func FilterBySearch(txns []domain.Transaction, term string) []domain.Transaction {
	if term == "" {
		return txns
	}
	needle := strings.ToLower(term)
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if matchesSearch(t, needle) {
			out = append(out, t)
		}
	}
	return out
}

func matchesSearch(t domain.Transaction, needle string) bool {
	if strings.Contains(strings.ToLower(t.TransactionID), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(string(t.Method)), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(t.CashierName), needle) {
		return true
	}
	if t.PatientName != nil && strings.Contains(strings.ToLower(*t.PatientName), needle) {
		return true
	}
	return false
}

// CountLowStock counts products whose stock is strictly below the threshold.
func CountLowStock(products []domain.Product, threshold int) int {
	count := 0
	for _, p := range products {
		if p.Stock < threshold {
			count++
		}
	}
	return count
}

// SumExpenses returns the total of expense amounts.
func SumExpenses(expenses []domain.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}
