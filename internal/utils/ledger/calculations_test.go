package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	"github.com/omarionadde/DHOOL/internal/utils/ledger"
)

func strptr(s string) *string { return &s }

func sampleTxns() []domain.Transaction {
	return []domain.Transaction{
		{
			TransactionID: "txn-1",
			Total:         decimal.NewFromInt(300),
			PaidAmount:    decimal.NewFromInt(300),
			Balance:       decimal.Zero,
			Items:         4,
			Method:        domain.Cash,
			CashierName:   "Amina",
		},
		{
			TransactionID: "txn-2",
			Total:         decimal.NewFromInt(200),
			PaidAmount:    decimal.NewFromInt(150),
			Balance:       decimal.NewFromInt(50),
			Items:         2,
			Method:        domain.Zaad,
			CashierName:   "Amina",
			PatientName:   strptr("Hodan"),
		},
		{
			TransactionID: "txn-3",
			Total:         decimal.Zero,
			PaidAmount:    decimal.NewFromInt(20),
			Balance:       decimal.NewFromInt(-20),
			Method:        domain.Cash,
			CashierName:   "Faisal",
			PatientName:   strptr("Hodan"),
		},
	}
}

func TestSummarize(t *testing.T) {
	summary := ledger.Summarize(sampleTxns())

	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.TotalReceived.Equal(decimal.NewFromInt(470)))
	assert.True(t, summary.TotalOutstanding.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 6, summary.ItemsSold)
	assert.Equal(t, 3, summary.TransactionCount)
}

func TestSummarizeIsOrderIndependent(t *testing.T) {
	txns := sampleTxns()
	reversed := []domain.Transaction{txns[2], txns[1], txns[0]}

	a := ledger.Summarize(txns)
	b := ledger.Summarize(reversed)

	assert.True(t, a.TotalRevenue.Equal(b.TotalRevenue))
	assert.True(t, a.TotalReceived.Equal(b.TotalReceived))
	assert.True(t, a.TotalOutstanding.Equal(b.TotalOutstanding))
	assert.Equal(t, a.ItemsSold, b.ItemsSold)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := ledger.Summarize(nil)

	assert.True(t, summary.TotalRevenue.IsZero())
	assert.True(t, summary.TotalReceived.IsZero())
	assert.True(t, summary.TotalOutstanding.IsZero())
	assert.Equal(t, 0, summary.ItemsSold)
	assert.Equal(t, 0, summary.TransactionCount)
}

func TestSumBalances(t *testing.T) {
	assert.True(t, ledger.SumBalances(sampleTxns()).Equal(decimal.NewFromInt(30)))
	assert.True(t, ledger.SumBalances(nil).IsZero())
}

func TestSumBalancesSettlementCancelsDebt(t *testing.T) {
	txns := []domain.Transaction{
		{Balance: decimal.NewFromInt(50)},
		{Balance: decimal.NewFromInt(-50)},
	}
	assert.True(t, ledger.SumBalances(txns).IsZero())
}

func TestFilterBySearch(t *testing.T) {
	txns := sampleTxns()

	assert.Len(t, ledger.FilterBySearch(txns, ""), 3)
	assert.Len(t, ledger.FilterBySearch(txns, "hodan"), 2)
	assert.Len(t, ledger.FilterBySearch(txns, "HODAN"), 2)
	assert.Len(t, ledger.FilterBySearch(txns, "zaad"), 1)
	assert.Len(t, ledger.FilterBySearch(txns, "faisal"), 1)
	assert.Len(t, ledger.FilterBySearch(txns, "txn-1"), 1)
	assert.Empty(t, ledger.FilterBySearch(txns, "no-such-term"))
}

func TestCountLowStockBoundary(t *testing.T) {
	products := []domain.Product{
		{Stock: 0},
		{Stock: 1},
		{Stock: 4},
		{Stock: 5},
		{Stock: 6},
	}

	// strictly below the threshold
	assert.Equal(t, 3, ledger.CountLowStock(products, 5))
	assert.Equal(t, 0, ledger.CountLowStock(nil, 5))
}

func TestSumExpenses(t *testing.T) {
	expenses := []domain.Expense{
		{Amount: decimal.NewFromInt(100)},
		{Amount: decimal.NewFromInt(20)},
	}

	assert.True(t, ledger.SumExpenses(expenses).Equal(decimal.NewFromInt(120)))
	assert.True(t, ledger.SumExpenses(nil).IsZero())
}

func TestNetProfitExample(t *testing.T) {
	revenue := ledger.Summarize(sampleTxns()).TotalRevenue
	expenses := ledger.SumExpenses([]domain.Expense{
		{Amount: decimal.NewFromInt(100)},
		{Amount: decimal.NewFromInt(20)},
	})

	assert.True(t, revenue.Sub(expenses).Equal(decimal.NewFromInt(380)))
}
