package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/omarionadde/DHOOL/internal/core/domain"
)

func TestIsSettlement(t *testing.T) {
	sale := domain.Transaction{
		Total:      decimal.NewFromInt(35),
		PaidAmount: decimal.NewFromInt(20),
		Balance:    decimal.NewFromInt(15),
	}
	settlement := domain.Transaction{
		Total:      decimal.Zero,
		PaidAmount: decimal.NewFromInt(15),
		Balance:    decimal.NewFromInt(-15),
	}

	assert.False(t, sale.IsSettlement())
	assert.True(t, settlement.IsSettlement())
}

func TestBalanceConvention(t *testing.T) {
	// A settlement's balance is the negated paid amount, so summing balances
	// across a sale and its full settlement yields zero.
	sale := domain.Transaction{Balance: decimal.NewFromInt(15)}
	settlement := domain.Transaction{Balance: decimal.NewFromInt(-15)}

	assert.True(t, sale.Balance.Add(settlement.Balance).IsZero())
}
