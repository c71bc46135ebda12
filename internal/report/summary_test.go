package report

import (
	"testing"
	"time"

	"github.com/arturoveja/plata/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarize(t *testing.T) {
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)

	txns := []model.Transaction{
		{Date: jan, Details: "COMPRA LULU", Amount: amt("120.50"), Direction: model.Debit, Category: "Supermercado"},
		{Date: jan, Details: "PAGO NETFLIX", Amount: amt("12.99"), Direction: model.Debit, Category: "Entretenimiento"},
		{Date: feb, Details: "COMPRA CARREFOUR", Amount: amt("80.00"), Direction: model.Debit, Category: "Supermercado"},
		{Date: feb, Details: "SALARY", Amount: amt("5000"), Direction: model.Credit, Category: model.UncategorizedName},
	}

	s := Summarize(txns)

	assert.True(t, s.TotalDebits.Equal(amt("213.49")), "debits: %s", s.TotalDebits)
	assert.True(t, s.TotalCredits.Equal(amt("5000")))
	assert.True(t, s.Balance.Equal(amt("4786.51")))

	require.Len(t, s.ByCategory, 2)
	assert.Equal(t, "Supermercado", s.ByCategory[0].Category)
	assert.Equal(t, 2, s.ByCategory[0].Count)
	assert.True(t, s.ByCategory[0].Amount.Equal(amt("200.50")))
	assert.Equal(t, "Entretenimiento", s.ByCategory[1].Category)

	require.Len(t, s.ByMonth, 2)
	assert.Equal(t, "2024-01", s.ByMonth[0].Month)
	assert.True(t, s.ByMonth[0].Amount.Equal(amt("133.49")))
	assert.Equal(t, "2024-02", s.ByMonth[1].Month)
	assert.True(t, s.ByMonth[1].Amount.Equal(amt("80")))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.TotalDebits.IsZero())
	assert.True(t, s.TotalCredits.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.Empty(t, s.ByCategory)
	assert.Empty(t, s.ByMonth)
}

func TestSummarize_EqualAmountsOrderedByName(t *testing.T) {
	txns := []model.Transaction{
		{Details: "B", Amount: amt("10"), Direction: model.Debit, Category: "Zeta"},
		{Details: "A", Amount: amt("10"), Direction: model.Debit, Category: "Alfa"},
	}
	s := Summarize(txns)
	require.Len(t, s.ByCategory, 2)
	assert.Equal(t, "Alfa", s.ByCategory[0].Category)
}
