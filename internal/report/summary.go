// Package report computes the aggregate figures the CLI shows after a
// classification run: debit/credit totals, balance, and per-category and
// per-month debit breakdowns.
package report

import (
	"sort"

	"github.com/arturoveja/plata/internal/model"
	"github.com/shopspring/decimal"
)

// CategoryTotal is one category's aggregated debit amount.
type CategoryTotal struct {
	Category string
	Count    int
	Amount   decimal.Decimal
}

// MonthTotal is one calendar month's aggregated debit amount.
type MonthTotal struct {
	Month  string // YYYY-MM
	Amount decimal.Decimal
}

// Summary aggregates a categorized batch.
type Summary struct {
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	Balance      decimal.Decimal
	ByCategory   []CategoryTotal
	ByMonth      []MonthTotal
}

// Summarize computes totals over the batch. Debits are summed per category
// (largest first) and per month (chronological); the balance is credits
// minus debits.
func Summarize(txns []model.Transaction) Summary {
	s := Summary{}
	byCategory := make(map[string]*CategoryTotal)
	byMonth := make(map[string]decimal.Decimal)

	for _, txn := range txns {
		switch txn.Direction {
		case model.Credit:
			s.TotalCredits = s.TotalCredits.Add(txn.Amount)
			continue
		case model.Debit:
			s.TotalDebits = s.TotalDebits.Add(txn.Amount)
		default:
			continue
		}

		ct, ok := byCategory[txn.Category]
		if !ok {
			ct = &CategoryTotal{Category: txn.Category}
			byCategory[txn.Category] = ct
		}
		ct.Count++
		ct.Amount = ct.Amount.Add(txn.Amount)

		if !txn.Date.IsZero() {
			month := txn.Date.Format("2006-01")
			byMonth[month] = byMonth[month].Add(txn.Amount)
		}
	}

	s.Balance = s.TotalCredits.Sub(s.TotalDebits)

	for _, ct := range byCategory {
		s.ByCategory = append(s.ByCategory, *ct)
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if !s.ByCategory[i].Amount.Equal(s.ByCategory[j].Amount) {
			return s.ByCategory[i].Amount.GreaterThan(s.ByCategory[j].Amount)
		}
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})

	for month, amount := range byMonth {
		s.ByMonth = append(s.ByMonth, MonthTotal{Month: month, Amount: amount})
	}
	sort.Slice(s.ByMonth, func(i, j int) bool {
		return s.ByMonth[i].Month < s.ByMonth[j].Month
	})

	return s
}
