package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether a transaction moved money out of or into the
// account.
type Direction string

const (
	// Debit represents money leaving the account.
	Debit Direction = "Debit"
	// Credit represents money entering the account.
	Credit Direction = "Credit"
)

// ParseDirection normalizes free-form Debit/Credit column values.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debit", "dr":
		return Debit, nil
	case "credit", "cr":
		return Credit, nil
	default:
		return "", fmt.Errorf("unrecognized debit/credit value %q", s)
	}
}

// Transaction represents a single bank transaction from an uploaded dataset.
// Category is mutated only by the classification engine or by an explicit
// user edit.
type Transaction struct {
	Date      time.Time
	Details   string
	Category  string
	Direction Direction
	Amount    decimal.Decimal
}

// IsUncategorized reports whether the transaction is still awaiting a
// category assignment. An empty category counts as uncategorized so that
// freshly loaded batches classify correctly.
func (t Transaction) IsUncategorized() bool {
	return t.Category == "" || t.Category == UncategorizedName
}
