// Package ingest loads and validates bank-transaction CSV files before they
// reach the classification engine. Malformed batches are surfaced here;
// the engine assumes well-formed input.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/arturoveja/plata/internal/model"
	"github.com/shopspring/decimal"
)

// Required CSV columns. Header names are trimmed before matching.
const (
	colDate      = "Date"
	colAmount    = "Amount"
	colDetails   = "Details"
	colDirection = "Debit/Credit"
)

// ErrMissingColumns indicates the CSV lacks one or more required columns.
var ErrMissingColumns = errors.New("csv is missing required columns")

// dateLayouts are tried in order when parsing the Date column.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// LoadTransactions reads a transaction CSV from r, validates its columns,
// and normalizes amounts, dates, and the Debit/Credit flag. An optional
// Category column is carried through so previously categorized exports
// round-trip; otherwise every transaction starts Uncategorized.
func LoadTransactions(r io.Reader) ([]model.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumns)
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, required := range []string{colDate, colAmount, colDetails, colDirection} {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	categoryIdx, hasCategory := columns[colCategory]

	var txns []model.Transaction
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		line++

		txn, err := parseRow(record, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if hasCategory && categoryIdx < len(record) {
			txn.Category = strings.TrimSpace(record[categoryIdx])
		}
		if txn.Category == "" {
			txn.Category = model.UncategorizedName
		}
		txns = append(txns, txn)
	}

	slog.Debug("loaded transactions", "count", len(txns))
	return txns, nil
}

// colCategory is optional on input and always present on output.
const colCategory = "Category"

func parseRow(record []string, columns map[string]int) (model.Transaction, error) {
	field := func(name string) string {
		i := columns[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := parseDate(field(colDate))
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := ParseAmount(field(colAmount))
	if err != nil {
		return model.Transaction{}, err
	}

	direction, err := model.ParseDirection(field(colDirection))
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:      date,
		Details:   field(colDetails),
		Amount:    amount,
		Direction: direction,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// ParseAmount normalizes an amount string, tolerating thousands separators
// and surrounding whitespace, and parses it as a decimal.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unparseable amount %q: %w", s, err)
	}
	return amount, nil
}

// WriteTransactions writes the batch back out as CSV with the category
// column filled in, in the same column order LoadTransactions expects.
// Each written row invokes onRow, if set, for progress reporting.
func WriteTransactions(w io.Writer, txns []model.Transaction, onRow func()) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{colDate, colDetails, colAmount, colDirection, colCategory}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, txn := range txns {
		row := []string{
			txn.Date.Format("2006-01-02"),
			txn.Details,
			txn.Amount.String(),
			string(txn.Direction),
			txn.Category,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
		if onRow != nil {
			onRow()
		}
	}

	writer.Flush()
	return writer.Error()
}
