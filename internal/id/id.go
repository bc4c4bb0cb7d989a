package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Series is the numbering scope for human-readable transaction numbers.
// Counters are kept per series and year.
type Series string

const (
	SeriesInvoice Series = "INV"
	SeriesPayment Series = "PMT"
	SeriesExpense Series = "EXP"
)

// New returns a fresh entity ID.
func New() string {
	return uuid.NewString()
}

// FormatNumber returns a transaction number like "INV-2026-003".
func FormatNumber(series Series, year, seq int) string {
	return fmt.Sprintf("%s-%04d-%03d", series, year, seq)
}

// CounterKey returns the persisted counter key for a series and year,
// e.g. "INV-2026".
func CounterKey(series Series, year int) string {
	return fmt.Sprintf("%s-%04d", series, year)
}

// ParseNumber parses "INV-2026-003" into series, year and sequence.
func ParseNumber(number string) (series Series, year, seq int, err error) {
	parts := strings.SplitN(number, "-", 3)
	if len(parts) != 3 {
		return "", 0, 0, fmt.Errorf("invalid transaction number format: %q", number)
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid year in transaction number %q: %w", number, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid sequence in transaction number %q: %w", number, err)
	}

	return Series(parts[0]), year, seq, nil
}
