package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

// ValidationError describes a single invariant violation in a transaction.
type ValidationError struct {
	Invariant   int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d: %s", e.Invariant, e.Description)
}

// AccountChecker tests whether an account ID exists.
type AccountChecker interface {
	Exists(id string) bool
}

// ValidateEntries enforces the journal invariants on a transaction's entries:
//
//  1. The entry set balances: sum(debits) == sum(credits).
//  2. Each entry has exactly one of debit/credit nonzero, and neither side
//     is negative.
//  3. Each entry references a known account.
//  4. Amounts carry no more than 2 decimal places.
func ValidateEntries(entries []model.JournalEntry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}
	if !totalDebit.Equal(totalCredit) {
		errs = append(errs, ValidationError{
			Invariant:   1,
			Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
		})
	}

	two := decimal.NewFromInt(100)
	for _, e := range entries {
		hasDebit := !e.Debit.IsZero()
		hasCredit := !e.Credit.IsZero()
		if hasDebit == hasCredit || e.Debit.IsNegative() || e.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Description: fmt.Sprintf("entry against %s must have exactly one of debit or credit, both >= 0", e.AccountID),
			})
		}

		if !accounts.Exists(e.AccountID) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Description: fmt.Sprintf("unknown account %s", e.AccountID),
			})
		}

		if !e.Debit.Mul(two).Equal(e.Debit.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Description: fmt.Sprintf("debit %s has more than 2 decimal places", e.Debit),
			})
		}
		if !e.Credit.Mul(two).Equal(e.Credit.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Description: fmt.Sprintf("credit %s has more than 2 decimal places", e.Credit),
			})
		}
	}

	return errs
}
