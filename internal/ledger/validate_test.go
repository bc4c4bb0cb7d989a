package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

type mockAccounts map[string]bool

func (m mockAccounts) Exists(id string) bool { return m[id] }

func TestValidateEntries_Balanced(t *testing.T) {
	accounts := mockAccounts{"ar": true, "rev": true}
	entries := []model.JournalEntry{
		{AccountID: "ar", Debit: dec("100")},
		{AccountID: "rev", Credit: dec("100")},
	}
	assert.Empty(t, ValidateEntries(entries, accounts))
}

func TestValidateEntries_Unbalanced(t *testing.T) {
	accounts := mockAccounts{"ar": true, "rev": true}
	entries := []model.JournalEntry{
		{AccountID: "ar", Debit: dec("107.50")},
		{AccountID: "rev", Credit: dec("100")},
	}
	errs := ValidateEntries(entries, accounts)
	assert.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
	assert.Contains(t, errs[0].Error(), "107.50")
}

func TestValidateEntries_BothSidesSet(t *testing.T) {
	accounts := mockAccounts{"a": true}
	entries := []model.JournalEntry{
		{AccountID: "a", Debit: dec("50"), Credit: dec("50")},
	}
	errs := ValidateEntries(entries, accounts)
	assert.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Invariant)
}

func TestValidateEntries_NeitherSideSet(t *testing.T) {
	accounts := mockAccounts{"a": true, "b": true}
	entries := []model.JournalEntry{
		{AccountID: "a", Debit: dec("50")},
		{AccountID: "b", Credit: dec("50")},
		{AccountID: "a"},
	}
	errs := ValidateEntries(entries, accounts)
	assert.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Invariant)
}

func TestValidateEntries_UnknownAccount(t *testing.T) {
	accounts := mockAccounts{"a": true}
	entries := []model.JournalEntry{
		{AccountID: "a", Debit: dec("50")},
		{AccountID: "ghost", Credit: dec("50")},
	}
	errs := ValidateEntries(entries, accounts)
	assert.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Invariant)
}

func TestValidateEntries_TooManyDecimalPlaces(t *testing.T) {
	accounts := mockAccounts{"a": true, "b": true}
	entries := []model.JournalEntry{
		{AccountID: "a", Debit: dec("33.333")},
		{AccountID: "b", Credit: dec("33.333")},
	}
	errs := ValidateEntries(entries, accounts)
	assert.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, 4, e.Invariant)
	}
}
