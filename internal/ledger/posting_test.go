package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

func TestCreateInvoice_WithTax(t *testing.T) {
	f := newFixture(t)

	tx, err := f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("10000")},
	}, dec("0.075"))
	require.NoError(t, err)

	assert.Equal(t, "INV-2026-001", tx.Number)
	assert.Equal(t, model.StatusPosted, tx.Status)
	require.Len(t, tx.Entries, 3, "AR debit, revenue credit, tax credit")
	assert.True(t, tx.Balanced())
	assert.True(t, tx.TotalDebit().Equal(dec("10750")))

	assert.True(t, f.balance(t, f.revenue.ID).Equal(dec("10000")))
	assert.True(t, f.balance(t, f.receivable.ID).Equal(dec("10750")))
	assert.True(t, f.balance(t, f.taxPayable.ID).Equal(dec("750")))
	assert.True(t, f.partyBalance(t, f.customer.ID).Equal(dec("10750")))
}

func TestCreateInvoice_NoTax(t *testing.T) {
	f := newFixture(t)

	tx, err := f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Sealcoating", Quantity: dec("2"), UnitPrice: dec("1250.50")},
	}, decimal.Zero)
	require.NoError(t, err)

	require.Len(t, tx.Entries, 2, "no tax entry when the rate is zero")
	assert.True(t, tx.Balanced())
	assert.True(t, f.balance(t, f.receivable.ID).Equal(dec("2501")))
	assert.True(t, f.balance(t, f.taxPayable.ID).IsZero())
}

func TestCreateInvoice_UnknownCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.CreateInvoice("nope", []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("100")},
	}, decimal.Zero)
	require.ErrorIs(t, err, ErrNotFound)

	assert.Empty(t, f.ledger.ListTransactions(TransactionFilter{}))
	assert.True(t, f.balance(t, f.receivable.ID).IsZero())
}

func TestCreateInvoice_InvalidItems(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.CreateInvoice(f.customer.ID, nil, decimal.Zero)
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("0"), UnitPrice: dec("100")},
	}, decimal.Zero)
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("100")},
	}, dec("-0.05"))
	require.ErrorIs(t, err, ErrInvalidAmount)

	assert.Empty(t, f.ledger.ListTransactions(TransactionFilter{}))
}

func TestCreateInvoice_VendorIsNotACustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.CreateInvoice(f.vendor.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("100")},
	}, decimal.Zero)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecordPayment_ClampsToBalance(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("10000")},
	}, dec("0.075"))
	require.NoError(t, err)

	tx, err := f.ledger.RecordPayment(f.customer.ID, dec("15000"), "ach")
	require.NoError(t, err)

	assert.Equal(t, "PMT-2026-001", tx.Number)
	assert.Equal(t, "ach", tx.Reference)
	assert.True(t, tx.TotalDebit().Equal(dec("10750")), "applied amount clamps to the outstanding balance")

	assert.True(t, f.partyBalance(t, f.customer.ID).IsZero())
	assert.True(t, f.balance(t, f.cash.ID).Equal(dec("10750")))
	assert.True(t, f.balance(t, f.receivable.ID).IsZero())
}

func TestRecordPayment_ExactAmount(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("500")},
	}, decimal.Zero)
	require.NoError(t, err)

	_, err = f.ledger.RecordPayment(f.customer.ID, dec("200"), "check")
	require.NoError(t, err)

	assert.True(t, f.partyBalance(t, f.customer.ID).Equal(dec("300")))
	assert.True(t, f.balance(t, f.cash.ID).Equal(dec("200")))
	assert.True(t, f.balance(t, f.receivable.ID).Equal(dec("300")))
}

func TestRecordPayment_Invalid(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.RecordPayment("nope", dec("100"), "cash")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = f.ledger.RecordPayment(f.customer.ID, dec("-5"), "cash")
	require.ErrorIs(t, err, ErrInvalidAmount)

	// Nothing outstanding: nothing to apply.
	_, err = f.ledger.RecordPayment(f.customer.ID, dec("100"), "cash")
	require.ErrorIs(t, err, ErrInvalidAmount)

	assert.Empty(t, f.ledger.ListTransactions(TransactionFilter{}))
	assert.True(t, f.balance(t, f.cash.ID).IsZero())
}

func TestRecordExpense(t *testing.T) {
	f := newFixture(t)

	// Pre-existing balance on the expense account.
	_, err := f.ledger.RecordExpense(f.vendor.ID, []ExpenseItem{
		{AccountID: f.fuel.ID, Description: "diesel", Amount: dec("500")},
	})
	require.NoError(t, err)

	tx, err := f.ledger.RecordExpense(f.vendor.ID, []ExpenseItem{
		{AccountID: f.fuel.ID, Description: "diesel", Amount: dec("300")},
	})
	require.NoError(t, err)

	assert.Equal(t, "EXP-2026-002", tx.Number)
	assert.True(t, tx.Balanced())
	assert.True(t, f.balance(t, f.fuel.ID).Equal(dec("800")))
	assert.True(t, f.balance(t, f.payable.ID).Equal(dec("800")))
	assert.True(t, f.partyBalance(t, f.vendor.ID).Equal(dec("800")))
}

func TestRecordExpense_MultipleItems(t *testing.T) {
	f := newFixture(t)

	maintenance, err := f.ledger.AddAccount(AccountSpec{
		Number: "5030", Name: "Equipment Maintenance", Type: model.AccountTypeExpense,
	})
	require.NoError(t, err)

	tx, err := f.ledger.RecordExpense(f.vendor.ID, []ExpenseItem{
		{AccountID: f.fuel.ID, Description: "diesel", Amount: dec("120.25")},
		{AccountID: maintenance.ID, Description: "roller service", Amount: dec("379.75")},
	})
	require.NoError(t, err)

	require.Len(t, tx.Entries, 3, "one debit per item plus the AP credit")
	assert.True(t, tx.TotalCredit().Equal(dec("500")))
	assert.True(t, f.balance(t, f.payable.ID).Equal(dec("500")))
	assert.True(t, f.partyBalance(t, f.vendor.ID).Equal(dec("500")))
}

func TestRecordExpense_Invalid(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.RecordExpense("nope", []ExpenseItem{
		{AccountID: f.fuel.ID, Description: "diesel", Amount: dec("10")},
	})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = f.ledger.RecordExpense(f.vendor.ID, nil)
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.ledger.RecordExpense(f.vendor.ID, []ExpenseItem{
		{AccountID: f.fuel.ID, Description: "diesel", Amount: dec("-10")},
	})
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.ledger.RecordExpense(f.vendor.ID, []ExpenseItem{
		{AccountID: "nope", Description: "diesel", Amount: dec("10")},
	})
	require.ErrorIs(t, err, ErrNotFound)

	assert.Empty(t, f.ledger.ListTransactions(TransactionFilter{}))
	assert.True(t, f.partyBalance(t, f.vendor.ID).IsZero())
}

func TestRecordExpense_InactiveAccount(t *testing.T) {
	f := newFixture(t)

	active := false
	require.NoError(t, f.ledger.UpdateAccount(f.fuel.ID, AccountPatch{Active: &active}))

	// Deactivated accounts are closed to new postings even when referenced
	// by ID directly.
	_, err := f.ledger.RecordExpense(f.vendor.ID, []ExpenseItem{
		{AccountID: f.fuel.ID, Description: "diesel", Amount: dec("300")},
	})
	require.ErrorIs(t, err, ErrNotFound)

	assert.True(t, f.balance(t, f.fuel.ID).IsZero())
	assert.True(t, f.partyBalance(t, f.vendor.ID).IsZero())
	assert.Empty(t, f.ledger.ListTransactions(TransactionFilter{}))
}

func TestPosting_AtomicOnSaveFailure(t *testing.T) {
	f := newFixture(t)

	f.store.FailNext(errors.New("disk full"))
	_, err := f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("10000")},
	}, dec("0.075"))
	require.Error(t, err)

	// No account, party, or transaction state reflects the attempt.
	assert.True(t, f.balance(t, f.revenue.ID).IsZero())
	assert.True(t, f.balance(t, f.receivable.ID).IsZero())
	assert.True(t, f.partyBalance(t, f.customer.ID).IsZero())
	assert.Empty(t, f.ledger.ListTransactions(TransactionFilter{}))

	// The next posting succeeds and takes the first number in the series.
	tx, err := f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("10000")},
	}, dec("0.075"))
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-001", tx.Number)
}

func TestPosting_AllTransactionsBalance(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("3"), UnitPrice: dec("333.33")},
	}, dec("0.053"))
	require.NoError(t, err)

	_, err = f.ledger.RecordPayment(f.customer.ID, dec("400"), "card")
	require.NoError(t, err)

	_, err = f.ledger.RecordExpense(f.vendor.ID, []ExpenseItem{
		{AccountID: f.fuel.ID, Description: "diesel", Amount: dec("77.77")},
	})
	require.NoError(t, err)

	for _, tx := range f.ledger.ListTransactions(TransactionFilter{}) {
		assert.True(t, tx.Balanced(), "transaction %s must balance", tx.Number)
		for _, e := range tx.Entries {
			assert.False(t, e.Debit.IsZero() == e.Credit.IsZero(),
				"entry in %s must have exactly one side", tx.Number)
		}
	}
}

func TestPosting_SequentialNumbersPerSeries(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
			{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("100")},
		}, decimal.Zero)
		require.NoError(t, err)
	}
	_, err := f.ledger.RecordExpense(f.vendor.ID, []ExpenseItem{
		{AccountID: f.fuel.ID, Description: "diesel", Amount: dec("10")},
	})
	require.NoError(t, err)

	var numbers []string
	for _, tx := range f.ledger.ListTransactions(TransactionFilter{}) {
		numbers = append(numbers, tx.Number)
	}
	assert.Equal(t, []string{"INV-2026-001", "INV-2026-002", "INV-2026-003", "EXP-2026-001"}, numbers)
}
