package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

func (f *fixture) postSample(t *testing.T) {
	t.Helper()

	_, err := f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("1000")},
	}, decimal.Zero)
	require.NoError(t, err)

	_, err = f.ledger.RecordPayment(f.customer.ID, dec("400"), "ach")
	require.NoError(t, err)

	_, err = f.ledger.RecordExpense(f.vendor.ID, []ExpenseItem{
		{AccountID: f.fuel.ID, Description: "diesel", Amount: dec("50")},
	})
	require.NoError(t, err)
}

func TestListTransactions_All(t *testing.T) {
	f := newFixture(t)
	f.postSample(t)

	txs := f.ledger.ListTransactions(TransactionFilter{})
	require.Len(t, txs, 3)
	assert.Equal(t, "INV-2026-001", txs[0].Number)
	assert.Equal(t, "PMT-2026-001", txs[1].Number)
	assert.Equal(t, "EXP-2026-001", txs[2].Number)
}

func TestListTransactions_FilterByType(t *testing.T) {
	f := newFixture(t)
	f.postSample(t)

	payments := f.ledger.ListTransactions(TransactionFilter{Type: model.TransactionPayment})
	require.Len(t, payments, 1)
	assert.Equal(t, "PMT-2026-001", payments[0].Number)

	journals := f.ledger.ListTransactions(TransactionFilter{Type: model.TransactionJournal})
	assert.Len(t, journals, 2, "invoices and expenses post as journal entries")
}

func TestListTransactions_FilterByDate(t *testing.T) {
	f := newFixture(t)

	f.ledger.now = func() time.Time { return date(2026, 1, 10) }
	_, err := f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("100")},
	}, decimal.Zero)
	require.NoError(t, err)

	f.ledger.now = func() time.Time { return date(2026, 6, 10) }
	_, err = f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("100")},
	}, decimal.Zero)
	require.NoError(t, err)

	early := f.ledger.ListTransactions(TransactionFilter{To: date(2026, 3, 1)})
	require.Len(t, early, 1)
	assert.Equal(t, "INV-2026-001", early[0].Number)

	late := f.ledger.ListTransactions(TransactionFilter{From: date(2026, 3, 1)})
	require.Len(t, late, 1)
	assert.Equal(t, "INV-2026-002", late[0].Number)
}

func TestNumbering_NewYearRestartsSequence(t *testing.T) {
	f := newFixture(t)

	f.ledger.now = func() time.Time { return date(2026, 12, 30) }
	tx, err := f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("100")},
	}, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-001", tx.Number)

	f.ledger.now = func() time.Time { return date(2027, 1, 2) }
	tx, err = f.ledger.CreateInvoice(f.customer.ID, []InvoiceItem{
		{Description: "Paving", Quantity: dec("1"), UnitPrice: dec("100")},
	}, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "INV-2027-001", tx.Number)
}
