package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/store"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// fixture is a ledger over an in-memory store with the standard test chart
// and one customer and vendor.
type fixture struct {
	ledger *Ledger
	store  *store.Memory

	cash       model.Account
	receivable model.Account
	payable    model.Account
	taxPayable model.Account
	revenue    model.Account
	fuel       model.Account

	customer model.Party
	vendor   model.Party
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := store.NewMemory()
	l, err := New(st)
	require.NoError(t, err)
	l.now = func() time.Time { return date(2026, 3, 15) }

	f := &fixture{ledger: l, store: st}

	add := func(spec AccountSpec) model.Account {
		account, err := l.AddAccount(spec)
		require.NoError(t, err)
		return account
	}

	f.cash = add(AccountSpec{Number: "1010", Name: "Business Checking", Type: model.AccountTypeAsset, Role: model.RoleCash})
	f.receivable = add(AccountSpec{Number: "1020", Name: "Accounts Receivable", Type: model.AccountTypeAsset, Role: model.RoleAccountsReceivable})
	f.payable = add(AccountSpec{Number: "2010", Name: "Accounts Payable", Type: model.AccountTypeLiability, Role: model.RoleAccountsPayable})
	f.taxPayable = add(AccountSpec{Number: "2020", Name: "Sales Tax Payable", Type: model.AccountTypeLiability, Role: model.RoleSalesTaxPayable})
	f.revenue = add(AccountSpec{Number: "4010", Name: "Revenue-Paving", Type: model.AccountTypeRevenue, Role: model.RoleSalesRevenue})
	f.fuel = add(AccountSpec{Number: "5010", Name: "Fuel", Type: model.AccountTypeExpense})

	f.customer, err = l.AddCustomer(PartySpec{Number: "C-001", Name: "Main Street HOA"})
	require.NoError(t, err)
	f.vendor, err = l.AddVendor(PartySpec{Number: "V-001", Name: "County Fuel Depot"})
	require.NoError(t, err)

	return f
}

// balance re-reads an account's committed balance.
func (f *fixture) balance(t *testing.T, accountID string) decimal.Decimal {
	t.Helper()
	account, err := f.ledger.Account(accountID)
	require.NoError(t, err)
	return account.Balance
}

// partyBalance re-reads a party's committed balance.
func (f *fixture) partyBalance(t *testing.T, partyID string) decimal.Decimal {
	t.Helper()
	party, err := f.ledger.Party(partyID)
	require.NoError(t, err)
	return party.Balance
}
