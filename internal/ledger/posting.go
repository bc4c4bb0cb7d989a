package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/id"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/store"
)

// InvoiceItem is one line on a customer invoice.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// ExpenseItem is one line on a vendor expense, debited against the named
// expense account.
type ExpenseItem struct {
	AccountID   string          `json:"accountId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateInvoice posts a customer invoice: accounts receivable is debited by
// the invoice total, the sales revenue account is credited by the subtotal,
// and any tax is credited against the sales-tax-payable account so the
// transaction balances. The customer's outstanding balance grows by the
// total.
func (l *Ledger) CreateInvoice(customerID string, items []InvoiceItem, taxRate decimal.Decimal) (model.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	customer, err := l.resolveParty(customerID, model.PartyCustomer)
	if err != nil {
		return model.Transaction{}, err
	}

	if len(items) == 0 {
		return model.Transaction{}, fmt.Errorf("invoice has no items: %w", ErrInvalidAmount)
	}
	if taxRate.IsNegative() {
		return model.Transaction{}, fmt.Errorf("tax rate %s is negative: %w", taxRate, ErrInvalidAmount)
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if !item.Quantity.IsPositive() {
			return model.Transaction{}, fmt.Errorf("item %q quantity %s: %w", item.Description, item.Quantity, ErrInvalidAmount)
		}
		if item.UnitPrice.IsNegative() {
			return model.Transaction{}, fmt.Errorf("item %q unit price %s: %w", item.Description, item.UnitPrice, ErrInvalidAmount)
		}
		subtotal = subtotal.Add(item.Quantity.Mul(item.UnitPrice).Round(2))
	}
	if !subtotal.IsPositive() {
		return model.Transaction{}, fmt.Errorf("invoice subtotal %s: %w", subtotal, ErrInvalidAmount)
	}

	taxAmount := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(taxAmount)

	receivable, err := l.roleAccount(model.RoleAccountsReceivable)
	if err != nil {
		return model.Transaction{}, err
	}
	revenue, err := l.roleAccount(model.RoleSalesRevenue)
	if err != nil {
		return model.Transaction{}, err
	}

	description := fmt.Sprintf("Invoice for %s", customer.Name)
	entries := []model.JournalEntry{
		{AccountID: receivable.ID, Debit: total, Description: description},
		{AccountID: revenue.ID, Credit: subtotal, Description: description},
	}
	if taxAmount.IsPositive() {
		taxPayable, err := l.roleAccount(model.RoleSalesTaxPayable)
		if err != nil {
			return model.Transaction{}, err
		}
		entries = append(entries, model.JournalEntry{
			AccountID: taxPayable.ID, Credit: taxAmount, Description: "Sales tax",
		})
	}

	tx, counters, err := l.buildTransaction(id.SeriesInvoice, model.TransactionJournal, l.now(), description, "", entries)
	if err != nil {
		return model.Transaction{}, err
	}

	accounts := l.applyEntries(entries)
	customer.Balance = customer.Balance.Add(total)

	set := store.ChangeSet{
		Accounts:     accounts,
		Parties:      []model.Party{customer},
		Transactions: []model.Transaction{tx},
		Counters:     counters,
	}
	if err := l.store.Save(set); err != nil {
		return model.Transaction{}, fmt.Errorf("posting invoice: %w", err)
	}
	l.commit(tx, accounts, &customer, counters)
	return tx, nil
}

// RecordPayment applies a customer payment: cash is debited and accounts
// receivable credited by the applied amount. The amount is clamped to the
// customer's outstanding balance so a payment never drives the receivable
// below zero.
func (l *Ledger) RecordPayment(customerID string, amount decimal.Decimal, method string) (model.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	customer, err := l.resolveParty(customerID, model.PartyCustomer)
	if err != nil {
		return model.Transaction{}, err
	}

	if !amount.IsPositive() {
		return model.Transaction{}, fmt.Errorf("payment amount %s: %w", amount, ErrInvalidAmount)
	}
	if !amount.Equal(amount.Round(2)) {
		return model.Transaction{}, fmt.Errorf("payment amount %s has more than 2 decimal places: %w", amount, ErrInvalidAmount)
	}

	applied := decimal.Min(amount, customer.Balance)
	if !applied.IsPositive() {
		return model.Transaction{}, fmt.Errorf("customer %s has no outstanding balance: %w", customer.Name, ErrInvalidAmount)
	}

	cash, err := l.roleAccount(model.RoleCash)
	if err != nil {
		return model.Transaction{}, err
	}
	receivable, err := l.roleAccount(model.RoleAccountsReceivable)
	if err != nil {
		return model.Transaction{}, err
	}

	description := fmt.Sprintf("Payment from %s", customer.Name)
	entries := []model.JournalEntry{
		{AccountID: cash.ID, Debit: applied, Description: description},
		{AccountID: receivable.ID, Credit: applied, Description: description},
	}

	tx, counters, err := l.buildTransaction(id.SeriesPayment, model.TransactionPayment, l.now(), description, method, entries)
	if err != nil {
		return model.Transaction{}, err
	}

	accounts := l.applyEntries(entries)
	customer.Balance = customer.Balance.Sub(applied)

	set := store.ChangeSet{
		Accounts:     accounts,
		Parties:      []model.Party{customer},
		Transactions: []model.Transaction{tx},
		Counters:     counters,
	}
	if err := l.store.Save(set); err != nil {
		return model.Transaction{}, fmt.Errorf("posting payment: %w", err)
	}
	l.commit(tx, accounts, &customer, counters)
	return tx, nil
}

// RecordExpense posts a vendor expense: each item is debited against its
// expense account and accounts payable is credited by the total. The
// vendor's outstanding balance grows by the total.
func (l *Ledger) RecordExpense(vendorID string, items []ExpenseItem) (model.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	vendor, err := l.resolveParty(vendorID, model.PartyVendor)
	if err != nil {
		return model.Transaction{}, err
	}

	if len(items) == 0 {
		return model.Transaction{}, fmt.Errorf("expense has no items: %w", ErrInvalidAmount)
	}

	total := decimal.Zero
	for _, item := range items {
		if !item.Amount.IsPositive() {
			return model.Transaction{}, fmt.Errorf("item %q amount %s: %w", item.Description, item.Amount, ErrInvalidAmount)
		}
		if !item.Amount.Equal(item.Amount.Round(2)) {
			return model.Transaction{}, fmt.Errorf("item %q amount %s has more than 2 decimal places: %w", item.Description, item.Amount, ErrInvalidAmount)
		}
		account, ok := l.accounts[item.AccountID]
		if !ok || !account.Active {
			return model.Transaction{}, fmt.Errorf("no active expense account %s: %w", item.AccountID, ErrNotFound)
		}
		total = total.Add(item.Amount)
	}

	payable, err := l.roleAccount(model.RoleAccountsPayable)
	if err != nil {
		return model.Transaction{}, err
	}

	description := fmt.Sprintf("Expense from %s", vendor.Name)
	entries := make([]model.JournalEntry, 0, len(items)+1)
	for _, item := range items {
		entries = append(entries, model.JournalEntry{
			AccountID: item.AccountID, Debit: item.Amount, Description: item.Description,
		})
	}
	entries = append(entries, model.JournalEntry{
		AccountID: payable.ID, Credit: total, Description: description,
	})

	tx, counters, err := l.buildTransaction(id.SeriesExpense, model.TransactionJournal, l.now(), description, "", entries)
	if err != nil {
		return model.Transaction{}, err
	}

	accounts := l.applyEntries(entries)
	vendor.Balance = vendor.Balance.Add(total)

	set := store.ChangeSet{
		Accounts:     accounts,
		Parties:      []model.Party{vendor},
		Transactions: []model.Transaction{tx},
		Counters:     counters,
	}
	if err := l.store.Save(set); err != nil {
		return model.Transaction{}, fmt.Errorf("posting expense: %w", err)
	}
	l.commit(tx, accounts, &vendor, counters)
	return tx, nil
}
