package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies posted transactions.
type TransactionType string

const (
	TransactionJournal  TransactionType = "journal"
	TransactionPayment  TransactionType = "payment"
	TransactionReceipt  TransactionType = "receipt"
	TransactionTransfer TransactionType = "transfer"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusDraft      TransactionStatus = "draft"
	StatusPosted     TransactionStatus = "posted"
	StatusReconciled TransactionStatus = "reconciled"
)

// JournalEntry is one side of a double-entry inside a transaction. Exactly
// one of Debit and Credit is nonzero.
type JournalEntry struct {
	AccountID   string          `json:"accountId"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// Transaction is an immutable posted record in the journal. Corrections are
// new offsetting transactions, never edits.
type Transaction struct {
	ID          string            `json:"id"`
	Number      string            `json:"transactionNumber"`
	Date        time.Time         `json:"date"`
	Type        TransactionType   `json:"type"`
	Description string            `json:"description"`
	Reference   string            `json:"reference,omitempty"`
	Entries     []JournalEntry    `json:"entries"`
	Status      TransactionStatus `json:"status"`
}

// TotalDebit sums the debit side of all entries.
func (t Transaction) TotalDebit() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t.Entries {
		sum = sum.Add(e.Debit)
	}
	return sum
}

// TotalCredit sums the credit side of all entries.
func (t Transaction) TotalCredit() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t.Entries {
		sum = sum.Add(e.Credit)
	}
	return sum
}

// Balanced reports whether debits equal credits exactly.
func (t Transaction) Balanced() bool {
	return t.TotalDebit().Equal(t.TotalCredit())
}
