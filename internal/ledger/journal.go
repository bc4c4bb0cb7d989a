package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/id"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

// accountSet adapts the in-memory account map to AccountChecker.
type accountSet map[string]model.Account

func (s accountSet) Exists(accountID string) bool {
	_, ok := s[accountID]
	return ok
}

// buildTransaction assembles a posted transaction: fresh ID, the next number
// in the series' per-year counter, and a final balance re-check. The posting
// engine always hands over balanced entries, so a validation failure here is
// a logic error, not bad input. Caller holds the write lock; the returned
// counter update must be persisted with the transaction.
func (l *Ledger) buildTransaction(series id.Series, txType model.TransactionType, date time.Time, description, reference string, entries []model.JournalEntry) (model.Transaction, map[string]int, error) {
	if verrs := ValidateEntries(entries, accountSet(l.accounts)); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return model.Transaction{}, nil, fmt.Errorf("%w: %s", ErrUnbalanced, strings.Join(msgs, "; "))
	}

	key := id.CounterKey(series, date.Year())
	seq := l.counters[key] + 1

	tx := model.Transaction{
		ID:          id.New(),
		Number:      id.FormatNumber(series, date.Year(), seq),
		Date:        date,
		Type:        txType,
		Description: description,
		Reference:   reference,
		Entries:     entries,
		Status:      model.StatusPosted,
	}
	return tx, map[string]int{key: seq}, nil
}

// commit applies a successfully persisted posting to in-memory state.
// Caller holds the write lock.
func (l *Ledger) commit(tx model.Transaction, accounts []model.Account, party *model.Party, counters map[string]int) {
	for _, a := range accounts {
		l.accounts[a.ID] = a
	}
	if party != nil {
		l.parties[party.ID] = *party
	}
	l.transactions = append(l.transactions, tx)
	for k, v := range counters {
		l.counters[k] = v
	}
}

// applyEntries returns updated copies of every account touched by the
// entries, with balances shifted by each entry's normal-balance delta.
// Repeated references to one account accumulate on the same copy.
// Caller holds the write lock.
func (l *Ledger) applyEntries(entries []model.JournalEntry) []model.Account {
	touched := make(map[string]model.Account)
	var order []string
	for _, e := range entries {
		account, ok := touched[e.AccountID]
		if !ok {
			account = l.accounts[e.AccountID]
			order = append(order, e.AccountID)
		}
		account.Balance = account.Balance.Add(account.Type.NormalBalance(e.Debit, e.Credit))
		touched[e.AccountID] = account
	}

	result := make([]model.Account, 0, len(order))
	for _, accountID := range order {
		result = append(result, touched[accountID])
	}
	return result
}

// TransactionFilter narrows ListTransactions. Zero fields match everything.
type TransactionFilter struct {
	Type   model.TransactionType
	Status model.TransactionStatus
	From   time.Time
	To     time.Time
}

func (f TransactionFilter) matches(tx model.Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.Status != "" && tx.Status != f.Status {
		return false
	}
	if !f.From.IsZero() && tx.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && tx.Date.After(f.To) {
		return false
	}
	return true
}

// ListTransactions returns posted transactions in posting order.
func (l *Ledger) ListTransactions(filter TransactionFilter) []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var result []model.Transaction
	for _, tx := range l.transactions {
		if filter.matches(tx) {
			result = append(result, tx)
		}
	}
	return result
}
