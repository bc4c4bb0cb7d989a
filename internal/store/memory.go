package store

import (
	"sync"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

// Memory is an in-memory Store used by tests and by `serve --memory`.
// FailNext makes the next Save return its error without applying anything,
// which lets tests exercise the all-or-nothing posting contract.
type Memory struct {
	mu           sync.Mutex
	accounts     map[string]model.Account
	parties      map[string]model.Party
	transactions []model.Transaction
	counters     map[string]int

	failNext error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		accounts: make(map[string]model.Account),
		parties:  make(map[string]model.Party),
		counters: make(map[string]int),
	}
}

// FailNext arms the store to reject the next Save with err.
func (m *Memory) FailNext(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = err
}

// Load returns a copy of the current state.
func (m *Memory) Load() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{Counters: make(map[string]int, len(m.counters))}
	for _, a := range m.accounts {
		snap.Accounts = append(snap.Accounts, a)
	}
	for _, p := range m.parties {
		snap.Parties = append(snap.Parties, p)
	}
	snap.Transactions = append(snap.Transactions, m.transactions...)
	for k, v := range m.counters {
		snap.Counters[k] = v
	}
	return snap, nil
}

// Save applies the change set, or rejects it entirely when armed to fail.
func (m *Memory) Save(set ChangeSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}

	for _, a := range set.Accounts {
		m.accounts[a.ID] = a
	}
	for _, p := range set.Parties {
		m.parties[p.ID] = p
	}
	m.transactions = append(m.transactions, set.Transactions...)
	for k, v := range set.Counters {
		m.counters[k] = v
	}
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
