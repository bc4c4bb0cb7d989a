// Package store is the persistence collaborator for the ledger core. The
// ledger is agnostic to the backing medium; it only ever loads a full
// snapshot at startup and saves change sets as single atomic units.
package store

import (
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

// Snapshot is the complete persisted state of the ledger.
type Snapshot struct {
	Accounts     []model.Account
	Parties      []model.Party
	Transactions []model.Transaction
	Counters     map[string]int
}

// ChangeSet is the set of entities touched by one posting operation.
// Accounts and Parties are upserts, Transactions are appends, Counters are
// absolute counter values keyed by number series.
type ChangeSet struct {
	Accounts     []model.Account
	Parties      []model.Party
	Transactions []model.Transaction
	Counters     map[string]int
}

// Empty reports whether the change set touches nothing.
func (c ChangeSet) Empty() bool {
	return len(c.Accounts) == 0 && len(c.Parties) == 0 &&
		len(c.Transactions) == 0 && len(c.Counters) == 0
}

// Store persists ledger state. Save must apply the whole change set or none
// of it; a failed Save leaves the persisted state untouched.
type Store interface {
	Load() (Snapshot, error)
	Save(ChangeSet) error
	Close() error
}
