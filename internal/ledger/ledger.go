// Package ledger implements the accounting core: the chart-of-accounts
// registry, customer/vendor registry, the append-only transaction journal,
// the posting engine, and financial report rollups.
//
// All balances live behind one Ledger and are mutated only inside the
// posting engine's critical section. Readers see committed state only.
package ledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/id"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/store"
)

// Ledger owns all ledger state. Posting operations hold the write lock for
// their whole resolve-compute-persist-commit span; reads copy out under the
// read lock.
type Ledger struct {
	mu sync.RWMutex

	store        store.Store
	accounts     map[string]model.Account
	parties      map[string]model.Party
	transactions []model.Transaction
	counters     map[string]int

	now func() time.Time
}

// New loads the persisted snapshot from st and returns a ready Ledger.
func New(st store.Store) (*Ledger, error) {
	snap, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	l := &Ledger{
		store:        st,
		accounts:     make(map[string]model.Account, len(snap.Accounts)),
		parties:      make(map[string]model.Party, len(snap.Parties)),
		transactions: snap.Transactions,
		counters:     make(map[string]int, len(snap.Counters)),
		now:          time.Now,
	}
	for _, a := range snap.Accounts {
		l.accounts[a.ID] = a
	}
	for _, p := range snap.Parties {
		l.parties[p.ID] = p
	}
	for k, v := range snap.Counters {
		l.counters[k] = v
	}
	return l, nil
}

// AccountSpec describes a new account.
type AccountSpec struct {
	Number  string
	Name    string
	Type    model.AccountType
	SubType string
	Role    model.AccountRole
}

// AccountPatch holds optional field updates for an account. Nil fields are
// left untouched. Balance is deliberately absent: balances change only
// through posted transactions.
type AccountPatch struct {
	Number  *string
	Name    *string
	SubType *string
	Role    *model.AccountRole
	Active  *bool
}

// AddAccount registers a new account with a zero balance. Duplicate account
// numbers are accepted; the number is a human-facing code, not a key.
func (l *Ledger) AddAccount(spec AccountSpec) (model.Account, error) {
	if spec.Name == "" {
		return model.Account{}, fmt.Errorf("account name is required: %w", ErrInvalidSpec)
	}
	switch spec.Type {
	case model.AccountTypeAsset, model.AccountTypeLiability, model.AccountTypeEquity,
		model.AccountTypeRevenue, model.AccountTypeExpense:
	default:
		return model.Account{}, fmt.Errorf("unknown account type %q: %w", spec.Type, ErrInvalidSpec)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	account := model.Account{
		ID:      id.New(),
		Number:  spec.Number,
		Name:    spec.Name,
		Type:    spec.Type,
		SubType: spec.SubType,
		Role:    spec.Role,
		Active:  true,
	}

	if err := l.store.Save(store.ChangeSet{Accounts: []model.Account{account}}); err != nil {
		return model.Account{}, fmt.Errorf("saving account: %w", err)
	}
	l.accounts[account.ID] = account
	return account, nil
}

// UpdateAccount merges the patch into an existing account.
func (l *Ledger) UpdateAccount(accountID string, patch AccountPatch) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[accountID]
	if !ok {
		return fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}

	if patch.Number != nil {
		account.Number = *patch.Number
	}
	if patch.Name != nil {
		account.Name = *patch.Name
	}
	if patch.SubType != nil {
		account.SubType = *patch.SubType
	}
	if patch.Role != nil {
		account.Role = *patch.Role
	}
	if patch.Active != nil {
		account.Active = *patch.Active
	}

	if err := l.store.Save(store.ChangeSet{Accounts: []model.Account{account}}); err != nil {
		return fmt.Errorf("saving account: %w", err)
	}
	l.accounts[accountID] = account
	return nil
}

// Account returns an account by ID.
func (l *Ledger) Account(accountID string) (model.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	account, ok := l.accounts[accountID]
	if !ok {
		return model.Account{}, fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}
	return account, nil
}

// Accounts returns the chart of accounts ordered by account number.
func (l *Ledger) Accounts() []model.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]model.Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result
}

// PartySpec describes a new customer or vendor.
type PartySpec struct {
	Number  string
	Name    string
	Contact model.Contact
}

// AddCustomer registers a new customer with a zero balance.
func (l *Ledger) AddCustomer(spec PartySpec) (model.Party, error) {
	return l.addParty(spec, model.PartyCustomer)
}

// AddVendor registers a new vendor with a zero balance.
func (l *Ledger) AddVendor(spec PartySpec) (model.Party, error) {
	return l.addParty(spec, model.PartyVendor)
}

func (l *Ledger) addParty(spec PartySpec, kind model.PartyKind) (model.Party, error) {
	if spec.Name == "" {
		return model.Party{}, fmt.Errorf("%s name is required: %w", kind, ErrInvalidSpec)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	party := model.Party{
		ID:      id.New(),
		Number:  spec.Number,
		Name:    spec.Name,
		Kind:    kind,
		Contact: spec.Contact,
		Status:  model.PartyActive,
	}

	if err := l.store.Save(store.ChangeSet{Parties: []model.Party{party}}); err != nil {
		return model.Party{}, fmt.Errorf("saving %s: %w", kind, err)
	}
	l.parties[party.ID] = party
	return party, nil
}

// Party returns a customer or vendor by ID.
func (l *Ledger) Party(partyID string) (model.Party, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	party, ok := l.parties[partyID]
	if !ok {
		return model.Party{}, fmt.Errorf("party %s: %w", partyID, ErrNotFound)
	}
	return party, nil
}

// Parties returns all customers and vendors ordered by name.
func (l *Ledger) Parties() []model.Party {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]model.Party, 0, len(l.parties))
	for _, p := range l.parties {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// resolveParty fetches a party of the expected kind. Caller holds the lock.
func (l *Ledger) resolveParty(partyID string, kind model.PartyKind) (model.Party, error) {
	party, ok := l.parties[partyID]
	if !ok || party.Kind != kind {
		return model.Party{}, fmt.Errorf("%s %s: %w", kind, partyID, ErrNotFound)
	}
	return party, nil
}

// roleAccount resolves the single active account carrying a role. Zero
// matches is a configuration gap (NotFound); more than one match means the
// chart of accounts is misconfigured and posting must not guess.
// Caller holds the lock.
func (l *Ledger) roleAccount(role model.AccountRole) (model.Account, error) {
	var found []model.Account
	for _, a := range l.accounts {
		if a.Role == role && a.Active {
			found = append(found, a)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return model.Account{}, fmt.Errorf("no active account with role %s: %w", role, ErrNotFound)
	default:
		return model.Account{}, fmt.Errorf("role %s held by %d active accounts: %w", role, len(found), ErrAmbiguousRole)
	}
}
