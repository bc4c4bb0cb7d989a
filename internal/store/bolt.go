package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

// Bucket names.
const (
	bucketAccounts     = "accounts"
	bucketParties      = "parties"
	bucketTransactions = "transactions"
	bucketCounters     = "counters"
)

// Bolt is a bbolt-backed Store. Each Save runs as one bbolt update
// transaction, so a change set commits entirely or not at all.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) a bbolt database and initializes buckets.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketAccounts, bucketParties, bucketTransactions, bucketCounters} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Bolt{db: db}, nil
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.db.Close()
}

// Load reads the full ledger snapshot.
func (b *Bolt) Load() (Snapshot, error) {
	snap := Snapshot{Counters: make(map[string]int)}

	err := b.db.View(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(bucketAccounts)).ForEach(func(_, v []byte) error {
			var a model.Account
			if err := json.Unmarshal(v, &a); err != nil {
				return fmt.Errorf("unmarshaling account: %w", err)
			}
			snap.Accounts = append(snap.Accounts, a)
			return nil
		}); err != nil {
			return err
		}

		if err := tx.Bucket([]byte(bucketParties)).ForEach(func(_, v []byte) error {
			var p model.Party
			if err := json.Unmarshal(v, &p); err != nil {
				return fmt.Errorf("unmarshaling party: %w", err)
			}
			snap.Parties = append(snap.Parties, p)
			return nil
		}); err != nil {
			return err
		}

		// Transactions are keyed by insertion sequence so iteration order is
		// posting order.
		if err := tx.Bucket([]byte(bucketTransactions)).ForEach(func(_, v []byte) error {
			var t model.Transaction
			if err := json.Unmarshal(v, &t); err != nil {
				return fmt.Errorf("unmarshaling transaction: %w", err)
			}
			snap.Transactions = append(snap.Transactions, t)
			return nil
		}); err != nil {
			return err
		}

		return tx.Bucket([]byte(bucketCounters)).ForEach(func(k, v []byte) error {
			snap.Counters[string(k)] = int(binary.BigEndian.Uint64(v))
			return nil
		})
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading ledger snapshot: %w", err)
	}
	return snap, nil
}

// Save applies a change set in a single update transaction.
func (b *Bolt) Save(set ChangeSet) error {
	if set.Empty() {
		return nil
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		accounts := tx.Bucket([]byte(bucketAccounts))
		for _, a := range set.Accounts {
			data, err := json.Marshal(a)
			if err != nil {
				return fmt.Errorf("marshaling account %s: %w", a.ID, err)
			}
			if err := accounts.Put([]byte(a.ID), data); err != nil {
				return err
			}
		}

		parties := tx.Bucket([]byte(bucketParties))
		for _, p := range set.Parties {
			data, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("marshaling party %s: %w", p.ID, err)
			}
			if err := parties.Put([]byte(p.ID), data); err != nil {
				return err
			}
		}

		transactions := tx.Bucket([]byte(bucketTransactions))
		for _, t := range set.Transactions {
			seq, err := transactions.NextSequence()
			if err != nil {
				return err
			}
			data, err := json.Marshal(t)
			if err != nil {
				return fmt.Errorf("marshaling transaction %s: %w", t.ID, err)
			}
			if err := transactions.Put(itob(int64(seq)), data); err != nil {
				return err
			}
		}

		counters := tx.Bucket([]byte(bucketCounters))
		for key, value := range set.Counters {
			buf := make([]byte, 8)
			binary.BigEndian.PutUint64(buf, uint64(value))
			if err := counters.Put([]byte(key), buf); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("saving change set: %w", err)
	}
	return nil
}

// itob converts an int64 to a byte slice for use as a bbolt key.
func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
