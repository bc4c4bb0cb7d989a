package commands

import (
	"fmt"
	"path/filepath"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/config"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/ledger"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/store"
)

// openLedger loads ledger.yaml from dir and opens the ledger over its
// configured store. The caller must Close the returned store.
func openLedger(dir string) (*ledger.Ledger, *config.Config, store.Store, error) {
	cfg, err := config.Load(filepath.Join(dir, "ledger.yaml"))
	if err != nil {
		return nil, nil, nil, err
	}

	dbPath := cfg.Storage.Path
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(dir, dbPath)
	}

	st, err := store.OpenBolt(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}

	l, err := ledger.New(st)
	if err != nil {
		_ = st.Close()
		return nil, nil, nil, fmt.Errorf("opening ledger: %w", err)
	}
	return l, cfg, st, nil
}
