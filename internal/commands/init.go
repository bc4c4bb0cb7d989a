package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/chart"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/config"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/ledger"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string
	var entityType string
	var chartPath string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, entityType, chartPath)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", "paving_contractor", "entity type")
	cmd.Flags().StringVar(&chartPath, "chart", "", "chart-of-accounts CSV (defaults to the built-in chart)")

	return cmd
}

func runInit(dir, name, entityType, chartPath string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default(name, entityType)
	if err := config.Save(filepath.Join(dir, "ledger.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	specs := chart.Default(entityType)
	if chartPath != "" {
		f, err := os.Open(chartPath)
		if err != nil {
			return fmt.Errorf("opening chart: %w", err)
		}
		defer f.Close()

		specs, err = chart.ReadSpecs(f)
		if err != nil {
			return fmt.Errorf("reading chart: %w", err)
		}
	}

	st, err := store.OpenBolt(filepath.Join(dir, cfg.Storage.Path))
	if err != nil {
		return err
	}
	defer st.Close()

	l, err := ledger.New(st)
	if err != nil {
		return err
	}
	for _, spec := range specs {
		if _, err := l.AddAccount(spec); err != nil {
			return fmt.Errorf("seeding account %q: %w", spec.Name, err)
		}
	}

	fmt.Printf("Initialized ledger for %s at %s (%d accounts)\n", name, dir, len(specs))
	return nil
}
