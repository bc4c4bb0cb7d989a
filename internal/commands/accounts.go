package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/chart"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/ledger"
)

func newAccountsCommand() *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "accounts [directory]",
		Short: "List or export the chart of accounts",
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

			return runAccounts(absDir, exportPath)
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "write the chart of accounts to a CSV file")

	return cmd
}

func runAccounts(dir, exportPath string) error {
	l, _, st, err := openLedger(dir)
	if err != nil {
		return err
	}
	defer st.Close()

	if exportPath != "" {
		return exportChart(l, exportPath)
	}

	for _, a := range l.Accounts() {
		status := ""
		if !a.Active {
			status = " (inactive)"
		}
		role := ""
		if a.Role != "" {
			role = fmt.Sprintf(" [%s]", a.Role)
		}
		fmt.Printf("%-6s %-28s %-10s %12s%s%s\n", a.Number, a.Name, a.Type, a.Balance.StringFixed(2), role, status)
	}
	return nil
}

func exportChart(l *ledger.Ledger, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	accounts := l.Accounts()
	specs := make([]ledger.AccountSpec, 0, len(accounts))
	for _, a := range accounts {
		specs = append(specs, ledger.AccountSpec{
			Number:  a.Number,
			Name:    a.Name,
			Type:    a.Type,
			SubType: a.SubType,
			Role:    a.Role,
		})
	}

	if err := chart.WriteSpecs(f, specs); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}

	fmt.Printf("Exported %d accounts to %s\n", len(specs), path)
	return nil
}
