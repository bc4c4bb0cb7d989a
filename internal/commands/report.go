package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [directory]",
		Short: "Print the income statement and balance sheet",
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

			return runReport(absDir)
		},
	}

	return cmd
}

func runReport(dir string) error {
	l, cfg, st, err := openLedger(dir)
	if err != nil {
		return err
	}
	defer st.Close()

	reports := l.GenerateReports()

	fmt.Printf("%s\n\n", cfg.Business.Name)
	fmt.Println("Income Statement")
	fmt.Printf("  Total revenue    %12s\n", reports.IncomeStatement.TotalRevenue.StringFixed(2))
	fmt.Printf("  Total expenses   %12s\n", reports.IncomeStatement.TotalExpenses.StringFixed(2))
	fmt.Printf("  Net income       %12s\n", reports.IncomeStatement.NetIncome.StringFixed(2))
	fmt.Println()
	fmt.Println("Balance Sheet")
	fmt.Printf("  Total assets      %12s\n", reports.BalanceSheet.TotalAssets.StringFixed(2))
	fmt.Printf("  Total liabilities %12s\n", reports.BalanceSheet.TotalLiabilities.StringFixed(2))
	fmt.Printf("  Total equity      %12s\n", reports.BalanceSheet.TotalEquity.StringFixed(2))
	return nil
}
