package commands

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/api"
)

func newServeCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve [directory]",
		Short: "Serve the ledger HTTP API",
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

			return runServe(absDir, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")

	return cmd
}

func runServe(dir, listen string) error {
	// .env is optional; environment overrides config.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	l, cfg, st, err := openLedger(dir)
	if err != nil {
		return err
	}
	defer st.Close()

	addr := cfg.Server.Listen
	if env := os.Getenv("LEDGER_LISTEN"); env != "" {
		addr = env
	}
	if listen != "" {
		addr = listen
	}

	taxRate := decimal.NewFromFloat(cfg.Tax.DefaultRate)
	handler := api.NewRouter(l, taxRate)

	log.Printf("ledgerd listening on %s (business: %s)", addr, cfg.Business.Name)
	return http.ListenAndServe(addr, handler)
}
