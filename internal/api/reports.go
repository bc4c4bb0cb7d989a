package api

import (
	"net/http"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/ledger"
)

// ReportsHandler serves the financial statements.
type ReportsHandler struct {
	ledger *ledger.Ledger
}

// Get handles GET /api/v1/reports.
func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.GenerateReports())
}
