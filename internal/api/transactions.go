package api

import (
	"net/http"
	"time"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/ledger"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

// TransactionsHandler handles journal query endpoints.
type TransactionsHandler struct {
	ledger *ledger.Ledger
}

// List handles GET /api/v1/transactions. Supported query parameters:
// type, status, from, to (dates in YYYY-MM-DD).
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter ledger.TransactionFilter
	q := r.URL.Query()

	filter.Type = model.TransactionType(q.Get("type"))
	filter.Status = model.TransactionStatus(q.Get("status"))

	if from := q.Get("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid from date")
			return
		}
		filter.From = t
	}
	if to := q.Get("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid to date")
			return
		}
		filter.To = t
	}

	writeJSON(w, http.StatusOK, map[string]any{"transactions": h.ledger.ListTransactions(filter)})
}
