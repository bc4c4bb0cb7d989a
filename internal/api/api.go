// Package api exposes the ledger's public operations over HTTP for the
// application's UI state stores and report views.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/ledger"
)

// NewRouter mounts all ledger endpoints on a chi router. defaultTaxRate is
// applied to invoices whose request omits a tax rate.
func NewRouter(l *ledger.Ledger, defaultTaxRate decimal.Decimal) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	accounts := &AccountsHandler{ledger: l}
	parties := &PartiesHandler{ledger: l}
	postings := &PostingsHandler{ledger: l, defaultTaxRate: defaultTaxRate}
	transactions := &TransactionsHandler{ledger: l}
	reports := &ReportsHandler{ledger: l}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/accounts", accounts.List)
		r.Post("/accounts", accounts.Create)
		r.Patch("/accounts/{id}", accounts.Update)

		r.Get("/parties", parties.List)
		r.Post("/customers", parties.CreateCustomer)
		r.Post("/vendors", parties.CreateVendor)

		r.Post("/invoices", postings.CreateInvoice)
		r.Post("/payments", postings.RecordPayment)
		r.Post("/expenses", postings.RecordExpense)

		r.Get("/transactions", transactions.List)
		r.Get("/reports", reports.Get)
	})

	return r
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]errorResponse{"error": {Code: code, Message: message}})
}

// writeLedgerError maps the ledger error taxonomy onto HTTP statuses.
// Unbalanced and ambiguous-role errors indicate a misconfigured or buggy
// posting path, so they are logged before being surfaced as server errors.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrInvalidSpec):
		writeJSONError(w, http.StatusUnprocessableEntity, "invalid_request", err.Error())
	case errors.Is(err, ledger.ErrUnbalanced), errors.Is(err, ledger.ErrAmbiguousRole):
		log.Printf("ERROR: ledger integrity: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "ledger_error", err.Error())
	default:
		log.Printf("ERROR: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}
