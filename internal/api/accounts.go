package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/ledger"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

// AccountsHandler handles chart-of-accounts endpoints.
type AccountsHandler struct {
	ledger *ledger.Ledger
}

type createAccountRequest struct {
	Number  string            `json:"number"`
	Name    string            `json:"name"`
	Type    model.AccountType `json:"type"`
	SubType string            `json:"subType"`
	Role    model.AccountRole `json:"role"`
}

// Create handles POST /api/v1/accounts.
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}

	account, err := h.ledger.AddAccount(ledger.AccountSpec{
		Number:  req.Number,
		Name:    req.Name,
		Type:    req.Type,
		SubType: req.SubType,
		Role:    req.Role,
	})
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

// List handles GET /api/v1/accounts.
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"accounts": h.ledger.Accounts()})
}

type updateAccountRequest struct {
	Number  *string            `json:"number"`
	Name    *string            `json:"name"`
	SubType *string            `json:"subType"`
	Role    *model.AccountRole `json:"role"`
	Active  *bool              `json:"active"`
}

// Update handles PATCH /api/v1/accounts/{id}.
func (h *AccountsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}

	accountID := chi.URLParam(r, "id")
	err := h.ledger.UpdateAccount(accountID, ledger.AccountPatch{
		Number:  req.Number,
		Name:    req.Name,
		SubType: req.SubType,
		Role:    req.Role,
		Active:  req.Active,
	})
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	account, err := h.ledger.Account(accountID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}
