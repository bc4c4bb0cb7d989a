package api

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/ledger"
)

// PostingsHandler handles the three posting operations.
type PostingsHandler struct {
	ledger         *ledger.Ledger
	defaultTaxRate decimal.Decimal
}

type createInvoiceRequest struct {
	CustomerID string               `json:"customerId"`
	Items      []ledger.InvoiceItem `json:"items"`
	TaxRate    *decimal.Decimal     `json:"taxRate"`
}

// CreateInvoice handles POST /api/v1/invoices.
func (h *PostingsHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}

	taxRate := h.defaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	tx, err := h.ledger.CreateInvoice(req.CustomerID, req.Items, taxRate)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

type recordPaymentRequest struct {
	CustomerID string          `json:"customerId"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
}

// RecordPayment handles POST /api/v1/payments.
func (h *PostingsHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}

	tx, err := h.ledger.RecordPayment(req.CustomerID, req.Amount, req.Method)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

type recordExpenseRequest struct {
	VendorID string               `json:"vendorId"`
	Items    []ledger.ExpenseItem `json:"items"`
}

// RecordExpense handles POST /api/v1/expenses.
func (h *PostingsHandler) RecordExpense(w http.ResponseWriter, r *http.Request) {
	var req recordExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}

	tx, err := h.ledger.RecordExpense(req.VendorID, req.Items)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}
