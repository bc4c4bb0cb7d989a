package api

import (
	"encoding/json"
	"net/http"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/ledger"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

// PartiesHandler handles customer and vendor endpoints.
type PartiesHandler struct {
	ledger *ledger.Ledger
}

type createPartyRequest struct {
	Number  string        `json:"number"`
	Name    string        `json:"name"`
	Contact model.Contact `json:"contact"`
}

// CreateCustomer handles POST /api/v1/customers.
func (h *PartiesHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.ledger.AddCustomer)
}

// CreateVendor handles POST /api/v1/vendors.
func (h *PartiesHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.ledger.AddVendor)
}

func (h *PartiesHandler) create(w http.ResponseWriter, r *http.Request, add func(ledger.PartySpec) (model.Party, error)) {
	var req createPartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_body", "Invalid JSON body")
		return
	}

	party, err := add(ledger.PartySpec{
		Number:  req.Number,
		Name:    req.Name,
		Contact: req.Contact,
	})
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, party)
}

// List handles GET /api/v1/parties.
func (h *PartiesHandler) List(w http.ResponseWriter, r *http.Request) {
	parties := h.ledger.Parties()

	if kind := r.URL.Query().Get("kind"); kind != "" {
		filtered := parties[:0]
		for _, p := range parties {
			if p.Kind == model.PartyKind(kind) {
				filtered = append(filtered, p)
			}
		}
		parties = filtered
	}

	writeJSON(w, http.StatusOK, map[string]any{"parties": parties})
}
