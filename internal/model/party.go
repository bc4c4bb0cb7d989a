package model

import "github.com/shopspring/decimal"

// PartyKind distinguishes customers from vendors.
type PartyKind string

const (
	PartyCustomer PartyKind = "customer"
	PartyVendor   PartyKind = "vendor"
)

// PartyStatus is the lifecycle state of a party.
type PartyStatus string

const (
	PartyActive   PartyStatus = "active"
	PartyInactive PartyStatus = "inactive"
)

// Contact is a party's contact block.
type Contact struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Party is a customer or vendor. Balance is the party-level receivable
// (customers) or payable (vendors) counterpart: positive means the amount
// still owed to or by the business.
type Party struct {
	ID      string          `json:"id"`
	Number  string          `json:"number"`
	Name    string          `json:"name"`
	Kind    PartyKind       `json:"kind"`
	Contact Contact         `json:"contact"`
	Balance decimal.Decimal `json:"balance"`
	Status  PartyStatus     `json:"status"`
}
