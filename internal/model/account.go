package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// AccountRole tags the single account a posting operation resolves for a
// given purpose. Ordinary accounts carry no role.
type AccountRole string

const (
	RoleAccountsReceivable AccountRole = "accounts-receivable"
	RoleAccountsPayable    AccountRole = "accounts-payable"
	RoleCash               AccountRole = "cash"
	RoleSalesTaxPayable    AccountRole = "sales-tax-payable"
	RoleSalesRevenue       AccountRole = "sales-revenue"
)

// Account is one entry in the chart of accounts. Balance is maintained
// exclusively by the posting engine; accounts are deactivated, never deleted.
type Account struct {
	ID      string          `json:"id"`
	Number  string          `json:"number"`
	Name    string          `json:"name"`
	Type    AccountType     `json:"type"`
	SubType string          `json:"subType,omitempty"`
	Role    AccountRole     `json:"role,omitempty"`
	Balance decimal.Decimal `json:"balance"`
	Active  bool            `json:"active"`
}

// NormalBalance returns the signed balance delta a journal entry contributes
// to an account of this type: debit-minus-credit for asset and expense
// accounts, credit-minus-debit for liability, equity and revenue accounts.
func (t AccountType) NormalBalance(debit, credit decimal.Decimal) decimal.Decimal {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return debit.Sub(credit)
	default:
		return credit.Sub(debit)
	}
}
