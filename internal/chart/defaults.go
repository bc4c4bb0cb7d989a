// Package chart provides chart-of-accounts seed data and the CSV format
// used to load a custom chart at init time.
package chart

import (
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/ledger"
	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

// Default returns the default chart of accounts for an entity type. Role
// tags mark the accounts the posting engine resolves; each role appears on
// exactly one account.
func Default(entityType string) []ledger.AccountSpec {
	switch entityType {
	case "paving_contractor":
		return pavingContractorChart()
	default:
		return pavingContractorChart()
	}
}

func pavingContractorChart() []ledger.AccountSpec {
	return []ledger.AccountSpec{
		{Number: "1010", Name: "Business Checking", Type: model.AccountTypeAsset, SubType: "current-asset", Role: model.RoleCash},
		{Number: "1020", Name: "Accounts Receivable", Type: model.AccountTypeAsset, SubType: "current-asset", Role: model.RoleAccountsReceivable},
		{Number: "1510", Name: "Equipment & Vehicles", Type: model.AccountTypeAsset, SubType: "fixed-asset"},
		{Number: "2010", Name: "Accounts Payable", Type: model.AccountTypeLiability, SubType: "current-liability", Role: model.RoleAccountsPayable},
		{Number: "2020", Name: "Sales Tax Payable", Type: model.AccountTypeLiability, SubType: "current-liability", Role: model.RoleSalesTaxPayable},
		{Number: "3010", Name: "Owner's Equity", Type: model.AccountTypeEquity},
		{Number: "4010", Name: "Revenue-Paving", Type: model.AccountTypeRevenue, Role: model.RoleSalesRevenue},
		{Number: "4020", Name: "Revenue-Sealcoating", Type: model.AccountTypeRevenue},
		{Number: "5010", Name: "Fuel", Type: model.AccountTypeExpense},
		{Number: "5020", Name: "Materials & Aggregate", Type: model.AccountTypeExpense},
		{Number: "5030", Name: "Equipment Maintenance", Type: model.AccountTypeExpense},
		{Number: "5040", Name: "Payroll Expense", Type: model.AccountTypeExpense},
		{Number: "5050", Name: "Insurance", Type: model.AccountTypeExpense},
	}
}
