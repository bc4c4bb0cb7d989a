package model

import "github.com/shopspring/decimal"

// IncomeStatement aggregates revenue and expense balances.
type IncomeStatement struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// BalanceSheet aggregates asset, liability and equity balances. Net income
// is folded into TotalEquity as unretained earnings.
type BalanceSheet struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// Reports bundles the two financial statements produced from one snapshot.
type Reports struct {
	IncomeStatement IncomeStatement `json:"incomeStatement"`
	BalanceSheet    BalanceSheet    `json:"balanceSheet"`
}
