package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/model"
)

// BuildReports computes the income statement and balance sheet from a chart
// of accounts snapshot. Net income is folded into total equity; no retained
// earnings account is maintained.
func BuildReports(accounts []model.Account) model.Reports {
	totals := make(map[model.AccountType]decimal.Decimal)
	for _, a := range accounts {
		totals[a.Type] = totals[a.Type].Add(a.Balance)
	}

	netIncome := totals[model.AccountTypeRevenue].Sub(totals[model.AccountTypeExpense])

	return model.Reports{
		IncomeStatement: model.IncomeStatement{
			TotalRevenue:  totals[model.AccountTypeRevenue],
			TotalExpenses: totals[model.AccountTypeExpense],
			NetIncome:     netIncome,
		},
		BalanceSheet: model.BalanceSheet{
			TotalAssets:      totals[model.AccountTypeAsset],
			TotalLiabilities: totals[model.AccountTypeLiability],
			TotalEquity:      totals[model.AccountTypeEquity].Add(netIncome),
		},
	}
}

// GenerateReports computes both financial statements from current balances.
// Nothing is cached; two calls with no postings in between return identical
// results.
func (l *Ledger) GenerateReports() model.Reports {
	return BuildReports(l.Accounts())
}
