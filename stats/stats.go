package stats

import (
	"finflow/models"

	"github.com/shopspring/decimal"
)

// monthLayout labels a bucket by calendar month and year, e.g. "Jan 2024".
// Two transactions land in the same bucket iff they share month and year.
const monthLayout = "Jan 2006"

// MonthlyBucket holds the separate income and expense subtotals for one
// calendar month.
type MonthlyBucket struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Summary is the assembled dashboard report.
type Summary struct {
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	TotalExpense       decimal.Decimal            `json:"totalExpense"`
	Balance            decimal.Decimal            `json:"balance"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
	MonthlyData        []MonthlyBucket            `json:"monthlyData"`
}

// Build derives totals, the per-category expense breakdown and the monthly
// series from one user's transactions. The category breakdown covers
// expenses only; a category with no expenses is absent from the map rather
// than present with a zero. Monthly buckets are created on first encounter
// and emitted in that order, so the series follows the iteration order of
// the input, which the caller controls. An empty input yields zero totals,
// an empty map and an empty series.
func Build(transactions []models.Transaction) Summary {
	summary := Summary{
		TotalIncome:        decimal.Zero,
		TotalExpense:       decimal.Zero,
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	monthIndex := make(map[string]int)
	buckets := make([]MonthlyBucket, 0)

	for _, txn := range transactions {
		month := txn.Date.Format(monthLayout)
		idx, seen := monthIndex[month]
		if !seen {
			idx = len(buckets)
			monthIndex[month] = idx
			buckets = append(buckets, MonthlyBucket{
				Month:   month,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			})
		}

		switch txn.Type {
		case models.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
			buckets[idx].Income = buckets[idx].Income.Add(txn.Amount)
		case models.TransactionTypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)
			buckets[idx].Expense = buckets[idx].Expense.Add(txn.Amount)
			summary.ExpensesByCategory[txn.Category] = summary.ExpensesByCategory[txn.Category].Add(txn.Amount)
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	summary.MonthlyData = buckets
	return summary
}
