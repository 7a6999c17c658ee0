package stats

import (
	"testing"
	"time"

	"finflow/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(txnType models.TransactionType, amount string, category string, date time.Time) models.Transaction {
	return models.Transaction{
		Type:     txnType,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
	}
}

func TestBuildEmptyInput(t *testing.T) {
	summary := Build(nil)

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.Balance.IsZero())
	assert.Empty(t, summary.ExpensesByCategory)
	assert.Empty(t, summary.MonthlyData)
}

func TestBuildBasicScenario(t *testing.T) {
	jan5 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	summary := Build([]models.Transaction{
		txn(models.TransactionTypeIncome, "1000", "Salary", jan5),
		txn(models.TransactionTypeExpense, "200", "Food", jan10),
	})

	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("1000")))
	assert.True(t, summary.TotalExpense.Equal(decimal.RequireFromString("200")))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("800")))

	require.Len(t, summary.ExpensesByCategory, 1)
	assert.True(t, summary.ExpensesByCategory["Food"].Equal(decimal.RequireFromString("200")))

	require.Len(t, summary.MonthlyData, 1)
	bucket := summary.MonthlyData[0]
	assert.Equal(t, "Jan 2024", bucket.Month)
	assert.True(t, bucket.Income.Equal(decimal.RequireFromString("1000")))
	assert.True(t, bucket.Expense.Equal(decimal.RequireFromString("200")))
}

func TestBuildIncomeNeverInCategoryBreakdown(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	summary := Build([]models.Transaction{
		txn(models.TransactionTypeIncome, "500", "Food", date),
		txn(models.TransactionTypeExpense, "50", "Transport", date),
	})

	_, hasFood := summary.ExpensesByCategory["Food"]
	assert.False(t, hasFood, "income categories must not appear in the expense breakdown")
	assert.True(t, summary.ExpensesByCategory["Transport"].Equal(decimal.RequireFromString("50")))
}

func TestBuildCategorySumsEqualTotalExpense(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	summary := Build([]models.Transaction{
		txn(models.TransactionTypeExpense, "12.50", "Food", date),
		txn(models.TransactionTypeExpense, "7.25", "Food", date),
		txn(models.TransactionTypeExpense, "100.10", "Rent", date),
		txn(models.TransactionTypeIncome, "2000", "Salary", date),
	})

	categorySum := decimal.Zero
	for _, v := range summary.ExpensesByCategory {
		categorySum = categorySum.Add(v)
	}
	assert.True(t, categorySum.Equal(summary.TotalExpense))
	assert.True(t, summary.Balance.Equal(summary.TotalIncome.Sub(summary.TotalExpense)))
}

func TestBuildMonthlySumsMatchTotals(t *testing.T) {
	summary := Build([]models.Transaction{
		txn(models.TransactionTypeIncome, "100", "A", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		txn(models.TransactionTypeExpense, "40", "B", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		txn(models.TransactionTypeIncome, "60", "A", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)),
		txn(models.TransactionTypeExpense, "15", "C", time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)),
	})

	incomeSum := decimal.Zero
	expenseSum := decimal.Zero
	for _, bucket := range summary.MonthlyData {
		incomeSum = incomeSum.Add(bucket.Income)
		expenseSum = expenseSum.Add(bucket.Expense)
	}
	assert.True(t, incomeSum.Equal(summary.TotalIncome))
	assert.True(t, expenseSum.Equal(summary.TotalExpense))

	// Feb 2024 and Feb 2023 are distinct buckets
	months := make([]string, 0, len(summary.MonthlyData))
	for _, bucket := range summary.MonthlyData {
		months = append(months, bucket.Month)
	}
	assert.Equal(t, []string{"Jan 2024", "Feb 2024", "Feb 2023"}, months)
}

func TestBuildBucketOrderFollowsInput(t *testing.T) {
	summary := Build([]models.Transaction{
		txn(models.TransactionTypeIncome, "1", "A", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		txn(models.TransactionTypeIncome, "1", "A", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		txn(models.TransactionTypeIncome, "1", "A", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		txn(models.TransactionTypeIncome, "1", "A", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	})

	// First-encountered order, not calendar order
	require.Len(t, summary.MonthlyData, 3)
	assert.Equal(t, "Mar 2024", summary.MonthlyData[0].Month)
	assert.Equal(t, "Jan 2024", summary.MonthlyData[1].Month)
	assert.Equal(t, "Feb 2024", summary.MonthlyData[2].Month)
	assert.True(t, summary.MonthlyData[0].Income.Equal(decimal.RequireFromString("2")))
}

func TestBuildManySmallAmountsNoDrift(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	transactions := make([]models.Transaction, 0, 1000)
	for i := 0; i < 1000; i++ {
		transactions = append(transactions, txn(models.TransactionTypeExpense, "0.01", "Misc", date))
	}

	summary := Build(transactions)
	assert.True(t, summary.TotalExpense.Equal(decimal.RequireFromString("10.00")),
		"1000 payments of 0.01 must sum to exactly 10.00, got %s", summary.TotalExpense)
}
