package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupFilterDb(t *testing.T) *gorm.DB {
	t.Helper()

	// Named shared-cache DB so every pooled connection sees the same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Transaction{}))
	return db
}

func seed(t *testing.T, db *gorm.DB, userID uint, txnType TransactionType, category, description, amount string, date time.Time) Transaction {
	t.Helper()

	transaction := Transaction{
		UserID:      userID,
		Type:        txnType,
		Category:    category,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Date:        date,
	}
	require.NoError(t, db.Create(&transaction).Error)
	return transaction
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 12, 0, 0, 0, time.UTC)
}

func TestFilterAlwaysScopesToOwner(t *testing.T) {
	db := setupFilterDb(t)

	seed(t, db, 1, TransactionTypeExpense, "Food", "groceries", "20", day(1))
	seed(t, db, 2, TransactionTypeExpense, "Food", "groceries", "30", day(1))

	var results []Transaction
	require.NoError(t, TransactionFilter{UserID: 1}.Scope(db).Find(&results).Error)

	require.Len(t, results, 1)
	assert.Equal(t, uint(1), results[0].UserID)
}

func TestFilterByType(t *testing.T) {
	db := setupFilterDb(t)

	seed(t, db, 1, TransactionTypeIncome, "Salary", "", "1000", day(1))
	seed(t, db, 1, TransactionTypeExpense, "Food", "", "20", day(2))
	seed(t, db, 1, TransactionTypeExpense, "Rent", "", "800", day(3))

	var results []Transaction
	require.NoError(t, TransactionFilter{UserID: 1, Type: "expense"}.Scope(db).Find(&results).Error)

	require.Len(t, results, 2)
	for _, txn := range results {
		assert.Equal(t, TransactionTypeExpense, txn.Type)
	}
}

func TestFilterSearchMatchesDescriptionOrCategory(t *testing.T) {
	db := setupFilterDb(t)

	seed(t, db, 1, TransactionTypeExpense, "Food", "weekly groceries", "20", day(1))
	seed(t, db, 1, TransactionTypeExpense, "Groceries", "misc", "15", day(2))
	seed(t, db, 1, TransactionTypeExpense, "Rent", "january rent", "800", day(3))

	var results []Transaction
	require.NoError(t, TransactionFilter{UserID: 1, Search: "GROCER"}.Scope(db).Find(&results).Error)

	// Case-insensitive, matches either description or category
	assert.Len(t, results, 2)
}

func TestFilterDateBoundsInclusive(t *testing.T) {
	db := setupFilterDb(t)

	seed(t, db, 1, TransactionTypeExpense, "A", "", "1", day(1))
	inside := seed(t, db, 1, TransactionTypeExpense, "B", "", "1", day(5))
	seed(t, db, 1, TransactionTypeExpense, "C", "", "1", day(10))

	start := day(5)
	end := day(5)

	var results []Transaction
	require.NoError(t, TransactionFilter{UserID: 1, StartDate: &start, EndDate: &end}.Scope(db).Find(&results).Error)

	require.Len(t, results, 1)
	assert.Equal(t, inside.ID, results[0].ID)
}

func TestFilterStartDateAlone(t *testing.T) {
	db := setupFilterDb(t)

	seed(t, db, 1, TransactionTypeExpense, "A", "", "1", day(1))
	seed(t, db, 1, TransactionTypeExpense, "B", "", "1", day(5))
	seed(t, db, 1, TransactionTypeExpense, "C", "", "1", day(10))

	start := day(5)

	var results []Transaction
	require.NoError(t, TransactionFilter{UserID: 1, StartDate: &start}.Scope(db).Find(&results).Error)

	assert.Len(t, results, 2)
}

func TestFilterOrderedNewestFirstWithStableTieBreak(t *testing.T) {
	db := setupFilterDb(t)

	first := seed(t, db, 1, TransactionTypeExpense, "A", "", "1", day(5))
	second := seed(t, db, 1, TransactionTypeExpense, "B", "", "1", day(5))
	newest := seed(t, db, 1, TransactionTypeExpense, "C", "", "1", day(9))

	var results []Transaction
	require.NoError(t, TransactionFilter{UserID: 1}.Ordered(db).Find(&results).Error)

	require.Len(t, results, 3)
	assert.Equal(t, newest.ID, results[0].ID)
	// Same date: higher id first
	assert.Equal(t, second.ID, results[1].ID)
	assert.Equal(t, first.ID, results[2].ID)
}

func TestFilterCombined(t *testing.T) {
	db := setupFilterDb(t)

	want := seed(t, db, 1, TransactionTypeExpense, "Food", "sushi dinner", "45", day(8))
	seed(t, db, 1, TransactionTypeExpense, "Food", "sushi dinner", "45", day(20)) // outside window
	seed(t, db, 1, TransactionTypeIncome, "Food", "sushi refund", "45", day(8))  // wrong type
	seed(t, db, 2, TransactionTypeExpense, "Food", "sushi dinner", "45", day(8)) // wrong owner

	start := day(1)
	end := day(10)

	var results []Transaction
	require.NoError(t, TransactionFilter{
		UserID:    1,
		Type:      "expense",
		Category:  "Food",
		Search:    "sushi",
		StartDate: &start,
		EndDate:   &end,
	}.Scope(db).Find(&results).Error)

	require.Len(t, results, 1)
	assert.Equal(t, want.ID, results[0].ID)
}
