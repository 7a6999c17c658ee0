package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// MaxListResults caps the transaction listing. This is a hard cap, not a
// page size: callers who need more records must narrow the date range.
const MaxListResults = 100

// TransactionFilter collects the optional listing filters. UserID is not
// optional: every query built from a filter is scoped to that user before
// any other condition is applied.
type TransactionFilter struct {
	UserID    uint
	Type      string
	Category  string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Scope applies the filter to a transaction query. The user_id clause is
// unconditional; callers cannot opt out of ownership scoping.
func (f TransactionFilter) Scope(db *gorm.DB) *gorm.DB {
	query := db.Model(&Transaction{}).Where("user_id = ?", f.UserID)

	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		term := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(description) LIKE ? OR LOWER(category) LIKE ?", term, term)
	}
	if f.StartDate != nil {
		query = query.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		query = query.Where("date <= ?", *f.EndDate)
	}

	return query
}

// Ordered returns the scoped query sorted most recent first. Ties on the
// same date break by id so pagination stays stable.
func (f TransactionFilter) Ordered(db *gorm.DB) *gorm.DB {
	return f.Scope(db).Order("date DESC, id DESC")
}
