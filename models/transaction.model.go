package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType defines whether money came in or went out
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether the value is one of the two known types
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single income or expense record. Every transaction
// belongs to exactly one user and is only ever visible to that user.
// Amounts are stored as decimals so that summing many small values never
// drifts the way float64 would.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"userId"`
	Type        TransactionType `gorm:"type:varchar(16);not null" json:"type"`
	Category    string          `gorm:"type:varchar(64);not null" json:"category"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Relation - omit in JSON
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
