package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Type        TransactionType `db:"type"`
	Category    string          `db:"category"`
	Amount      float64         `db:"amount"`
	Currency    string          `db:"currency"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	Note        string          `db:"note"`
	// IsDeleted marks a soft-deleted transaction; flagged rows stay in the
	// store but are excluded from listings and report rows.
	IsDeleted bool      `db:"is_deleted"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
