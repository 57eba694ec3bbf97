package models

import (
	"time"

	"github.com/google/uuid"
)

type Budget struct {
	ID       uuid.UUID `db:"id"`
	UserID   uuid.UUID `db:"user_id"`
	Category string    `db:"category"`
	Amount   float64   `db:"amount"`
	// Spent is a derived rollup of the month's expense transactions in the
	// budget's category, recomputed and persisted on read and write.
	Spent       float64   `db:"spent"`
	Date        time.Time `db:"date"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
