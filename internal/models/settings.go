package models

import (
	"time"

	"github.com/google/uuid"
)

type Settings struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Theme         string    `db:"theme"`
	Currency      string    `db:"currency"`
	Notifications bool      `db:"notifications"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
