package models

import "github.com/google/uuid"

// Category is a global or per-user transaction category used to populate
// dropdowns; UserID is nil for globally shared entries.
type Category struct {
	ID     uuid.UUID       `db:"id" json:"id"`
	UserID *uuid.UUID      `db:"user_id" json:"userId,omitempty"`
	Name   string          `db:"name" json:"name"`
	Type   TransactionType `db:"type" json:"type"`
}
