package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is the persisted metadata for one generated report file. Records are
// immutable after creation; the only lifecycle transition is deletion.
type Report struct {
	ID     uuid.UUID `db:"id" json:"id"`
	Name   string    `db:"name" json:"name"`
	Type   string    `db:"type" json:"type"`
	Period string    `db:"period" json:"period"`
	Format string    `db:"format" json:"format"`
	URL    string    `db:"url" json:"url"`
	// Metadata snapshots the custom-range bounds (if any) and the summary
	// computed at generation time.
	Metadata  map[string]any `db:"metadata" json:"metadata"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`
}
