package models

import (
	"time"

	"github.com/google/uuid"
)

type FilingStatus string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
)

type TaxRecordStatus string

const (
	TaxRecordActive   TaxRecordStatus = "active"
	TaxRecordArchived TaxRecordStatus = "archived"
)

type TaxRecord struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	Country      string          `db:"country" json:"country"`
	State        string          `db:"state" json:"state"`
	FilingStatus FilingStatus    `db:"filing_status" json:"filingStatus"`
	Quarter      string          `db:"quarter" json:"quarter"`
	Income       float64         `db:"income" json:"income"`
	Expenses     float64         `db:"expenses" json:"expenses"`
	Retirement   float64         `db:"retirement" json:"retirement"`
	Insurance    float64         `db:"insurance" json:"insurance"`
	HomeOffice   float64         `db:"home_office" json:"homeOffice"`
	EstimatedTax float64         `db:"estimated_tax" json:"estimatedTax"`
	Status       TaxRecordStatus `db:"status" json:"status"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updatedAt"`
}
