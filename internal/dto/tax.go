package dto

import "taxpal/internal/models"

type TaxCalculationRequest struct {
	Country      string  `json:"country"`
	State        string  `json:"state"`
	FilingStatus string  `json:"filingStatus"`
	Quarter      string  `json:"quarter"`
	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	Retirement   float64 `json:"retirement"`
	Insurance    float64 `json:"insurance"`
	HomeOffice   float64 `json:"homeOffice"`
}

type TaxCalculationResponse struct {
	Message       string           `json:"message"`
	TaxableIncome float64          `json:"taxableIncome"`
	EstimatedTax  float64          `json:"estimatedTax"`
	Record        models.TaxRecord `json:"record"`
}

// TaxCalendarEvent is a reminder or payment entry derived from active records.
type TaxCalendarEvent struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount,omitempty"`
}
