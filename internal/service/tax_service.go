package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taxpal/internal/dto"
	"taxpal/internal/models"
	"taxpal/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrMissingTaxFields = errors.New("missing required fields")

// Flat estimator rates by filing status.
const (
	taxRateMarried = 0.18
	taxRateSingle  = 0.22
)

type TaxService struct {
	taxRepo *repository.TaxRepository
	logger  *zap.Logger
}

func NewTaxService(taxRepo *repository.TaxRepository, logger *zap.Logger) *TaxService {
	return &TaxService{
		taxRepo: taxRepo,
		logger:  logger,
	}
}

// EstimateTax applies the simplified flat-rate formula: deductions come off
// the income, the remainder is taxed at the filing-status rate, clamped at
// zero.
func EstimateTax(income, expenses, retirement, insurance, homeOffice float64, filing models.FilingStatus) (taxableIncome, estimatedTax float64) {
	taxableIncome = income - (expenses + retirement + insurance + homeOffice)

	rate := taxRateSingle
	if filing == models.FilingMarried {
		rate = taxRateMarried
	}
	estimatedTax = taxableIncome * rate
	if estimatedTax < 0 {
		estimatedTax = 0
	}
	return taxableIncome, estimatedTax
}

// Calculate estimates tax for a quarter and replaces any active record for
// the same filing scope: the previous record is archived, the new one saved
// as active.
func (s *TaxService) Calculate(ctx context.Context, req *dto.TaxCalculationRequest) (*dto.TaxCalculationResponse, error) {
	if req.Income == 0 || req.Quarter == "" || req.Country == "" || req.State == "" || req.FilingStatus == "" {
		return nil, ErrMissingTaxFields
	}

	filing := models.FilingStatus(req.FilingStatus)
	taxableIncome, estimatedTax := EstimateTax(req.Income, req.Expenses, req.Retirement, req.Insurance, req.HomeOffice, filing)

	if err := s.taxRepo.ArchiveActive(ctx, req.Country, req.State, filing, req.Quarter); err != nil {
		return nil, err
	}

	now := time.Now()
	rec := &models.TaxRecord{
		ID:           uuid.New(),
		Country:      req.Country,
		State:        req.State,
		FilingStatus: filing,
		Quarter:      req.Quarter,
		Income:       req.Income,
		Expenses:     req.Expenses,
		Retirement:   req.Retirement,
		Insurance:    req.Insurance,
		HomeOffice:   req.HomeOffice,
		EstimatedTax: estimatedTax,
		Status:       models.TaxRecordActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.taxRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	return &dto.TaxCalculationResponse{
		Message:       "Tax calculated successfully",
		TaxableIncome: taxableIncome,
		EstimatedTax:  estimatedTax,
		Record:        *rec,
	}, nil
}

// History returns all records, archived included, newest first.
func (s *TaxService) History(ctx context.Context) ([]models.TaxRecord, error) {
	return s.taxRepo.History(ctx)
}

// Calendar builds reminder and payment events for each quarter of the
// current year that has an active record. Payments fall due on the 15th of
// March, June, September and December.
func (s *TaxService) Calendar(ctx context.Context) ([]dto.TaxCalendarEvent, error) {
	year := time.Now().Year()
	records, err := s.taxRepo.ActiveInYear(ctx, year, time.Local)
	if err != nil {
		return nil, err
	}

	byQuarter := make(map[string]models.TaxRecord, len(records))
	for _, rec := range records {
		byQuarter[rec.Quarter] = rec
	}

	dueDates := []struct {
		quarter string
		month   string
		day     string
	}{
		{"Q1", "03", "15"},
		{"Q2", "06", "15"},
		{"Q3", "09", "15"},
		{"Q4", "12", "15"},
	}

	events := []dto.TaxCalendarEvent{}
	for _, due := range dueDates {
		rec, ok := byQuarter[due.quarter]
		if !ok {
			continue
		}
		amount := rec.EstimatedTax
		events = append(events,
			dto.TaxCalendarEvent{
				Type:        "reminder",
				Title:       fmt.Sprintf("Reminder: %s Estimated Tax Payment", due.quarter),
				Date:        fmt.Sprintf("%d-%s-01", year, due.month),
				Description: fmt.Sprintf("Reminder for %s estimated tax payment due on %s-%s, %d", due.quarter, due.month, due.day, year),
			},
			dto.TaxCalendarEvent{
				Type:        "payment",
				Title:       fmt.Sprintf("%s Estimated Tax Payment", due.quarter),
				Date:        fmt.Sprintf("%d-%s-%s", year, due.month, due.day),
				Description: fmt.Sprintf("%s estimated tax payment due", due.quarter),
				Amount:      &amount,
			},
		)
	}
	return events, nil
}
