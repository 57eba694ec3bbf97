package repository

import (
	"context"
	"time"

	"taxpal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TaxRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTaxRepository(db *pgxpool.Pool, logger *zap.Logger) *TaxRepository {
	return &TaxRepository{
		db:     db,
		logger: logger,
	}
}

const taxColumns = "id, country, state, filing_status, quarter, income, expenses, retirement, insurance, home_office, estimated_tax, status, created_at, updated_at"

func (r *TaxRepository) Create(ctx context.Context, rec *models.TaxRecord) error {
	query := squirrel.Insert("tax_records").
		Columns("id", "country", "state", "filing_status", "quarter", "income", "expenses", "retirement", "insurance", "home_office", "estimated_tax", "status", "created_at", "updated_at").
		Values(rec.ID, rec.Country, rec.State, rec.FilingStatus, rec.Quarter, rec.Income, rec.Expenses, rec.Retirement, rec.Insurance, rec.HomeOffice, rec.EstimatedTax, rec.Status, rec.CreatedAt, rec.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ArchiveActive flips any active record for the same filing scope to
// archived before a replacement is inserted.
func (r *TaxRepository) ArchiveActive(ctx context.Context, country, state string, filing models.FilingStatus, quarter string) error {
	query := squirrel.Update("tax_records").
		Set("status", models.TaxRecordArchived).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{
			"country":       country,
			"state":         state,
			"filing_status": filing,
			"quarter":       quarter,
			"status":        models.TaxRecordActive,
		}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// History returns every record, active and archived, newest first.
func (r *TaxRepository) History(ctx context.Context) ([]models.TaxRecord, error) {
	query := squirrel.Select(taxColumns).
		From("tax_records").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

// ActiveInYear returns active records created within the given year.
func (r *TaxRepository) ActiveInYear(ctx context.Context, year int, loc *time.Location) ([]models.TaxRecord, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, time.December, 31, 23, 59, 59, 999_000_000, loc)

	query := squirrel.Select(taxColumns).
		From("tax_records").
		Where(squirrel.Eq{"status": models.TaxRecordActive}).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.LtOrEq{"created_at": end}).
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *TaxRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]models.TaxRecord, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.TaxRecord
	for rows.Next() {
		var rec models.TaxRecord
		if err := rows.Scan(
			&rec.ID, &rec.Country, &rec.State, &rec.FilingStatus, &rec.Quarter,
			&rec.Income, &rec.Expenses, &rec.Retirement, &rec.Insurance, &rec.HomeOffice,
			&rec.EstimatedTax, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
