package repository

import (
	"context"

	"taxpal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ReportRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewReportRepository(db *pgxpool.Pool, logger *zap.Logger) *ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: logger,
	}
}

const reportColumns = "id, name, type, period, format, url, metadata, created_at, updated_at"

func (r *ReportRepository) Create(ctx context.Context, rep *models.Report) error {
	query := squirrel.Insert("reports").
		Columns("id", "name", "type", "period", "format", "url", "metadata", "created_at", "updated_at").
		Values(rep.ID, rep.Name, rep.Type, rep.Period, rep.Format, rep.URL, rep.Metadata, rep.CreatedAt, rep.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns all report records, newest creation first.
func (r *ReportRepository) List(ctx context.Context) ([]models.Report, error) {
	query := squirrel.Select(reportColumns).
		From("reports").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		var rep models.Report
		if err := rows.Scan(
			&rep.ID, &rep.Name, &rep.Type, &rep.Period, &rep.Format, &rep.URL,
			&rep.Metadata, &rep.CreatedAt, &rep.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	query := squirrel.Select(reportColumns).
		From("reports").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rep models.Report
	if err := r.db.QueryRow(ctx, sql, args...).Scan(
		&rep.ID, &rep.Name, &rep.Type, &rep.Period, &rep.Format, &rep.URL,
		&rep.Metadata, &rep.CreatedAt, &rep.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rep, nil
}

// Delete removes a record; pgx.ErrNoRows when the id matches nothing.
func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("reports").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
