package repository

import (
	"context"

	"taxpal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SettingsRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSettingsRepository(db *pgxpool.Pool, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SettingsRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*models.Settings, error) {
	query := squirrel.Select("id, user_id, theme, currency, notifications, created_at, updated_at").
		From("settings").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var s models.Settings
	if err := r.db.QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.UserID, &s.Theme, &s.Currency, &s.Notifications, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert inserts or updates the user's settings row in one statement.
func (r *SettingsRepository) Upsert(ctx context.Context, s *models.Settings) error {
	query := squirrel.Insert("settings").
		Columns("id", "user_id", "theme", "currency", "notifications", "created_at", "updated_at").
		Values(s.ID, s.UserID, s.Theme, s.Currency, s.Notifications, s.CreatedAt, s.UpdatedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET theme = EXCLUDED.theme, currency = EXCLUDED.currency, notifications = EXCLUDED.notifications, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
