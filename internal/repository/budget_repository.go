package repository

import (
	"context"
	"time"

	"taxpal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BudgetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBudgetRepository(db *pgxpool.Pool, logger *zap.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:     db,
		logger: logger,
	}
}

const budgetColumns = "id, user_id, category, amount, spent, date, description, created_at, updated_at"

func (r *BudgetRepository) Create(ctx context.Context, b *models.Budget) error {
	query := squirrel.Insert("budgets").
		Columns("id", "user_id", "category", "amount", "spent", "date", "description", "created_at", "updated_at").
		Values(b.ID, b.UserID, b.Category, b.Amount, b.Spent, b.Date, b.Description, b.CreatedAt, b.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BudgetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	query := squirrel.Select(budgetColumns).
		From("budgets").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *BudgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	query := squirrel.Select(budgetColumns).
		From("budgets").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	budgets, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &budgets[0], nil
}

// FindByUserAndCategory returns the user's budget for a category, or nil
// when none exists.
func (r *BudgetRepository) FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*models.Budget, error) {
	query := squirrel.Select(budgetColumns).
		From("budgets").
		Where(squirrel.Eq{"user_id": userID, "category": category}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	budgets, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return nil, nil
	}
	return &budgets[0], nil
}

func (r *BudgetRepository) Update(ctx context.Context, b *models.Budget) error {
	query := squirrel.Update("budgets").
		Set("category", b.Category).
		Set("amount", b.Amount).
		Set("spent", b.Spent).
		Set("date", b.Date).
		Set("description", b.Description).
		Set("updated_at", b.UpdatedAt).
		Where(squirrel.Eq{"id": b.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("budgets").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// InRange mirrors the transaction report predicate: created_at OR date
// within [start, end] inclusive, newest creation first, not user-scoped.
func (r *BudgetRepository) InRange(ctx context.Context, start, end time.Time) ([]models.Budget, error) {
	query := squirrel.Select(budgetColumns).
		From("budgets").
		Where(squirrel.Or{
			squirrel.And{squirrel.GtOrEq{"created_at": start}, squirrel.LtOrEq{"created_at": end}},
			squirrel.And{squirrel.GtOrEq{"date": start}, squirrel.LtOrEq{"date": end}},
		}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

// All returns every budget with no date filter, for the balance sheet.
func (r *BudgetRepository) All(ctx context.Context) ([]models.Budget, error) {
	query := squirrel.Select(budgetColumns).
		From("budgets").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *BudgetRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]models.Budget, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Spent,
			&b.Date, &b.Description, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}
