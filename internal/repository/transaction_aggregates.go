package repository

import (
	"context"

	"taxpal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// CategoryTotal is one slice of the expense-by-category breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// TotalsByType sums the user's live transactions grouped by type.
func (r *TransactionRepository) TotalsByType(ctx context.Context, userID uuid.UUID) (income, expense float64, err error) {
	query := squirrel.Select("type", "COALESCE(SUM(amount), 0)").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID, "is_deleted": false}).
		GroupBy("type").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var typ models.TransactionType
		var total float64
		if err := rows.Scan(&typ, &total); err != nil {
			return 0, 0, err
		}
		switch typ {
		case models.TransactionIncome:
			income = total
		case models.TransactionExpense:
			expense = total
		}
	}
	return income, expense, rows.Err()
}

// ExpenseByCategory sums the user's live expenses per category, largest first.
func (r *TransactionRepository) ExpenseByCategory(ctx context.Context, userID uuid.UUID) ([]CategoryTotal, error) {
	query := squirrel.Select("category", "COALESCE(SUM(amount), 0) AS total").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID, "type": models.TransactionExpense, "is_deleted": false}).
		GroupBy("category").
		OrderBy("total DESC").
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

	var totals []CategoryTotal
	for rows.Next() {
		var ct CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, err
		}
		totals = append(totals, ct)
	}
	return totals, rows.Err()
}
