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

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

const transactionColumns = "id, user_id, type, category, amount, currency, date, description, note, is_deleted, created_at, updated_at"

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("id", "user_id", "type", "category", "amount", "currency", "date", "description", "note", "is_deleted", "created_at", "updated_at").
		Values(tx.ID, tx.UserID, tx.Type, tx.Category, tx.Amount, tx.Currency, tx.Date, tx.Description, tx.Note, tx.IsDeleted, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUser returns the user's live transactions, newest date first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit uint64) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID, "is_deleted": false}).
		OrderBy("date DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *TransactionRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns).
		From("transactions").
		Where(squirrel.Eq{"id": id, "user_id": userID, "is_deleted": false}).
		PlaceholderFormat(squirrel.Dollar)

	txs, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &txs[0], nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Update("transactions").
		Set("type", tx.Type).
		Set("category", tx.Category).
		Set("amount", tx.Amount).
		Set("date", tx.Date).
		Set("description", tx.Description).
		Set("note", tx.Note).
		Set("updated_at", tx.UpdatedAt).
		Where(squirrel.Eq{"id": tx.ID, "user_id": tx.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// SoftDelete flags the transaction instead of removing it, so report
// queries can still see (and exclude) it.
func (r *TransactionRepository) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Update("transactions").
		Set("is_deleted", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
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

// SumExpenses totals the user's live expense transactions for a category
// within [start, end]; budget "spent" rollups are built on this.
func (r *TransactionRepository) SumExpenses(ctx context.Context, userID uuid.UUID, category string, start, end time.Time) (float64, error) {
	query := squirrel.Select("COALESCE(SUM(amount), 0)").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID, "category": category, "type": models.TransactionExpense, "is_deleted": false}).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var sum float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// InRange returns transactions whose date OR creation time falls within
// [start, end] inclusive, newest creation first. The widened predicate is
// deliberate: records created in-range but dated outside it (or vice versa)
// are still captured. Not user-scoped; the report pipeline reads everything.
func (r *TransactionRepository) InRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns).
		From("transactions").
		Where(squirrel.Or{
			squirrel.And{squirrel.GtOrEq{"created_at": start}, squirrel.LtOrEq{"created_at": end}},
			squirrel.And{squirrel.GtOrEq{"date": start}, squirrel.LtOrEq{"date": end}},
		}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *TransactionRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Type, &tx.Category, &tx.Amount, &tx.Currency,
			&tx.Date, &tx.Description, &tx.Note, &tx.IsDeleted, &tx.CreatedAt, &tx.UpdatedAt,
		); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
