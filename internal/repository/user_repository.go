package repository

import (
	"context"

	"taxpal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

const userColumns = "id, name, email, password, country, income, otp, otp_expires, created_at, updated_at"

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns("id", "name", "email", "password", "country", "income", "otp", "otp_expires", "created_at", "updated_at").
		Values(user.ID, user.Name, user.Email, user.Password, user.Country, user.Income, user.OTP, user.OTPExpires, user.CreatedAt, user.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmailOrName supports the signup uniqueness check across both fields.
func (r *UserRepository) GetByEmailOrName(ctx context.Context, email, name string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Or{
		squirrel.Eq{"email": email},
		squirrel.Eq{"name": name},
	})
}

func (r *UserRepository) getOne(ctx context.Context, pred any) (*models.User, error) {
	query := squirrel.Select(userColumns).
		From("users").
		Where(pred).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Country, &user.Income,
		&user.OTP, &user.OTPExpires, &user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update persists the mutable fields (password and OTP state).
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := squirrel.Update("users").
		Set("password", user.Password).
		Set("otp", user.OTP).
		Set("otp_expires", user.OTPExpires).
		Set("updated_at", user.UpdatedAt).
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
