package main

import (
	"context"
	"errors"
	"log"
	"time"

	"taxpal/internal/models"
	"taxpal/internal/repository"
	"taxpal/pkg/auth"
	"taxpal/pkg/config"
	"taxpal/pkg/logger"
	"taxpal/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@taxpal.app"
	demoPassword = "demo1234"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	user, err := seedDemoUser(ctx, userRepo)
	if err != nil {
		appLogger.Fatal("Failed to seed demo user", zap.Error(err))
	}

	if err := seedCategories(ctx, categoryRepo); err != nil {
		appLogger.Fatal("Failed to seed categories", zap.Error(err))
	}

	if err := seedTransactions(ctx, txRepo, user.ID); err != nil {
		appLogger.Fatal("Failed to seed transactions", zap.Error(err))
	}

	if err := seedBudgets(ctx, budgetRepo, user.ID); err != nil {
		appLogger.Fatal("Failed to seed budgets", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("email", demoEmail),
		zap.String("password", demoPassword))
}

func seedDemoUser(ctx context.Context, repo *repository.UserRepository) (*models.User, error) {
	existing, err := repo.GetByEmail(ctx, demoEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Name:      "Demo User",
		Email:     demoEmail,
		Password:  hash,
		Country:   "IN",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func seedCategories(ctx context.Context, repo *repository.CategoryRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Salary", Type: models.TransactionIncome},
		{Name: "Freelance", Type: models.TransactionIncome},
		{Name: "Groceries", Type: models.TransactionExpense},
		{Name: "Rent", Type: models.TransactionExpense},
		{Name: "Transport", Type: models.TransactionExpense},
		{Name: "Utilities", Type: models.TransactionExpense},
		{Name: "Entertainment", Type: models.TransactionExpense},
		{Name: "Health", Type: models.TransactionExpense},
	}
	for i := range categories {
		categories[i].ID = uuid.New()
		if err := repo.Create(ctx, &categories[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedTransactions(ctx context.Context, repo *repository.TransactionRepository, userID uuid.UUID) error {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	seed := []struct {
		typ      models.TransactionType
		category string
		amount   float64
		day      int
		desc     string
	}{
		{models.TransactionIncome, "Salary", 85000, 1, "Monthly salary"},
		{models.TransactionIncome, "Freelance", 12000, 9, "Landing page project"},
		{models.TransactionExpense, "Rent", 22000, 2, "Apartment rent"},
		{models.TransactionExpense, "Groceries", 4300, 5, "Weekly groceries"},
		{models.TransactionExpense, "Groceries", 3900, 13, "Weekly groceries"},
		{models.TransactionExpense, "Transport", 1500, 7, "Metro card top-up"},
		{models.TransactionExpense, "Utilities", 2600, 10, "Electricity bill"},
		{models.TransactionExpense, "Entertainment", 1200, 14, "Movie night"},
	}

	for _, s := range seed {
		date := monthStart.AddDate(0, 0, s.day-1)
		if date.After(now) {
			date = now
		}
		tx := &models.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        s.typ,
			Category:    s.category,
			Amount:      s.amount,
			Currency:    "INR",
			Date:        date,
			Description: s.desc,
			CreatedAt:   date,
			UpdatedAt:   date,
		}
		if err := repo.Create(ctx, tx); err != nil {
			return err
		}
	}
	return nil
}

func seedBudgets(ctx context.Context, repo *repository.BudgetRepository, userID uuid.UUID) error {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	seed := []struct {
		category string
		amount   float64
	}{
		{"Groceries", 12000},
		{"Transport", 4000},
		{"Entertainment", 5000},
		{"Utilities", 6000},
	}

	for _, s := range seed {
		existing, err := repo.FindByUserAndCategory(ctx, userID, s.category)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		b := &models.Budget{
			ID:        uuid.New(),
			UserID:    userID,
			Category:  s.category,
			Amount:    s.amount,
			Date:      monthStart,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(ctx, b); err != nil {
			return err
		}
	}
	return nil
}
