package service

import (
	"context"
	"errors"
	"time"

	"taxpal/internal/dto"
	"taxpal/internal/models"
	"taxpal/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrNotBudgetOwner      = errors.New("not authorized")
	ErrMissingBudgetFields = errors.New("category and amount are required")
)

type BudgetService struct {
	budgetRepo *repository.BudgetRepository
	txRepo     *repository.TransactionRepository
	logger     *zap.Logger
}

func NewBudgetService(budgetRepo *repository.BudgetRepository, txRepo *repository.TransactionRepository, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		budgetRepo: budgetRepo,
		txRepo:     txRepo,
		logger:     logger,
	}
}

// List returns the user's budgets with spent recalculated and persisted.
func (s *BudgetService) List(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	budgets, err := s.budgetRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range budgets {
		if err := s.RecalcSpent(ctx, &budgets[i]); err != nil {
			return nil, err
		}
	}
	return budgets, nil
}

func (s *BudgetService) Create(ctx context.Context, userID uuid.UUID, req *dto.BudgetRequest) (*models.Budget, error) {
	if req.Category == "" || req.Amount == nil {
		return nil, ErrMissingBudgetFields
	}

	date := time.Now()
	if req.Date != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local); err == nil {
			date = parsed
		}
	}

	now := time.Now()
	budget := &models.Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    req.Category,
		Amount:      *req.Amount,
		Date:        date,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}

	if err := s.RecalcSpent(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.BudgetRequest) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBudgetNotFound
		}
		return nil, err
	}
	if budget.UserID != userID {
		return nil, ErrNotBudgetOwner
	}

	if req.Category != "" {
		budget.Category = req.Category
	}
	if req.Amount != nil {
		budget.Amount = *req.Amount
	}
	if req.Date != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local); err == nil {
			budget.Date = parsed
		}
	}
	if req.Description != "" {
		budget.Description = req.Description
	}
	if req.Spent != nil {
		budget.Spent = *req.Spent
	}
	budget.UpdatedAt = time.Now()

	// Recalculation overrides any direct spent value and persists.
	if err := s.RecalcSpent(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	budget, err := s.budgetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrBudgetNotFound
		}
		return err
	}
	if budget.UserID != userID {
		return ErrNotBudgetOwner
	}
	return s.budgetRepo.Delete(ctx, id)
}

// RecalcSpent recomputes spent as the sum of the user's expense transactions
// in the budget's calendar month and category, and persists the result.
func (s *BudgetService) RecalcSpent(ctx context.Context, budget *models.Budget) error {
	year, month, _ := budget.Date.Date()
	loc := budget.Date.Location()
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, month+1, 0, 23, 59, 59, 999_000_000, loc)

	spent, err := s.txRepo.SumExpenses(ctx, budget.UserID, budget.Category, start, end)
	if err != nil {
		return err
	}

	budget.Spent = spent
	budget.UpdatedAt = time.Now()
	return s.budgetRepo.Update(ctx, budget)
}

// RecalcForCategory refreshes spent on the user's budget for a category, if
// one exists; transaction writes call this to keep rollups in sync.
func (s *BudgetService) RecalcForCategory(ctx context.Context, userID uuid.UUID, category string) error {
	budget, err := s.budgetRepo.FindByUserAndCategory(ctx, userID, category)
	if err != nil {
		return err
	}
	if budget == nil {
		return nil
	}
	return s.RecalcSpent(ctx, budget)
}
