package service

import (
	"context"

	"taxpal/internal/dto"
	"taxpal/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentTransactionLimit = 8

type DashboardService struct {
	txRepo       *repository.TransactionRepository
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

func NewDashboardService(txRepo *repository.TransactionRepository, categoryRepo *repository.CategoryRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Get aggregates the dashboard view: income/expense totals with savings,
// the most recent transactions, the expense-by-category pie and the
// category dropdown list.
func (s *DashboardService) Get(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error) {
	income, expense, err := s.txRepo.TotalsByType(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.txRepo.ListByUser(ctx, userID, recentTransactionLimit)
	if err != nil {
		return nil, err
	}

	pie, err := s.txRepo.ExpenseByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	recentDTOs := make([]dto.TransactionResponse, 0, len(recent))
	for _, tx := range recent {
		recentDTOs = append(recentDTOs, dto.TransactionResponse{
			ID:          tx.ID.String(),
			Type:        string(tx.Type),
			Category:    tx.Category,
			Amount:      tx.Amount,
			Currency:    tx.Currency,
			Date:        tx.Date.Format("2006-01-02"),
			Note:        tx.Note,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return &dto.DashboardResponse{
		Totals: dto.DashboardTotals{
			Income:  income,
			Expense: expense,
			Savings: income - expense,
		},
		Recent:     recentDTOs,
		Pie:        pie,
		Categories: categories,
	}, nil
}
