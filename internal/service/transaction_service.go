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

var ErrTransactionNotFound = errors.New("transaction not found")

const transactionListLimit = 100

type TransactionService struct {
	txRepo        *repository.TransactionRepository
	budgetService *BudgetService
	logger        *zap.Logger
}

func NewTransactionService(txRepo *repository.TransactionRepository, budgetService *BudgetService, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo:        txRepo,
		budgetService: budgetService,
		logger:        logger,
	}
}

func (s *TransactionService) List(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	return s.txRepo.ListByUser(ctx, userID, transactionListLimit)
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	date := time.Now()
	if req.Date != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local); err == nil {
			date = parsed
		}
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        models.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Currency:    "INR",
		Date:        date,
		Description: req.Description,
		Note:        req.Note,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	if tx.Type == models.TransactionExpense {
		if err := s.budgetService.RecalcForCategory(ctx, userID, tx.Category); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

func (s *TransactionService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	tx, err := s.txRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	tx.Type = models.TransactionType(req.Type)
	tx.Category = req.Category
	tx.Amount = req.Amount
	tx.Description = req.Description
	tx.Note = req.Note
	if req.Date != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local); err == nil {
			tx.Date = parsed
		}
	}
	tx.UpdatedAt = time.Now()

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	if tx.Type == models.TransactionExpense {
		if err := s.budgetService.RecalcForCategory(ctx, userID, tx.Category); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

// Delete soft-deletes the transaction so report queries can still see and
// exclude it, then refreshes the matching budget rollup.
func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tx, err := s.txRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTransactionNotFound
		}
		return err
	}

	if err := s.txRepo.SoftDelete(ctx, id, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTransactionNotFound
		}
		return err
	}

	if tx.Type == models.TransactionExpense {
		if err := s.budgetService.RecalcForCategory(ctx, userID, tx.Category); err != nil {
			return err
		}
	}
	return nil
}
