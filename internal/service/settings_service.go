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

type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	logger       *zap.Logger
}

func NewSettingsService(settingsRepo *repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get returns the user's settings, falling back to defaults when none are
// stored yet.
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (*dto.SettingsResponse, error) {
	settings, err := s.settingsRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &dto.SettingsResponse{Theme: "light", Currency: "INR", Notifications: true}, nil
		}
		return nil, err
	}
	return &dto.SettingsResponse{
		Theme:         settings.Theme,
		Currency:      settings.Currency,
		Notifications: settings.Notifications,
	}, nil
}

// Update upserts the user's settings, keeping stored values for any field
// the request leaves unset.
func (s *SettingsService) Update(ctx context.Context, userID uuid.UUID, req *dto.SettingsRequest) (*dto.SettingsResponse, error) {
	now := time.Now()
	settings, err := s.settingsRepo.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		settings = &models.Settings{
			ID:            uuid.New(),
			UserID:        userID,
			Theme:         "light",
			Currency:      "INR",
			Notifications: true,
			CreatedAt:     now,
		}
	}

	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.Currency != nil {
		settings.Currency = *req.Currency
	}
	if req.Notifications != nil {
		settings.Notifications = *req.Notifications
	}
	settings.UpdatedAt = now

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	return &dto.SettingsResponse{
		Theme:         settings.Theme,
		Currency:      settings.Currency,
		Notifications: settings.Notifications,
	}, nil
}
