package handlers

import (
	"taxpal/internal/dto"
	"taxpal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
	logger          *zap.Logger
}

func NewSettingsHandler(settingsService *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetSettings godoc
// @Summary Get the user's settings, with defaults when none are stored
// @Tags settings
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} map[string]string
// @Router /api/settings [get]
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	resp, err := h.settingsService.Get(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch settings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error fetching settings",
		})
	}

	return c.JSON(resp)
}

// UpdateSettings godoc
// @Summary Merge and persist the user's settings
// @Tags settings
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.SettingsRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /api/settings [put]
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req dto.SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	resp, err := h.settingsService.Update(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to update settings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error updating settings",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Settings updated",
		"settings": resp,
	})
}
