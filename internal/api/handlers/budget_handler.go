package handlers

import (
	"errors"

	"taxpal/internal/dto"
	"taxpal/internal/models"
	"taxpal/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	logger        *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// ListBudgets godoc
// @Summary List the user's budgets with refreshed spent rollups
// @Tags budgets
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string][]dto.BudgetResponse
// @Failure 401 {object} map[string]string
// @Router /api/budgets [get]
func (h *BudgetHandler) ListBudgets(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	budgets, err := h.budgetService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list budgets", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error fetching budgets",
		})
	}

	return c.JSON(fiber.Map{"budgets": toBudgetResponses(budgets)})
}

// CreateBudget godoc
// @Summary Create a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.BudgetRequest true "Budget fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/budgets [post]
func (h *BudgetHandler) CreateBudget(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req dto.BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	budget, err := h.budgetService.Create(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingBudgetFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "category and amount are required",
			})
		}
		h.logger.Error("Failed to create budget", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error creating budget",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Budget created",
		"budget":  toBudgetResponse(budget),
	})
}

// UpdateBudget godoc
// @Summary Update a budget (owner only)
// @Tags budgets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Budget ID"
// @Param request body dto.BudgetRequest true "Budget fields"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Budget not found"})
	}

	var req dto.BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	budget, err := h.budgetService.Update(c.Context(), userID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBudgetNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Budget not found"})
		case errors.Is(err, service.ErrNotBudgetOwner):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized"})
		default:
			h.logger.Error("Failed to update budget", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error updating budget",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Budget updated",
		"budget":  toBudgetResponse(budget),
	})
}

// DeleteBudget godoc
// @Summary Delete a budget (owner only)
// @Tags budgets
// @Produce json
// @Security Bearer
// @Param id path string true "Budget ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Budget not found"})
	}

	if err := h.budgetService.Delete(c.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrBudgetNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Budget not found"})
		case errors.Is(err, service.ErrNotBudgetOwner):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized"})
		default:
			h.logger.Error("Failed to delete budget", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error deleting budget",
			})
		}
	}

	return c.JSON(fiber.Map{"message": "Budget removed"})
}

func toBudgetResponse(b *models.Budget) dto.BudgetResponse {
	return dto.BudgetResponse{
		ID:          b.ID.String(),
		Category:    b.Category,
		Amount:      b.Amount,
		Spent:       b.Spent,
		Date:        b.Date.Format("2006-01-02"),
		Description: b.Description,
		CreatedAt:   b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toBudgetResponses(budgets []models.Budget) []dto.BudgetResponse {
	out := make([]dto.BudgetResponse, 0, len(budgets))
	for i := range budgets {
		out = append(out, toBudgetResponse(&budgets[i]))
	}
	return out
}
