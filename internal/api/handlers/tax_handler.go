package handlers

import (
	"errors"

	"taxpal/internal/dto"
	"taxpal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TaxHandler struct {
	taxService *service.TaxService
	logger     *zap.Logger
}

func NewTaxHandler(taxService *service.TaxService, logger *zap.Logger) *TaxHandler {
	return &TaxHandler{
		taxService: taxService,
		logger:     logger,
	}
}

// taxLocation is one entry of the countries/states lookup.
type taxLocation struct {
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// Placeholder datasets; the CSV-backed loading was removed upstream and the
// endpoints serve empty lists until a data source is wired back in.
var (
	taxCountries = []taxLocation{}
	taxStates    = []taxLocation{}
)

// ListCountries godoc
// @Summary List countries for the tax form
// @Tags tax
// @Produce json
// @Success 200 {array} handlers.taxLocation
// @Router /api/tax/countries [get]
func (h *TaxHandler) ListCountries(c *fiber.Ctx) error {
	return c.JSON(taxCountries)
}

// ListStates godoc
// @Summary List states for a country
// @Tags tax
// @Produce json
// @Param countryCode path string true "Country code"
// @Success 200 {array} handlers.taxLocation
// @Router /api/tax/states/{countryCode} [get]
func (h *TaxHandler) ListStates(c *fiber.Ctx) error {
	code := c.Params("countryCode")
	filtered := make([]taxLocation, 0)
	for _, s := range taxStates {
		if s.CountryCode == code {
			filtered = append(filtered, s)
		}
	}
	return c.JSON(filtered)
}

// CalculateTax godoc
// @Summary Estimate quarterly tax and persist the active record
// @Tags tax
// @Accept json
// @Produce json
// @Param request body dto.TaxCalculationRequest true "Income and deduction figures"
// @Success 200 {object} dto.TaxCalculationResponse
// @Failure 400 {object} map[string]string
// @Router /api/tax/calculate [post]
func (h *TaxHandler) CalculateTax(c *fiber.Ctx) error {
	var req dto.TaxCalculationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	resp, err := h.taxService.Calculate(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingTaxFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "country, filingStatus and quarter are required",
			})
		}
		h.logger.Error("Failed to calculate tax", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error calculating tax",
		})
	}

	return c.JSON(resp)
}

// TaxHistory godoc
// @Summary List tax records, newest first
// @Tags tax
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/tax/history [get]
func (h *TaxHandler) TaxHistory(c *fiber.Ctx) error {
	records, err := h.taxService.History(c.Context())
	if err != nil {
		h.logger.Error("Failed to fetch tax history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error fetching tax history",
		})
	}

	return c.JSON(fiber.Map{"records": records})
}

// TaxCalendar godoc
// @Summary Build reminder and payment events from active records
// @Tags tax
// @Produce json
// @Success 200 {object} map[string][]dto.TaxCalendarEvent
// @Router /api/tax/calendar [get]
func (h *TaxHandler) TaxCalendar(c *fiber.Ctx) error {
	events, err := h.taxService.Calendar(c.Context())
	if err != nil {
		h.logger.Error("Failed to build tax calendar", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error building tax calendar",
		})
	}

	return c.JSON(fiber.Map{"events": events})
}
