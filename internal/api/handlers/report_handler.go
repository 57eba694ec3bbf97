package handlers

import (
	"errors"

	"taxpal/internal/dto"
	"taxpal/internal/report"
	"taxpal/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// ListReports godoc
// @Summary List generated reports
// @Description Returns all report records, newest first
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ReportListResponse
// @Failure 500 {object} map[string]string
// @Router /api/reports [get]
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	reports, err := h.reportService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list reports", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to list reports",
		})
	}
	return c.JSON(dto.ReportListResponse{Reports: reports})
}

// GenerateReport godoc
// @Summary Generate a report
// @Description Renders a CSV or PDF report for a period and persists its record
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.GenerateReportRequest true "Report parameters"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/reports/generate [post]
func (h *ReportHandler) GenerateReport(c *fiber.Ctx) error {
	var req dto.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	rec, err := h.reportService.Generate(c.Context(), &req, baseURL(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingReportFields):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Missing required fields",
			})
		case errors.Is(err, report.ErrInvalidPeriod):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid period / missing custom dates",
			})
		case errors.Is(err, service.ErrUnsupportedFormat):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unsupported format",
			})
		default:
			h.logger.Error("Failed to generate report", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to generate report",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(dto.ReportResponse{Report: *rec})
}

// PreviewReport godoc
// @Summary Preview a report
// @Description Serves an HTML preview: a table for CSV, an inline frame for PDF
// @Tags reports
// @Produce html
// @Param id path string true "Report ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {string} string "Report or file not found"
// @Failure 500 {string} string
// @Router /api/reports/{id}/preview [get]
func (h *ReportHandler) PreviewReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Report not found")
	}

	html, err := h.reportService.Preview(c.Context(), id, baseURL(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReportNotFound):
			return c.Status(fiber.StatusNotFound).SendString("Report not found")
		case errors.Is(err, service.ErrReportFileNotFound):
			return c.Status(fiber.StatusNotFound).SendString("Report file not found")
		default:
			h.logger.Error("Failed to render preview", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to generate preview")
		}
	}

	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	return c.SendString(html)
}

// DeleteReport godoc
// @Summary Delete a report
// @Description Unlinks the backing file best-effort and removes the record
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Report not found",
		})
	}

	if err := h.reportService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Report not found",
			})
		}
		h.logger.Error("Failed to delete report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete report",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Report deleted"})
}
