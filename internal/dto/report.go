package dto

import "taxpal/internal/models"

// GenerateReportRequest is the body of POST /api/reports/generate. From/To
// are date-only strings, meaningful only when Period is "custom".
type GenerateReportRequest struct {
	Type   string `json:"type"`
	Period string `json:"period"`
	Format string `json:"format"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type ReportResponse struct {
	Report models.Report `json:"report"`
}

type ReportListResponse struct {
	Reports []models.Report `json:"reports"`
}
