package dto

import (
	"taxpal/internal/models"
	"taxpal/internal/repository"
)

type DashboardTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Savings float64 `json:"savings"`
}

type DashboardResponse struct {
	Totals     DashboardTotals            `json:"totals"`
	Recent     []TransactionResponse      `json:"recent"`
	Pie        []repository.CategoryTotal `json:"pie"`
	Categories []models.Category          `json:"categories"`
}
