package dto

type BudgetRequest struct {
	Category    string   `json:"category"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Spent       *float64 `json:"spent"`
}

type BudgetResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Spent       float64 `json:"spent"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}
