package budget

import "time"

// CreateBudgetRequest represents the request to create a budget
type CreateBudgetRequest struct {
	CategoryID string  `json:"category_id"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency,omitempty"`
	Period     string  `json:"period,omitempty"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CategoryID string    `json:"category_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Period     string    `json:"period"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToResponse converts a Budget to a BudgetResponse
func (b *Budget) ToResponse() *BudgetResponse {
	return &BudgetResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount.Decimal(b.Currency),
		Currency:   b.Currency,
		Period:     b.Period,
		CreatedAt:  b.CreatedAt,
	}
}
