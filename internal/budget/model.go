package budget

import (
	"time"

	"github.com/minhnc2843/FinVault/internal/money"
)

// Budget caps one category's spending for a recurring period.
type Budget struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	CategoryID string       `json:"category_id"`
	Amount     money.Amount `json:"-"`
	Currency   string       `json:"currency"`
	Period     string       `json:"period"`
	CreatedAt  time.Time    `json:"created_at"`
}
