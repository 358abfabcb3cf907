package transaction

import (
	"time"

	"github.com/minhnc2843/FinVault/internal/money"
)

// Transaction represents a personal ledger entry. Entries created through
// the shared-expense flow carry IsShared and a back-reference to the
// originating expense.
type Transaction struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	CategoryID      string       `json:"category_id"`
	Amount          money.Amount `json:"-"`
	Currency        string       `json:"currency"`
	Description     string       `json:"description"`
	Date            time.Time    `json:"date"`
	ReceiptURL      *string      `json:"receipt_url,omitempty"`
	Tags            []string     `json:"tags"`
	IsShared        bool         `json:"is_shared"`
	SharedExpenseID *string      `json:"shared_expense_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}
