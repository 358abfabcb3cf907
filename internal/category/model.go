package category

import "time"

// Type distinguishes spending categories from income categories.
type Type string

const (
	TypeExpense Type = "expense"
	TypeIncome  Type = "income"
)

// Category represents a transaction category owned by one user.
// Default categories are created at registration and cannot be deleted.
type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Type      Type      `json:"type"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
