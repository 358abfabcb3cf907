package settlement

import "github.com/minhnc2843/FinVault/internal/money"

// Share settlement statuses.
const (
	StatusSettled = "settled"
	StatusOwes    = "owes"
)

// Report is the settlement view of one expense.
type Report struct {
	ExpenseID string
	Currency  string
	Lines     []Line
}

// Line is one participant's settlement position within an expense:
// balance = paid − owed, settled when the balance is not negative.
type Line struct {
	UserID   string
	UserName string
	Owed     money.Amount
	Paid     money.Amount
	Balance  money.Amount
	Status   string
}

// Transfer is one suggested payment between two participants
type Transfer struct {
	FromID   string
	FromName string
	ToID     string
	ToName   string
	Amount   money.Amount
}

// CurrencyPlan is the minimal-transfer plan for one currency. Balances
// are never netted across currencies.
type CurrencyPlan struct {
	Currency  string
	Transfers []Transfer
}
