package statistics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minhnc2843/FinVault/internal/money"
)

// TypeTotal is one (category type, currency) bucket of transaction sums.
type TypeTotal struct {
	Type     string
	Currency string
	Units    money.Amount
	Count    int
}

// CurrencyTotal is one currency's outstanding shared-expense debt.
type CurrencyTotal struct {
	Currency string
	Units    money.Amount
}

// CategoryTotal is one (category, currency) bucket of expense sums.
type CategoryTotal struct {
	CategoryID string
	Name       string
	Color      string
	Currency   string
	Units      money.Amount
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// TotalsByType sums the user's transactions since the given instant,
// grouped by category type and currency.
func (r *Repository) TotalsByType(ctx context.Context, userID string, since time.Time) ([]TypeTotal, error) {
	query := `
		SELECT c.type, t.currency, SUM(t.amount_units), COUNT(*)
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.date >= $2
		GROUP BY c.type, t.currency`

	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions by type: %w", err)
	}
	defer rows.Close()

	var totals []TypeTotal
	for rows.Next() {
		var t TypeTotal
		if err := rows.Scan(&t.Type, &t.Currency, &t.Units, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan type total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate type totals: %w", err)
	}

	return totals, nil
}

// OutstandingByCurrency sums owed minus paid over the user's unsettled
// shared expense shares, per currency.
func (r *Repository) OutstandingByCurrency(ctx context.Context, userID string) ([]CurrencyTotal, error) {
	query := `
		SELECT e.currency, SUM(p.owed_units - p.paid_units)
		FROM shared_expense_participants p
		JOIN shared_expenses e ON e.id = p.expense_id
		WHERE p.user_id = $1 AND p.paid_units < p.owed_units
		GROUP BY e.currency`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum outstanding shares: %w", err)
	}
	defer rows.Close()

	var totals []CurrencyTotal
	for rows.Next() {
		var t CurrencyTotal
		if err := rows.Scan(&t.Currency, &t.Units); err != nil {
			return nil, fmt.Errorf("failed to scan outstanding total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate outstanding totals: %w", err)
	}

	return totals, nil
}

// ExpenseTotalsByCategory sums the user's expense-type transactions
// since the given instant, grouped by category and currency.
func (r *Repository) ExpenseTotalsByCategory(ctx context.Context, userID string, since time.Time) ([]CategoryTotal, error) {
	query := `
		SELECT c.id, c.name, c.color, t.currency, SUM(t.amount_units)
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.date >= $2 AND c.type = 'expense'
		GROUP BY c.id, c.name, c.color, t.currency`

	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}
	defer rows.Close()

	var totals []CategoryTotal
	for rows.Next() {
		var t CategoryTotal
		if err := rows.Scan(&t.CategoryID, &t.Name, &t.Color, &t.Currency, &t.Units); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category totals: %w", err)
	}

	return totals, nil
}
