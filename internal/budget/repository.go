package budget

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new budget into the database
func (r *Repository) Create(ctx context.Context, b *Budget) error {
	query := `
		INSERT INTO budgets (id, user_id, category_id, amount_units, currency, period)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		b.ID, b.UserID, b.CategoryID, b.Amount, b.Currency, b.Period,
	).Scan(&b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

// ListByUser retrieves the user's budgets, newest first
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*Budget, error) {
	query := `
		SELECT id, user_id, category_id, amount_units, currency, period, created_at
		FROM budgets
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*Budget
	for rows.Next() {
		b := &Budget{}
		err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Currency, &b.Period, &b.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}

	return budgets, nil
}

// Delete removes a budget owned by the user, reporting whether a row matched
func (r *Repository) Delete(ctx context.Context, id, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete budget: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected > 0, nil
}
