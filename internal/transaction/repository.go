package transaction

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	CategoryID string
	From       *time.Time
	To         *time.Time
}

// Repository handles transaction data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new transaction repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new transaction into the database
func (r *Repository) Create(ctx context.Context, t *Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, category_id, amount_units, currency, description, date, receipt_url, tags, is_shared, shared_expense_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		t.ID,
		t.UserID,
		t.CategoryID,
		t.Amount,
		t.Currency,
		t.Description,
		t.Date,
		t.ReceiptURL,
		pq.Array(t.Tags),
		t.IsShared,
		t.SharedExpenseID,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// ListByUser retrieves the user's transactions, newest first
func (r *Repository) ListByUser(ctx context.Context, userID string, f Filter) ([]*Transaction, error) {
	query := `
		SELECT id, user_id, category_id, amount_units, currency, description, date, receipt_url, tags, is_shared, shared_expense_id, created_at
		FROM transactions
		WHERE user_id = $1
	`
	args := []any{userID}

	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*Transaction
	for rows.Next() {
		t := &Transaction{}
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.CategoryID,
			&t.Amount,
			&t.Currency,
			&t.Description,
			&t.Date,
			&t.ReceiptURL,
			pq.Array(&t.Tags),
			&t.IsShared,
			&t.SharedExpenseID,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// Delete removes a transaction owned by the user. Returns the number of
// rows removed so the caller can distinguish "not found".
func (r *Repository) Delete(ctx context.Context, id, userID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected, nil
}
