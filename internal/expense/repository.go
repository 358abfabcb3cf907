package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Repository handles shared expense persistence. It implements Store.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create writes the expense and all of its shares in one transaction.
// No reader ever observes a partial share set.
func (r *Repository) Create(ctx context.Context, e *SharedExpense) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO shared_expenses (id, creator_id, title, description, total_units, currency, split_type, status, category_id, date, receipt_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, query,
		e.ID,
		e.CreatorID,
		e.Title,
		e.Description,
		e.Total,
		e.Currency,
		string(e.SplitType),
		e.Status,
		e.CategoryID,
		e.Date,
		e.ReceiptURL,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create shared expense: %w", err)
	}

	shareQuery := `
		INSERT INTO shared_expense_participants (expense_id, user_id, email, full_name, position, owed_units, paid_units, confirmed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, share := range e.Shares {
		_, err := tx.ExecContext(ctx, shareQuery,
			e.ID,
			share.UserID,
			share.Email,
			share.FullName,
			share.Position,
			share.Owed,
			share.Paid,
			share.Confirmed,
		)
		if err != nil {
			return fmt.Errorf("failed to create participant share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit shared expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense with its ordered shares. All shares are
// read in a single statement so the result is a consistent snapshot.
func (r *Repository) GetByID(ctx context.Context, id string) (*SharedExpense, error) {
	query := `
		SELECT id, creator_id, title, description, total_units, currency, split_type, status, category_id, date, receipt_url, created_at
		FROM shared_expenses
		WHERE id = $1
	`

	e := &SharedExpense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.CreatorID,
		&e.Title,
		&e.Description,
		&e.Total,
		&e.Currency,
		&e.SplitType,
		&e.Status,
		&e.CategoryID,
		&e.Date,
		&e.ReceiptURL,
		&e.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shared expense: %w", err)
	}

	shares, err := r.sharesFor(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	e.Shares = shares[id]

	return e, nil
}

// ListForParticipant retrieves every expense the user holds a share in
// (the creator always holds one), newest date first
func (r *Repository) ListForParticipant(ctx context.Context, userID string) ([]*SharedExpense, error) {
	query := `
		SELECT e.id, e.creator_id, e.title, e.description, e.total_units, e.currency, e.split_type, e.status, e.category_id, e.date, e.receipt_url, e.created_at
		FROM shared_expenses e
		JOIN shared_expense_participants p ON p.expense_id = e.id
		WHERE p.user_id = $1
		ORDER BY e.date DESC, e.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*SharedExpense
	var ids []string
	for rows.Next() {
		e := &SharedExpense{}
		err := rows.Scan(
			&e.ID,
			&e.CreatorID,
			&e.Title,
			&e.Description,
			&e.Total,
			&e.Currency,
			&e.SplitType,
			&e.Status,
			&e.CategoryID,
			&e.Date,
			&e.ReceiptURL,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shared expense: %w", err)
		}
		expenses = append(expenses, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shared expenses: %w", err)
	}

	if len(expenses) == 0 {
		return expenses, nil
	}

	shares, err := r.sharesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range expenses {
		e.Shares = shares[e.ID]
	}

	return expenses, nil
}

// ConfirmShare settles the user's share: sets paid to the owed amount
// and flags it confirmed, only while still unconfirmed. Reports whether
// a row transitioned.
func (r *Repository) ConfirmShare(ctx context.Context, expenseID, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE shared_expense_participants
		SET paid_units = owed_units, confirmed = TRUE
		WHERE expense_id = $1 AND user_id = $2 AND confirmed = FALSE
	`, expenseID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to confirm share: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read confirm result: %w", err)
	}
	return affected > 0, nil
}

// sharesFor loads the shares of the given expenses in one statement,
// grouped by expense and ordered by position
func (r *Repository) sharesFor(ctx context.Context, ids []string) (map[string][]*ParticipantShare, error) {
	query := `
		SELECT expense_id, user_id, email, full_name, position, owed_units, paid_units, confirmed
		FROM shared_expense_participants
		WHERE expense_id = ANY($1)
		ORDER BY expense_id, position
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list participant shares: %w", err)
	}
	defer rows.Close()

	shares := make(map[string][]*ParticipantShare)
	for rows.Next() {
		var expenseID string
		s := &ParticipantShare{}
		err := rows.Scan(
			&expenseID,
			&s.UserID,
			&s.Email,
			&s.FullName,
			&s.Position,
			&s.Owed,
			&s.Paid,
			&s.Confirmed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant share: %w", err)
		}
		shares[expenseID] = append(shares[expenseID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participant shares: %w", err)
	}

	return shares, nil
}
