package category

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles category data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new category repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a single category
func (r *Repository) Create(ctx context.Context, c *Category) error {
	query := `
		INSERT INTO categories (id, user_id, name, icon, color, type, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		c.ID, c.UserID, c.Name, c.Icon, c.Color, c.Type, c.IsDefault,
	).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateBatch inserts several categories in one transaction, all or none.
func (r *Repository) CreateBatch(ctx context.Context, categories []*Category) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO categories (id, user_id, name, icon, color, type, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	for _, c := range categories {
		if err := tx.QueryRowContext(ctx, query,
			c.ID, c.UserID, c.Name, c.Icon, c.Color, c.Type, c.IsDefault,
		).Scan(&c.CreatedAt); err != nil {
			return fmt.Errorf("failed to create category %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit categories: %w", err)
	}
	return nil
}

// ListByUser retrieves all categories owned by a user
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*Category, error) {
	query := `
		SELECT id, user_id, name, icon, color, type, is_default, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color, &c.Type, &c.IsDefault, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetByID retrieves a category if it belongs to the user
func (r *Repository) GetByID(ctx context.Context, userID, id string) (*Category, error) {
	query := `
		SELECT id, user_id, name, icon, color, type, is_default, created_at
		FROM categories
		WHERE id = $1 AND user_id = $2
	`

	c := &Category{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color, &c.Type, &c.IsDefault, &c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return c, nil
}

// Delete removes a category
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
