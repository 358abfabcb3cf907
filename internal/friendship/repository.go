package friendship

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles friendship data persistence. It implements Store.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new friendship repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new friendship into the database
func (r *Repository) Create(ctx context.Context, f *Friendship) error {
	query := `
		INSERT INTO friendships (id, user_id, friend_id, friend_email, friend_name, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		f.ID,
		f.UserID,
		f.FriendID,
		f.FriendEmail,
		f.FriendName,
		f.Status,
	).Scan(&f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create friendship: %w", err)
	}

	return nil
}

// GetByID retrieves a friendship by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Friendship, error) {
	query := `
		SELECT id, user_id, friend_id, friend_email, friend_name, status, created_at
		FROM friendships
		WHERE id = $1
	`

	f := &Friendship{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID,
		&f.UserID,
		&f.FriendID,
		&f.FriendEmail,
		&f.FriendName,
		&f.Status,
		&f.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}

	return f, nil
}

// GetBetween retrieves the relation between two users in either
// direction, if any
func (r *Repository) GetBetween(ctx context.Context, userA, userB string) (*Friendship, error) {
	query := `
		SELECT id, user_id, friend_id, friend_email, friend_name, status, created_at
		FROM friendships
		WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)
	`

	f := &Friendship{}
	err := r.db.QueryRowContext(ctx, query, userA, userB).Scan(
		&f.ID,
		&f.UserID,
		&f.FriendID,
		&f.FriendEmail,
		&f.FriendName,
		&f.Status,
		&f.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}

	return f, nil
}

// ListForUser retrieves the user's friendships in both directions,
// newest first
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]*Friendship, error) {
	query := `
		SELECT id, user_id, friend_id, friend_email, friend_name, status, created_at
		FROM friendships
		WHERE user_id = $1 OR friend_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}
	defer rows.Close()

	var friendships []*Friendship
	for rows.Next() {
		f := &Friendship{}
		err := rows.Scan(
			&f.ID,
			&f.UserID,
			&f.FriendID,
			&f.FriendEmail,
			&f.FriendName,
			&f.Status,
			&f.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friendship: %w", err)
		}
		friendships = append(friendships, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friendships: %w", err)
	}

	return friendships, nil
}

// UpdateStatus changes the status of a friendship
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE friendships SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update friendship status: %w", err)
	}
	return nil
}
