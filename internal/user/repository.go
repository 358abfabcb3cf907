package user

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles user data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new user repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user into the database
func (r *Repository) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, avatar_url, currency_preference, usd_vnd_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.FullName,
		u.AvatarURL,
		u.CurrencyPreference,
		u.USDVNDRate,
	).Scan(&u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, email, password_hash, full_name, avatar_url, currency_preference, usd_vnd_rate, created_at
		FROM users
		WHERE id = $1
	`

	u := &User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.AvatarURL,
		&u.CurrencyPreference,
		&u.USDVNDRate,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetByEmail retrieves a user by their email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password_hash, full_name, avatar_url, currency_preference, usd_vnd_rate, created_at
		FROM users
		WHERE email = $1
	`

	u := &User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.AvatarURL,
		&u.CurrencyPreference,
		&u.USDVNDRate,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// UpdateProfile applies the non-nil fields of the request to the user row
func (r *Repository) UpdateProfile(ctx context.Context, id string, req *UpdateProfileRequest) (*User, error) {
	query := `
		UPDATE users
		SET full_name = COALESCE($2, full_name),
		    avatar_url = COALESCE($3, avatar_url),
		    currency_preference = COALESCE($4, currency_preference),
		    usd_vnd_rate = COALESCE($5, usd_vnd_rate)
		WHERE id = $1
		RETURNING id, email, password_hash, full_name, avatar_url, currency_preference, usd_vnd_rate, created_at
	`

	u := &User{}
	err := r.db.QueryRowContext(ctx, query, id, req.FullName, req.AvatarURL, req.CurrencyPreference, req.USDVNDRate).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.AvatarURL,
		&u.CurrencyPreference,
		&u.USDVNDRate,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return u, nil
}

// Search finds users whose email or full name contains the query,
// excluding the searching user. Results are capped at 10.
func (r *Repository) Search(ctx context.Context, excludeID, q string) ([]*User, error) {
	query := `
		SELECT id, email, password_hash, full_name, avatar_url, currency_preference, usd_vnd_rate, created_at
		FROM users
		WHERE (email ILIKE '%' || $2 || '%' OR full_name ILIKE '%' || $2 || '%')
		  AND id != $1
		ORDER BY full_name
		LIMIT 10
	`

	rows, err := r.db.QueryContext(ctx, query, excludeID, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.PasswordHash,
			&u.FullName,
			&u.AvatarURL,
			&u.CurrencyPreference,
			&u.USDVNDRate,
			&u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
