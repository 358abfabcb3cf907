package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyInUse = errors.New("email already registered")
)

// Default settings for new accounts.
const (
	DefaultCurrency   = "VND"
	DefaultUSDVNDRate = 25000.0
)

// Service handles user business logic
type Service struct {
	repo *Repository
}

// NewService creates a new user service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new user row with default settings. The password
// hash must already be computed by the caller.
func (s *Service) Create(ctx context.Context, email, passwordHash, fullName string) (*User, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyInUse
	}

	u := &User{
		ID:                 uuid.New().String(),
		Email:              email,
		PasswordHash:       passwordHash,
		FullName:           fullName,
		CurrencyPreference: DefaultCurrency,
		USDVNDRate:         DefaultUSDVNDRate,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID retrieves a user by their ID
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// GetByEmail retrieves a user by their email
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile applies profile and settings changes for the given user
func (s *Service) UpdateProfile(ctx context.Context, id string, req *UpdateProfileRequest) (*User, error) {
	u, err := s.repo.UpdateProfile(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Search finds other users matching the query by email or name
func (s *Service) Search(ctx context.Context, callerID, q string) ([]*User, error) {
	return s.repo.Search(ctx, callerID, q)
}

// Identity is the public identity of a registered account, used when
// resolving expense participants and friend requests.
type Identity struct {
	ID       string
	Email    string
	FullName string
}

// ResolveEmail looks up the account registered under email, case
// insensitively. A nil Identity means no such account exists.
func (s *Service) ResolveEmail(ctx context.Context, email string) (*Identity, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return &Identity{ID: u.ID, Email: u.Email, FullName: u.FullName}, nil
}

// ResolveID resolves a user ID to its public identity. A nil Identity
// means no such account exists.
func (s *Service) ResolveID(ctx context.Context, id string) (*Identity, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return &Identity{ID: u.ID, Email: u.Email, FullName: u.FullName}, nil
}
