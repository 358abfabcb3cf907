package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/minhnc2843/FinVault/internal/category"
	"github.com/minhnc2843/FinVault/internal/user"
)

// Service handles registration and login
type Service struct {
	users      *user.Service
	categories *category.Service
	tokens     *TokenManager
}

// NewService creates a new auth service with its collaborators injected
func NewService(users *user.Service, categories *category.Service, tokens *TokenManager) *Service {
	return &Service{users: users, categories: categories, tokens: tokens}
}

// Register creates an account, seeds its default categories and returns
// a session token.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error) {
	if err := ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, normalizeEmail(req.Email), hash, req.FullName)
	if err != nil {
		return nil, err
	}

	// The account is usable without its default categories, so seeding
	// failure only logs.
	if err := s.categories.SeedDefaults(ctx, u.ID); err != nil {
		slog.Error("failed to seed default categories", "user_id", u.ID, "error", err)
	}

	return s.tokenResponse(u)
}

// Login verifies credentials and returns a session token.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !CheckPassword(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.tokenResponse(u)
}

// CurrentUser returns the account for an authenticated user ID.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*user.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ValidateToken checks a bearer token and returns the identity it
// carries. It satisfies the middleware's TokenValidator contract.
func (s *Service) ValidateToken(token string) (string, string, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return "", "", err
	}
	return claims.Subject, claims.Email, nil
}

func (s *Service) tokenResponse(u *user.User) (*TokenResponse, error) {
	token, err := s.tokens.Generate(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        u.ToResponse(),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
