package budget

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/minhnc2843/FinVault/internal/money"
)

var ErrBudgetNotFound = errors.New("budget not found")

const (
	// DefaultCurrency is assumed when a budget omits one.
	DefaultCurrency = "VND"
	// DefaultPeriod is assumed when a budget omits one.
	DefaultPeriod = "monthly"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new budget for the user.
func (s *Service) Create(ctx context.Context, userID string, req *CreateBudgetRequest) (*Budget, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	amount, err := money.FromDecimal(req.Amount, currency)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, money.ErrInvalidAmount
	}

	period := strings.TrimSpace(req.Period)
	if period == "" {
		period = DefaultPeriod
	}

	b := &Budget{
		ID:         uuid.NewString(),
		UserID:     userID,
		CategoryID: req.CategoryID,
		Amount:     amount,
		Currency:   currency,
		Period:     period,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// List returns the user's budgets, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*Budget, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes one of the user's budgets.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBudgetNotFound
	}
	return nil
}
