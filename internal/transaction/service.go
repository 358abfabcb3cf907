package transaction

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhnc2843/FinVault/internal/money"
)

// Common errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidDate         = errors.New("invalid date format")
)

// DefaultCurrency is assumed when a request does not name one.
const DefaultCurrency = "VND"

// Service handles transaction business logic
type Service struct {
	repo *Repository
}

// NewService creates a new transaction service with dependencies injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create records a personal transaction for the user
func (s *Service) Create(ctx context.Context, userID string, req *CreateTransactionRequest) (*Transaction, error) {
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

	date := time.Now().UTC()
	if req.Date != "" {
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	t := &Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Amount:      amount,
		Currency:    currency,
		Description: req.Description,
		Date:        date,
		ReceiptURL:  req.ReceiptURL,
		Tags:        tags,
		IsShared:    false,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// List retrieves the user's transactions, newest first, honoring filters
func (s *Service) List(ctx context.Context, userID string, q ListTransactionsQuery) ([]*Transaction, error) {
	f := Filter{CategoryID: q.CategoryID}

	if q.FromDate != "" {
		from, err := parseDateBound(q.FromDate, false)
		if err != nil {
			return nil, ErrInvalidDate
		}
		f.From = &from
	}
	if q.ToDate != "" {
		to, err := parseDateBound(q.ToDate, true)
		if err != nil {
			return nil, ErrInvalidDate
		}
		f.To = &to
	}

	return s.repo.ListByUser(ctx, userID, f)
}

// Delete removes the user's transaction
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	affected, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// parseDateBound accepts either a full RFC 3339 timestamp or a bare
// YYYY-MM-DD day. Bare days expand to the start (or, for upper bounds,
// the end) of that day in UTC.
func parseDateBound(value string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if upper {
		return day.Add(24*time.Hour - time.Nanosecond), nil
	}
	return day, nil
}
