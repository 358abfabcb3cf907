package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhnc2843/FinVault/internal/expense/split"
	"github.com/minhnc2843/FinVault/internal/money"
	"github.com/minhnc2843/FinVault/internal/notification"
	"github.com/minhnc2843/FinVault/internal/user"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("shared expense not found")
	ErrNotParticipant  = errors.New("not a participant of this expense")
	ErrInvalidDate     = errors.New("invalid date format")
)

// UnresolvedParticipantError reports a participant email that belongs to
// no registered account. Creation aborts without persisting anything.
type UnresolvedParticipantError struct {
	Email string
}

func (e *UnresolvedParticipantError) Error() string {
	return fmt.Sprintf("participant email %q is not registered", e.Email)
}

// DefaultCurrency is assumed when a request does not name one.
const DefaultCurrency = "VND"

// Store persists expense aggregates. Create must write the expense and
// all of its shares in one transaction.
type Store interface {
	Create(ctx context.Context, e *SharedExpense) error
	GetByID(ctx context.Context, id string) (*SharedExpense, error)
	ListForParticipant(ctx context.Context, userID string) ([]*SharedExpense, error)
	ConfirmShare(ctx context.Context, expenseID, userID string) (bool, error)
}

// Directory resolves participant identities. The user service satisfies
// it.
type Directory interface {
	ResolveEmail(ctx context.Context, email string) (*user.Identity, error)
	ResolveID(ctx context.Context, id string) (*user.Identity, error)
}

// Service handles shared expense business logic
type Service struct {
	store     Store
	directory Directory
	notifier  notification.Notifier
}

// NewService creates a new expense service with dependencies injected
func NewService(store Store, directory Directory, notifier notification.Notifier) *Service {
	return &Service{store: store, directory: directory, notifier: notifier}
}

// Create builds a shared expense from the request, resolves every
// participant email, splits the total, and persists the aggregate
// atomically. Every share, the creator's included, starts with paid 0
// and unconfirmed.
func (s *Service) Create(ctx context.Context, creatorID string, req *CreateExpenseRequest) (*SharedExpense, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	total, err := money.FromDecimal(req.TotalAmount, currency)
	if err != nil {
		return nil, err
	}
	if total <= 0 {
		return nil, split.ErrNonPositiveAmount
	}

	splitType := split.TypeEqual
	if req.SplitType != "" {
		splitType = split.Type(req.SplitType)
		if !splitType.Valid() {
			return nil, split.ErrUnknownSplitType
		}
	}

	date := time.Now().UTC()
	if req.Date != "" {
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}

	identities, err := s.resolveParticipants(ctx, creatorID, req.ParticipantEmails)
	if err != nil {
		return nil, err
	}

	participantIDs := make([]string, len(identities))
	for i, identity := range identities {
		participantIDs[i] = identity.ID
	}

	policy := split.Equal()
	if splitType == split.TypeCustom {
		amounts, err := rekeyCustomAmounts(req.CustomAmounts, currency, identities)
		if err != nil {
			return nil, err
		}
		policy = split.Custom(amounts)
	}

	shares, err := split.Compute(total, participantIDs, policy)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*user.Identity, len(identities))
	for _, identity := range identities {
		byID[identity.ID] = identity
	}

	e := &SharedExpense{
		ID:          uuid.NewString(),
		CreatorID:   creatorID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Total:       total,
		Currency:    currency,
		SplitType:   splitType,
		Status:      StatusActive,
		CategoryID:  req.CategoryID,
		Date:        date,
		ReceiptURL:  req.ReceiptURL,
	}
	for i, share := range shares {
		identity := byID[share.ParticipantID]
		e.Shares = append(e.Shares, &ParticipantShare{
			UserID:   share.ParticipantID,
			Email:    identity.Email,
			FullName: identity.FullName,
			Position: i,
			Owed:     share.Amount,
		})
	}

	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}

	// Post-commit; delivery must never fail the creation.
	creator := byID[creatorID]
	for _, share := range e.Shares {
		if share.UserID == creatorID {
			continue
		}
		s.notifier.Notify(ctx, notification.NewExpenseAdded(share.UserID, creator.FullName, e.Title))
	}

	return e, nil
}

// resolveParticipants maps the request emails to identities in order,
// then appends the creator unless already listed. Any unregistered
// email aborts the whole creation.
func (s *Service) resolveParticipants(ctx context.Context, creatorID string, emails []string) ([]*user.Identity, error) {
	identities := make([]*user.Identity, 0, len(emails)+1)
	creatorListed := false
	for _, raw := range emails {
		email := strings.TrimSpace(raw)
		identity, err := s.directory.ResolveEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if identity == nil {
			return nil, &UnresolvedParticipantError{Email: email}
		}
		if identity.ID == creatorID {
			creatorListed = true
		}
		identities = append(identities, identity)
	}
	if !creatorListed {
		creator, err := s.directory.ResolveID(ctx, creatorID)
		if err != nil {
			return nil, err
		}
		if creator == nil {
			return nil, fmt.Errorf("creator %s has no account", creatorID)
		}
		identities = append(identities, creator)
	}
	return identities, nil
}

// rekeyCustomAmounts converts email-keyed decimal amounts into
// identity-keyed minor units. An email outside the participant set is
// an amount mismatch.
func rekeyCustomAmounts(raw map[string]float64, currency string, identities []*user.Identity) (map[string]money.Amount, error) {
	byEmail := make(map[string]string, len(identities))
	for _, identity := range identities {
		byEmail[strings.ToLower(identity.Email)] = identity.ID
	}

	amounts := make(map[string]money.Amount, len(raw))
	for email, value := range raw {
		id, ok := byEmail[strings.ToLower(strings.TrimSpace(email))]
		if !ok {
			return nil, fmt.Errorf("custom amount for %q: %w", email, split.ErrAmountMismatch)
		}
		amount, err := money.FromDecimal(value, currency)
		if err != nil {
			return nil, err
		}
		amounts[id] = amount
	}
	return amounts, nil
}

// List retrieves every expense the user participates in, newest first
func (s *Service) List(ctx context.Context, userID string) ([]*SharedExpense, error) {
	return s.store.ListForParticipant(ctx, userID)
}

// Get retrieves one expense. Only participants may read it.
func (s *Service) Get(ctx context.Context, expenseID, callerID string) (*SharedExpense, error) {
	e, err := s.store.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}
	if e.Share(callerID) == nil {
		return nil, ErrNotParticipant
	}
	return e, nil
}

// ConfirmShare marks the caller's own share confirmed and fully paid.
// Confirming an already-confirmed share is a successful no-op.
func (s *Service) ConfirmShare(ctx context.Context, expenseID, callerID string) (*ParticipantShare, error) {
	e, err := s.store.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}

	share := e.Share(callerID)
	if share == nil {
		return nil, ErrNotParticipant
	}
	if share.Confirmed {
		return share, nil
	}

	// A lost race means someone else confirmed this same share first;
	// the terminal state is identical either way.
	if _, err := s.store.ConfirmShare(ctx, expenseID, callerID); err != nil {
		return nil, err
	}
	share.Paid = share.Owed
	share.Confirmed = true
	return share, nil
}
