package expense

import (
	"time"

	"github.com/minhnc2843/FinVault/internal/expense/split"
	"github.com/minhnc2843/FinVault/internal/money"
)

// StatusActive is the lifecycle status of every expense this engine
// creates. Shares settle individually; the aggregate itself never
// transitions.
const StatusActive = "active"

// ParticipantShare is one participant's owed/paid/confirmed record
// within a shared expense. Identity fields are denormalized at creation
// time so reports survive later profile changes.
type ParticipantShare struct {
	UserID    string       `json:"user_id"`
	Email     string       `json:"email"`
	FullName  string       `json:"full_name"`
	Position  int          `json:"-"`
	Owed      money.Amount `json:"-"`
	Paid      money.Amount `json:"-"`
	Confirmed bool         `json:"confirmed"`
}

// SharedExpense is the aggregate root: an expense plus its ordered
// participant shares. Total, split policy, and the participant set are
// immutable after creation.
type SharedExpense struct {
	ID          string              `json:"id"`
	CreatorID   string              `json:"creator_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Total       money.Amount        `json:"-"`
	Currency    string              `json:"currency"`
	SplitType   split.Type          `json:"split_type"`
	Status      string              `json:"status"`
	CategoryID  *string             `json:"category_id,omitempty"`
	Date        time.Time           `json:"date"`
	ReceiptURL  *string             `json:"receipt_url,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	Shares      []*ParticipantShare `json:"-"`
}

// Share returns the given user's share, or nil when the user is not a
// participant.
func (e *SharedExpense) Share(userID string) *ParticipantShare {
	for _, s := range e.Shares {
		if s.UserID == userID {
			return s
		}
	}
	return nil
}
