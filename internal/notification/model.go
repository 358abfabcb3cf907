package notification

import "time"

// Known notification types.
const (
	TypeExpenseAdded  = "shared_expense_added"
	TypeFriendRequest = "friend_request"
)

// Notification represents a message in a user's inbox
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
