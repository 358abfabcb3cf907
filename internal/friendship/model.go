package friendship

import "time"

// Friendship statuses.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
)

// Friendship represents a relation from requester to addressee. The
// addressee's identity is denormalized at request time.
type Friendship struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	FriendID    string    `json:"friend_id"`
	FriendEmail string    `json:"friend_email"`
	FriendName  string    `json:"friend_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
