package friendship

// FriendRequest represents the request to start a friendship
type FriendRequest struct {
	FriendEmail string `json:"friend_email" validate:"required,email"`
}

// FriendshipResponse represents the response for a friendship
type FriendshipResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	FriendID    string `json:"friend_id"`
	FriendEmail string `json:"friend_email"`
	FriendName  string `json:"friend_name"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ToResponse converts a Friendship model to a FriendshipResponse DTO
func (f *Friendship) ToResponse() *FriendshipResponse {
	return &FriendshipResponse{
		ID:          f.ID,
		UserID:      f.UserID,
		FriendID:    f.FriendID,
		FriendEmail: f.FriendEmail,
		FriendName:  f.FriendName,
		Status:      f.Status,
		CreatedAt:   f.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
