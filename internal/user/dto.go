package user

import "time"

// UpdateProfileRequest represents the request body for updating profile
// settings. Nil fields are left unchanged.
type UpdateProfileRequest struct {
	FullName           *string  `json:"full_name,omitempty"`
	AvatarURL          *string  `json:"avatar_url,omitempty"`
	CurrencyPreference *string  `json:"currency_preference,omitempty"`
	USDVNDRate         *float64 `json:"usd_vnd_rate,omitempty"`
}

// UserResponse represents the public view of a user
type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	AvatarURL          *string   `json:"avatar_url,omitempty"`
	CurrencyPreference string    `json:"currency_preference"`
	USDVNDRate         float64   `json:"usd_vnd_rate"`
	CreatedAt          time.Time `json:"created_at"`
}

// ToResponse converts a User model to a UserResponse DTO
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		FullName:           u.FullName,
		AvatarURL:          u.AvatarURL,
		CurrencyPreference: u.CurrencyPreference,
		USDVNDRate:         u.USDVNDRate,
		CreatedAt:          u.CreatedAt,
	}
}
