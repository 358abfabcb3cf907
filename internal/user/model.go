package user

import "time"

// User represents a registered account. PasswordHash never leaves the
// service boundary.
type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	FullName           string    `json:"full_name"`
	AvatarURL          *string   `json:"avatar_url,omitempty"`
	CurrencyPreference string    `json:"currency_preference"`
	USDVNDRate         float64   `json:"usd_vnd_rate"`
	CreatedAt          time.Time `json:"created_at"`
}
