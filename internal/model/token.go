package model

import "time"

// RefreshToken is a stored login-session capability. The token value is
// opaque: it encodes nothing and must be looked up, never decoded. A user
// may hold several live records at once (one per device/login).
type RefreshToken struct {
	ID        string
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (t RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
