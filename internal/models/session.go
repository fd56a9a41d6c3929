package models

import (
	"time"
)

// Session is a server-side login session. The ID doubles as the opaque
// token stored in the client's cookie.
type Session struct {
	ID        string    `json:"-" db:"id"`
	UserID    string    `json:"-" db:"user_id"`
	ExpiresAt time.Time `json:"-" db:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
