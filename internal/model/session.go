package model

import "time"

// Session is a DB-backed login session identified by an opaque random token.
// Token lifecycle (creation, expiry, deletion) is owned by the session
// service; everything else holds at most a read-only copy.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at time now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
