package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

const sessionCookieName = "pharmapath_session"

// SessionCookieName はセッションクッキー名
func SessionCookieName() string {
	return sessionCookieName
}

// GenerateSessionToken returns a new opaque session token (64 hex chars).
// The token carries no claims; validity lives entirely in the sessions table.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SessionValidator resolves a session token to a user ID.
// Implemented by service.SessionService.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (string, error)
}
