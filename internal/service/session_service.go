package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pharmapath/backend/internal/model"
	"github.com/pharmapath/backend/internal/repository"
	"github.com/pharmapath/backend/pkg/auth"
)

// SessionDuration is how long an issued session stays valid.
const SessionDuration = 30 * 24 * time.Hour

// SessionService manages DB-backed user sessions.
// Implements auth.SessionValidator.
type SessionService struct {
	repo repository.SessionRepository
}

// NewSessionService creates a SessionService.
func NewSessionService(repo repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

var _ auth.SessionValidator = (*SessionService)(nil)

// CreateSession generates a new opaque token, stores it in DB, and returns the session.
func (s *SessionService) CreateSession(ctx context.Context, userID string) (*model.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("session token generation failed", "error", err)
		return nil, err
	}
	now := time.Now()
	session := &model.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionDuration),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		slog.Error("session insert failed", "error", err, "user_id", userID)
		return nil, err
	}
	slog.Debug("session created", "user_id", userID, "expires_at", session.ExpiresAt)
	return session, nil
}

// ValidateSession validates a session token and returns the user ID.
// Implements auth.SessionValidator. Expired sessions are deleted on sight.
func (s *SessionService) ValidateSession(ctx context.Context, token string) (string, error) {
	session, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return "", errors.New("invalid_session")
	}
	if session.Expired(time.Now()) {
		_ = s.repo.DeleteByToken(ctx, token)
		return "", errors.New("session_expired")
	}
	return session.UserID, nil
}

// DeleteSession removes a session (sign-out).
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	return s.repo.DeleteByToken(ctx, token)
}

// DeleteAllSessions removes all sessions for a user (forced sign-out).
func (s *SessionService) DeleteAllSessions(ctx context.Context, userID string) error {
	return s.repo.DeleteByUserID(ctx, userID)
}
