package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pharmapath/backend/internal/model"
	"github.com/pharmapath/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceImpl は AuthService の実装
type AuthServiceImpl struct {
	userRepo repository.UserRepository
	sessions *SessionService
}

// NewAuthService は AuthServiceImpl を生成する（DI: UserRepository と SessionService を注入）
func NewAuthService(userRepo repository.UserRepository, sessions *SessionService) AuthService {
	return &AuthServiceImpl{userRepo: userRepo, sessions: sessions}
}

// SignUp はユーザーを作成し、セッションを発行する
func (s *AuthServiceImpl) SignUp(ctx context.Context, email, password, name string) (*model.User, *model.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	slog.Debug("sign up", "email", email)

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		slog.Error("create user failed", "error", err)
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	session, err := s.sessions.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("new user created", "user_id", user.ID)
	return user, session, nil
}

// SignIn は資格情報を検証し、新しいセッションを発行する
func (s *AuthServiceImpl) SignIn(ctx context.Context, email, password string) (*model.User, *model.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("lookup email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.sessions.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// SignOut はセッションを削除する
func (s *AuthServiceImpl) SignOut(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

// CurrentUser はセッショントークンからユーザーを取得する
func (s *AuthServiceImpl) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.sessions.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(ctx, userID)
}
