package service

import (
	"context"
	"errors"

	"github.com/pharmapath/backend/internal/model"
)

// ErrInvalidCredentials is returned when sign-in fails, without revealing
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when sign-up uses an already registered email.
var ErrEmailTaken = errors.New("email already registered")

// AuthService は認証に関するビジネスロジックのインターフェース
type AuthService interface {
	// SignUp creates a user with a bcrypt-hashed password and issues a
	// session immediately (no email verification step).
	SignUp(ctx context.Context, email, password, name string) (*model.User, *model.Session, error)

	// SignIn verifies credentials and issues a new session.
	SignIn(ctx context.Context, email, password string) (*model.User, *model.Session, error)

	// SignOut deletes the session for the given token. Deleting an unknown
	// token is not an error.
	SignOut(ctx context.Context, token string) error

	// CurrentUser resolves a session token to its user.
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}
