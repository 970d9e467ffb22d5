package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/pharmapath/backend/internal/service"
	"github.com/pharmapath/backend/pkg/auth"
)

const minPasswordLength = 8

// AuthHandler は認証関連の HTTP ハンドラ
type AuthHandler struct {
	authService service.AuthService
	secure      bool // production では Secure クッキーを使う
}

// NewAuthHandler は AuthHandler を生成する（DI: AuthService を注入）
func NewAuthHandler(authService service.AuthService, secure bool) *AuthHandler {
	return &AuthHandler{authService: authService, secure: secure}
}

// credentialsRequest is the JSON body for sign-up and sign-in.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// sessionUser is the identity projection returned to the frontend.
type sessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(service.SessionDuration / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
}

// SignUp はサインアップする（POST /api/auth/signup）
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "email_required")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password_too_short")
		return
	}

	user, session, err := h.authService.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "email_taken")
			return
		}
		writeError(w, http.StatusInternalServerError, "signup_failed")
		return
	}

	h.setSessionCookie(w, session.Token)
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"user":    sessionUser{ID: user.ID, Email: user.Email},
	})
}

// SignIn はサインインする（POST /api/auth/signin）
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "credentials_required")
		return
	}

	user, session, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "signin_failed")
		return
	}

	h.setSessionCookie(w, session.Token)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    sessionUser{ID: user.ID, Email: user.Email},
	})
}

// SignOut はサインアウトする（POST /api/auth/signout）
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil {
		// Best effort: the cookie is cleared regardless.
		_ = h.authService.SignOut(r.Context(), cookie.Value)
	}
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Session は現在のセッションを返す（GET /api/auth/session）
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.SessionCookieName())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), cookie.Value)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    sessionUser{ID: user.ID, Email: user.Email},
	})
}
