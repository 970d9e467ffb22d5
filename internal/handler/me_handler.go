package handler

import (
	"net/http"
	"time"

	"github.com/pharmapath/backend/internal/repository"
	"github.com/pharmapath/backend/pkg/auth"
)

// MeHandler は現在のユーザー情報を返すハンドラ
type MeHandler struct {
	userRepo repository.UserRepository
	sv       auth.SessionValidator
}

// NewMeHandler は MeHandler を生成する（DI: UserRepository を注入）
func NewMeHandler(userRepo repository.UserRepository, sv auth.SessionValidator) *MeHandler {
	return &MeHandler{userRepo: userRepo, sv: sv}
}

// meResponse は GET /api/me のレスポンス
type meResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Me は GET /api/me を処理する
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.SessionCookieName())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	userID, err := h.sv.ValidateSession(r.Context(), cookie.Value)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_session")
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusNotFound, "user_not_found")
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}
