package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pharmapath/backend/internal/notify"
)

// NotificationHandler implements the internal notification endpoint.
//
// This is a stub: it logs the payload and acknowledges unconditionally.
// No real delivery happens, which the submission pipeline's best-effort
// contract anticipates — the persisted row is the system of record.
type NotificationHandler struct{}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// Send handles POST /api/internal/send-notification.
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var n notify.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	slog.Info("notification received",
		"to", n.To,
		"subject", n.Subject,
		"content_length", len(n.Content),
	)

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
