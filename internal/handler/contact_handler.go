package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pharmapath/backend/internal/model"
	"github.com/pharmapath/backend/internal/service"
	"github.com/pharmapath/backend/pkg/auth"
)

const maxMessageLength = 5000

// ContactHandler handles contact form submission and admin listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact.
// name, email and message are required; company and service are optional;
// message max 5000 chars.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if len([]rune(in.Message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message_too_long")
		return
	}

	result := h.contactService.Submit(r.Context(), in)
	if !result.Success {
		status := http.StatusInternalServerError
		if result.Error == "validation_failed" {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, result)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// adminContactsResponse is the JSON response for GET /api/admin/contacts.
type adminContactsResponse struct {
	Submissions []*model.ContactSubmission `json:"submissions"`
}

// AdminList handles GET /api/admin/contacts (admin-only).
// Supports query params: limit, offset.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	// Must be authenticated
	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// Must be admin
	if !auth.IsAdminFromContext(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	subs, err := h.contactService.List(r.Context(), listOptions(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	// Return [] not null for empty lists
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, adminContactsResponse{Submissions: subs})
}

// listOptions parses limit/offset query params with the admin defaults.
func listOptions(r *http.Request) model.SubmissionListOptions {
	opts := model.SubmissionListOptions{Limit: 20, Offset: 0}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}
	return opts
}
