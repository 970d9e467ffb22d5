package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pharmapath/backend/internal/model"
	"github.com/pharmapath/backend/internal/service"
	"github.com/pharmapath/backend/pkg/auth"
)

// EnrollmentHandler handles enrollment form submission and admin listing.
type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
}

// NewEnrollmentHandler creates an EnrollmentHandler with the given service.
func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// Submit handles POST /api/enrollments.
func (h *EnrollmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.EnrollmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	result := h.enrollmentService.Submit(r.Context(), in)
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

// adminEnrollmentsResponse is the JSON response for GET /api/admin/enrollments.
type adminEnrollmentsResponse struct {
	Submissions []*model.EnrollmentSubmission `json:"submissions"`
}

// AdminList handles GET /api/admin/enrollments (admin-only).
func (h *EnrollmentHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if !auth.IsAdminFromContext(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	subs, err := h.enrollmentService.List(r.Context(), listOptions(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	if subs == nil {
		subs = []*model.EnrollmentSubmission{}
	}
	writeJSON(w, http.StatusOK, adminEnrollmentsResponse{Submissions: subs})
}
