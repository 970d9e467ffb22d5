package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pharmapath/backend/internal/model"
	"github.com/pharmapath/backend/internal/service"
	"github.com/pharmapath/backend/pkg/auth"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, in model.ContactInput) service.ContactResult
	listFunc   func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)
}

func (m *mockContactService) Submit(ctx context.Context, in model.ContactInput) service.ContactResult {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return service.ContactResult{Success: true, Data: &model.ContactSubmission{}}
}

func (m *mockContactService) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured model.ContactInput
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in model.ContactInput) service.ContactResult {
			captured = in
			return service.ContactResult{Success: true, Data: &model.ContactSubmission{ID: "sub-1"}}
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Jane Doe","email":"jane@acme.com","service":"","message":"Need CSV support"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured.Name != "Jane Doe" || captured.Email != "jane@acme.com" {
		t.Errorf("unexpected input forwarded: %+v", captured)
	}

	var resp service.ContactResult
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !resp.Success || resp.Data == nil || resp.Data.ID != "sub-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

// TestContactHandler_Submit_ValidationFailure maps validation to 400 with
// reasons in the body.
func TestContactHandler_Submit_ValidationFailure(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in model.ContactInput) service.ContactResult {
			return service.ContactResult{Error: "validation_failed", Reasons: []string{"email_required"}}
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Bob"}`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var resp service.ContactResult
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Success || len(resp.Reasons) == 0 {
		t.Errorf("expected failure with reasons, got %+v", resp)
	}
}

func TestContactHandler_Submit_PersistenceFailure(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in model.ContactInput) service.ContactResult {
			return service.ContactResult{Error: "submission_failed"}
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Jane","email":"jane@acme.com","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_MessageTooLong(t *testing.T) {
	submitCalled := false
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in model.ContactInput) service.ContactResult {
			submitCalled = true
			return service.ContactResult{Success: true}
		},
	}
	h := NewContactHandler(mock)

	long := strings.Repeat("あ", maxMessageLength+1)
	body, _ := json.Marshal(model.ContactInput{Name: "J", Email: "j@a.com", Message: long})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if submitCalled {
		t.Error("expected pipeline not invoked for oversized message")
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/contacts tests
// ---------------------------------------------------------------------------

func TestContactHandler_AdminList_RequiresAuth(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestContactHandler_AdminList_RequiresAdmin(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestContactHandler_AdminList_ReturnsSubmissions(t *testing.T) {
	var captured model.SubmissionListOptions
	mock := &mockContactService{
		listFunc: func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
			captured = opts
			return []*model.ContactSubmission{{ID: "sub-1"}}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts?limit=50&offset=10", nil)
	ctx := auth.WithIsAdmin(auth.WithUserID(req.Context(), "user-1"), true)
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured.Limit != 50 || captured.Offset != 10 {
		t.Errorf("expected limit/offset forwarded, got %+v", captured)
	}

	var resp adminContactsResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if len(resp.Submissions) != 1 || resp.Submissions[0].ID != "sub-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

// TestContactHandler_AdminList_EmptyIsArray keeps the JSON contract: [] not null.
func TestContactHandler_AdminList_EmptyIsArray(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	ctx := auth.WithIsAdmin(auth.WithUserID(req.Context(), "user-1"), true)
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if !strings.Contains(rec.Body.String(), `"submissions":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestContactHandler_AdminList_ListError(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
			return nil, errors.New("db down")
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	ctx := auth.WithIsAdmin(auth.WithUserID(req.Context(), "user-1"), true)
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
