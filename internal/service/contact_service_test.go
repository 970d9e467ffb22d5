package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pharmapath/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockContactRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	saveFunc func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)
}

func (m *mockContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sub)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

// TestContactService_Submit_BlankFieldsSkipPersistence verifies that empty or
// whitespace-only required fields fail without invoking the repository.
func TestContactService_Submit_BlankFieldsSkipPersistence(t *testing.T) {
	inputs := []model.ContactInput{
		{},
		{Name: "   ", Email: "a@b.com", Message: "hi"},
		{Name: "Jane", Email: "\t", Message: "hi"},
		{Name: "Jane", Email: "a@b.com", Message: "   "},
	}

	for _, in := range inputs {
		saveCalled := false
		mock := &mockContactRepository{
			saveFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
				saveCalled = true
				return nil
			},
		}
		svc := NewContactService(mock)

		result := svc.Submit(context.Background(), in)
		if result.Success {
			t.Errorf("input %+v: expected failure", in)
		}
		if len(result.Reasons) == 0 {
			t.Errorf("input %+v: expected validation reasons", in)
		}
		if saveCalled {
			t.Errorf("input %+v: persistence must not be invoked for invalid input", in)
		}
	}
}

// TestContactService_Submit_ServiceDefault verifies the concrete scenario:
// blank service becomes "General Inquiry" and blank company stays empty
// (stored as NULL by the repository).
func TestContactService_Submit_ServiceDefault(t *testing.T) {
	var saved *model.ContactSubmission
	mock := &mockContactRepository{
		saveFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			saved = sub
			sub.ID = "sub-1"
			return nil
		},
	}
	svc := NewContactService(mock)

	result := svc.Submit(context.Background(), model.ContactInput{
		Name:    "Jane Doe",
		Email:   "jane@acme.com",
		Company: "",
		Service: "",
		Message: "Need CSV support",
	})

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if saved == nil {
		t.Fatal("expected Save to be called")
	}
	if saved.Service != model.DefaultService {
		t.Errorf("expected service=%q, got %q", model.DefaultService, saved.Service)
	}
	if saved.Company != "" {
		t.Errorf("expected empty company, got %q", saved.Company)
	}
	if result.Data == nil || result.Data.ID != "sub-1" {
		t.Errorf("expected result data with persisted id, got %+v", result.Data)
	}
}

// TestContactService_Submit_PersistenceError maps repository failures to a
// generic tagged error; no panic escapes the pipeline.
func TestContactService_Submit_PersistenceError(t *testing.T) {
	mock := &mockContactRepository{
		saveFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			return errors.New("connection refused")
		},
	}
	svc := NewContactService(mock)

	result := svc.Submit(context.Background(), model.ContactInput{
		Name: "Jane", Email: "jane@acme.com", Message: "Hello",
	})
	if result.Success {
		t.Error("expected failure on persistence error")
	}
	if result.Error != "submission_failed" {
		t.Errorf("expected submission_failed, got %q", result.Error)
	}
	if result.Data != nil {
		t.Error("failed result must not carry data")
	}
}

func TestContactService_Submit_TrimsFields(t *testing.T) {
	var saved *model.ContactSubmission
	mock := &mockContactRepository{
		saveFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			saved = sub
			return nil
		},
	}
	svc := NewContactService(mock)

	result := svc.Submit(context.Background(), model.ContactInput{
		Name: "  Jane  ", Email: " jane@acme.com ", Message: " Hello ",
	})
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}
	if saved.Name != "Jane" || saved.Email != "jane@acme.com" || saved.Message != "Hello" {
		t.Errorf("expected trimmed fields, got %+v", saved)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestContactService_List_ForwardsOptions(t *testing.T) {
	var captured model.SubmissionListOptions
	mock := &mockContactRepository{
		listFunc: func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
			captured = opts
			return nil, nil
		},
	}
	svc := NewContactService(mock)

	opts := model.SubmissionListOptions{Limit: 10, Offset: 5}
	if _, err := svc.List(context.Background(), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured != opts {
		t.Errorf("expected options %+v forwarded, got %+v", opts, captured)
	}
}
