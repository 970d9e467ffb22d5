package service

import (
	"context"

	"github.com/pharmapath/backend/internal/model"
)

// ContactResult is the tagged outcome of a contact form submission.
// Exactly one of Data or Error is set; the pipeline never panics past
// its own boundary.
type ContactResult struct {
	Success bool                     `json:"success"`
	Data    *model.ContactSubmission `json:"data,omitempty"`
	Error   string                   `json:"error,omitempty"`
	Reasons []string                 `json:"reasons,omitempty"`
}

// ContactService defines the contact form submission pipeline.
type ContactService interface {
	// Submit validates, normalizes and persists a contact submission.
	// Validation failures and persistence errors both come back as a
	// failed result; persistence is never invoked for invalid input.
	Submit(ctx context.Context, in model.ContactInput) ContactResult

	// List returns persisted submissions for the admin view.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)
}
