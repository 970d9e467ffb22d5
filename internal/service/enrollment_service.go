package service

import (
	"context"
	"time"

	"github.com/pharmapath/backend/internal/model"
)

// EnrollmentReceipt is returned to the form on a successful enrollment.
// ID is the inserted row's real identifier, threaded back from the database.
type EnrollmentReceipt struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	ID        string    `json:"id"`
}

// EnrollmentResult is the tagged outcome of an enrollment submission.
type EnrollmentResult struct {
	Success bool               `json:"success"`
	Data    *EnrollmentReceipt `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
	Reasons []string           `json:"reasons,omitempty"`
}

// EnrollmentService defines the enrollment form submission pipeline.
type EnrollmentService interface {
	// Submit validates, persists, then fires a best-effort notification.
	// The notification is only attempted after persistence succeeded, and
	// its failure never changes the returned result.
	Submit(ctx context.Context, in model.EnrollmentInput) EnrollmentResult

	// List returns persisted enrollments for the admin view.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.EnrollmentSubmission, error)
}
