package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pharmapath/backend/internal/model"
	"github.com/pharmapath/backend/internal/notify"
	"github.com/pharmapath/backend/internal/repository"
)

// enrollmentServiceImpl is the production implementation of EnrollmentService.
type enrollmentServiceImpl struct {
	repo       repository.EnrollmentRepository
	dispatcher notify.Dispatcher
	notifyTo   string
}

// NewEnrollmentService creates an EnrollmentService. dispatcher may be nil,
// in which case no notification is attempted.
func NewEnrollmentService(repo repository.EnrollmentRepository, dispatcher notify.Dispatcher, notifyTo string) EnrollmentService {
	return &enrollmentServiceImpl{repo: repo, dispatcher: dispatcher, notifyTo: notifyTo}
}

// Submit persists the enrollment and then dispatches a notification.
// Ordering is fixed: the notification fires only after the insert succeeded,
// so a persistence failure produces no side effect at all.
func (s *enrollmentServiceImpl) Submit(ctx context.Context, in model.EnrollmentInput) EnrollmentResult {
	if v := ValidateEnrollment(in); !v.Valid() {
		return EnrollmentResult{Error: "validation_failed", Reasons: v.Reasons}
	}

	norm := in.Normalize()
	sub := &model.EnrollmentSubmission{
		FullName:     norm.FullName,
		Email:        norm.Email,
		Phone:        norm.Phone,
		Organization: norm.Organization,
		Role:         norm.Role,
		Interests:    norm.Interests,
		StartDate:    norm.StartDate,
		Notes:        norm.Notes,
	}
	if sub.Interests == nil {
		sub.Interests = []string{}
	}

	if err := s.repo.Save(ctx, sub); err != nil {
		// Full input echo for operator debugging; enrollments are rare
		// enough that the log volume is acceptable.
		slog.Error("enrollment submission failed", "error", err,
			"full_name", norm.FullName, "email", norm.Email, "phone", norm.Phone,
			"organization", norm.Organization, "role", norm.Role,
			"interests", norm.Interests, "start_date", norm.StartDate)
		return EnrollmentResult{Error: "submission_failed"}
	}

	slog.Info("enrollment submission stored", "id", sub.ID, "organization", sub.Organization)

	if s.dispatcher != nil {
		if nerr := s.dispatcher.Send(ctx, enrollmentNotification(s.notifyTo, sub)); nerr != nil {
			slog.Warn("enrollment notification failed", "error", nerr, "enrollment_id", sub.ID)
		}
	}

	return EnrollmentResult{Success: true, Data: &EnrollmentReceipt{
		Message:   "Enrollment submitted successfully",
		Timestamp: sub.CreatedAt,
		ID:        sub.ID,
	}}
}

// List returns enrollment submissions according to the given pagination options.
func (s *enrollmentServiceImpl) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.EnrollmentSubmission, error) {
	return s.repo.List(ctx, opts)
}

// enrollmentNotification formats the plain-text summary sent to the
// notification endpoint.
func enrollmentNotification(to string, sub *model.EnrollmentSubmission) notify.Notification {
	content := fmt.Sprintf(
		"New enrollment request\n\nName: %s\nEmail: %s\nPhone: %s\nOrganization: %s\nRole: %s\nInterests: %s\nPreferred start: %s\nNotes: %s\n",
		sub.FullName, sub.Email, sub.Phone, sub.Organization, sub.Role,
		strings.Join(sub.Interests, ", "), sub.StartDate, sub.Notes)

	return notify.Notification{
		To:      to,
		Subject: "New enrollment: " + sub.FullName,
		Content: content,
		FormData: map[string]any{
			"id":           sub.ID,
			"full_name":    sub.FullName,
			"email":        sub.Email,
			"phone":        sub.Phone,
			"organization": sub.Organization,
			"role":         sub.Role,
			"interests":    sub.Interests,
			"start_date":   sub.StartDate,
			"notes":        sub.Notes,
		},
	}
}
