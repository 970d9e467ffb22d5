package service

import (
	"context"
	"log/slog"

	"github.com/pharmapath/backend/internal/model"
	"github.com/pharmapath/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit runs the contact pipeline: validate, trim, apply the service
// default, then issue a single insert. No retry is attempted on persistence
// failure; the caller re-submits the preserved form state instead.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactInput) ContactResult {
	if v := ValidateContact(in); !v.Valid() {
		return ContactResult{Error: "validation_failed", Reasons: v.Reasons}
	}

	norm := in.Normalize()
	sub := &model.ContactSubmission{
		Name:    norm.Name,
		Email:   norm.Email,
		Company: norm.Company,
		Service: norm.Service,
		Message: norm.Message,
	}

	if err := s.repo.Save(ctx, sub); err != nil {
		slog.Error("contact submission failed", "error", err, "email", norm.Email, "service", norm.Service)
		return ContactResult{Error: "submission_failed"}
	}

	slog.Info("contact submission stored", "id", sub.ID, "service", sub.Service)
	return ContactResult{Success: true, Data: sub}
}

// List returns contact submissions according to the given pagination options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, opts)
}
