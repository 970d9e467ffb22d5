package model

import (
	"strings"
	"time"
)

// DefaultService is substituted when a contact form is submitted without a
// service selection.
const DefaultService = "General Inquiry"

// ContactSubmission represents one persisted contact form submission.
// Rows are insert-only; nothing in this codebase updates or deletes them.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactInput is the raw form state as entered by the visitor, before
// trimming and default substitution.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Normalize returns a copy with all fields whitespace-trimmed and the
// service default applied when the selection is empty.
func (in ContactInput) Normalize() ContactInput {
	out := ContactInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Company: strings.TrimSpace(in.Company),
		Service: strings.TrimSpace(in.Service),
		Message: strings.TrimSpace(in.Message),
	}
	if out.Service == "" {
		out.Service = DefaultService
	}
	return out
}

// SubmissionListOptions carries pagination parameters for admin listings of
// form submissions.
type SubmissionListOptions struct {
	Limit  int
	Offset int
}
