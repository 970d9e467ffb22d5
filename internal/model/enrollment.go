package model

import (
	"strings"
	"time"
)

// EnrollmentSubmission represents one persisted program enrollment request.
type EnrollmentSubmission struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Organization string    `json:"organization"`
	Role         string    `json:"role"`
	Interests    []string  `json:"interests"`
	StartDate    string    `json:"start_date"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EnrollmentInput is the raw enrollment form state.
type EnrollmentInput struct {
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	Interests    []string `json:"interests"`
	StartDate    string   `json:"start_date"`
	Notes        string   `json:"notes"`
}

// Normalize returns a copy with string fields trimmed and interests
// de-duplicated, preserving first-seen order.
func (in EnrollmentInput) Normalize() EnrollmentInput {
	out := EnrollmentInput{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Organization: strings.TrimSpace(in.Organization),
		Role:         strings.TrimSpace(in.Role),
		StartDate:    strings.TrimSpace(in.StartDate),
		Notes:        strings.TrimSpace(in.Notes),
	}
	seen := make(map[string]bool, len(in.Interests))
	for _, i := range in.Interests {
		if i == "" || seen[i] {
			continue
		}
		seen[i] = true
		out.Interests = append(out.Interests, i)
	}
	return out
}

// ToggleInterest flips set membership of interest in the given list:
// absent entries are appended, present entries are removed. Toggling the
// same interest twice returns an equal list.
func ToggleInterest(interests []string, interest string) []string {
	for i, v := range interests {
		if v == interest {
			out := make([]string, 0, len(interests)-1)
			out = append(out, interests[:i]...)
			return append(out, interests[i+1:]...)
		}
	}
	out := make([]string, len(interests), len(interests)+1)
	copy(out, interests)
	return append(out, interest)
}
