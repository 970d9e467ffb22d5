package service

import (
	"strings"

	"github.com/pharmapath/backend/internal/model"
)

// Validation is the tagged outcome of validating form input, decoupled from
// submission. A zero Validation is valid.
type Validation struct {
	Reasons []string
}

// Valid reports whether the input passed every check.
func (v Validation) Valid() bool { return len(v.Reasons) == 0 }

func (v *Validation) require(value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Reasons = append(v.Reasons, reason)
	}
}

// ValidateContact checks the contact form's required fields.
// Email format is deliberately not checked beyond presence; the form is the
// only producer and over-strict server rules would reject real addresses.
func ValidateContact(in model.ContactInput) Validation {
	var v Validation
	v.require(in.Name, "name_required")
	v.require(in.Email, "email_required")
	v.require(in.Message, "message_required")
	return v
}

// ValidateEnrollment checks the enrollment form's required fields.
// Interests may be empty; notes are optional.
func ValidateEnrollment(in model.EnrollmentInput) Validation {
	var v Validation
	v.require(in.FullName, "full_name_required")
	v.require(in.Email, "email_required")
	v.require(in.Phone, "phone_required")
	v.require(in.Organization, "organization_required")
	v.require(in.Role, "role_required")
	v.require(in.StartDate, "start_date_required")
	return v
}
