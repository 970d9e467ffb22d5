// Package form models the per-form submission state machine:
//
//	Idle → Submitting → {Success | Error}
//
// Error → Submitting is permitted (resubmit); Success is terminal for the
// mounted form instance. The draft survives a failed submission so nothing
// the visitor typed is lost.
package form

import (
	"errors"
	"sync"
)

// Status is the form instance's submission status.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrInFlight is returned when a submission starts while one is in flight.
// Callers use it to keep the submit control disabled.
var ErrInFlight = errors.New("submission already in flight")

// ErrCompleted is returned when a submission starts on a form that already
// succeeded; a successful form must be remounted to submit again.
var ErrCompleted = errors.New("form already submitted")

// Tracker guards one mounted form instance. It is the only holder of the
// draft between submissions.
type Tracker struct {
	mu        sync.Mutex
	status    Status
	draft     any
	lastError string
}

// NewTracker returns a Tracker in the Idle state.
func NewTracker() *Tracker {
	return &Tracker{status: StatusIdle}
}

// Begin moves to Submitting and records the draft. Permitted from Idle and
// Error; a concurrent submission or a completed form is rejected.
func (t *Tracker) Begin(draft any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch t.status {
	case StatusSubmitting:
		return ErrInFlight
	case StatusSuccess:
		return ErrCompleted
	}
	t.status = StatusSubmitting
	t.draft = draft
	t.lastError = ""
	return nil
}

// Succeed moves Submitting → Success and clears the draft.
func (t *Tracker) Succeed() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusSubmitting {
		return errors.New("no submission in flight")
	}
	t.status = StatusSuccess
	t.draft = nil
	return nil
}

// Fail moves Submitting → Error, keeping the draft for resubmission.
func (t *Tracker) Fail(message string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusSubmitting {
		return errors.New("no submission in flight")
	}
	t.status = StatusError
	t.lastError = message
	return nil
}

// Status returns the current status.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Draft returns the retained form state, or nil outside Submitting/Error.
func (t *Tracker) Draft() any {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.draft
}

// LastError returns the message recorded by the most recent Fail.
func (t *Tracker) LastError() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastError
}
