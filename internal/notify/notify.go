// Package notify delivers best-effort submission notifications.
//
// Notifications are advisory: the system of record is the persisted
// submission row. A delivery failure is logged by the caller and never
// reverses or fails the submission it follows, which is why Send returns
// the concrete *Error type instead of a plain error.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notification is the payload posted to the notification endpoint.
type Notification struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject"`
	Content  string         `json:"content"`
	FormData map[string]any `json:"formData"`
}

// Error describes a failed delivery attempt. StatusCode is zero when the
// request never reached the endpoint.
type Error struct {
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("notify: endpoint returned %d", e.StatusCode)
	}
	return fmt.Sprintf("notify: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Dispatcher sends a notification. Implementations must never panic;
// a nil return means the endpoint acknowledged the payload.
type Dispatcher interface {
	Send(ctx context.Context, n Notification) *Error
}

// HTTPDispatcher posts notifications as JSON to an internal HTTP endpoint.
type HTTPDispatcher struct {
	endpoint string
	client   *http.Client
}

// NewHTTPDispatcher creates a dispatcher for the given endpoint URL.
func NewHTTPDispatcher(endpoint string) *HTTPDispatcher {
	return &HTTPDispatcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

var _ Dispatcher = (*HTTPDispatcher)(nil)

// Send posts the notification and treats any non-2xx response as a failure.
func (d *HTTPDispatcher) Send(ctx context.Context, n Notification) *Error {
	body, err := json.Marshal(n)
	if err != nil {
		return &Error{Err: fmt.Errorf("marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return &Error{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return &Error{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode}
	}
	return nil
}
