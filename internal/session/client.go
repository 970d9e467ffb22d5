package session

import (
	"context"
	"sync"

	"github.com/pharmapath/backend/internal/service"
)

// ServiceClient adapts service.AuthService to the Client interface for
// in-process consumers. It holds the one piece of token state (the current
// session token) and emits auth-change events after each successful
// operation, so a Manager observing it stays consistent.
type ServiceClient struct {
	auth service.AuthService

	mu    sync.Mutex
	token string

	subsMu  sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

// NewServiceClient creates a ServiceClient. token may be a previously stored
// session token to resume ("" starts signed out).
func NewServiceClient(auth service.AuthService, token string) *ServiceClient {
	return &ServiceClient{auth: auth, token: token, subs: make(map[int]chan Event)}
}

var _ Client = (*ServiceClient)(nil)

// CurrentSession resolves the stored token to an identity. A missing or
// invalid token is a signed-out state, not an error.
func (c *ServiceClient) CurrentSession(ctx context.Context) (*Identity, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token == "" {
		return nil, nil
	}

	user, err := c.auth.CurrentUser(ctx, token)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Expired or revoked token: forget it and report signed out.
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		return nil, nil
	}
	return &Identity{UserID: user.ID, Email: user.Email}, nil
}

// SignIn verifies credentials, stores the issued token and emits a
// signed-in event.
func (c *ServiceClient) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	user, sess, err := c.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	id := &Identity{UserID: user.ID, Email: user.Email}
	c.setToken(sess.Token)
	c.emit(Event{Type: EventSignedIn, Identity: id})
	return id, nil
}

// SignUp registers, stores the issued token and emits a signed-in event.
func (c *ServiceClient) SignUp(ctx context.Context, email, password, name string) (*Identity, error) {
	user, sess, err := c.auth.SignUp(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	id := &Identity{UserID: user.ID, Email: user.Email}
	c.setToken(sess.Token)
	c.emit(Event{Type: EventSignedIn, Identity: id})
	return id, nil
}

// SignOut deletes the stored session and emits a signed-out event.
// Signing out while already signed out succeeds.
func (c *ServiceClient) SignOut(ctx context.Context) error {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token == "" {
		return nil
	}
	if err := c.auth.SignOut(ctx, token); err != nil {
		return err
	}
	c.setToken("")
	c.emit(Event{Type: EventSignedOut})
	return nil
}

// AuthStateChanges subscribes to this client's auth-change stream.
func (c *ServiceClient) AuthStateChanges() (<-chan Event, func()) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	id := c.nextSub
	c.nextSub++
	ch := make(chan Event, 4)
	c.subs[id] = ch
	return ch, func() {
		c.subsMu.Lock()
		defer c.subsMu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
}

// Token returns the current session token for persistence across restarts.
func (c *ServiceClient) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *ServiceClient) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *ServiceClient) emit(ev Event) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
