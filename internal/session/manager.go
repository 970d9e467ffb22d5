// Package session holds the authenticated identity for a client of the
// API. Identity is initialized once with a bounded retry, then kept live
// by the client's auth-change stream. The manager never owns token
// lifecycle; that stays with the auth service behind the Client interface.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// State is the manager's lifecycle state.
type State int

const (
	StateInitializing State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Identity is the read-only projection of the signed-in user that consumers
// render. It carries no token material.
type Identity struct {
	UserID string
	Email  string
}

// EventType classifies auth-change events.
type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)

// Event is pushed on the auth-change stream whenever the session changes.
// Identity is nil for signed-out events.
type Event struct {
	Type     EventType
	Identity *Identity
}

// Client is the auth boundary the manager drives. Implementations own
// session/token state; the manager only holds the identity projection.
type Client interface {
	// CurrentSession returns the current identity, or nil when signed out.
	CurrentSession(ctx context.Context) (*Identity, error)
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignUp(ctx context.Context, email, password, name string) (*Identity, error)
	SignOut(ctx context.Context) error
	// AuthStateChanges subscribes to the auth-change stream. The returned
	// cancel func releases the subscription.
	AuthStateChanges() (<-chan Event, func())
}

// OpResult is the immediate outcome of a sign-in/up/out operation. It is the
// single trigger for user feedback; the auth-change subscription only
// reconciles the manager's snapshot in the background.
type OpResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Config tunes the initial session fetch.
type Config struct {
	// MaxAttempts bounds the initial fetch. Defaults to 3.
	MaxAttempts int
	// InitialBackoff is the delay after the first failed attempt, doubling
	// after each subsequent failure. Defaults to 1s.
	InitialBackoff time.Duration
	// Sleep is injectable for tests; nil means time.Sleep.
	Sleep func(time.Duration)
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = time.Second
	}
	if c.Sleep == nil {
		c.Sleep = time.Sleep
	}
	return c
}

// Manager is the single owner of the process-wide session snapshot.
// Consumers read through Snapshot and mutate only via SignIn/SignUp/SignOut.
type Manager struct {
	client Client
	cfg    Config

	mu       sync.RWMutex
	state    State
	identity *Identity
	// eventSeen blocks a late-finishing init fetch from clobbering a fresher
	// subscription event.
	eventSeen bool

	subsMu  sync.Mutex
	subs    map[int]chan Event
	nextSub int

	cancelWatch func()
	watchDone   chan struct{}
	initDone    chan struct{}
	closeOnce   sync.Once
}

// NewManager creates a Manager in the Initializing state. Call Start to
// begin the initial fetch and the auth-change watch.
func NewManager(client Client, cfg Config) *Manager {
	return &Manager{
		client: client,
		cfg:    cfg.withDefaults(),
		state:  StateInitializing,
		subs:   make(map[int]chan Event),
	}
}

// Start launches the auth-change watch and the retrying initial fetch.
// The watch is independent of the fetch's outcome, so a sign-in landing
// during initialization is never lost.
func (m *Manager) Start(ctx context.Context) {
	events, cancel := m.client.AuthStateChanges()
	m.cancelWatch = cancel
	m.watchDone = make(chan struct{})
	m.initDone = make(chan struct{})

	go m.watch(events)
	go m.initialize(ctx)
}

// watch applies every auth-change event to the snapshot and fans it out to
// subscribers.
func (m *Manager) watch(events <-chan Event) {
	defer close(m.watchDone)
	for ev := range events {
		m.mu.Lock()
		m.eventSeen = true
		if ev.Identity != nil {
			m.state = StateAuthenticated
			m.identity = ev.Identity
		} else {
			m.state = StateAnonymous
			m.identity = nil
		}
		m.mu.Unlock()
		m.broadcast(ev)
	}
}

// initialize fetches the current session with bounded exponential backoff.
// Exhausting all attempts collapses the state to Anonymous; the process
// must never hang waiting for identity.
func (m *Manager) initialize(ctx context.Context) {
	defer close(m.initDone)

	delay := m.cfg.InitialBackoff
	for attempt := 1; attempt <= m.cfg.MaxAttempts; attempt++ {
		id, err := m.client.CurrentSession(ctx)
		if err == nil {
			m.finishInit(id)
			return
		}
		slog.Warn("session fetch failed", "attempt", attempt, "error", err)
		if attempt == m.cfg.MaxAttempts {
			break
		}
		m.cfg.Sleep(delay)
		delay *= 2
	}
	slog.Info("session initialization exhausted retries, continuing anonymous")
	m.finishInit(nil)
}

// finishInit applies the initial fetch result unless a live event already
// overwrote the snapshot.
func (m *Manager) finishInit(id *Identity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.eventSeen {
		return
	}
	if id != nil {
		m.state = StateAuthenticated
		m.identity = id
	} else {
		m.state = StateAnonymous
		m.identity = nil
	}
}

// WaitReady blocks until the initial fetch settled or ctx is done.
func (m *Manager) WaitReady(ctx context.Context) error {
	select {
	case <-m.initDone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the current state and identity. The identity is a copy;
// consumers cannot mutate manager state through it.
func (m *Manager) Snapshot() (State, *Identity) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return m.state, nil
	}
	id := *m.identity
	return m.state, &id
}

// SignIn delegates to the client. The returned result drives immediate
// feedback; the snapshot updates via the subscription event.
func (m *Manager) SignIn(ctx context.Context, email, password string) OpResult {
	if _, err := m.client.SignIn(ctx, email, password); err != nil {
		return OpResult{Error: err.Error()}
	}
	return OpResult{Success: true}
}

// SignUp delegates to the client.
func (m *Manager) SignUp(ctx context.Context, email, password, name string) OpResult {
	if _, err := m.client.SignUp(ctx, email, password, name); err != nil {
		return OpResult{Error: err.Error()}
	}
	return OpResult{Success: true}
}

// SignOut delegates to the client.
func (m *Manager) SignOut(ctx context.Context) OpResult {
	if err := m.client.SignOut(ctx); err != nil {
		return OpResult{Error: err.Error()}
	}
	return OpResult{Success: true}
}

// Subscribe returns a channel receiving subsequent auth-change events and a
// cancel func. Slow consumers drop events rather than block the manager.
func (m *Manager) Subscribe() (<-chan Event, func()) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	id := m.nextSub
	m.nextSub++
	ch := make(chan Event, 4)
	m.subs[id] = ch
	return ch, func() {
		m.subsMu.Lock()
		defer m.subsMu.Unlock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}
}

func (m *Manager) broadcast(ev Event) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close tears down the auth-change subscription and all consumer
// subscriptions. Safe to call more than once.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		if m.cancelWatch != nil {
			m.cancelWatch()
			<-m.watchDone
		}
		m.subsMu.Lock()
		for id, ch := range m.subs {
			delete(m.subs, id)
			close(ch)
		}
		m.subsMu.Unlock()
	})
}
