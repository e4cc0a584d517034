// Package session tracks whether the CLI user is signed in and reacts to
// session changes reported by the remote store client.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/locagri/internal/client/client"
	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/logging"
)

const LoginSuccessMessage = "Successfully logged in!"

var ErrMutationInFlight = errors.New("another login or logout is in progress")

type State int

const (
	Unresolved State = iota
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is the machine state. UserID is set only when Authenticated.
type Snapshot struct {
	State  State
	UserID string
}

// Store is the part of client.Client the machine needs.
type Store interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context) error
	GetCurrentSession(ctx context.Context) (*models.Session, error)
	OnSessionChange(fn func(client.SessionEvent)) (unsubscribe func())
}

type Machine struct {
	store  Store
	logger logging.Logger

	mu       sync.Mutex
	snapshot Snapshot
	mutating bool

	listenersMu sync.Mutex
	nextID      int
	listeners   map[int]func(Snapshot)

	startOnce   sync.Once
	unsubscribe func()
}

func NewMachine(store Store, logger logging.Logger) *Machine {
	return &Machine{
		store:     store,
		logger:    logger.With("module", "session"),
		listeners: make(map[int]func(Snapshot)),
	}
}

// Start subscribes to store notifications and resolves the existing
// session. Calls after the first are no-ops.
func (m *Machine) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		m.unsubscribe = m.store.OnSessionChange(m.onStoreEvent)

		s, err := m.store.GetCurrentSession(ctx)
		if err != nil {
			m.logger.Error(ctx, "failed to resolve session", "error", err)
		}

		next := Snapshot{State: Anonymous}
		if err == nil && s != nil {
			next = Snapshot{State: Authenticated, UserID: s.UserID}
		}

		m.transition(func(cur Snapshot) (Snapshot, bool) {
			// a store event may already have resolved the state
			if cur.State != Unresolved {
				return cur, false
			}
			return next, true
		})
	})
}

func (m *Machine) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m *Machine) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot
}

// Subscribe registers fn for state transitions. fn is not called for the
// current state.
func (m *Machine) Subscribe(fn func(Snapshot)) func() {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() {
		m.listenersMu.Lock()
		delete(m.listeners, id)
		m.listenersMu.Unlock()
	}
}

// Login signs in and returns the success message. On failure the state is
// unchanged and the error carries the store's message.
func (m *Machine) Login(ctx context.Context, email, password string) (string, error) {
	if err := m.beginMutation(); err != nil {
		return "", err
	}
	defer m.endMutation()

	s, err := m.store.SignIn(ctx, email, password)
	if err != nil {
		return "", err
	}

	m.set(Snapshot{State: Authenticated, UserID: s.UserID})
	return LoginSuccessMessage, nil
}

// Logout signs out. It is a no-op when nobody is signed in. When the remote
// call fails the state is kept and the error is returned.
func (m *Machine) Logout(ctx context.Context) error {
	if err := m.beginMutation(); err != nil {
		return err
	}
	defer m.endMutation()

	if m.Current().State != Authenticated {
		return nil
	}

	if err := m.store.SignOut(ctx); err != nil {
		m.logger.Error(ctx, "error logging out", "error", err)
		return err
	}

	m.set(Snapshot{State: Anonymous})
	return nil
}

func (m *Machine) beginMutation() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mutating {
		return ErrMutationInFlight
	}
	m.mutating = true
	return nil
}

func (m *Machine) endMutation() {
	m.mu.Lock()
	m.mutating = false
	m.mu.Unlock()
}

func (m *Machine) onStoreEvent(ev client.SessionEvent) {
	if ev.Session != nil {
		m.set(Snapshot{State: Authenticated, UserID: ev.Session.UserID})
		return
	}
	m.set(Snapshot{State: Anonymous})
}

func (m *Machine) set(next Snapshot) {
	m.transition(func(Snapshot) (Snapshot, bool) { return next, true })
}

// transition applies f under the state lock and notifies listeners when
// the snapshot actually changed.
func (m *Machine) transition(f func(cur Snapshot) (Snapshot, bool)) {
	m.mu.Lock()
	next, ok := f(m.snapshot)
	if !ok || next == m.snapshot {
		m.mu.Unlock()
		return
	}
	m.snapshot = next
	m.mu.Unlock()

	m.listenersMu.Lock()
	fns := make([]func(Snapshot), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.listenersMu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}
