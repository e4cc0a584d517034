package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/locagri/internal/client/client"
	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu sync.Mutex

	current    *models.Session
	currentErr error
	signInErr  error
	signOutErr error
	signInGate chan struct{}

	signOutCalls int
	subscribers  int
	listener     func(client.SessionEvent)
}

func (f *fakeStore) SignIn(_ context.Context, email, password string) (*models.Session, error) {
	if f.signInGate != nil {
		<-f.signInGate
	}
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &models.Session{UserID: "u-" + email, Email: email}, nil
}

func (f *fakeStore) SignOut(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signOutCalls++
	return f.signOutErr
}

func (f *fakeStore) GetCurrentSession(context.Context) (*models.Session, error) {
	return f.current, f.currentErr
}

func (f *fakeStore) OnSessionChange(fn func(client.SessionEvent)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscribers++
	f.listener = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.subscribers--
		f.listener = nil
	}
}

func (f *fakeStore) fire(ev client.SessionEvent) {
	f.mu.Lock()
	fn := f.listener
	f.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

func newMachine(store *fakeStore) (*Machine, *[]Snapshot) {
	m := NewMachine(store, logging.NewDiscardLogger())
	var seen []Snapshot
	m.Subscribe(func(s Snapshot) { seen = append(seen, s) })
	return m, &seen
}

func TestStart_ResolvesExistingSession(t *testing.T) {
	store := &fakeStore{current: &models.Session{UserID: "u1"}}
	m, seen := newMachine(store)

	assert.Equal(t, Unresolved, m.Current().State)
	m.Start(context.Background())
	m.Start(context.Background())

	assert.Equal(t, Snapshot{State: Authenticated, UserID: "u1"}, m.Current())
	assert.Equal(t, 1, store.subscribers)
	assert.Len(t, *seen, 1)
}

func TestStart_NoSessionOrErrorIsAnonymous(t *testing.T) {
	for name, store := range map[string]*fakeStore{
		"none":  {},
		"error": {currentErr: errors.New("offline")},
	} {
		t.Run(name, func(t *testing.T) {
			m, _ := newMachine(store)
			m.Start(context.Background())
			assert.Equal(t, Anonymous, m.Current().State)
		})
	}
}

func TestLogin(t *testing.T) {
	store := &fakeStore{}
	m, seen := newMachine(store)
	m.Start(context.Background())

	msg, err := m.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Successfully logged in!", msg)
	assert.Equal(t, Snapshot{State: Authenticated, UserID: "u-a@b.c"}, m.Current())
	assert.Equal(t, []Snapshot{{State: Anonymous}, {State: Authenticated, UserID: "u-a@b.c"}}, *seen)
}

func TestLogin_FailureKeepsAnonymousAndMessage(t *testing.T) {
	store := &fakeStore{signInErr: &client.StoreError{Message: "Invalid login credentials"}}
	m, seen := newMachine(store)
	m.Start(context.Background())

	msg, err := m.Login(context.Background(), "a@b.c", "bad")
	require.Error(t, err)
	assert.Empty(t, msg)
	assert.Equal(t, "Invalid login credentials", err.Error())
	assert.Equal(t, Anonymous, m.Current().State)
	assert.Len(t, *seen, 1)
}

func TestLogout(t *testing.T) {
	store := &fakeStore{current: &models.Session{UserID: "u1"}}
	m, seen := newMachine(store)
	m.Start(context.Background())

	require.NoError(t, m.Logout(context.Background()))
	assert.Equal(t, Anonymous, m.Current().State)
	assert.Equal(t, 1, store.signOutCalls)
	assert.Len(t, *seen, 2)
}

func TestLogout_AlreadyAnonymousIsNoop(t *testing.T) {
	store := &fakeStore{}
	m, seen := newMachine(store)
	m.Start(context.Background())

	require.NoError(t, m.Logout(context.Background()))
	assert.Equal(t, 0, store.signOutCalls)
	assert.Len(t, *seen, 1)
}

func TestLogout_RemoteFailureKeepsState(t *testing.T) {
	boom := errors.New("network down")
	store := &fakeStore{current: &models.Session{UserID: "u1"}, signOutErr: boom}
	m, _ := newMachine(store)
	m.Start(context.Background())

	assert.ErrorIs(t, m.Logout(context.Background()), boom)
	assert.Equal(t, Snapshot{State: Authenticated, UserID: "u1"}, m.Current())
}

func TestStoreEvents_DriveTransitions(t *testing.T) {
	store := &fakeStore{current: &models.Session{UserID: "u1"}}
	m, seen := newMachine(store)
	m.Start(context.Background())

	store.fire(client.SessionEvent{Kind: client.Restored, Session: &models.Session{UserID: "u1"}})
	assert.Len(t, *seen, 1, "same identity is not a transition")

	store.fire(client.SessionEvent{Kind: client.Expired})
	assert.Equal(t, Anonymous, m.Current().State)
	assert.Len(t, *seen, 2)

	m.Close()
	assert.Equal(t, 0, store.subscribers)
	store.fire(client.SessionEvent{Kind: client.SignedIn, Session: &models.Session{UserID: "u2"}})
	assert.Equal(t, Anonymous, m.Current().State)
}

func TestLogin_SecondMutationRejectedWhileInFlight(t *testing.T) {
	gate := make(chan struct{})
	store := &fakeStore{signInGate: gate}
	m := NewMachine(store, logging.NewDiscardLogger())
	m.Start(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := m.Login(context.Background(), "a@b.c", "secret")
		done <- err
	}()

	require.Eventually(t, func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.mutating
	}, time.Second, 5*time.Millisecond)

	_, err := m.Login(context.Background(), "x@y.z", "secret")
	assert.ErrorIs(t, err, ErrMutationInFlight)
	assert.ErrorIs(t, m.Logout(context.Background()), ErrMutationInFlight)

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, "u-a@b.c", m.Current().UserID)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unresolved", Unresolved.String())
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "unknown", State(9).String())
}
