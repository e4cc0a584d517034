// Package scope binds asynchronous work to the lifetime of a screen.
// Results that arrive after the screen is gone are dropped.
package scope

import (
	"context"
	"sync"
)

type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

func New(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context is cancelled when the scope closes.
func (s *Scope) Context() context.Context {
	return s.ctx
}

func (s *Scope) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
}

func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Apply runs fn unless the scope is closed and reports whether it ran.
// Close waits for a running fn to return.
func (s *Scope) Apply(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	fn()
	return true
}

// Run calls load with the scope's context and hands the result to apply
// if the scope is still open by then.
func Run[T any](s *Scope, load func(ctx context.Context) T, apply func(T)) bool {
	v := load(s.ctx)
	return s.Apply(func() { apply(v) })
}
