// Package router decides which screens the CLI offers. The active flow is
// derived from the session state only; screens navigate within a flow.
package router

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/locagri/internal/client/scope"
	"github.com/dmitrijs2005/locagri/internal/client/session"
)

var ErrScreenNotInFlow = errors.New("screen not available in current flow")

type Flow int

const (
	FlowLoading Flow = iota
	FlowAuth
	FlowMain
)

func (f Flow) String() string {
	switch f {
	case FlowLoading:
		return "loading"
	case FlowAuth:
		return "auth"
	case FlowMain:
		return "main"
	default:
		return "unknown"
	}
}

type Screen string

const (
	ScreenLoading  Screen = "loading"
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
	ScreenHome     Screen = "home"
	ScreenDetail   Screen = "detail"
	ScreenMaps     Screen = "maps"
)

// screens lists each flow's screens, initial screen first.
var screens = map[Flow][]Screen{
	FlowLoading: {ScreenLoading},
	FlowAuth:    {ScreenLogin, ScreenRegister},
	FlowMain:    {ScreenHome, ScreenDetail, ScreenMaps},
}

// parents maps stacked screens to the screen Back returns to.
var parents = map[Screen]Screen{
	ScreenDetail: ScreenHome,
}

func FlowFor(s session.State) Flow {
	switch s {
	case session.Authenticated:
		return FlowMain
	case session.Anonymous:
		return FlowAuth
	default:
		return FlowLoading
	}
}

// SessionSource is the part of session.Machine the router follows.
type SessionSource interface {
	Current() session.Snapshot
	Subscribe(fn func(session.Snapshot)) func()
}

type Router struct {
	parent context.Context

	mu     sync.Mutex
	flow   Flow
	screen Screen
	scope  *scope.Scope
}

func New(ctx context.Context) *Router {
	return &Router{
		parent: ctx,
		flow:   FlowLoading,
		screen: ScreenLoading,
		scope:  scope.New(ctx),
	}
}

// Follow applies the current session state and every later transition.
// The returned function stops following.
func (r *Router) Follow(src SessionSource) func() {
	unsubscribe := src.Subscribe(r.OnSession)
	r.OnSession(src.Current())
	return unsubscribe
}

// OnSession switches flow when the session state maps to a different one.
func (r *Router) OnSession(s session.Snapshot) {
	next := FlowFor(s.State)

	r.mu.Lock()
	defer r.mu.Unlock()
	if next == r.flow {
		return
	}
	r.flow = next
	r.enter(screens[next][0])
}

func (r *Router) enter(screen Screen) {
	r.scope.Close()
	r.scope = scope.New(r.parent)
	r.screen = screen
}

// Navigate moves to screen within the current flow and returns the new
// screen's scope.
func (r *Router) Navigate(screen Screen) (*scope.Scope, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !slices.Contains(screens[r.flow], screen) {
		return nil, fmt.Errorf("%w: %s in %s", ErrScreenNotInFlow, screen, r.flow)
	}
	r.enter(screen)
	return r.scope, nil
}

// Back pops a stacked screen. It reports false when there is nothing to pop.
func (r *Router) Back() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	parent, ok := parents[r.screen]
	if !ok {
		return false
	}
	r.enter(parent)
	return true
}

func (r *Router) Flow() Flow {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flow
}

func (r *Router) Screen() Screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.screen
}

// Scope returns the lifetime scope of the current screen.
func (r *Router) Scope() *scope.Scope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scope
}

// Close ends the current screen's scope.
func (r *Router) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scope.Close()
}
