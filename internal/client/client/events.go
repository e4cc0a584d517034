package client

import (
	"sync"

	"github.com/dmitrijs2005/locagri/internal/client/models"
)

type EventKind int

const (
	SignedIn EventKind = iota
	SignedOut
	Restored
	Expired
)

func (k EventKind) String() string {
	switch k {
	case SignedIn:
		return "signed_in"
	case SignedOut:
		return "signed_out"
	case Restored:
		return "restored"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// SessionEvent reports a change of the signed-in identity. Session is nil
// after SignedOut and Expired.
type SessionEvent struct {
	Kind    EventKind
	Session *models.Session
}

type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(SessionEvent)
}

func (l *listeners) add(fn func(SessionEvent)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func(SessionEvent))
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

// emit calls every listener outside the lock so listeners may unsubscribe.
func (l *listeners) emit(ev SessionEvent) {
	l.mu.Lock()
	fns := make([]func(SessionEvent), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
