package application

import (
	"sync"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
)

// Access is the three-state decision protected views consume.
type Access string

const (
	AccessPending Access = "pending"
	AccessDenied  Access = "denied"
	AccessGranted Access = "granted"
)

// AccessFor derives the access decision from a session state. Pure; the
// gate re-derives it on every session transition rather than caching a
// decision across a logout/login cycle.
func AccessFor(state domain.SessionState) Access {
	switch state {
	case domain.SessionAuthorized:
		return AccessGranted
	case domain.SessionAnonymous:
		return AccessDenied
	default:
		return AccessPending
	}
}

// RouteGate subscribes to the session store and republishes the derived
// access decision to its own observers. Because session notifications are
// synchronous, the gate can never lag the store.
type RouteGate struct {
	mu      sync.Mutex
	access  Access
	subs    map[int]func(Access)
	nextSub int
	cancel  func()
}

func NewRouteGate(store *SessionStore) *RouteGate {
	g := &RouteGate{
		access: AccessFor(store.Snapshot().State),
		subs:   map[int]func(Access){},
	}
	g.cancel = store.Subscribe(func(snapshot SessionSnapshot) {
		g.update(AccessFor(snapshot.State))
	})
	return g
}

func (g *RouteGate) Access() Access {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.access
}

// Subscribe registers an access observer and returns its cancel func.
func (g *RouteGate) Subscribe(fn func(Access)) (cancel func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := g.nextSub
	g.nextSub++
	g.subs[key] = fn

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.subs, key)
	}
}

// Close detaches the gate from the session store.
func (g *RouteGate) Close() {
	if g.cancel != nil {
		g.cancel()
	}
}

func (g *RouteGate) update(access Access) {
	g.mu.Lock()
	g.access = access
	subs := make([]func(Access), 0, len(g.subs))
	for _, fn := range g.subs {
		subs = append(subs, fn)
	}
	g.mu.Unlock()

	for _, fn := range subs {
		fn(access)
	}
}
