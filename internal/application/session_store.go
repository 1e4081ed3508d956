package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/cadrebook/cadrebook-cli/internal/ports"
)

// SessionSnapshot is one externally observable session state. Token and user
// are present together or absent together in every snapshot.
type SessionSnapshot struct {
	State   domain.SessionState
	Session domain.Session
}

// SessionStore owns the process-wide session: the token, the resolved
// identity, and their persistence. All writes go through its methods, and
// every transition notifies subscribers synchronously before the mutating
// call returns, so no observer can see the session and the store disagree.
type SessionStore struct {
	mu      sync.Mutex
	state   domain.SessionState
	session domain.Session
	tokens  ports.TokenStore
	auth    ports.AuthGateway
	subs    map[int]func(SessionSnapshot)
	nextSub int
}

func NewSessionStore(tokens ports.TokenStore, auth ports.AuthGateway) *SessionStore {
	return &SessionStore{
		state:  domain.SessionPending,
		tokens: tokens,
		auth:   auth,
		subs:   map[int]func(SessionSnapshot){},
	}
}

func (s *SessionStore) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionSnapshot{State: s.state, Session: s.session}
}

// Token returns the current session token, or "" while anonymous/pending.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

// User returns the authenticated identity, if any.
func (s *SessionStore) User() (domain.UserSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil {
		return domain.UserSummary{}, false
	}
	return *s.session.User, true
}

// Subscribe registers a transition observer and returns its cancel func.
// Observers run synchronously inside the transitioning call.
func (s *SessionStore) Subscribe(fn func(SessionSnapshot)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.nextSub
	s.nextSub++
	s.subs[key] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, key)
	}
}

// Restore reads the persisted token and, when one exists, resolves its
// identity through the auth gateway before the session becomes authorized.
// Any failure falls back to anonymous and clears the stale token; restore
// never surfaces an error to the caller.
func (s *SessionStore) Restore(ctx context.Context) SessionSnapshot {
	token, err := s.tokens.Load(ctx)
	if err != nil || token == "" {
		return s.transition(domain.SessionAnonymous, domain.Session{})
	}

	user, err := s.auth.CurrentUser(ctx, token)
	if err != nil {
		_ = s.tokens.Clear(ctx)
		return s.transition(domain.SessionAnonymous, domain.Session{})
	}

	return s.transition(domain.SessionAuthorized, domain.Session{Token: token, User: &user})
}

// Login installs a session obtained from a successful authentication
// exchange and persists the token. No network round-trip happens here.
func (s *SessionStore) Login(ctx context.Context, token string, user domain.UserSummary) error {
	s.transition(domain.SessionAuthorized, domain.Session{Token: token, User: &user})

	if err := s.tokens.Save(ctx, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	return nil
}

// Logout clears the session. The local transition always happens, whatever
// the persistence layer says; the returned error only reports a failure to
// clear the durable slot.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.transition(domain.SessionAnonymous, domain.Session{})

	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted session token: %w", err)
	}
	return nil
}

func (s *SessionStore) transition(state domain.SessionState, session domain.Session) SessionSnapshot {
	s.mu.Lock()
	s.state = state
	s.session = session

	snapshot := SessionSnapshot{State: state, Session: session}
	subs := make([]func(SessionSnapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return snapshot
}
