package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
)

// Kind identifies one class of optimistic mutation. At most one mutation of
// a given kind may be in flight per entity; different kinds on the same
// entity, and the same kind on different entities, are independent.
type Kind string

const (
	KindLike          Kind = "like"
	KindFollow        Kind = "follow"
	KindCreate        Kind = "create"
	KindEdit          Kind = "edit"
	KindDelete        Kind = "delete"
	KindCommentCreate Kind = "comment-create"
	KindCommentDelete Kind = "comment-delete"
)

type intentKey struct {
	kind   Kind
	entity string
}

// Mutator runs optimistic mutations: predict, apply locally, commit against
// the transport, then reconcile the canonical state or roll back to the
// exact pre-operation snapshot. It owns nothing but the in-flight guard;
// entity storage stays with the caller.
type Mutator struct {
	mu           sync.Mutex
	inFlight     map[intentKey]struct{}
	onAuthReject func()
}

// NewMutator creates a Mutator. onAuthReject runs whenever a commit fails
// with domain.ErrUnauthorized, before the per-operation rollback surfaces;
// it is how an expired session forces a logout regardless of which mutation
// tripped over it.
func NewMutator(onAuthReject func()) *Mutator {
	return &Mutator{
		inFlight:     map[intentKey]struct{}{},
		onAuthReject: onAuthReject,
	}
}

// Intent describes one optimistic mutation over an entity of type E.
type Intent[E any] struct {
	Kind   Kind
	Entity string

	// Predict computes the locally applied state. Pure and synchronous.
	Predict func(E) E
	// Apply publishes a state to whatever owns the entity. It is invoked
	// with the predicted state before Commit is dispatched.
	Apply func(E)
	// Commit performs the transport call and returns the canonical state.
	Commit func(context.Context, E) (E, error)
	// Reconcile merges the canonical state with the locally known one, for
	// endpoints whose response omits derived fields. Nil means the canonical
	// state replaces the local state wholesale.
	Reconcile func(local, canonical E) E
	// Resolve publishes the reconciled state on success. Nil falls back to
	// Apply. Deletions use this to suppress re-publication.
	Resolve func(E)
	// Rollback restores the prior snapshot on failure. Nil falls back to
	// Apply.
	Rollback func(E)
}

// Pending resolves when the commit completes.
type Pending struct {
	done chan struct{}
	err  error
}

// Wait blocks until the mutation resolves or ctx is done, and returns the
// commit error, if any.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the commit error once the mutation has resolved.
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Apply runs one optimistic mutation. The predicted state is published
// before Apply returns; the commit resolves on the returned Pending. A
// second mutation of the same kind on the same entity is rejected with
// domain.ErrMutationInFlight until the first resolves.
func Apply[E any](ctx context.Context, m *Mutator, prior E, intent Intent[E]) (*Pending, error) {
	key := intentKey{kind: intent.Kind, entity: intent.Entity}
	if !m.acquire(key) {
		return nil, fmt.Errorf("%s %s: %w", intent.Kind, intent.Entity, domain.ErrMutationInFlight)
	}

	predicted := intent.Predict(prior)
	intent.Apply(predicted)

	resolve := intent.Resolve
	if resolve == nil {
		resolve = intent.Apply
	}
	rollback := intent.Rollback
	if rollback == nil {
		rollback = intent.Apply
	}

	pending := &Pending{done: make(chan struct{})}
	go func() {
		defer close(pending.done)
		defer m.release(key)

		canonical, err := intent.Commit(ctx, predicted)
		if err != nil {
			rollback(prior)
			if errors.Is(err, domain.ErrUnauthorized) && m.onAuthReject != nil {
				m.onAuthReject()
			}
			pending.err = err
			return
		}

		next := canonical
		if intent.Reconcile != nil {
			next = intent.Reconcile(predicted, canonical)
		}
		resolve(next)
	}()

	return pending, nil
}

func (m *Mutator) acquire(key intentKey) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, busy := m.inFlight[key]; busy {
		return false
	}
	m.inFlight[key] = struct{}{}
	return true
}

func (m *Mutator) release(key intentKey) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inFlight, key)
}
