package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// published tracks every state the intent publishes, in order.
type published[E any] struct {
	mu     sync.Mutex
	states []E
}

func (p *published[E]) apply(state E) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, state)
}

func (p *published[E]) all() []E {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]E(nil), p.states...)
}

func (p *published[E]) last() E {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.states[len(p.states)-1]
}

func TestApplyPublishesPredictionBeforeCommitDispatch(t *testing.T) {
	m := NewMutator(nil)
	out := &published[domain.Post]{}
	release := make(chan struct{})

	prior := domain.Post{ID: 1, LikesCount: 4, LikedByMe: false}
	pending, err := Apply(context.Background(), m, prior, Intent[domain.Post]{
		Kind:    KindLike,
		Entity:  "post/1",
		Predict: domain.Post.WithLikeToggled,
		Apply:   out.apply,
		Commit: func(_ context.Context, predicted domain.Post) (domain.Post, error) {
			<-release
			return predicted, nil
		},
	})
	require.NoError(t, err)

	// The predicted state is observable before the commit resolves.
	assert.Equal(t, 5, out.last().LikesCount)
	assert.True(t, out.last().LikedByMe)

	close(release)
	require.NoError(t, pending.Wait(context.Background()))
}

func TestApplyRollsBackToExactPriorSnapshot(t *testing.T) {
	m := NewMutator(nil)
	out := &published[domain.Post]{}
	commitErr := errors.New("network down")

	prior := domain.Post{ID: 7, UserID: 2, Content: "hello", LikesCount: 4, LikedByMe: false}
	pending, err := Apply(context.Background(), m, prior, Intent[domain.Post]{
		Kind:    KindLike,
		Entity:  "post/7",
		Predict: domain.Post.WithLikeToggled,
		Apply:   out.apply,
		Commit: func(context.Context, domain.Post) (domain.Post, error) {
			return domain.Post{}, commitErr
		},
	})
	require.NoError(t, err)
	require.ErrorIs(t, pending.Wait(context.Background()), commitErr)

	states := out.all()
	require.Len(t, states, 2)
	assert.Equal(t, domain.Post{ID: 7, LikesCount: 5, LikedByMe: true, UserID: 2, Content: "hello"}, states[0])
	// Field-for-field equal to the pre-apply snapshot, not a recomputed inverse.
	assert.Equal(t, prior, states[1])
}

func TestApplyRejectsSecondMutationOfSameKindInFlight(t *testing.T) {
	m := NewMutator(nil)
	out := &published[domain.Post]{}
	release := make(chan struct{})
	commits := 0
	var commitsMu sync.Mutex

	intent := Intent[domain.Post]{
		Kind:    KindLike,
		Entity:  "post/1",
		Predict: domain.Post.WithLikeToggled,
		Apply:   out.apply,
		Commit: func(_ context.Context, predicted domain.Post) (domain.Post, error) {
			commitsMu.Lock()
			commits++
			commitsMu.Unlock()
			<-release
			return predicted, nil
		},
	}

	prior := domain.Post{ID: 1, LikesCount: 4}
	pending, err := Apply(context.Background(), m, prior, intent)
	require.NoError(t, err)

	// Rapid repeated toggles: every duplicate is rejected synchronously.
	for range 5 {
		_, err := Apply(context.Background(), m, prior, intent)
		require.ErrorIs(t, err, domain.ErrMutationInFlight)
	}

	close(release)
	require.NoError(t, pending.Wait(context.Background()))

	commitsMu.Lock()
	defer commitsMu.Unlock()
	assert.Equal(t, 1, commits)

	// Once resolved, the same kind may start again.
	pending, err = Apply(context.Background(), m, out.last(), Intent[domain.Post]{
		Kind:    KindLike,
		Entity:  "post/1",
		Predict: domain.Post.WithLikeToggled,
		Apply:   out.apply,
		Commit: func(_ context.Context, predicted domain.Post) (domain.Post, error) {
			return predicted, nil
		},
	})
	require.NoError(t, err)
	require.NoError(t, pending.Wait(context.Background()))
}

func TestApplyAllowsIndependentKindsAndEntities(t *testing.T) {
	m := NewMutator(nil)
	out := &published[domain.Post]{}
	release := make(chan struct{})

	blocking := func(_ context.Context, predicted domain.Post) (domain.Post, error) {
		<-release
		return predicted, nil
	}

	likeOnOne, err := Apply(context.Background(), m, domain.Post{ID: 1}, Intent[domain.Post]{
		Kind: KindLike, Entity: "post/1", Predict: domain.Post.WithLikeToggled, Apply: out.apply, Commit: blocking,
	})
	require.NoError(t, err)

	// Editing the same entity while a like is in flight is independent.
	editOnOne, err := Apply(context.Background(), m, domain.Post{ID: 1}, Intent[domain.Post]{
		Kind: KindEdit, Entity: "post/1", Predict: func(p domain.Post) domain.Post { return p.WithContent("x") }, Apply: out.apply, Commit: blocking,
	})
	require.NoError(t, err)

	// Liking a different entity is independent too.
	likeOnTwo, err := Apply(context.Background(), m, domain.Post{ID: 2}, Intent[domain.Post]{
		Kind: KindLike, Entity: "post/2", Predict: domain.Post.WithLikeToggled, Apply: out.apply, Commit: blocking,
	})
	require.NoError(t, err)

	close(release)
	require.NoError(t, likeOnOne.Wait(context.Background()))
	require.NoError(t, editOnOne.Wait(context.Background()))
	require.NoError(t, likeOnTwo.Wait(context.Background()))
}

func TestApplyReconcileMergesCanonicalWithLocal(t *testing.T) {
	m := NewMutator(nil)
	out := &published[domain.Post]{}

	prior := domain.Post{ID: 3, Content: "old", LikesCount: 7, LikedByMe: true}
	pending, err := Apply(context.Background(), m, prior, Intent[domain.Post]{
		Kind:    KindEdit,
		Entity:  "post/3",
		Predict: func(p domain.Post) domain.Post { return p.WithContent("new") },
		Apply:   out.apply,
		Commit: func(context.Context, domain.Post) (domain.Post, error) {
			// The edit endpoint does not echo the viewer's like state.
			return domain.Post{ID: 3, Content: "new"}, nil
		},
		Reconcile: func(local, canonical domain.Post) domain.Post {
			next := canonical
			next.LikedByMe = local.LikedByMe
			next.LikesCount = local.LikesCount
			return next
		},
	})
	require.NoError(t, err)
	require.NoError(t, pending.Wait(context.Background()))

	final := out.last()
	assert.Equal(t, "new", final.Content)
	assert.Equal(t, 7, final.LikesCount)
	assert.True(t, final.LikedByMe)
}

func TestApplyInvokesAuthRejectCallbackOnUnauthorized(t *testing.T) {
	rejected := make(chan struct{}, 1)
	m := NewMutator(func() { rejected <- struct{}{} })
	out := &published[domain.Post]{}

	pending, err := Apply(context.Background(), m, domain.Post{ID: 1}, Intent[domain.Post]{
		Kind:    KindLike,
		Entity:  "post/1",
		Predict: domain.Post.WithLikeToggled,
		Apply:   out.apply,
		Commit: func(context.Context, domain.Post) (domain.Post, error) {
			return domain.Post{}, domain.ErrUnauthorized
		},
	})
	require.NoError(t, err)
	require.ErrorIs(t, pending.Wait(context.Background()), domain.ErrUnauthorized)

	select {
	case <-rejected:
	default:
		t.Fatal("auth rejection callback not invoked")
	}
}

func TestApplyDeleteUsesResolveAndRollbackHooks(t *testing.T) {
	m := NewMutator(nil)
	posts := NewList(func(p domain.Post) int64 { return int64(p.ID) })
	posts.Set([]domain.Post{{ID: 1}, {ID: 2}, {ID: 3}})

	deleteErr := errors.New("delete rejected")
	prior, _ := posts.Get(2)

	var removedIndex int
	pending, err := Apply(context.Background(), m, prior, Intent[domain.Post]{
		Kind:    KindDelete,
		Entity:  "post/2",
		Predict: func(p domain.Post) domain.Post { return p },
		Apply: func(domain.Post) {
			_, removedIndex, _ = posts.Remove(2)
		},
		Commit: func(_ context.Context, predicted domain.Post) (domain.Post, error) {
			// Removal is observable while the delete is in flight.
			assert.Equal(t, 2, posts.Len())
			return predicted, deleteErr
		},
		Resolve: func(domain.Post) {},
		Rollback: func(p domain.Post) {
			posts.InsertAt(removedIndex, p)
		},
	})
	require.NoError(t, err)
	require.ErrorIs(t, pending.Wait(context.Background()), deleteErr)

	// Reinserted at the original index, not appended at the end.
	snapshot := posts.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, domain.PostID(2), snapshot[1].ID)
}

func TestLikesCountNeverDriftsMoreThanOneFromServer(t *testing.T) {
	m := NewMutator(nil)
	out := &published[domain.Post]{}
	serverCount := 4

	post := domain.Post{ID: 1, LikesCount: serverCount}
	for i := range 6 {
		pending, err := Apply(context.Background(), m, post, Intent[domain.Post]{
			Kind:    KindLike,
			Entity:  "post/1",
			Predict: domain.Post.WithLikeToggled,
			Apply:   out.apply,
			Commit: func(_ context.Context, predicted domain.Post) (domain.Post, error) {
				if i%2 == 0 {
					return predicted, nil
				}
				return domain.Post{}, errors.New("flaky")
			},
		})
		require.NoError(t, err)
		_ = pending.Wait(context.Background())
		post = out.last()
	}

	for _, state := range out.all() {
		diff := state.LikesCount - serverCount
		assert.LessOrEqual(t, diff, 1)
		assert.GreaterOrEqual(t, diff, -1)
	}
}
