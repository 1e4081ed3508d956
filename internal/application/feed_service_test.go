package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/cadrebook/cadrebook-cli/internal/ports"
	"github.com/cadrebook/cadrebook-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedFixture(t *testing.T) (*FeedService, *mocks.MockPostGateway, *SessionStore, *mocks.MockTokenStore) {
	t.Helper()

	gateway := mocks.NewMockPostGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	auth := mocks.NewMockAuthGateway(t)
	session := NewSessionStore(tokens, auth)
	mutator := NewMutator(func() {
		_ = session.Logout(context.Background())
	})
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	return NewFeedService(gateway, mutator, session, clock), gateway, session, tokens
}

func TestFeedServiceLoad(t *testing.T) {
	svc, gateway, _, _ := newFeedFixture(t)

	q := ports.FeedQuery{Skip: 0, Limit: 20}
	gateway.EXPECT().Feed(mockAnyContext(), q).Return([]domain.Post{{ID: 1}, {ID: 2}}, nil).Once()

	require.NoError(t, svc.Load(context.Background(), q))
	assert.Equal(t, 2, svc.Posts().Len())
}

func TestFeedServiceLoadError(t *testing.T) {
	svc, gateway, _, _ := newFeedFixture(t)

	gateway.EXPECT().Feed(mockAnyContext(), ports.FeedQuery{}).Return(nil, errors.New("boom")).Once()

	err := svc.Load(context.Background(), ports.FeedQuery{})
	require.ErrorContains(t, err, "load feed")
	assert.Equal(t, 0, svc.Posts().Len())
}

func TestFeedServiceToggleLikeOptimisticThenConfirmed(t *testing.T) {
	svc, gateway, _, _ := newFeedFixture(t)
	svc.Posts().Set([]domain.Post{{ID: 1, LikesCount: 4, LikedByMe: false}})

	release := make(chan struct{})
	gateway.EXPECT().ToggleLike(mockAnyContext(), domain.PostID(1)).RunAndReturn(
		func(context.Context, domain.PostID) (domain.LikeState, error) {
			<-release
			return domain.LikeState{LikedByMe: true, LikesCount: 5}, nil
		}).Once()

	pending, err := svc.ToggleLike(context.Background(), 1)
	require.NoError(t, err)

	// Optimistic state is visible before the call resolves.
	got, _ := svc.Posts().Get(1)
	assert.True(t, got.LikedByMe)
	assert.Equal(t, 5, got.LikesCount)

	close(release)
	require.NoError(t, pending.Wait(context.Background()))

	got, _ = svc.Posts().Get(1)
	assert.True(t, got.LikedByMe)
	assert.Equal(t, 5, got.LikesCount)
}

func TestFeedServiceToggleLikeRollsBackOnFailure(t *testing.T) {
	svc, gateway, _, _ := newFeedFixture(t)
	prior := domain.Post{ID: 1, Content: "hi", LikesCount: 4, LikedByMe: false}
	svc.Posts().Set([]domain.Post{prior})

	gateway.EXPECT().ToggleLike(mockAnyContext(), domain.PostID(1)).
		Return(domain.LikeState{}, errors.New("timeout")).Once()

	pending, err := svc.ToggleLike(context.Background(), 1)
	require.NoError(t, err)
	require.Error(t, pending.Wait(context.Background()))

	got, _ := svc.Posts().Get(1)
	assert.Equal(t, prior, got)
}

func TestFeedServiceToggleLikeRejectsDuplicate(t *testing.T) {
	svc, gateway, _, _ := newFeedFixture(t)
	svc.Posts().Set([]domain.Post{{ID: 1, LikesCount: 4}})

	release := make(chan struct{})
	gateway.EXPECT().ToggleLike(mockAnyContext(), domain.PostID(1)).RunAndReturn(
		func(context.Context, domain.PostID) (domain.LikeState, error) {
			<-release
			return domain.LikeState{LikedByMe: true, LikesCount: 5}, nil
		}).Once()

	pending, err := svc.ToggleLike(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.ToggleLike(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrMutationInFlight)

	close(release)
	require.NoError(t, pending.Wait(context.Background()))
}

func TestFeedServiceToggleLikeUnknownPost(t *testing.T) {
	svc, _, _, _ := newFeedFixture(t)

	_, err := svc.ToggleLike(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFeedServiceCreatePostSwapsProvisionalForCanonical(t *testing.T) {
	svc, gateway, session, tokens := newFeedFixture(t)

	tokens.EXPECT().Save(mockAnyContext(), "tok").Return(nil).Once()
	require.NoError(t, session.Login(context.Background(), "tok", domain.UserSummary{ID: 9, Username: "ada"}))

	release := make(chan struct{})
	canonical := domain.Post{ID: 42, UserID: 9, Content: "hello"}
	gateway.EXPECT().CreatePost(mockAnyContext(), "hello").RunAndReturn(
		func(context.Context, string) (domain.Post, error) {
			<-release
			return canonical, nil
		}).Once()

	pending, err := svc.CreatePost(context.Background(), "hello")
	require.NoError(t, err)

	// The provisional post is at the top with a negative id and the
	// session's identity as author.
	snapshot := svc.Posts().Snapshot()
	require.Len(t, snapshot, 1)
	assert.Negative(t, int64(snapshot[0].ID))
	assert.Equal(t, domain.UserID(9), snapshot[0].UserID)
	require.NotNil(t, snapshot[0].Author)
	assert.Equal(t, "ada", snapshot[0].Author.Username)

	close(release)
	require.NoError(t, pending.Wait(context.Background()))

	snapshot = svc.Posts().Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, domain.PostID(42), snapshot[0].ID)
}

func TestFeedServiceCreatePostRollbackRemovesProvisional(t *testing.T) {
	svc, gateway, _, _ := newFeedFixture(t)
	svc.Posts().Set([]domain.Post{{ID: 1}})

	gateway.EXPECT().CreatePost(mockAnyContext(), "hello").
		Return(domain.Post{}, errors.New("rejected")).Once()

	pending, err := svc.CreatePost(context.Background(), "hello")
	require.NoError(t, err)
	require.Error(t, pending.Wait(context.Background()))

	snapshot := svc.Posts().Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, domain.PostID(1), snapshot[0].ID)
}

func TestFeedServiceCreatePostValidatesBeforeDispatch(t *testing.T) {
	svc, _, _, _ := newFeedFixture(t)

	_, err := svc.CreatePost(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrContentEmpty)
	assert.Equal(t, 0, svc.Posts().Len())
}

func TestFeedServiceEditPostPreservesLikeState(t *testing.T) {
	svc, gateway, _, _ := newFeedFixture(t)
	svc.Posts().Set([]domain.Post{{ID: 3, Content: "old", LikesCount: 7, LikedByMe: true}})

	// The update endpoint omits the viewer's like fields.
	gateway.EXPECT().UpdatePost(mockAnyContext(), domain.PostID(3), "new").
		Return(domain.Post{ID: 3, Content: "new"}, nil).Once()

	pending, err := svc.EditPost(context.Background(), 3, "new")
	require.NoError(t, err)
	require.NoError(t, pending.Wait(context.Background()))

	got, _ := svc.Posts().Get(3)
	assert.Equal(t, "new", got.Content)
	assert.Equal(t, 7, got.LikesCount)
	assert.True(t, got.LikedByMe)
}

func TestFeedServiceEditPostRollsBackContent(t *testing.T) {
	svc, gateway, _, _ := newFeedFixture(t)
	prior := domain.Post{ID: 3, Content: "old", LikesCount: 7, LikedByMe: true}
	svc.Posts().Set([]domain.Post{prior})

	gateway.EXPECT().UpdatePost(mockAnyContext(), domain.PostID(3), "new").
		Return(domain.Post{}, errors.New("rejected")).Once()

	pending, err := svc.EditPost(context.Background(), 3, "new")
	require.NoError(t, err)
	require.Error(t, pending.Wait(context.Background()))

	got, _ := svc.Posts().Get(3)
	assert.Equal(t, prior, got)
}

func TestFeedServiceDeletePostReinsertsOnFailure(t *testing.T) {
	svc, gateway, _, _ := newFeedFixture(t)
	svc.Posts().Set([]domain.Post{{ID: 1}, {ID: 2}, {ID: 3}})

	release := make(chan struct{})
	gateway.EXPECT().DeletePost(mockAnyContext(), domain.PostID(2)).RunAndReturn(
		func(context.Context, domain.PostID) error {
			<-release
			return errors.New("forbidden")
		}).Once()

	pending, err := svc.DeletePost(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, svc.Posts().Len())

	close(release)
	require.Error(t, pending.Wait(context.Background()))

	snapshot := svc.Posts().Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, domain.PostID(2), snapshot[1].ID)
}

func TestFeedServiceDeletePostConfirmed(t *testing.T) {
	svc, gateway, _, _ := newFeedFixture(t)
	svc.Posts().Set([]domain.Post{{ID: 1}, {ID: 2}})

	gateway.EXPECT().DeletePost(mockAnyContext(), domain.PostID(2)).Return(nil).Once()

	pending, err := svc.DeletePost(context.Background(), 2)
	require.NoError(t, err)
	require.NoError(t, pending.Wait(context.Background()))

	assert.Equal(t, 1, svc.Posts().Len())
}

func TestFeedServiceUnauthorizedCommitForcesLogout(t *testing.T) {
	svc, gateway, session, tokens := newFeedFixture(t)
	svc.Posts().Set([]domain.Post{{ID: 1, LikesCount: 4}})

	tokens.EXPECT().Save(mockAnyContext(), "tok").Return(nil).Once()
	require.NoError(t, session.Login(context.Background(), "tok", domain.UserSummary{ID: 1, Username: "ada"}))

	tokens.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
	gateway.EXPECT().ToggleLike(mockAnyContext(), domain.PostID(1)).
		Return(domain.LikeState{}, domain.ErrUnauthorized).Once()

	pending, err := svc.ToggleLike(context.Background(), 1)
	require.NoError(t, err)
	require.ErrorIs(t, pending.Wait(context.Background()), domain.ErrUnauthorized)

	assert.Equal(t, domain.SessionAnonymous, session.Snapshot().State)
}
