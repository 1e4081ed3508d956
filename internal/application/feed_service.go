package application

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/cadrebook/cadrebook-cli/internal/ports"
)

// FeedService mediates optimistic post mutations over an observable post
// list. The list is the view's storage; the service never keeps entity
// state of its own outside it.
type FeedService struct {
	gateway ports.PostGateway
	mutator *Mutator
	session *SessionStore
	clock   ports.Clock
	posts   *List[domain.Post]

	// provisionalID hands out negative ids for entities created
	// optimistically, before the server assigns a real one.
	provisionalID atomic.Int64
}

func NewFeedService(gateway ports.PostGateway, mutator *Mutator, session *SessionStore, clock ports.Clock) *FeedService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &FeedService{
		gateway: gateway,
		mutator: mutator,
		session: session,
		clock:   clock,
		posts:   NewList(func(p domain.Post) int64 { return int64(p.ID) }),
	}
}

// Posts exposes the observable post list backing the feed view.
func (s *FeedService) Posts() *List[domain.Post] {
	return s.posts
}

func (s *FeedService) Load(ctx context.Context, q ports.FeedQuery) error {
	posts, err := s.gateway.Feed(ctx, q)
	if err != nil {
		return fmt.Errorf("load feed: %w", err)
	}

	s.posts.Set(posts)
	return nil
}

func (s *FeedService) LoadUser(ctx context.Context, username string, skip, limit int) error {
	posts, err := s.gateway.UserPosts(ctx, username, skip, limit)
	if err != nil {
		return fmt.Errorf("load posts for %s: %w", username, err)
	}

	s.posts.Set(posts)
	return nil
}

// ToggleLike flips the viewer's like on a post. The flipped state and the
// one-step counter move are visible before the network call dispatches;
// failure restores the exact prior snapshot.
func (s *FeedService) ToggleLike(ctx context.Context, id domain.PostID) (*Pending, error) {
	prior, ok := s.posts.Get(int64(id))
	if !ok {
		return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}

	return Apply(ctx, s.mutator, prior, Intent[domain.Post]{
		Kind:    KindLike,
		Entity:  postRef(id),
		Predict: domain.Post.WithLikeToggled,
		Apply:   func(p domain.Post) { s.posts.Replace(p) },
		Commit: func(ctx context.Context, predicted domain.Post) (domain.Post, error) {
			state, err := s.gateway.ToggleLike(ctx, id)
			if err != nil {
				return domain.Post{}, err
			}
			next := predicted
			next.LikedByMe = state.LikedByMe
			next.LikesCount = state.LikesCount
			return next, nil
		},
	})
}

// CreatePost publishes a provisional post at the top of the feed, then
// swaps it for the server-assigned one. Content is validated before any
// network dispatch.
func (s *FeedService) CreatePost(ctx context.Context, content string) (*Pending, error) {
	content, err := domain.ValidatePostContent(content)
	if err != nil {
		return nil, err
	}

	provID := s.provisionalID.Add(-1)
	var author *domain.UserSummary
	var userID domain.UserID
	if user, ok := s.session.User(); ok {
		author = &user
		userID = user.ID
	}

	provisional := domain.Post{
		ID:        domain.PostID(provID),
		UserID:    userID,
		Author:    author,
		Content:   content,
		CreatedAt: s.clock.Now(),
		UpdatedAt: s.clock.Now(),
	}

	return Apply(ctx, s.mutator, provisional, Intent[domain.Post]{
		Kind:    KindCreate,
		Entity:  postRef(provisional.ID),
		Predict: func(p domain.Post) domain.Post { return p },
		Apply:   func(p domain.Post) { s.posts.Prepend(p) },
		Commit: func(ctx context.Context, _ domain.Post) (domain.Post, error) {
			return s.gateway.CreatePost(ctx, content)
		},
		Resolve: func(canonical domain.Post) {
			s.posts.ReplaceID(provID, canonical)
		},
		Rollback: func(domain.Post) {
			s.posts.Remove(provID)
		},
	})
}

// EditPost replaces a post's content optimistically. The server's edit
// response does not echo the viewer's like state, so the locally known
// like fields are carried forward instead of regressing to their zero
// values.
func (s *FeedService) EditPost(ctx context.Context, id domain.PostID, content string) (*Pending, error) {
	content, err := domain.ValidatePostContent(content)
	if err != nil {
		return nil, err
	}

	prior, ok := s.posts.Get(int64(id))
	if !ok {
		return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}

	return Apply(ctx, s.mutator, prior, Intent[domain.Post]{
		Kind:    KindEdit,
		Entity:  postRef(id),
		Predict: func(p domain.Post) domain.Post { return p.WithContent(content) },
		Apply:   func(p domain.Post) { s.posts.Replace(p) },
		Commit: func(ctx context.Context, _ domain.Post) (domain.Post, error) {
			return s.gateway.UpdatePost(ctx, id, content)
		},
		Reconcile: func(local, canonical domain.Post) domain.Post {
			next := canonical
			next.LikedByMe = local.LikedByMe
			next.LikesCount = local.LikesCount
			return next
		},
	})
}

// DeletePost removes the post from the feed immediately. A failed delete
// reinserts it at the index it came from.
func (s *FeedService) DeletePost(ctx context.Context, id domain.PostID) (*Pending, error) {
	prior, ok := s.posts.Get(int64(id))
	if !ok {
		return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}

	var removedIndex int
	return Apply(ctx, s.mutator, prior, Intent[domain.Post]{
		Kind:    KindDelete,
		Entity:  postRef(id),
		Predict: func(p domain.Post) domain.Post { return p },
		Apply: func(domain.Post) {
			_, removedIndex, _ = s.posts.Remove(int64(id))
		},
		Commit: func(ctx context.Context, predicted domain.Post) (domain.Post, error) {
			return predicted, s.gateway.DeletePost(ctx, id)
		},
		Resolve: func(domain.Post) {},
		Rollback: func(p domain.Post) {
			s.posts.InsertAt(removedIndex, p)
		},
	})
}

func postRef(id domain.PostID) string {
	return fmt.Sprintf("post/%d", id)
}
