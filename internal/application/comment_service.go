package application

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/cadrebook/cadrebook-cli/internal/ports"
)

// CommentService mediates optimistic comment mutations over one post's
// comment thread.
//
// Comment deletion rolls back on failure like every other mutation here: a
// comment the server refused to delete reappears at its original position
// instead of silently staying gone.
type CommentService struct {
	gateway ports.CommentGateway
	mutator *Mutator
	session *SessionStore
	clock   ports.Clock
	thread  *List[domain.Comment]

	provisionalID atomic.Int64
}

func NewCommentService(gateway ports.CommentGateway, mutator *Mutator, session *SessionStore, clock ports.Clock) *CommentService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &CommentService{
		gateway: gateway,
		mutator: mutator,
		session: session,
		clock:   clock,
		thread:  NewList(func(c domain.Comment) int64 { return int64(c.ID) }),
	}
}

// Thread exposes the observable comment list for the loaded post.
func (s *CommentService) Thread() *List[domain.Comment] {
	return s.thread
}

func (s *CommentService) Load(ctx context.Context, postID domain.PostID) error {
	comments, err := s.gateway.Comments(ctx, postID)
	if err != nil {
		return fmt.Errorf("load comments for post %d: %w", postID, err)
	}

	s.thread.Set(comments)
	return nil
}

// Add appends a provisional comment immediately and swaps it for the
// server-assigned one on success. Content is validated before dispatch.
func (s *CommentService) Add(ctx context.Context, postID domain.PostID, content string) (*Pending, error) {
	content, err := domain.ValidateCommentContent(content)
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

	provisional := domain.Comment{
		ID:        domain.CommentID(provID),
		PostID:    postID,
		UserID:    userID,
		Author:    author,
		Content:   content,
		CreatedAt: s.clock.Now(),
	}

	return Apply(ctx, s.mutator, provisional, Intent[domain.Comment]{
		Kind:    KindCommentCreate,
		Entity:  commentRef(provisional.ID),
		Predict: func(c domain.Comment) domain.Comment { return c },
		Apply:   func(c domain.Comment) { s.thread.Append(c) },
		Commit: func(ctx context.Context, _ domain.Comment) (domain.Comment, error) {
			return s.gateway.CreateComment(ctx, postID, content)
		},
		Resolve: func(canonical domain.Comment) {
			s.thread.ReplaceID(provID, canonical)
		},
		Rollback: func(domain.Comment) {
			s.thread.Remove(provID)
		},
	})
}

// Delete removes the comment from the thread immediately, restoring it at
// its original index when the server rejects the delete.
func (s *CommentService) Delete(ctx context.Context, id domain.CommentID) (*Pending, error) {
	prior, ok := s.thread.Get(int64(id))
	if !ok {
		return nil, fmt.Errorf("comment %d: %w", id, domain.ErrNotFound)
	}

	var removedIndex int
	return Apply(ctx, s.mutator, prior, Intent[domain.Comment]{
		Kind:    KindCommentDelete,
		Entity:  commentRef(id),
		Predict: func(c domain.Comment) domain.Comment { return c },
		Apply: func(domain.Comment) {
			_, removedIndex, _ = s.thread.Remove(int64(id))
		},
		Commit: func(ctx context.Context, predicted domain.Comment) (domain.Comment, error) {
			return predicted, s.gateway.DeleteComment(ctx, id)
		},
		Resolve: func(domain.Comment) {},
		Rollback: func(c domain.Comment) {
			s.thread.InsertAt(removedIndex, c)
		},
	})
}

func commentRef(id domain.CommentID) string {
	return fmt.Sprintf("comment/%d", id)
}
