package ports

import (
	"context"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
)

// Credentials is the result of a successful authentication exchange.
type Credentials struct {
	Token string
	User  domain.UserSummary
}

type AuthGateway interface {
	Login(ctx context.Context, username, password string) (Credentials, error)
	Register(ctx context.Context, username, email, password string) (Credentials, error)
	// CurrentUser resolves the identity behind a token. Used during session
	// restore, before the session itself carries a token.
	CurrentUser(ctx context.Context, token string) (domain.UserSummary, error)
}

type FeedQuery struct {
	Skip          int
	Limit         int
	FollowingOnly bool
}

type PostGateway interface {
	Feed(ctx context.Context, q FeedQuery) ([]domain.Post, error)
	UserPosts(ctx context.Context, username string, skip, limit int) ([]domain.Post, error)
	CreatePost(ctx context.Context, content string) (domain.Post, error)
	// UpdatePost returns the canonical post. The response does not carry the
	// viewer's like state; callers carry it forward from the local entity.
	UpdatePost(ctx context.Context, id domain.PostID, content string) (domain.Post, error)
	DeletePost(ctx context.Context, id domain.PostID) error
	ToggleLike(ctx context.Context, id domain.PostID) (domain.LikeState, error)
}

type UserGateway interface {
	Profile(ctx context.Context, username string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error)
	Search(ctx context.Context, query string) ([]domain.UserSummary, error)
	Follow(ctx context.Context, username string) (domain.FollowState, error)
	Unfollow(ctx context.Context, username string) (domain.FollowState, error)
}

type CommentGateway interface {
	Comments(ctx context.Context, postID domain.PostID) ([]domain.Comment, error)
	CreateComment(ctx context.Context, postID domain.PostID, content string) (domain.Comment, error)
	DeleteComment(ctx context.Context, id domain.CommentID) error
}
