package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/cadrebook/cadrebook-cli/internal/ports"
)

// PostAdapter implements ports.PostGateway over the /posts endpoints.
type PostAdapter struct {
	Client *Client
}

type postAuthor struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	DisplayName *string `json:"display_name"`
}

type postResponse struct {
	ID         int64       `json:"id"`
	Content    string      `json:"content"`
	CreatedAt  apiTime     `json:"created_at"`
	UpdatedAt  apiTime     `json:"updated_at"`
	LikesCount int         `json:"likes_count"`
	LikedByMe  bool        `json:"liked_by_me"`
	UserID     int64       `json:"user_id"`
	Author     *postAuthor `json:"author"`
}

type postContentRequest struct {
	Content string `json:"content"`
}

type likeResponse struct {
	PostID     int64 `json:"post_id"`
	LikesCount int   `json:"likes_count"`
	LikedByMe  bool  `json:"liked_by_me"`
}

func (a PostAdapter) Feed(ctx context.Context, q ports.FeedQuery) ([]domain.Post, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(q.Skip))
	query.Set("limit", strconv.Itoa(q.Limit))
	if q.FollowingOnly {
		query.Set("following", "true")
	}

	var resp []postResponse
	if err := a.Client.get(ctx, "/posts/feed", query, &resp); err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	return toPosts(resp), nil
}

func (a PostAdapter) UserPosts(ctx context.Context, username string, skip, limit int) ([]domain.Post, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var resp []postResponse
	if err := a.Client.get(ctx, "/posts/user/"+url.PathEscape(username), query, &resp); err != nil {
		return nil, fmt.Errorf("fetch posts for %s: %w", username, err)
	}
	return toPosts(resp), nil
}

func (a PostAdapter) CreatePost(ctx context.Context, content string) (domain.Post, error) {
	var resp postResponse
	if err := a.Client.post(ctx, "/posts", postContentRequest{Content: content}, &resp); err != nil {
		return domain.Post{}, fmt.Errorf("create post: %w", err)
	}
	return resp.toDomain(), nil
}

func (a PostAdapter) UpdatePost(ctx context.Context, id domain.PostID, content string) (domain.Post, error) {
	var resp postResponse
	if err := a.Client.put(ctx, "/posts/"+formatID(int64(id)), postContentRequest{Content: content}, &resp); err != nil {
		return domain.Post{}, fmt.Errorf("update post %d: %w", id, err)
	}
	return resp.toDomain(), nil
}

func (a PostAdapter) DeletePost(ctx context.Context, id domain.PostID) error {
	if err := a.Client.delete(ctx, "/posts/"+formatID(int64(id)), nil); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}

func (a PostAdapter) ToggleLike(ctx context.Context, id domain.PostID) (domain.LikeState, error) {
	var resp likeResponse
	if err := a.Client.post(ctx, "/posts/"+formatID(int64(id))+"/like", nil, &resp); err != nil {
		return domain.LikeState{}, fmt.Errorf("toggle like on post %d: %w", id, err)
	}
	return domain.LikeState{LikedByMe: resp.LikedByMe, LikesCount: resp.LikesCount}, nil
}

func (r postResponse) toDomain() domain.Post {
	post := domain.Post{
		ID:         domain.PostID(r.ID),
		UserID:     domain.UserID(r.UserID),
		Content:    r.Content,
		CreatedAt:  r.CreatedAt.Time,
		UpdatedAt:  r.UpdatedAt.Time,
		LikesCount: r.LikesCount,
		LikedByMe:  r.LikedByMe,
	}
	if r.Author != nil {
		post.Author = &domain.UserSummary{
			ID:       domain.UserID(r.Author.ID),
			Username: r.Author.Username,
		}
		if r.Author.DisplayName != nil {
			post.Author.DisplayName = *r.Author.DisplayName
		}
	}
	return post
}

func toPosts(resp []postResponse) []domain.Post {
	posts := make([]domain.Post, 0, len(resp))
	for _, r := range resp {
		posts = append(posts, r.toDomain())
	}
	return posts
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
