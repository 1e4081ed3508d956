package api

import (
	"context"
	"fmt"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
)

// CommentAdapter implements ports.CommentGateway over the comment endpoints.
type CommentAdapter struct {
	Client *Client
}

type commentResponse struct {
	ID        int64       `json:"id"`
	PostID    int64       `json:"post_id"`
	UserID    int64       `json:"user_id"`
	Content   string      `json:"content"`
	CreatedAt apiTime     `json:"created_at"`
	Author    *postAuthor `json:"author"`
}

func (a CommentAdapter) Comments(ctx context.Context, postID domain.PostID) ([]domain.Comment, error) {
	var resp []commentResponse
	if err := a.Client.get(ctx, "/posts/"+formatID(int64(postID))+"/comments", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch comments for post %d: %w", postID, err)
	}

	comments := make([]domain.Comment, 0, len(resp))
	for _, r := range resp {
		comments = append(comments, r.toDomain())
	}
	return comments, nil
}

func (a CommentAdapter) CreateComment(ctx context.Context, postID domain.PostID, content string) (domain.Comment, error) {
	var resp commentResponse
	err := a.Client.post(ctx, "/posts/"+formatID(int64(postID))+"/comments", postContentRequest{Content: content}, &resp)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("create comment on post %d: %w", postID, err)
	}
	return resp.toDomain(), nil
}

func (a CommentAdapter) DeleteComment(ctx context.Context, id domain.CommentID) error {
	if err := a.Client.delete(ctx, "/comments/"+formatID(int64(id)), nil); err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	return nil
}

func (r commentResponse) toDomain() domain.Comment {
	comment := domain.Comment{
		ID:        domain.CommentID(r.ID),
		PostID:    domain.PostID(r.PostID),
		UserID:    domain.UserID(r.UserID),
		Content:   r.Content,
		CreatedAt: r.CreatedAt.Time,
	}
	if r.Author != nil {
		comment.Author = &domain.UserSummary{
			ID:       domain.UserID(r.Author.ID),
			Username: r.Author.Username,
		}
		if r.Author.DisplayName != nil {
			comment.Author.DisplayName = *r.Author.DisplayName
		}
	}
	return comment
}
