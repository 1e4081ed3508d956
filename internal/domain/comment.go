package domain

import "time"

type CommentID int64

type Comment struct {
	ID        CommentID
	PostID    PostID
	UserID    UserID
	Author    *UserSummary
	Content   string
	CreatedAt time.Time
}
