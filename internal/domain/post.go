package domain

import "time"

type PostID int64

type Post struct {
	ID         PostID
	UserID     UserID
	Author     *UserSummary
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	LikesCount int
	LikedByMe  bool
}

// LikeState is the server's canonical answer to a like toggle.
type LikeState struct {
	LikedByMe  bool
	LikesCount int
}

// WithLikeToggled predicts the outcome of a like toggle: the flag flips and
// the counter moves by exactly one, never below zero. LikedByMe and
// LikesCount stay mutually consistent in the predicted state.
func (p Post) WithLikeToggled() Post {
	next := p
	if p.LikedByMe {
		next.LikedByMe = false
		next.LikesCount = p.LikesCount - 1
		if next.LikesCount < 0 {
			next.LikesCount = 0
		}
	} else {
		next.LikedByMe = true
		next.LikesCount = p.LikesCount + 1
	}
	return next
}

// WithContent predicts the outcome of an edit. Timestamps stay untouched;
// the server assigns the authoritative updated_at on commit.
func (p Post) WithContent(content string) Post {
	next := p
	next.Content = content
	return next
}
