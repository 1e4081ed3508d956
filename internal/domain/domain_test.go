package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostWithLikeToggled(t *testing.T) {
	tests := []struct {
		name      string
		post      Post
		wantLiked bool
		wantCount int
	}{
		{name: "like", post: Post{LikedByMe: false, LikesCount: 4}, wantLiked: true, wantCount: 5},
		{name: "unlike", post: Post{LikedByMe: true, LikesCount: 5}, wantLiked: false, wantCount: 4},
		{name: "unlike never goes negative", post: Post{LikedByMe: true, LikesCount: 0}, wantLiked: false, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.post.WithLikeToggled()
			assert.Equal(t, tt.wantLiked, got.LikedByMe)
			assert.Equal(t, tt.wantCount, got.LikesCount)
		})
	}
}

func TestPostWithLikeToggledStaysConsistent(t *testing.T) {
	// liked_by_me=true must imply likes_count >= 1, including mid-flight
	// predicted states.
	p := Post{ID: 1, LikedByMe: false, LikesCount: 0}
	for range 5 {
		p = p.WithLikeToggled()
		if p.LikedByMe {
			assert.GreaterOrEqual(t, p.LikesCount, 1)
		}
	}
}

func TestProfileWithFollowToggled(t *testing.T) {
	p := Profile{Username: "ada", IsFollowing: false, FollowersCount: 3}

	followed := p.WithFollowToggled()
	assert.True(t, followed.IsFollowing)
	assert.Equal(t, 4, followed.FollowersCount)

	unfollowed := followed.WithFollowToggled()
	assert.False(t, unfollowed.IsFollowing)
	assert.Equal(t, 3, unfollowed.FollowersCount)
}

func TestValidatePostContent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "trims surrounding whitespace", raw: "  hello  ", want: "hello"},
		{name: "empty", raw: "", wantErr: ErrContentEmpty},
		{name: "whitespace only", raw: "   \n\t ", wantErr: ErrContentEmpty},
		{name: "at limit", raw: strings.Repeat("a", MaxPostContentLength), want: strings.Repeat("a", MaxPostContentLength)},
		{name: "over limit", raw: strings.Repeat("a", MaxPostContentLength+1), wantErr: ErrContentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePostContent(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCommentContent(t *testing.T) {
	_, err := ValidateCommentContent(strings.Repeat("b", MaxCommentLength+1))
	require.ErrorIs(t, err, ErrContentTooLong)

	got, err := ValidateCommentContent(" nice post ")
	require.NoError(t, err)
	assert.Equal(t, "nice post", got)
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "lowercases", raw: "Ada_99", want: "ada_99"},
		{name: "too short", raw: "ab", wantErr: true},
		{name: "too long", raw: strings.Repeat("a", MaxUsernameLength+1), wantErr: true},
		{name: "illegal characters", raw: "ada lovelace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateUsername(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionConsistent(t *testing.T) {
	user := &UserSummary{ID: 1, Username: "ada"}

	assert.True(t, Session{}.Consistent())
	assert.True(t, Session{Token: "t", User: user}.Consistent())
	assert.False(t, Session{Token: "t"}.Consistent())
	assert.False(t, Session{User: user}.Consistent())
}
