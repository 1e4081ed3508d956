package domain

import "time"

type UserID int64

// UserSummary is an immutable snapshot of a user as other entities reference
// it. It is replaced wholesale, never patched in place. IsFollowing reflects
// the viewing user's relationship and is only meaningful where the server
// reports it (search results, profiles).
type UserSummary struct {
	ID          UserID
	Username    string
	DisplayName string
	IsFollowing bool
}

type Profile struct {
	ID                 UserID
	Username           string
	DisplayName        string
	Bio                string
	Sex                string
	Birthday           *time.Time
	RelationshipStatus string
	CreatedAt          time.Time
	FollowersCount     int
	FollowingCount     int
	IsFollowing        bool
}

// ProfileUpdate carries the editable profile fields. Nil fields are omitted
// from the request and stay untouched on the server.
type ProfileUpdate struct {
	DisplayName        *string
	Bio                *string
	Sex                *string
	Birthday           *time.Time
	RelationshipStatus *string
}

// FollowState is the server's canonical answer to a follow or unfollow.
type FollowState struct {
	Following      bool
	FollowersCount int
	FollowingCount int
}

// WithFollowToggled predicts the outcome of a follow toggle on a search
// result row. The counter delta is exactly one per toggle.
func (u UserSummary) WithFollowToggled() UserSummary {
	next := u
	next.IsFollowing = !u.IsFollowing
	return next
}

// WithFollowToggled predicts the outcome of a follow toggle on a profile,
// keeping the follower counter consistent with the predicted edge.
func (p Profile) WithFollowToggled() Profile {
	next := p
	if p.IsFollowing {
		next.IsFollowing = false
		next.FollowersCount = p.FollowersCount - 1
		if next.FollowersCount < 0 {
			next.FollowersCount = 0
		}
	} else {
		next.IsFollowing = true
		next.FollowersCount = p.FollowersCount + 1
	}
	return next
}
