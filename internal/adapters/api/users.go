package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
)

// UserAdapter implements ports.UserGateway over the /users endpoints.
type UserAdapter struct {
	Client *Client
}

type profileResponse struct {
	ID                 int64    `json:"id"`
	Username           string   `json:"username"`
	Email              string   `json:"email"`
	DisplayName        *string  `json:"display_name"`
	Bio                *string  `json:"bio"`
	Sex                *string  `json:"sex"`
	Birthday           *apiTime `json:"birthday"`
	RelationshipStatus *string  `json:"relationship_status"`
	CreatedAt          apiTime  `json:"created_at"`
	FollowersCount     int      `json:"followers_count"`
	FollowingCount     int      `json:"following_count"`
	IsFollowing        bool     `json:"is_following"`
}

type profileUpdateRequest struct {
	DisplayName        *string `json:"display_name,omitempty"`
	Bio                *string `json:"bio,omitempty"`
	Sex                *string `json:"sex,omitempty"`
	Birthday           *string `json:"birthday,omitempty"`
	RelationshipStatus *string `json:"relationship_status,omitempty"`
}

type searchResult struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	DisplayName    *string `json:"display_name"`
	FollowersCount int     `json:"followers_count"`
	IsFollowing    bool    `json:"is_following"`
}

type followResponse struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followers_count"`
	FollowingCount int  `json:"following_count"`
}

func (a UserAdapter) Profile(ctx context.Context, username string) (domain.Profile, error) {
	var resp profileResponse
	if err := a.Client.get(ctx, "/users/"+url.PathEscape(username), nil, &resp); err != nil {
		return domain.Profile{}, fmt.Errorf("fetch profile %s: %w", username, err)
	}
	return resp.toDomain(), nil
}

func (a UserAdapter) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error) {
	req := profileUpdateRequest{
		DisplayName:        update.DisplayName,
		Bio:                update.Bio,
		Sex:                update.Sex,
		RelationshipStatus: update.RelationshipStatus,
	}
	if update.Birthday != nil {
		birthday := update.Birthday.Format("2006-01-02")
		req.Birthday = &birthday
	}

	var resp profileResponse
	if err := a.Client.put(ctx, "/users/me/profile", req, &resp); err != nil {
		return domain.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return resp.toDomain(), nil
}

func (a UserAdapter) Search(ctx context.Context, query string) ([]domain.UserSummary, error) {
	values := url.Values{}
	values.Set("q", query)

	var resp []searchResult
	if err := a.Client.get(ctx, "/users/search", values, &resp); err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	users := make([]domain.UserSummary, 0, len(resp))
	for _, r := range resp {
		user := domain.UserSummary{
			ID:          domain.UserID(r.ID),
			Username:    r.Username,
			IsFollowing: r.IsFollowing,
		}
		if r.DisplayName != nil {
			user.DisplayName = *r.DisplayName
		}
		users = append(users, user)
	}
	return users, nil
}

func (a UserAdapter) Follow(ctx context.Context, username string) (domain.FollowState, error) {
	var resp followResponse
	if err := a.Client.post(ctx, "/users/"+url.PathEscape(username)+"/follow", nil, &resp); err != nil {
		return domain.FollowState{}, fmt.Errorf("follow %s: %w", username, err)
	}
	return resp.toDomain(), nil
}

func (a UserAdapter) Unfollow(ctx context.Context, username string) (domain.FollowState, error) {
	var resp followResponse
	if err := a.Client.delete(ctx, "/users/"+url.PathEscape(username)+"/follow", &resp); err != nil {
		return domain.FollowState{}, fmt.Errorf("unfollow %s: %w", username, err)
	}
	return resp.toDomain(), nil
}

func (r profileResponse) toDomain() domain.Profile {
	profile := domain.Profile{
		ID:             domain.UserID(r.ID),
		Username:       r.Username,
		CreatedAt:      r.CreatedAt.Time,
		FollowersCount: r.FollowersCount,
		FollowingCount: r.FollowingCount,
		IsFollowing:    r.IsFollowing,
	}
	if r.DisplayName != nil {
		profile.DisplayName = *r.DisplayName
	}
	if r.Bio != nil {
		profile.Bio = *r.Bio
	}
	if r.Sex != nil {
		profile.Sex = *r.Sex
	}
	if r.RelationshipStatus != nil {
		profile.RelationshipStatus = *r.RelationshipStatus
	}
	if r.Birthday != nil && !r.Birthday.IsZero() {
		birthday := r.Birthday.Time
		profile.Birthday = &birthday
	}
	return profile
}

func (r followResponse) toDomain() domain.FollowState {
	return domain.FollowState{
		Following:      r.Following,
		FollowersCount: r.FollowersCount,
		FollowingCount: r.FollowingCount,
	}
}
