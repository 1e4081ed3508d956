package api

import (
	"context"
	"fmt"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/cadrebook/cadrebook-cli/internal/ports"
)

// AuthAdapter implements ports.AuthGateway over the /auth endpoints.
type AuthAdapter struct {
	Client *Client
}

type userResponse struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	DisplayName    *string `json:"display_name"`
	CreatedAt      apiTime `json:"created_at"`
	FollowersCount int     `json:"followers_count"`
	FollowingCount int     `json:"following_count"`
}

type authResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a AuthAdapter) Login(ctx context.Context, username, password string) (ports.Credentials, error) {
	var resp authResponse
	err := a.Client.post(ctx, "/auth/login", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return ports.Credentials{}, fmt.Errorf("login: %w", err)
	}
	return resp.credentials(), nil
}

func (a AuthAdapter) Register(ctx context.Context, username, email, password string) (ports.Credentials, error) {
	var resp authResponse
	err := a.Client.post(ctx, "/auth/register", registerRequest{Username: username, Email: email, Password: password}, &resp)
	if err != nil {
		return ports.Credentials{}, fmt.Errorf("register: %w", err)
	}
	return resp.credentials(), nil
}

// CurrentUser resolves the identity behind an explicit token. The token is
// passed in rather than pulled from the client's TokenSource because restore
// runs before the session store carries one.
func (a AuthAdapter) CurrentUser(ctx context.Context, token string) (domain.UserSummary, error) {
	restore := *a.Client
	restore.TokenSource = func() string { return token }

	var resp userResponse
	if err := restore.get(ctx, "/auth/me", nil, &resp); err != nil {
		return domain.UserSummary{}, fmt.Errorf("resolve current user: %w", err)
	}
	return resp.summary(), nil
}

func (r authResponse) credentials() ports.Credentials {
	return ports.Credentials{Token: r.AccessToken, User: r.User.summary()}
}

func (r userResponse) summary() domain.UserSummary {
	summary := domain.UserSummary{
		ID:       domain.UserID(r.ID),
		Username: r.Username,
	}
	if r.DisplayName != nil {
		summary.DisplayName = *r.DisplayName
	}
	return summary
}
