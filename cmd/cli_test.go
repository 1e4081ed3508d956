package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// newBackendFixture serves a minimal CadreBook API for CLI tests. Only the
// token "tok-1" is accepted.
func newBackendFixture(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != "ada" || req.Password != "hunter22" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Incorrect username or password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token": "tok-1", "token_type": "bearer",
			"user": {"id": 1, "username": "ada", "email": "ada@example.com",
				"created_at": "2025-01-01T00:00:00", "followers_count": 0, "following_count": 0}}`))
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id": 1, "username": "ada", "email": "ada@example.com",
			"created_at": "2025-01-01T00:00:00", "followers_count": 0, "following_count": 0}`))
	})
	mux.HandleFunc("GET /posts/feed", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "content": "first post", "created_at": "2025-06-01T10:00:00",
			"updated_at": "2025-06-01T10:00:00", "likes_count": 4, "liked_by_me": false, "user_id": 2,
			"author": {"id": 2, "username": "bob", "display_name": "Bob"}}]`))
	})
	mux.HandleFunc("POST /posts/1/like", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"post_id": 1, "likes_count": 5, "liked_by_me": true}`))
	})
	mux.HandleFunc("GET /posts/1/comments", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 10, "post_id": 1, "user_id": 2, "content": "nice",
			"created_at": "2025-06-01T11:00:00", "author": {"id": 2, "username": "bob", "display_name": null}}]`))
	})
	mux.HandleFunc("GET /users/search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 2, "username": "bob", "display_name": "Bob",
			"followers_count": 3, "is_following": false}]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	t.Setenv("CB_API_BASE_URL", server.URL)
	return server
}

func writeSessionFixture(t *testing.T, home string) {
	t.Helper()

	configDir := filepath.Join(home, ".cadrebook")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	session := "version = 1\ntoken = 'tok-1'\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "session.toml"), []byte(session), 0o600))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestWhoamiWithoutSession(t *testing.T) {
	home := t.TempDir()
	newBackendFixture(t)

	stdout, _, err := executeCLI(t, home, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not logged in.")
}

func TestFeedRequiresLogin(t *testing.T) {
	home := t.TempDir()
	newBackendFixture(t)

	_, _, err := executeCLI(t, home, "feed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestLoginPersistsSession(t *testing.T) {
	home := t.TempDir()
	newBackendFixture(t)

	stdout, _, err := executeCLI(t, home, "login", "--username", "ada", "--password", "hunter22")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in as @ada")

	data, err := os.ReadFile(filepath.Join(home, ".cadrebook", "session.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "token = 'tok-1'")

	stdout, _, err = executeCLI(t, home, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "@ada (id 1)")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	home := t.TempDir()
	newBackendFixture(t)

	_, _, err := executeCLI(t, home, "login", "--username", "ada", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect username or password")
}

func TestFeedRendersPosts(t *testing.T) {
	home := t.TempDir()
	newBackendFixture(t)
	writeSessionFixture(t, home)

	stdout, _, err := executeCLI(t, home, "feed")
	require.NoError(t, err)
	assert.Contains(t, stdout, "posts: 1")
	assert.Contains(t, stdout, "first post")
	assert.Contains(t, stdout, "Bob")
}

func TestLikeTogglesAndReportsCount(t *testing.T) {
	home := t.TempDir()
	newBackendFixture(t)
	writeSessionFixture(t, home)

	stdout, _, err := executeCLI(t, home, "like", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Liked #1 (5 likes)")
}

func TestLikeUnknownPost(t *testing.T) {
	home := t.TempDir()
	newBackendFixture(t)
	writeSessionFixture(t, home)

	_, _, err := executeCLI(t, home, "like", "999")
	require.Error(t, err)
}

func TestCommentList(t *testing.T) {
	home := t.TempDir()
	newBackendFixture(t)
	writeSessionFixture(t, home)

	stdout, _, err := executeCLI(t, home, "comment", "list", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "comments: 1")
	assert.Contains(t, stdout, "nice")
}

func TestSearchRendersResults(t *testing.T) {
	home := t.TempDir()
	newBackendFixture(t)
	writeSessionFixture(t, home)

	stdout, _, err := executeCLI(t, home, "search", "bo")
	require.NoError(t, err)
	assert.Contains(t, stdout, "results: 1")
	assert.Contains(t, stdout, "@bob")
}

func TestLogoutClearsSessionFile(t *testing.T) {
	home := t.TempDir()
	newBackendFixture(t)
	writeSessionFixture(t, home)

	stdout, _, err := executeCLI(t, home, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged out.")

	_, err = os.Stat(filepath.Join(home, ".cadrebook", "session.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestStaleTokenFallsBackToAnonymous(t *testing.T) {
	home := t.TempDir()
	newBackendFixture(t)

	configDir := filepath.Join(home, ".cadrebook")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	session := "version = 1\ntoken = 'expired'\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "session.toml"), []byte(session), 0o600))

	stdout, _, err := executeCLI(t, home, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not logged in.")

	// The stale token is cleared from disk.
	_, err = os.Stat(filepath.Join(configDir, "session.toml"))
	assert.True(t, os.IsNotExist(err))
}
