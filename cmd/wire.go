package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cadrebook/cadrebook-cli/internal/adapters/api"
	feedrender "github.com/cadrebook/cadrebook-cli/internal/adapters/render/feed"
	sessiontoml "github.com/cadrebook/cadrebook-cli/internal/adapters/session/toml"
	"github.com/cadrebook/cadrebook-cli/internal/application"
	"github.com/cadrebook/cadrebook-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName     = "config"
	configType     = "toml"
	configDir      = ".cadrebook"
	baseURLKey     = "api.base_url"
	baseURLEnv     = "CB_API_BASE_URL"
	sessionPathKey = "session.path"
	defaultBaseURL = "http://localhost:8000"

	// mutationPageSize bounds the page fetched before a mutation so the
	// target entity is present in the local collection.
	mutationPageSize = 100
)

type app struct {
	auth      ports.AuthGateway
	session   *application.SessionStore
	gate      *application.RouteGate
	feed      *application.FeedService
	comments  *application.CommentService
	directory *application.DirectoryService
	now       func() time.Time
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(sessionPathKey, filepath.Join(homeDir, configDir, "session.toml"))
	if err := cfg.BindEnv(baseURLKey, baseURLEnv); err != nil {
		return nil, fmt.Errorf("bind %s: %w", baseURLEnv, err)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	client, err := api.NewClient(cfg.GetString(baseURLKey))
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	tokenStore, err := sessiontoml.NewStore(cfg.GetString(sessionPathKey), ports.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	authGateway := api.AuthAdapter{Client: client}
	session := application.NewSessionStore(tokenStore, authGateway)
	client.TokenSource = session.Token

	mutator := application.NewMutator(func() {
		_ = session.Logout(context.Background())
	})

	return &app{
		auth:      authGateway,
		session:   session,
		gate:      application.NewRouteGate(session),
		feed:      application.NewFeedService(api.PostAdapter{Client: client}, mutator, session, nil),
		comments:  application.NewCommentService(api.CommentAdapter{Client: client}, mutator, session, nil),
		directory: application.NewDirectoryService(api.UserAdapter{Client: client}, mutator),
		now:       time.Now,
	}, nil
}

// ensureAuthorized restores the persisted session and consults the route
// gate. Commands behind it never run with an unresolved or anonymous
// session.
func ensureAuthorized(cmd *cobra.Command, app *app) error {
	app.session.Restore(cmd.Context())

	switch app.gate.Access() {
	case application.AccessGranted:
		return nil
	case application.AccessDenied:
		return errors.New("not logged in: run `cb login` first")
	default:
		return errors.New("session state is unresolved")
	}
}

func (a *app) renderOptions() feedrender.RenderOptions {
	opts := feedrender.RenderOptions{Now: a.now()}
	if user, ok := a.session.User(); ok {
		opts.Viewer = user.ID
	}
	return opts
}
