// Package app provides the application context and dependency management
// for the eventtix CLI. It centralizes configuration, dependency injection,
// and lifecycle management.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	eventtix "github.com/eventtix/eventtix"
	"github.com/eventtix/eventtix/internal/backend"
	"github.com/eventtix/eventtix/internal/config"
	"github.com/eventtix/eventtix/internal/storage"
	"github.com/eventtix/eventtix/pkg/errors"
)

// App represents the eventtix application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// marketplace client.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Notices collected during command execution
	notices *noticeSink

	// Marketplace client (lazy-initialized, singleton)
	mu     sync.RWMutex
	client eventtix.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		notices: newNoticeSink(),
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Notices returns the notices collected since the last drain.
func (a *App) Notices() []eventtix.Notice {
	return a.notices.Drain()
}

// Client returns the marketplace client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created. The
// catalogue is fetched on first creation.
func (a *App) Client(ctx context.Context) (eventtix.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	client, err := a.buildClient()
	if err != nil {
		return nil, err
	}
	if err := client.Refresh(ctx); err != nil {
		return nil, err
	}

	a.client = client
	return client, nil
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(_ context.Context) error {
	// Local state persists on every mutation; nothing is held open.
	return nil
}

// buildClient constructs the marketplace client from the app configuration.
func (a *App) buildClient() (eventtix.Client, error) {
	baseURL := a.config.BackendURL
	if baseURL == "" {
		var err error
		if baseURL, err = config.BackendURL(); err != nil {
			return nil, err
		}
	}
	apiKey := a.config.APIKey
	if apiKey == "" {
		var err error
		if apiKey, err = config.APIKey(); err != nil {
			return nil, err
		}
	}

	dir, err := a.stateDir()
	if err != nil {
		return nil, err
	}

	// The token source is wired before the client exists; it starts
	// returning tokens once the client is set below.
	tokens := &tokenSource{}
	be := backend.New(baseURL, apiKey,
		backend.WithTokenFunc(tokens.token))

	opts := []eventtix.Option{
		eventtix.WithBackend(be),
		eventtix.WithStateDir(dir),
		eventtix.WithNotifier(a.notices),
	}
	if a.config.FeaturedEventID > 0 {
		opts = append(opts, eventtix.WithFeaturedEventID(a.config.FeaturedEventID))
	}

	client, err := eventtix.New(opts...)
	if err != nil {
		return nil, err
	}
	tokens.set(client)
	return client, nil
}

// tokenSource exposes the active session's access token to the backend
// transport.
type tokenSource struct {
	mu     sync.RWMutex
	client eventtix.Client
}

func (t *tokenSource) set(client eventtix.Client) {
	t.mu.Lock()
	t.client = client
	t.mu.Unlock()
}

func (t *tokenSource) token() string {
	t.mu.RLock()
	client := t.client
	t.mu.RUnlock()

	if client == nil {
		return ""
	}
	if sess := client.Session(); sess != nil {
		return sess.AccessToken
	}
	return ""
}

func (a *App) stateDir() (*storage.Dir, error) {
	if a.config.StateDir != "" {
		return storage.NewDir(a.config.StateDir), nil
	}
	return storage.DefaultDir()
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom marketplace client (useful for testing).
func WithClient(client eventtix.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
