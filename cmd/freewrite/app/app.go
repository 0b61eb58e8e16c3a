// Package app provides the application context and dependency management
// for the freewrite CLI. It centralizes configuration, logging and the
// journal instance, and hands them to commands through appcontext.Interface.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/freewrite"
	"github.com/agentstation/freewrite/internal/appcontext"
	"github.com/agentstation/freewrite/internal/cmd/output"
	"github.com/agentstation/freewrite/pkg/errors"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the freewrite application with all its dependencies.
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

	// I/O overrides, nil means the process streams
	in  io.Reader
	out io.Writer
	err io.Writer

	// Journal instance (lazy-initialized, singleton)
	mu      sync.RWMutex
	journal freewrite.Journal
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
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

// OutputFormat returns the configured output format, detecting one from
// the terminal when none is set.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Journal returns the journal instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Journal() (freewrite.Journal, error) {
	a.mu.RLock()
	if a.journal != nil {
		j := a.journal
		a.mu.RUnlock()
		return j, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.journal != nil {
		return a.journal, nil
	}

	j, err := freewrite.New(a.buildJournalOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "journal", a.config.Dir, err)
	}

	a.journal = j
	return j, nil
}

// Shutdown releases application resources. Every write is complete when
// its call returns, so there is nothing to flush.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.RLock()
	j := a.journal
	a.mu.RUnlock()

	if j != nil {
		a.logger.Debug().Str("dir", j.Dir()).Msg("Shutting down")
	}
	return ctx.Err()
}

// buildJournalOptions constructs journal options from the app configuration.
func (a *App) buildJournalOptions() []freewrite.Option {
	opts := []freewrite.Option{freewrite.WithLogger(a.logger)}
	if a.config.Dir != "" {
		opts = append(opts, freewrite.WithDirectory(a.config.Dir))
	}
	return opts
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

// WithJournal sets a custom journal instance (useful for testing).
func WithJournal(j freewrite.Journal) Option {
	return func(a *App) error {
		a.journal = j
		return nil
	}
}

// WithIO redirects the streams commands read from and write to.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) error {
		a.in, a.out, a.err = in, out, errOut
		return nil
	}
}
