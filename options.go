package freewrite

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/freewrite/pkg/constants"
	"github.com/agentstation/freewrite/pkg/entries"
	"github.com/agentstation/freewrite/pkg/errors"
	"github.com/agentstation/freewrite/pkg/logging"
)

// options holds the Journal configuration.
type options struct {
	dir    string
	store  entries.Store
	fs     afero.Fs
	logger *zerolog.Logger
	now    func() time.Time
}

func defaults() *options {
	return &options{
		fs:     afero.NewOsFs(),
		logger: logging.Default(),
		now:    time.Now,
	}
}

// Option is a function that configures a Journal.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// DefaultDirectory returns ~/Documents/Freewrite.
func DefaultDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Documents", constants.DefaultDirName), nil
}

// WithDirectory sets the entries directory. Ignored when WithStore is used.
func WithDirectory(dir string) Option {
	return func(o *options) error {
		if dir == "" {
			return &errors.ValidationError{
				Field:   "directory",
				Message: "cannot be empty",
			}
		}
		o.dir = dir
		return nil
	}
}

// WithStore uses an existing store instead of creating one.
func WithStore(store entries.Store) Option {
	return func(o *options) error {
		if store == nil {
			return &errors.ValidationError{
				Field:   "store",
				Message: "cannot be nil",
			}
		}
		o.store = store
		return nil
	}
}

// WithFs sets the filesystem for the default store.
func WithFs(fs afero.Fs) Option {
	return func(o *options) error {
		if fs == nil {
			return &errors.ValidationError{
				Field:   "fs",
				Message: "cannot be nil",
			}
		}
		o.fs = fs
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}

// WithClock sets the time source used for new entries and for deciding
// whether an entry was created today.
func WithClock(now func() time.Time) Option {
	return func(o *options) error {
		if now == nil {
			return &errors.ValidationError{
				Field:   "clock",
				Message: "cannot be nil",
			}
		}
		o.now = now
		return nil
	}
}
