package files

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Option configures a Store.
type Option func(*Store)

// WithFs sets the filesystem the store works against. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithLogger sets the logger. Defaults to logging.Default().
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the source of new entry ids.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}
