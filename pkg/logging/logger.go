// Package logging provides structured logging for freewrite using zerolog.
// Terminals get human-readable console output; everything else gets JSON.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("entry_id", id.String()).Msg("Entry saved")
//
//	ctx := logging.WithEntryID(ctx, id.String())
//	logging.FromContext(ctx).Debug().Msg("Resolving entry")
package logging

import (
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger atomic.Pointer[zerolog.Logger]

func init() {
	ConfigureFromEnv()
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger and zerolog's global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger.Store(&logger)
	log.Logger = logger
}

// New creates a JSON logger writing to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

// Debug starts a new debug level log event.
func Debug() *zerolog.Event {
	return Default().Debug()
}

// Info starts a new info level log event.
func Info() *zerolog.Event {
	return Default().Info()
}

// Warn starts a new warning level log event.
func Warn() *zerolog.Event {
	return Default().Warn()
}

// Error starts a new error level log event.
func Error() *zerolog.Event {
	return Default().Error()
}
