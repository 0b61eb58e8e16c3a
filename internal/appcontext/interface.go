// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on an interface rather
// than on the concrete App.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/freewrite"
)

// Interface defines what commands need from the application.
// The App struct from cmd/freewrite/app implements it; tests use Mock.
type Interface interface {
	// Journal returns the journal, creating it lazily on first use.
	// Every call returns the same instance.
	Journal() (freewrite.Journal, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
