package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/freewrite"
	"github.com/agentstation/freewrite/pkg/errors"
	"github.com/agentstation/freewrite/pkg/logging"
)

// Mock is an Interface for command tests. Zero fields fall back to a nop
// logger, the table format and "dev" build information.
type Mock struct {
	// JournalFunc supplies the journal. When nil, Journal reports a
	// configuration error.
	JournalFunc func() (freewrite.Journal, error)

	Format string
	Log    *zerolog.Logger
	Build  BuildInfo
}

// BuildInfo is the version metadata a Mock reports.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

// NewMock returns a Mock serving j in the given output format.
func NewMock(j freewrite.Journal, format string) *Mock {
	return &Mock{
		JournalFunc: func() (freewrite.Journal, error) { return j, nil },
		Format:      format,
	}
}

// Journal implements Interface.
func (m *Mock) Journal() (freewrite.Journal, error) {
	if m.JournalFunc == nil {
		return nil, errors.NewConfigError("journal", "no journal configured", nil)
	}
	return m.JournalFunc()
}

// Logger implements Interface.
func (m *Mock) Logger() *zerolog.Logger {
	if m.Log == nil {
		return logging.NewNopLogger()
	}
	return m.Log
}

// OutputFormat implements Interface.
func (m *Mock) OutputFormat() string {
	if m.Format == "" {
		return "table"
	}
	return m.Format
}

// Version implements Interface.
func (m *Mock) Version() string { return or(m.Build.Version, "dev") }

// Commit implements Interface.
func (m *Mock) Commit() string { return or(m.Build.Commit, "unknown") }

// Date implements Interface.
func (m *Mock) Date() string { return or(m.Build.Date, "unknown") }

// BuiltBy implements Interface.
func (m *Mock) BuiltBy() string { return or(m.Build.BuiltBy, "test") }

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

var _ Interface = (*Mock)(nil)
