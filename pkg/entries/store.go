package entries

import (
	"context"

	"github.com/google/uuid"
)

// Store is the entry persistence capability. Implementations own a single
// directory and are safe to share as one instance per process.
//
// Errors are from pkg/errors: an unknown id yields a NotFoundError, any
// filesystem failure an IOError.
type Store interface {
	// CreateNewEntry writes a new entry holding the initial header.
	CreateNewEntry(ctx context.Context) (Entry, error)

	// LoadEntry returns the content of the entry with the given id.
	LoadEntry(ctx context.Context, id uuid.UUID) (string, error)

	// SaveEntry atomically replaces the content of an existing entry.
	SaveEntry(ctx context.Context, id uuid.UUID, content string) error

	// DeleteEntry removes the entry file.
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	// LoadAllEntries rescans the directory and returns the catalog, newest first.
	// Files that are not entries or cannot be read are skipped.
	LoadAllEntries(ctx context.Context) ([]Entry, error)

	// EntryExists reports whether the catalog contains the id. It never fails.
	EntryExists(ctx context.Context, id uuid.UUID) bool

	// Dir returns the directory backing the store.
	Dir() string
}
