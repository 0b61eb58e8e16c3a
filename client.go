// Package freewrite is the entry point for the Freewrite journal. It wraps the
// filesystem entry store with session handling and event hooks.
//
// A Journal owns one directory of plain-text entries. Each entry is a file
// named after its id and creation time; the catalog of entries is rebuilt
// from the directory on every request.
//
// Example usage:
//
//	journal, err := freewrite.New(freewrite.WithDirectory("./journal"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	journal.OnEntrySaved(func(id uuid.UUID, content string) {
//	    log.Printf("saved %s", id)
//	})
//
//	entry, err := journal.StartSession(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = journal.SaveEntry(ctx, entry.ID, "\n\nToday I wrote something.")
package freewrite

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agentstation/freewrite/internal/storage/files"
	"github.com/agentstation/freewrite/pkg/entries"
	"github.com/agentstation/freewrite/pkg/errors"
)

// Compile-time interface check to ensure proper implementation.
var _ Journal = (*client)(nil)

// Journal manages a directory of entries with session handling and event hooks.
type Journal interface {

	// Store provides the entry persistence operations
	entries.Store

	// Session opens the entry to write in
	Session

	// Hooks provides access to event callback registration
	Hooks
}

// client is the internal implementation of the Journal interface.
type client struct {
	options *options
	store   entries.Store
	hooks   *hooks
	logger  *zerolog.Logger
}

// New creates a new Journal with the given options.
func New(opts ...Option) (Journal, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	store := o.store
	if store == nil {
		if o.dir == "" {
			if o.dir, err = DefaultDirectory(); err != nil {
				return nil, errors.WrapResource("create", "journal", "", err)
			}
		}
		store = files.New(o.dir,
			files.WithFs(o.fs),
			files.WithLogger(o.logger),
			files.WithClock(o.now),
		)
	}

	o.logger.Debug().Str("dir", store.Dir()).Msg("Journal ready")

	return &client{
		options: o,
		store:   store,
		hooks:   newHooks(),
		logger:  o.logger,
	}, nil
}

// Dir returns the directory backing the journal.
func (c *client) Dir() string {
	return c.store.Dir()
}

// CreateNewEntry creates an entry and fires the created hooks.
func (c *client) CreateNewEntry(ctx context.Context) (entries.Entry, error) {
	entry, err := c.store.CreateNewEntry(ctx)
	if err != nil {
		return entries.Entry{}, err
	}
	c.hooks.triggerEntryCreated(entry)
	return entry, nil
}

// LoadEntry returns the content of an entry.
func (c *client) LoadEntry(ctx context.Context, id uuid.UUID) (string, error) {
	return c.store.LoadEntry(ctx, id)
}

// SaveEntry replaces the content of an entry and fires the saved hooks.
func (c *client) SaveEntry(ctx context.Context, id uuid.UUID, content string) error {
	if err := c.store.SaveEntry(ctx, id, content); err != nil {
		return err
	}
	c.hooks.triggerEntrySaved(id, content)
	return nil
}

// DeleteEntry removes an entry and fires the deleted hooks.
func (c *client) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if err := c.store.DeleteEntry(ctx, id); err != nil {
		return err
	}
	c.hooks.triggerEntryDeleted(id)
	return nil
}

// LoadAllEntries returns the catalog, newest first.
func (c *client) LoadAllEntries(ctx context.Context) ([]entries.Entry, error) {
	return c.store.LoadAllEntries(ctx)
}

// EntryExists reports whether the catalog contains id.
func (c *client) EntryExists(ctx context.Context, id uuid.UUID) bool {
	return c.store.EntryExists(ctx, id)
}
