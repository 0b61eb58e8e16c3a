package freewrite

import (
	"context"
	"time"

	"github.com/agentstation/freewrite/pkg/constants"
	"github.com/agentstation/freewrite/pkg/entries"
)

// Session opens the entry a writing session should continue in.
type Session interface {
	// StartSession returns the entry to write in. An empty journal gets the
	// welcome entry, an empty entry from today is reused, and otherwise a
	// fresh entry is created.
	StartSession(ctx context.Context) (entries.Entry, error)
}

// StartSession returns the entry to write in.
func (c *client) StartSession(ctx context.Context) (entries.Entry, error) {
	list, err := c.store.LoadAllEntries(ctx)
	if err != nil {
		return entries.Entry{}, err
	}

	if len(list) == 0 {
		return c.createWelcome(ctx)
	}

	newest := list[0]
	if newest.IsEmpty() && sameDay(newest.CreatedAt, c.options.now()) {
		c.logger.Debug().Str("entry_id", newest.ID.String()).Msg("Reusing empty entry from today")
		return newest, nil
	}

	return c.CreateNewEntry(ctx)
}

func (c *client) createWelcome(ctx context.Context) (entries.Entry, error) {
	entry, err := c.CreateNewEntry(ctx)
	if err != nil {
		return entries.Entry{}, err
	}

	content := constants.EntryHeader + constants.WelcomeText
	if err := c.SaveEntry(ctx, entry.ID, content); err != nil {
		return entries.Entry{}, err
	}

	c.logger.Info().Str("entry_id", entry.ID.String()).Msg("Created welcome entry")
	return entries.FromFile(entry.Filename, content, c.options.now())
}

// sameDay compares calendar days in local time, the zone filenames use.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
