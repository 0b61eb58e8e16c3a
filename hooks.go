package freewrite

import (
	"sync"

	"github.com/google/uuid"

	"github.com/agentstation/freewrite/pkg/entries"
)

// Hooks provides event callback registration.
type Hooks interface {
	// OnEntryCreated registers a callback for when entries are created
	OnEntryCreated(fn EntryCreatedHook)

	// OnEntrySaved registers a callback for when entries are saved
	OnEntrySaved(fn EntrySavedHook)

	// OnEntryDeleted registers a callback for when entries are deleted
	OnEntryDeleted(fn EntryDeletedHook)
}

// Hook function types for entry events
type (
	// EntryCreatedHook is called after an entry file is created
	EntryCreatedHook func(entry entries.Entry)

	// EntrySavedHook is called after an entry's content is replaced
	EntrySavedHook func(id uuid.UUID, content string)

	// EntryDeletedHook is called after an entry file is removed
	EntryDeletedHook func(id uuid.UUID)
)

// hooks manages event callbacks for entry changes
type hooks struct {
	mu             sync.RWMutex
	onEntryCreated []EntryCreatedHook
	onEntrySaved   []EntrySavedHook
	onEntryDeleted []EntryDeletedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnEntryCreated registers a callback for when entries are created
func (c *client) OnEntryCreated(fn EntryCreatedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onEntryCreated = append(c.hooks.onEntryCreated, fn)
}

// OnEntrySaved registers a callback for when entries are saved
func (c *client) OnEntrySaved(fn EntrySavedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onEntrySaved = append(c.hooks.onEntrySaved, fn)
}

// OnEntryDeleted registers a callback for when entries are deleted
func (c *client) OnEntryDeleted(fn EntryDeletedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onEntryDeleted = append(c.hooks.onEntryDeleted, fn)
}

// Callbacks run outside the lock so they may register further hooks.

func (h *hooks) triggerEntryCreated(entry entries.Entry) {
	h.mu.RLock()
	fns := append([]EntryCreatedHook(nil), h.onEntryCreated...)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(entry)
	}
}

func (h *hooks) triggerEntrySaved(id uuid.UUID, content string) {
	h.mu.RLock()
	fns := append([]EntrySavedHook(nil), h.onEntrySaved...)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(id, content)
	}
}

func (h *hooks) triggerEntryDeleted(id uuid.UUID) {
	h.mu.RLock()
	fns := append([]EntryDeletedHook(nil), h.onEntryDeleted...)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(id)
	}
}
