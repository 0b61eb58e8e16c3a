package entries

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Catalog is the derived, ordered list of all entries in a directory.
// It is always rebuilt from disk and never cached.
type Catalog []Entry

// SortNewestFirst orders entries by creation time, most recent first.
// Entries created in the same second are ordered by filename.
func SortNewestFirst(list []Entry) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].Filename < list[j].Filename
	})
}

// Find returns the first entry with the given id.
func (c Catalog) Find(id uuid.UUID) (Entry, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Contains reports whether an entry with the given id is present.
func (c Catalog) Contains(id uuid.UUID) bool {
	_, ok := c.Find(id)
	return ok
}

// IDs returns the entry ids in catalog order.
func (c Catalog) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(c))
	for i, e := range c {
		ids[i] = e.ID
	}
	return ids
}

// Search returns the entries whose preview or display date contains query,
// case-insensitively. An empty query returns the catalog unchanged.
func (c Catalog) Search(query string) Catalog {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c
	}
	var out Catalog
	for _, e := range c {
		if strings.Contains(strings.ToLower(e.PreviewText), q) ||
			strings.Contains(strings.ToLower(e.DisplayDate), q) {
			out = append(out, e)
		}
	}
	return out
}

// TotalWords sums the word counts of all entries.
func (c Catalog) TotalWords() int {
	total := 0
	for _, e := range c {
		total += e.WordCount
	}
	return total
}
