// Package table converts entries into rows for CLI table output.
package table

import (
	"strconv"

	"github.com/agentstation/freewrite/pkg/entries"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// EntriesToTableData converts a catalog to table rows. Wide output adds the
// full id and the last-modified time.
func EntriesToTableData(list []entries.Entry, wide bool) Data {
	headers := []string{"ID", "Date", "Words", "Preview"}
	align := []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft}
	if wide {
		headers = append(headers, "Modified", "Filename")
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(list))
	for _, entry := range list {
		id := ShortID(entry)
		if wide {
			id = entry.ID.String()
		}

		preview := entry.PreviewText
		switch {
		case entry.IsWelcomeEntry:
			preview = "(welcome) " + preview
		case preview == "":
			preview = "-"
		}

		row := []string{id, entry.DisplayDate, strconv.Itoa(entry.WordCount), preview}
		if wide {
			row = append(row, entry.ModifiedAt.Format("2006-01-02 15:04"), entry.Filename)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// EntryToTableData renders one entry as a property/value table.
func EntryToTableData(entry entries.Entry) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", entry.ID.String()},
			{"Filename", entry.Filename},
			{"Created", entry.CreatedAt.Format("2006-01-02 15:04:05")},
			{"Modified", entry.ModifiedAt.Format("2006-01-02 15:04:05")},
			{"Words", strconv.Itoa(entry.WordCount)},
			{"Preview", entry.PreviewText},
		},
	}
}

// ShortID returns the first block of the entry id, enough to tell entries
// apart in a listing.
func ShortID(entry entries.Entry) string {
	return entry.ID.String()[:8]
}
