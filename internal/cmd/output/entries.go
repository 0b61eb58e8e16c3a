package output

import (
	"io"

	"github.com/agentstation/freewrite/internal/cmd/table"
	"github.com/agentstation/freewrite/pkg/entries"
)

// FormatEntries writes a catalog in the given format.
func FormatEntries(w io.Writer, list []entries.Entry, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	if format.IsTable() {
		outputData = table.EntriesToTableData(list, format == FormatWide)
	} else {
		if list == nil {
			list = []entries.Entry{}
		}
		outputData = list
	}

	return formatter.Format(w, outputData)
}

// FormatEntry writes one entry's metadata in the given format.
func FormatEntry(w io.Writer, entry entries.Entry, format Format) error {
	formatter := NewFormatter(format)

	var outputData any = entry
	if format.IsTable() {
		outputData = table.EntryToTableData(entry)
	}

	return formatter.Format(w, outputData)
}
