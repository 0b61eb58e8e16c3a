// Package export renders journal entries for use outside the entries
// directory. It only reads from the store.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	md "github.com/nao1215/markdown"

	"github.com/agentstation/freewrite/pkg/constants"
	"github.com/agentstation/freewrite/pkg/entries"
	"github.com/agentstation/freewrite/pkg/errors"
)

const longDateLayout = "Monday, January 2, 2006"

// Source is the read side of an entry store.
type Source interface {
	LoadEntry(ctx context.Context, id uuid.UUID) (string, error)
	LoadAllEntries(ctx context.Context) ([]entries.Entry, error)
}

// Document is one exported entry.
type Document struct {
	Entry   entries.Entry `json:"entry" yaml:"entry"`
	Content string        `json:"content" yaml:"content"`
}

// Index is an exported catalog.
type Index struct {
	Count      int             `json:"count" yaml:"count"`
	TotalWords int             `json:"total_words" yaml:"total_words"`
	Entries    []entries.Entry `json:"entries" yaml:"entries"`
}

// Exporter renders entries from a Source.
type Exporter struct {
	source Source
}

// New creates an Exporter reading from source.
func New(source Source) *Exporter {
	return &Exporter{source: source}
}

// Document loads the metadata and content of one entry.
func (e *Exporter) Document(ctx context.Context, id uuid.UUID) (Document, error) {
	list, err := e.source.LoadAllEntries(ctx)
	if err != nil {
		return Document{}, err
	}
	entry, ok := entries.Catalog(list).Find(id)
	if !ok {
		return Document{}, errors.NewNotFoundError("entry", id.String())
	}

	content, err := e.source.LoadEntry(ctx, id)
	if err != nil {
		return Document{}, err
	}
	return Document{Entry: entry, Content: content}, nil
}

// Entry writes one entry to w in the given format.
func (e *Exporter) Entry(ctx context.Context, id uuid.UUID, format Format, w io.Writer) error {
	doc, err := e.Document(ctx, id)
	if err != nil {
		return err
	}

	switch format {
	case FormatMarkdown:
		return writeEntryMarkdown(w, doc)
	case FormatText:
		_, err := io.WriteString(w, body(doc.Content)+"\n")
		return err
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	}
	return unsupported(format)
}

// Index writes the whole catalog to w in the given format.
func (e *Exporter) Index(ctx context.Context, format Format, w io.Writer) error {
	list, err := e.source.LoadAllEntries(ctx)
	if err != nil {
		return err
	}
	catalog := entries.Catalog(list)
	index := Index{Count: len(catalog), TotalWords: catalog.TotalWords(), Entries: append([]entries.Entry{}, catalog...)}

	switch format {
	case FormatMarkdown:
		return writeIndexMarkdown(w, index)
	case FormatText:
		return writeIndexText(w, index)
	case FormatJSON:
		return writeJSON(w, index)
	case FormatYAML:
		return writeYAML(w, index)
	}
	return unsupported(format)
}

// Filename suggests an output filename for an exported entry.
func Filename(entry entries.Entry, format Format) string {
	return fmt.Sprintf("freewrite-%s.%s", entry.CreatedAt.Format(constants.TimestampLayout), format.Extension())
}

func writeEntryMarkdown(w io.Writer, doc Document) error {
	entry := doc.Entry
	m := md.NewMarkdown(w)
	m.H1(entry.CreatedAt.Format(longDateLayout)).
		Table(md.TableSet{
			Header: []string{"Field", "Value"},
			Rows: [][]string{
				{"ID", entry.ID.String()},
				{"Created", entry.CreatedAt.Format("2006-01-02 15:04:05")},
				{"Modified", entry.ModifiedAt.Format("2006-01-02 15:04:05")},
				{"Words", fmt.Sprintf("%d", entry.WordCount)},
			},
		}).
		HorizontalRule()
	if text := body(doc.Content); text != "" {
		m.PlainText(text)
	}
	return m.Build()
}

func writeIndexMarkdown(w io.Writer, index Index) error {
	rows := make([][]string, 0, len(index.Entries))
	for _, entry := range index.Entries {
		preview := entry.PreviewText
		if entry.IsWelcomeEntry {
			preview = md.Italic(preview)
		}
		rows = append(rows, []string{
			entry.DisplayDate,
			preview,
			fmt.Sprintf("%d", entry.WordCount),
			md.Code(entry.ID.String()),
		})
	}

	m := md.NewMarkdown(w)
	m.H1("Freewrite").
		PlainTextf("%d entries, %d words.", index.Count, index.TotalWords)
	if len(rows) > 0 {
		m.Table(md.TableSet{
			Header: []string{"Date", "Preview", "Words", "ID"},
			Rows:   rows,
		})
	}
	return m.Build()
}

func writeIndexText(w io.Writer, index Index) error {
	for _, entry := range index.Entries {
		if _, err := fmt.Fprintf(w, "%-6s  %-33s  %d words\n", entry.DisplayDate, entry.PreviewText, entry.WordCount); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d entries, %d words\n", index.Count, index.TotalWords)
	return err
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.MarshalWithOptions(v,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// body drops the conventional leading blank lines and trailing whitespace.
func body(content string) string {
	return strings.TrimRight(strings.TrimLeft(content, "\n"), " \t\n")
}

func unsupported(format Format) error {
	return &errors.ValidationError{
		Field:   "format",
		Value:   string(format),
		Message: "unsupported export format",
	}
}
