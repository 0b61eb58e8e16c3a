package export

import (
	"strings"

	"github.com/agentstation/freewrite/pkg/errors"
)

// Format is an export output format.
type Format string

const (
	// FormatMarkdown renders a heading, a metadata table and the entry body.
	FormatMarkdown Format = "markdown"
	// FormatText renders the entry body only.
	FormatText Format = "text"
	// FormatJSON renders metadata and content as JSON.
	FormatJSON Format = "json"
	// FormatYAML renders metadata and content as YAML.
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatText, FormatJSON, FormatYAML}
}

func names() []string {
	out := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		out = append(out, string(f))
	}
	return out
}

// ParseFormat converts a string to a Format. Common extensions are accepted
// as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", &errors.ValidationError{
		Field:   "format",
		Value:   s,
		Message: "must be one of " + strings.Join(names(), ", "),
	}
}

// Extension returns the file extension for the format, without a dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatText:
		return "txt"
	default:
		return string(f)
	}
}
