// Package constants provides shared constants for CLI commands.
package constants

// Values accepted by the global -o/--output flag.
const (
	// FormatTable lists entries with a short id and preview.
	FormatTable = "table"

	// FormatWide adds the full id, modification time and filename columns.
	FormatWide = "wide"

	// FormatJSON prints entries as JSON.
	FormatJSON = "json"

	// FormatYAML prints entries as YAML.
	FormatYAML = "yaml"
)

// OutputFormats returns the accepted -o values in help order.
func OutputFormats() []string {
	return []string{FormatTable, FormatWide, FormatJSON, FormatYAML}
}
