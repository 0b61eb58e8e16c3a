// Package constants provides shared constants used throughout the freewrite
// codebase: file permissions, the entry naming scheme, and the values that
// shape derived entry metadata.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Entry file naming
const (
	// EntryExtension is the extension of every entry file, without the dot
	EntryExtension = "md"

	// TimestampLayout formats the creation time embedded in entry filenames
	// (YYYY-MM-DD-HH-mm-ss, local time, no zone).
	TimestampLayout = "2006-01-02-15-04-05"

	// DisplayDateLayout renders an entry's creation date for listings
	DisplayDateLayout = "Jan 2"

	// TempFilePattern names the scratch files used for atomic writes.
	// It never decodes as an entry filename.
	TempFilePattern = ".freewrite-*.tmp"
)

// Entry content
const (
	// EntryHeader is the initial content of a new entry
	EntryHeader = "\n\n"

	// PreviewLength is the number of characters kept in an entry preview
	PreviewLength = 30

	// PreviewEllipsis is appended to previews that were truncated
	PreviewEllipsis = "..."

	// WelcomeMarker identifies the first-run welcome entry by content
	WelcomeMarker = "Welcome to Freewrite."
)

// WelcomeText is the body written into the first-run welcome entry.
const WelcomeText = WelcomeMarker + `

This is a place to write without stopping. Don't edit, don't delete,
just keep typing whatever comes to mind. Every session is saved as its own
entry, named after the moment it started.

Start a new entry whenever you like. Old entries stay right where you left
them.`

// Defaults
const (
	// DefaultDirName is the directory under the user's Documents folder
	DefaultDirName = "Freewrite"

	// ConfigName is the base name of the optional config file in $HOME
	ConfigName = ".freewrite"

	// EnvPrefix prefixes environment variables read by the CLI
	EnvPrefix = "FREEWRITE"
)
