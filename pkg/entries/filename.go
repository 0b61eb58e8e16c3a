package entries

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agentstation/freewrite/pkg/constants"
	"github.com/agentstation/freewrite/pkg/errors"
)

// filenamePattern matches exactly two bracketed groups followed by the entry extension.
var filenamePattern = regexp.MustCompile(
	`^\[([0-9A-Fa-f-]{36})\]-\[(\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2})\]\.` +
		regexp.QuoteMeta(constants.EntryExtension) + `$`,
)

// EncodeFilename returns the on-disk name for an entry. The id is written in
// upper case and the timestamp in local time at second resolution.
func EncodeFilename(id uuid.UUID, createdAt time.Time) string {
	return "[" + strings.ToUpper(id.String()) + "]-[" +
		createdAt.In(time.Local).Format(constants.TimestampLayout) + "]." +
		constants.EntryExtension
}

// DecodeFilename extracts the id and creation time from an entry filename.
// Names that are not entry filenames yield a *errors.FormatError.
func DecodeFilename(name string) (uuid.UUID, time.Time, error) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return uuid.Nil, time.Time{}, errors.NewFormatError(name, "does not match [<uuid>]-[<YYYY-MM-DD-HH-mm-ss>]."+constants.EntryExtension)
	}

	id, err := uuid.Parse(m[1])
	if err != nil {
		return uuid.Nil, time.Time{}, errors.NewFormatError(name, err.Error())
	}

	createdAt, err := time.ParseInLocation(constants.TimestampLayout, m[2], time.Local)
	if err != nil {
		return uuid.Nil, time.Time{}, errors.NewFormatError(name, err.Error())
	}

	return id, createdAt, nil
}

// IsEntryFilename reports whether name decodes as an entry filename.
func IsEntryFilename(name string) bool {
	_, _, err := DecodeFilename(name)
	return err == nil
}

// ParseID parses a user-supplied entry id.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, errors.WrapValidation("id", err)
	}
	return id, nil
}
