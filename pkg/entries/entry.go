package entries

import (
	"time"

	"github.com/google/uuid"
)

// Entry is the catalog view of one entry file. It is rebuilt from the
// filename and content on every scan and never persisted as a struct.
type Entry struct {
	ID             uuid.UUID `json:"id" yaml:"id"`
	Filename       string    `json:"filename" yaml:"filename"`
	DisplayDate    string    `json:"display_date" yaml:"display_date"`
	PreviewText    string    `json:"preview_text" yaml:"preview_text"`
	WordCount      int       `json:"word_count" yaml:"word_count"`
	IsWelcomeEntry bool      `json:"is_welcome_entry" yaml:"is_welcome_entry"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	ModifiedAt     time.Time `json:"modified_at" yaml:"modified_at"`
}

// FromFile derives an Entry from an entry filename, the file's content and
// its last-write time. Names that do not decode yield a *errors.FormatError.
func FromFile(name, content string, modifiedAt time.Time) (Entry, error) {
	id, createdAt, err := DecodeFilename(name)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		ID:             id,
		Filename:       name,
		DisplayDate:    DisplayDate(createdAt),
		PreviewText:    Preview(content),
		WordCount:      WordCount(content),
		IsWelcomeEntry: IsWelcome(content),
		CreatedAt:      createdAt,
		ModifiedAt:     modifiedAt,
	}, nil
}

// IsEmpty reports whether the entry holds no words yet.
func (e Entry) IsEmpty() bool {
	return e.WordCount == 0
}
