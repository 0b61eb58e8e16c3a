package cmdutil

import (
	"github.com/google/uuid"

	"github.com/agentstation/freewrite/pkg/entries"
)

// ParseID parses the entry id given as the first argument. Commands using it
// declare cobra.ExactArgs(1).
func ParseID(args []string) (uuid.UUID, error) {
	return entries.ParseID(args[0])
}
