// Package cmdutil provides shared flags and argument helpers for freewrite commands.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// ListFlags holds flags for commands that print the catalog.
type ListFlags struct {
	Search string
	Limit  int
}

// AddListFlags adds catalog filtering flags to a command.
func AddListFlags(cmd *cobra.Command) *ListFlags {
	flags := &ListFlags{}

	cmd.Flags().StringVar(&flags.Search, "search", "",
		"Only show entries whose preview or date contains the term")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}
