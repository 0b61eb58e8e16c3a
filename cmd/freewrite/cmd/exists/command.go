// Package exists provides the exists command.
package exists

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/freewrite/internal/appcontext"
	"github.com/agentstation/freewrite/internal/cmd/cmdutil"
)

// NewCommand creates the exists command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "exists <id>",
		GroupID: "entries",
		Short:   "Print whether an entry exists",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ParseID(args)
			if err != nil {
				return err
			}

			journal, err := app.Journal()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), journal.EntryExists(cmd.Context(), id))
			return err
		},
	}
}
