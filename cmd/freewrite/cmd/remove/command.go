// Package remove provides the delete command.
package remove

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/freewrite/internal/appcontext"
	"github.com/agentstation/freewrite/internal/cmd/cmdutil"
	"github.com/agentstation/freewrite/pkg/logging"
)

// NewCommand creates the delete command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		GroupID: "entries",
		Aliases: []string{"rm"},
		Short:   "Delete an entry",
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

			if err := journal.DeleteEntry(cmd.Context(), id); err != nil {
				return err
			}

			logging.Ctx(logging.WithEntryID(cmd.Context(), id.String())).Info().Msg("Deleted entry")
			return nil
		},
	}
}
