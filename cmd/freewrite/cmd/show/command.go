// Package show provides the show command.
package show

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/freewrite/internal/appcontext"
	"github.com/agentstation/freewrite/internal/cmd/cmdutil"
)

// NewCommand creates the show command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		GroupID: "entries",
		Aliases: []string{"cat"},
		Short:   "Print the content of an entry",
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

			content, err := journal.LoadEntry(cmd.Context(), id)
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), content)
			return err
		},
	}
}
