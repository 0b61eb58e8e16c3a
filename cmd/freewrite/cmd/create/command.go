// Package create provides the new command.
package create

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/freewrite/internal/appcontext"
	"github.com/agentstation/freewrite/internal/cmd/output"
	"github.com/agentstation/freewrite/pkg/logging"
)

// NewCommand creates the new command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "new",
		GroupID: "entries",
		Short:   "Create an empty entry",
		Args:    cobra.NoArgs,
		Example: `  freewrite new            # Create an entry and show its id
  freewrite new -o json    # Print the new entry as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journal, err := app.Journal()
			if err != nil {
				return err
			}

			entry, err := journal.CreateNewEntry(cmd.Context())
			if err != nil {
				return err
			}

			logging.Ctx(logging.WithEntryID(cmd.Context(), entry.ID.String())).Info().Msg("Created entry")
			return output.FormatEntry(cmd.OutOrStdout(), entry, output.Format(app.OutputFormat()))
		},
	}
}
