// Package session provides the session command.
package session

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/freewrite/internal/appcontext"
	"github.com/agentstation/freewrite/internal/cmd/output"
)

// NewCommand creates the session command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "session",
		GroupID: "entries",
		Short:   "Open the entry to write in",
		Long: `Session returns the entry a writing session should continue in.

An empty journal gets a welcome entry. If the newest entry is still empty
and was created today it is reused; otherwise a new entry is created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journal, err := app.Journal()
			if err != nil {
				return err
			}

			entry, err := journal.StartSession(cmd.Context())
			if err != nil {
				return err
			}

			return output.FormatEntry(cmd.OutOrStdout(), entry, output.Format(app.OutputFormat()))
		},
	}
}
