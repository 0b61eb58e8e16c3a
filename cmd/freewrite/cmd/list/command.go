// Package list provides the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/freewrite/internal/appcontext"
	"github.com/agentstation/freewrite/internal/cmd/cmdutil"
	"github.com/agentstation/freewrite/internal/cmd/output"
	"github.com/agentstation/freewrite/pkg/entries"
	"github.com/agentstation/freewrite/pkg/logging"
)

// NewCommand creates the list command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *cmdutil.ListFlags

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "entries",
		Aliases: []string{"ls"},
		Short:   "List entries, newest first",
		Args:    cobra.NoArgs,
		Example: `  freewrite list                  # List all entries
  freewrite list --search coffee  # Entries whose preview mentions coffee
  freewrite list -l 5 -o wide     # Five newest entries with full ids`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journal, err := app.Journal()
			if err != nil {
				return err
			}

			all, err := journal.LoadAllEntries(cmd.Context())
			if err != nil {
				return err
			}

			catalog := entries.Catalog(all)
			if flags.Search != "" {
				catalog = catalog.Search(flags.Search)
			}
			if flags.Limit > 0 && len(catalog) > flags.Limit {
				catalog = catalog[:flags.Limit]
			}

			logging.Ctx(cmd.Context()).Debug().
				Int("total", len(all)).
				Int("shown", len(catalog)).
				Msg("Listed entries")

			return output.FormatEntries(cmd.OutOrStdout(), catalog, output.Format(app.OutputFormat()))
		},
	}

	flags = cmdutil.AddListFlags(cmd)

	return cmd
}
