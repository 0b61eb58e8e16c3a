package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/freewrite/cmd/freewrite/cmd/completion"
	"github.com/agentstation/freewrite/cmd/freewrite/cmd/create"
	"github.com/agentstation/freewrite/cmd/freewrite/cmd/remove"
	"github.com/agentstation/freewrite/cmd/freewrite/cmd/exists"
	"github.com/agentstation/freewrite/cmd/freewrite/cmd/export"
	"github.com/agentstation/freewrite/cmd/freewrite/cmd/list"
	"github.com/agentstation/freewrite/cmd/freewrite/cmd/save"
	"github.com/agentstation/freewrite/cmd/freewrite/cmd/session"
	"github.com/agentstation/freewrite/cmd/freewrite/cmd/show"
	"github.com/agentstation/freewrite/cmd/freewrite/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Entry commands
	rootCmd.AddCommand(create.NewCommand(a))
	rootCmd.AddCommand(session.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(save.NewCommand(a))
	rootCmd.AddCommand(remove.NewCommand(a))
	rootCmd.AddCommand(exists.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand())
}
