package app

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/freewrite/internal/cmd/constants"
	"github.com/agentstation/freewrite/internal/cmd/output"
	"github.com/agentstation/freewrite/pkg/logging"
)

// Execute runs the freewrite CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "freewrite",
		Short:   "Plain-text freewriting journal",
		Version: a.version,
		Long: `Freewrite keeps a journal of plain-text entries in a single directory.

Each entry is a UTF-8 file named after its id and creation time, so the
directory can be synced, backed up or edited with any other tool. The
list of entries is rebuilt from the directory every time it is read.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	if a.in != nil {
		rootCmd.SetIn(a.in)
	}
	if a.out != nil {
		rootCmd.SetOut(a.out)
	}
	if a.err != nil {
		rootCmd.SetErr(a.err)
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "entries",
		Title: "Entry Commands:",
	})

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.freewrite.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("output", "o", "", "output format: "+strings.Join(constants.OutputFormats(), ", "))
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.String("dir", "", "entries directory (default is $HOME/Documents/Freewrite)")

	rootCmd.SetVersionTemplate("freewrite {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	configFile := mustGetString(cmd, "config")
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "output")
	logLevel := mustGetString(cmd, "log-level")
	dir := mustGetString(cmd, "dir")

	if configFile != "" {
		config, err := LoadConfigFile(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	if _, err := output.ParseFormat(format); err != nil {
		return err
	}

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel, dir)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	ctx = logging.WithOperation(ctx, cmd.Name())
	cmd.SetContext(ctx)

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
