// Package completion provides the shell completion command.
package completion

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/freewrite/internal/cmd/constants"
	"github.com/agentstation/freewrite/pkg/errors"
)

// NewCommand creates the completion command.
// This overrides Cobra's auto-generated completion command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion script",
		Long: `Generate the autocompletion script for the given shell.

To load completions in your current shell session:

  source <(freewrite completion bash)

To load completions for every new session, write the script to your
shell's completion directory, for example:

  freewrite completion zsh > "${fpath[1]}/_freewrite"`,
		ValidArgs:             constants.Shells(),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()

			switch args[0] {
			case constants.ShellBash:
				return root.GenBashCompletionV2(out, true)
			case constants.ShellZsh:
				return root.GenZshCompletion(out)
			case constants.ShellFish:
				return root.GenFishCompletion(out, true)
			case constants.ShellPowerShell:
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return errors.NewValidationError("shell", args[0], "unsupported shell")
			}
		},
	}
}
