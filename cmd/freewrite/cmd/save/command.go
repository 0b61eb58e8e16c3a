// Package save provides the save command.
package save

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/freewrite/internal/appcontext"
	"github.com/agentstation/freewrite/internal/cmd/cmdutil"
	"github.com/agentstation/freewrite/pkg/errors"
	"github.com/agentstation/freewrite/pkg/logging"
)

// NewCommand creates the save command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "save <id>",
		GroupID: "entries",
		Short:   "Replace the content of an entry",
		Long: `Save replaces the content of an existing entry with text read from
--file or from standard input. The entry keeps its id and creation time.`,
		Args: cobra.ExactArgs(1),
		Example: `  freewrite save 3C1E8F52-93B0-4C8B-A3F4-6F1D2B9E7A10 --file draft.txt
  echo "more words" | freewrite save 3C1E8F52-93B0-4C8B-A3F4-6F1D2B9E7A10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ParseID(args)
			if err != nil {
				return err
			}

			content, err := readContent(cmd, file)
			if err != nil {
				return err
			}

			journal, err := app.Journal()
			if err != nil {
				return err
			}

			if err := journal.SaveEntry(cmd.Context(), id, content); err != nil {
				return err
			}

			logging.Ctx(logging.WithEntryID(cmd.Context(), id.String())).Info().
				Int("bytes", len(content)).
				Msg("Saved entry")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read content from file instead of stdin")

	return cmd
}

func readContent(cmd *cobra.Command, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.WrapIO("read", file, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.WrapIO("read", "stdin", err)
	}
	return string(data), nil
}
