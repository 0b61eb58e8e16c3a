// Package export provides the export command.
package export

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentstation/freewrite/internal/appcontext"
	"github.com/agentstation/freewrite/internal/cmd/cmdutil"
	"github.com/agentstation/freewrite/internal/storage/files"
	"github.com/agentstation/freewrite/pkg/entries"
	"github.com/agentstation/freewrite/pkg/errors"
	pkgexport "github.com/agentstation/freewrite/pkg/export"
)

// Flags holds the export command flags.
type Flags struct {
	All    bool
	Format string
	Out    string
}

// NewCommand creates the export command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "export [id]",
		GroupID: "entries",
		Short:   "Export an entry or the whole journal",
		Long: `Export renders one entry, or with --all an index of every entry, as
markdown, text, json or yaml. Output goes to stdout unless --out is given.
When --out names a directory a filename is chosen for you.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.All {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		Example: `  freewrite export 3C1E8F52-93B0-4C8B-A3F4-6F1D2B9E7A10
  freewrite export 3C1E8F52-93B0-4C8B-A3F4-6F1D2B9E7A10 --format json --out ~/exports/
  freewrite export --all --format markdown --out index.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := pkgexport.ParseFormat(flags.Format)
			if err != nil {
				return err
			}

			journal, err := app.Journal()
			if err != nil {
				return err
			}
			exporter := pkgexport.New(journal)
			fs := afero.NewOsFs()

			if flags.All {
				return write(fs, flags.Out, "freewrite-index."+format.Extension(), cmd.OutOrStdout(), func(w io.Writer) error {
					return exporter.Index(cmd.Context(), format, w)
				})
			}

			id, err := cmdutil.ParseID(args)
			if err != nil {
				return err
			}

			name, err := suggestedName(cmd, journal, id, format)
			if err != nil {
				return err
			}

			return write(fs, flags.Out, name, cmd.OutOrStdout(), func(w io.Writer) error {
				return exporter.Entry(cmd.Context(), id, format, w)
			})
		},
	}

	cmd.Flags().BoolVar(&flags.All, "all", false, "export an index of all entries")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", string(pkgexport.FormatMarkdown), "export format: "+formatNames())
	cmd.Flags().StringVar(&flags.Out, "out", "", "output file or directory (default stdout)")

	return cmd
}

// suggestedName returns the filename used when --out is a directory.
func suggestedName(cmd *cobra.Command, source pkgexport.Source, id uuid.UUID, format pkgexport.Format) (string, error) {
	list, err := source.LoadAllEntries(cmd.Context())
	if err != nil {
		return "", err
	}
	entry, ok := entries.Catalog(list).Find(id)
	if !ok {
		return "", errors.NewNotFoundError("entry", id.String())
	}
	return pkgexport.Filename(entry, format), nil
}

// write runs render against stdout, a file, or a file named name inside a
// directory. File output is rendered in memory first and then replaced
// atomically, so a failed export leaves an existing file as it was.
func write(fs afero.Fs, out, name string, stdout io.Writer, render func(io.Writer) error) error {
	if out == "" {
		return render(stdout)
	}

	path := out
	if isDir, err := afero.IsDir(fs, out); err == nil && isDir {
		path = filepath.Join(out, name)
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	return files.WriteFile(fs, path, buf.Bytes())
}

func formatNames() string {
	names := make([]string, 0, len(pkgexport.Formats()))
	for _, f := range pkgexport.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
