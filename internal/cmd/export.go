package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs/file"

	"github.com/thirteen37/dfconfig/internal/format"
	"github.com/thirteen37/dfconfig/line"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		formatName string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the effective values of a config file",
		Long: `Export the effective value of each key to another format.

Only key/value pairs are exported: comments and blank lines are dropped,
and each key appears once with the value selected by --policy.

Example:
  dfconfig export --format toml data/init/init.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			doc, err := opts.load(ctx, args[0])
			if err != nil {
				return err
			}

			name := formatName
			if name == "auto" && output == "" {
				name = "json"
			}
			syn, _ := line.ResolveSyntax(opts.syntax)
			handler, err := handlerFor(name, output, syn)
			if err != nil {
				return err
			}

			data, err := handler.Encode(format.Values(doc))
			if err != nil {
				return fmt.Errorf("failed to export %s: %w", handler.Name(), err)
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := opts.fs.Upload(ctx, output, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d keys to %s\n", len(doc.Keys()), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "auto", "Output format ("+strings.Join(formatNames, ", ")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}
