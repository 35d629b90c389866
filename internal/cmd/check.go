package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report lines that are not entries, comments or blank",
		Long: `Report malformed lines: lines that are neither an entry, a comment
nor blank under the selected --syntax. Exits non-zero when any are found.

With --syntax df every non-token line is commentary, so only decoding
errors are reported; use --syntax strict to flag stray text.

Example:
  dfconfig check --syntax strict data/init/init.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			doc, err := opts.load(cmd.Context(), target)
			if err != nil {
				return err
			}

			bad := doc.Malformed()
			out := cmd.OutOrStdout()
			for _, l := range bad {
				fmt.Fprintf(out, "%s:%d: %s\n", target, l.Num, l.Raw)
			}
			if len(bad) > 0 {
				return fmt.Errorf("%s: %d malformed lines", target, len(bad))
			}

			fmt.Fprintf(out, "%s: %d entries, ok\n", target, doc.Len())
			return nil
		},
	}
}
