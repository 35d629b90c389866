package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeysCmd(opts *rootOptions) *cobra.Command {
	var withValues bool

	cmd := &cobra.Command{
		Use:   "keys <file>",
		Short: "List the keys of a config file",
		Long: `List each distinct key of a config file in order of first appearance.

Example:
  dfconfig keys --values data/init/init.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, key := range doc.Keys() {
				if withValues {
					value, _ := doc.Get(key)
					fmt.Fprintf(out, "%s=%s\n", key, value)
				} else {
					fmt.Fprintln(out, key)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withValues, "values", false, "Print KEY=VALUE pairs")
	return cmd
}
