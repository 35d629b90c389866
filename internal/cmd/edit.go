package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Print the value of a key",
		Long: `Print the value of a key.

With duplicates, the entry selected by --policy is printed; use --all to
print every occurrence in file order.

Example:
  dfconfig get data/init/init.txt SOUND`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, key := args[0], args[1]

			doc, err := opts.load(cmd.Context(), target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if all {
				values := doc.GetAll(key)
				if len(values) == 0 {
					return fmt.Errorf("key %s not found in %s", key, target)
				}
				for _, v := range values {
					fmt.Fprintln(out, v)
				}
				return nil
			}

			value, ok := doc.Get(key)
			if !ok {
				return fmt.Errorf("key %s not found in %s", key, target)
			}
			fmt.Fprintln(out, value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Print every occurrence of the key")
	return cmd
}

func newSetCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "set <file> <key> <value>",
		Short: "Set the value of a key",
		Long: `Set the value of a key and write the file back.

The selected entry is rewritten in place; a key that does not exist is
appended at the end of the file. Use --all to rewrite every occurrence.

Example:
  dfconfig set data/init/init.txt VOLUME 128`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, key, value := args[0], args[1], args[2]
			ctx := cmd.Context()

			doc, err := opts.load(ctx, target)
			if err != nil {
				return err
			}

			old, existed := doc.Get(key)
			if all {
				n := doc.SetAll(key, value)
				log.Infof("set %d occurrences of %s", n, key)
			} else {
				doc.Set(key, value)
			}

			if err := opts.save(ctx, target, doc); err != nil {
				return err
			}

			if existed {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s -> %s\n", key, old, value)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s\n", key, value)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Rewrite every occurrence of the key")
	return cmd
}

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "remove <file> <key>",
		Short: "Remove a key",
		Long: `Remove the selected entry of a key and write the file back.
Use --all to remove every occurrence.

Example:
  dfconfig remove data/init/d_init.txt AUTOSAVE_PAUSE`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, key := args[0], args[1]
			ctx := cmd.Context()

			doc, err := opts.load(ctx, target)
			if err != nil {
				return err
			}

			n := 0
			if all {
				n = doc.RemoveAll(key)
			} else if doc.Remove(key) {
				n = 1
			}

			if n == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Key %s not found\n", key)
				return nil
			}

			if err := opts.save(ctx, target, doc); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries of %s\n", n, key)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove every occurrence of the key")
	return cmd
}
