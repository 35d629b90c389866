package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs/file"

	"github.com/thirteen37/dfconfig/internal/keys"
	"github.com/thirteen37/dfconfig/internal/script"
	"github.com/thirteen37/dfconfig/line"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var (
		fromFile      string
		output        string
		preserveLists []string
		removeLists   []string
		onlyKeys      []string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a patch script from a config file",
		Long: `Generate a patch script holding the entries of an existing config.

A patch script is run with the current config on stdin and prints the
patched config on stdout:

  dfconfig patch.dfpatch < init.txt > init.txt.new

With a "#!/usr/bin/env dfconfig" shebang it can be executed directly.

Example:
  dfconfig init --from data/init/init.txt --only SOUND --only VOLUME \
    --preserve '["VOLUME"]' -o sound.dfpatch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Parse key lists
			var preserve, remove []keys.Selector
			for _, s := range preserveLists {
				selectors, err := keys.ParseList(s)
				if err != nil {
					return fmt.Errorf("invalid preserve keys %q: %w", s, err)
				}
				preserve = append(preserve, selectors...)
			}
			for _, s := range removeLists {
				selectors, err := keys.ParseList(s)
				if err != nil {
					return fmt.Errorf("invalid remove keys %q: %w", s, err)
				}
				remove = append(remove, selectors...)
			}
			only := keys.FromStrings(onlyKeys)

			doc, err := opts.load(ctx, fromFile)
			if err != nil {
				return err
			}

			// Generate the script content
			var sb strings.Builder
			sb.WriteString("#!/usr/bin/env dfconfig\n")
			sb.WriteString(fmt.Sprintf("# version %d\n", script.CurrentVersion))
			if opts.syntax != "" && opts.syntax != "default" {
				sb.WriteString(fmt.Sprintf("# syntax %s\n", opts.syntax))
			}
			if len(preserve) > 0 {
				sb.WriteString(fmt.Sprintf("# preserve %s\n", keys.FormatList(preserve)))
			}
			if len(remove) > 0 {
				sb.WriteString(fmt.Sprintf("# remove %s\n", keys.FormatList(remove)))
			}
			sb.WriteString("#" + script.Separator + "\n")

			written := 0
			for _, key := range doc.Keys() {
				if len(only) > 0 && !keys.Any(only, key) {
					continue
				}
				value, _ := doc.Get(key)
				sb.WriteString(line.NewKeyValue(key, value, line.Bracketed).Text())
				sb.WriteString("\n")
				written++
			}
			log.Infof("wrote %d entries from %s", written, fromFile)

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())
				return err
			}
			if err := opts.fs.Upload(ctx, output, file.DefaultFileOsMode, bytes.NewReader([]byte(sb.String()))); err != nil {
				return fmt.Errorf("failed to write patch script: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFile, "from", "", "Config file to take entries from (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the script here instead of stdout")
	cmd.Flags().StringArrayVar(&preserveLists, "preserve", nil, "User-owned keys as a JSON array (can specify multiple)")
	cmd.Flags().StringArrayVar(&removeLists, "remove", nil, "Keys to remove as a JSON array (can specify multiple)")
	cmd.Flags().StringArrayVar(&onlyKeys, "only", nil, "Only include these keys or globs (can specify multiple)")

	cmd.MarkFlagRequired("from")
	return cmd
}
