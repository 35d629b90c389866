package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/thirteen37/dfconfig/internal/config"
	"github.com/thirteen37/dfconfig/internal/merge"
	"github.com/thirteen37/dfconfig/line"
)

func newMergeCmd(opts *rootOptions) *cobra.Command {
	var (
		overridesFile string
		formatName    string
		profileFile   string
		dryRun        bool
	)

	cmd := &cobra.Command{
		Use:   "merge <file>",
		Short: "Apply a set of managed values to a config file",
		Long: `Apply the values of an overrides file to a config file, preserving
user-owned keys listed in the profile.

The overrides file can be JSON, TOML, INI or another init file; its format
is taken from the extension unless --format is given. The profile defaults
to .dfconfig.json next to the config file; keys it lists under "preserve"
keep their current value when the config already defines them.

Example:
  dfconfig merge data/init/init.txt --overrides managed.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			ctx := cmd.Context()

			// Load profile
			if profileFile == "" {
				parent, _ := url.Split(target, file.Scheme)
				profileFile = url.Join(parent, config.DefaultName)
			}
			profile, err := config.LoadOrEmpty(ctx, opts.fs, profileFile)
			if err != nil {
				return err
			}
			opts.applyProfile(cmd, profile)

			// Read current config
			current, err := opts.load(ctx, target)
			if err != nil {
				return err
			}

			// Read managed values
			syn, err := line.ResolveSyntax(opts.syntax)
			if err != nil {
				return err
			}
			handler, err := handlerFor(formatName, overridesFile, syn)
			if err != nil {
				return err
			}
			overridesData, err := opts.fs.DownloadWithURL(ctx, overridesFile)
			if err != nil {
				return fmt.Errorf("failed to read overrides: %w", err)
			}
			managed, err := handler.Decode(overridesData)
			if err != nil {
				return fmt.Errorf("failed to parse overrides: %w", err)
			}

			// Merge
			result, changes := merge.Merge(current, managed, profile.Selectors())
			for _, c := range changes {
				if c.Added {
					log.Infof("added %s: %s", c.Key, c.New)
				} else {
					log.Infof("updated %s: %s -> %s", c.Key, c.Old, c.New)
				}
			}

			if dryRun {
				_, err = result.WriteTo(cmd.OutOrStdout())
				return err
			}
			if len(changes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes")
				return nil
			}
			if err := opts.save(ctx, target, result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d changes to %s\n", len(changes), target)
			return nil
		},
	}

	cmd.Flags().StringVar(&overridesFile, "overrides", "", "Path to the managed values file (required)")
	cmd.Flags().StringVarP(&formatName, "format", "f", "auto", "Format of the overrides file")
	cmd.Flags().StringVar(&profileFile, "profile", "", "Path to the profile (default .dfconfig.json next to the file)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the merged config instead of writing it")

	cmd.MarkFlagRequired("overrides")
	return cmd
}
