package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thirteen37/dfconfig/internal/config"
)

func newPreserveCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preserve",
		Short: "Manage the user-owned keys of a profile",
		Long: `Manage the keys a profile marks as user-owned. Merges and patch
scripts never overwrite a user-owned key the config already defines.

Keys may be exact names or globs such as KEY_*.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <profile> <key>...",
			Short: "Mark keys as user-owned",
			Long: `Mark keys as user-owned, creating the profile if needed.

Example:
  dfconfig preserve add data/init/.dfconfig.json VOLUME 'KEY_*'`,
			Args: cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				profileFile := args[0]

				profile, err := config.LoadOrEmpty(ctx, opts.fs, profileFile)
				if err != nil {
					return err
				}

				added := 0
				for _, key := range args[1:] {
					if !profile.AddKey(key) {
						fmt.Fprintf(cmd.OutOrStdout(), "Key %s already preserved\n", key)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Preserving %s\n", key)
					added++
				}
				if added == 0 {
					return nil
				}
				return profile.Save(ctx, opts.fs, profileFile)
			},
		},
		&cobra.Command{
			Use:   "remove <profile> <key>...",
			Short: "Stop treating keys as user-owned",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				profileFile := args[0]

				profile, err := config.Load(ctx, opts.fs, profileFile)
				if err != nil {
					return err
				}

				removed := 0
				for _, key := range args[1:] {
					if !profile.RemoveKey(key) {
						fmt.Fprintf(cmd.OutOrStdout(), "Key %s not found\n", key)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "No longer preserving %s\n", key)
					removed++
				}
				if removed == 0 {
					return nil
				}
				return profile.Save(ctx, opts.fs, profileFile)
			},
		},
		&cobra.Command{
			Use:   "list <profile>",
			Short: "List user-owned keys",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				profile, err := config.Load(cmd.Context(), opts.fs, args[0])
				if err != nil {
					return err
				}

				if len(profile.Preserve) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No user-owned keys configured")
					return nil
				}
				for _, key := range profile.Preserve {
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}
				return nil
			},
		},
	)
	return cmd
}
