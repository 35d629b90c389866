// Package cmd provides the CLI commands for dfconfig.
package cmd

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/thirteen37/dfconfig"
	"github.com/thirteen37/dfconfig/internal/config"
	"github.com/thirteen37/dfconfig/line"
)

var log = commonlog.GetLogger("dfconfig")

// rootOptions holds the global flags shared by every command.
type rootOptions struct {
	syntax   string
	encoding string
	policy   string
	verbose  int

	fs afs.Service
}

// NewRootCommand builds the dfconfig command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{fs: afs.New()}

	rootCmd := &cobra.Command{
		Use:   "dfconfig",
		Short: "Inspect and edit Dwarf Fortress style init files",
		Long: `dfconfig reads and edits init files made of [KEY:VALUE] tokens,
such as init.txt and d_init.txt.

Edits rewrite only the entries they touch: comments, blank lines, line
endings and the layout of every other entry are written back unchanged.
When a key occurs more than once, the last occurrence is the one the game
uses, and the one dfconfig reads and edits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(opts.verbose, nil)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.syntax, "syntax", "default", fmt.Sprintf("Line syntax preset (%v)", line.PresetNames()))
	flags.StringVar(&opts.encoding, "encoding", "", "Text encoding of config files, e.g. cp437 (default UTF-8)")
	flags.StringVar(&opts.policy, "policy", dfconfig.DefaultPolicy.String(), "Duplicate key policy (last-wins, first-wins)")
	flags.CountVarP(&opts.verbose, "verbose", "v", "Increase log verbosity (repeatable)")

	rootCmd.AddCommand(
		newGetCmd(opts),
		newSetCmd(opts),
		newRemoveCmd(opts),
		newKeysCmd(opts),
		newCheckCmd(opts),
		newExportCmd(opts),
		newMergeCmd(opts),
		newPreserveCmd(opts),
		newInitCmd(opts),
	)
	return rootCmd
}

// IsSubcommand reports whether name is a dfconfig command or a flag.
func IsSubcommand(name string) bool {
	if name == "" || name[0] == '-' {
		return true
	}
	for _, c := range NewRootCommand().Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return name == "help" || name == "completion"
}

// documentOptions converts the global flags to document options.
func (o *rootOptions) documentOptions() ([]dfconfig.Option, error) {
	syn, err := line.ResolveSyntax(o.syntax)
	if err != nil {
		return nil, err
	}
	enc, err := dfconfig.LookupEncoding(o.encoding)
	if err != nil {
		return nil, err
	}
	policy, err := dfconfig.ParsePolicy(o.policy)
	if err != nil {
		return nil, err
	}

	result := []dfconfig.Option{dfconfig.WithSyntax(syn), dfconfig.WithPolicy(policy)}
	if enc != nil {
		result = append(result, dfconfig.WithEncoding(enc))
	}
	return result, nil
}

// applyProfile fills options the user did not set on the command line from p.
func (o *rootOptions) applyProfile(cmd *cobra.Command, p *config.Profile) {
	if p.Options.Syntax != "" && !cmd.Flags().Changed("syntax") {
		o.syntax = p.Options.Syntax
	}
	if p.Options.Encoding != "" && !cmd.Flags().Changed("encoding") {
		o.encoding = p.Options.Encoding
	}
}

// load reads and parses the config at URL.
func (o *rootOptions) load(ctx context.Context, URL string) (*dfconfig.Document, error) {
	docOpts, err := o.documentOptions()
	if err != nil {
		return nil, err
	}

	data, err := o.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", URL, err)
	}
	log.Debugf("read %d bytes from %s", len(data), URL)

	doc, err := dfconfig.Parse(data, docOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", URL, err)
	}
	if bad := doc.Malformed(); len(bad) > 0 {
		log.Warningf("%s has %d malformed lines", URL, len(bad))
	}
	return doc, nil
}

// save writes doc to URL.
func (o *rootOptions) save(ctx context.Context, URL string, doc *dfconfig.Document) error {
	data, err := doc.Bytes()
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", URL, err)
	}
	if err := o.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", URL, err)
	}
	log.Debugf("wrote %d bytes to %s", len(data), URL)
	return nil
}
