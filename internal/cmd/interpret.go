package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/viant/afs"

	"github.com/thirteen37/dfconfig"
	"github.com/thirteen37/dfconfig/internal/format/native"
	"github.com/thirteen37/dfconfig/internal/merge"
	"github.com/thirteen37/dfconfig/internal/script"
	"github.com/thirteen37/dfconfig/line"
)

// RunScript applies the patch script at scriptPath to the config read from
// stdin and writes the result to stdout.
func RunScript(ctx context.Context, scriptPath string, stdin io.Reader, stdout io.Writer) error {
	fs := afs.New()

	// Read script content
	scriptContent, err := fs.DownloadWithURL(ctx, scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	// Parse script
	scr, err := script.Parse(string(scriptContent))
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}
	syn, err := line.ResolveSyntax(scr.Syntax)
	if err != nil {
		return err
	}

	// Read current config from stdin
	currentData, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	current, err := dfconfig.Parse(currentData, dfconfig.WithSyntax(syn))
	if err != nil {
		return fmt.Errorf("failed to parse current config: %w", err)
	}

	// Parse managed entries from the script body
	managed, err := native.New(syn).Decode([]byte(scr.Template))
	if err != nil {
		return fmt.Errorf("failed to parse script entries: %w", err)
	}

	result, changes := merge.Merge(current, managed, scr.Preserve)
	removed := merge.Remove(result, scr.Remove)
	log.Infof("%s: %d changes, %d keys removed", scriptPath, len(changes), len(removed))

	_, err = result.WriteTo(stdout)
	return err
}
