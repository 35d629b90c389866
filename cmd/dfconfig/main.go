// dfconfig inspects and edits Dwarf Fortress style init files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thirteen37/dfconfig/internal/cmd"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes dfconfig with args and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx := context.Background()

	// Interpreter mode: argv[0] = interpreter, argv[1] = script path
	if len(args) == 1 && !cmd.IsSubcommand(args[0]) {
		if err := cmd.RunScript(ctx, args[0], stdin, stdout); err != nil {
			fmt.Fprintf(stderr, "dfconfig: %v\n", err)
			return 1
		}
		return 0
	}

	root := cmd.NewRootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "dfconfig: %v\n", err)
		return 1
	}
	return 0
}
