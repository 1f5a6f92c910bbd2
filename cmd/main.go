// ccenv manages named environment profiles for Claude Code.
package main

import (
	"fmt"
	"os"

	"github.com/ffreemt/claude-code-env-manager/internal/cmd"
)

var (
	run    = func() error { return cmd.Execute() }
	osExit = os.Exit
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}
