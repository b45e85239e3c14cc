// Command buildassert runs check scenarios against build project fixtures.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/buildassert/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
