package cli

import (
	"strings"

	"github.com/alessio/shellescape"
)

// commandBuilder assembles a shell-safe command line.
type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand returns the command that reruns a single scenario file with
// the same output and golden flags.
func rerunCommand(opts *CheckOptions, scenarioFile string) string {
	var b commandBuilder
	b.add("buildassert", "check")
	if opts.Golden != "" {
		b.add("--golden", opts.Golden)
	}
	if opts.Verbose {
		b.add("-v")
	}
	b.add(scenarioFile)
	return b.String()
}
