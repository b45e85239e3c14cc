package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/buildassert/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	LogLevel string
	NoColor  bool

	logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Logger returns the logger built for the running command, or a no-op
// logger before flags are parsed.
func (o *RootOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return logging.Nop()
	}
	return o.logger
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
		NoColor:   o.NoColor,
	}
}

// NewRootCommand creates the root command for the buildassert CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "buildassert",
		Short: "Check build project fixtures against declarative scenarios",
		Long: `buildassert runs declarative check scenarios against project fixtures.

A fixture describes a build project (tasks, configurations, plugins,
extensions, properties) in YAML, CUE or HCL. A scenario lists checks
against that project, each one run through the buildassert library.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			level := opts.LogLevel
			if opts.Verbose && level == "" {
				level = "debug"
			}
			if level == "" {
				level = "warn"
			}
			logger, err := logging.New(logging.Config{Level: level, Format: logFormat(opts.Format)}, cmd.ErrOrStderr())
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid logging flags", err)
			}
			opts.logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error); defaults to warn, or debug with -v")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// logFormat keeps JSON output machine readable on both streams.
func logFormat(outputFormat string) string {
	if outputFormat == "json" {
		return logging.FormatJSON
	}
	return logging.FormatConsole
}
