package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/buildassert/internal/checks"
	"github.com/roach88/buildassert/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Record string // database to record runs in
	Update bool   // regenerate golden files
	Golden string // golden file directory
	Filter string // scenario filter (glob pattern)
}

// ScenarioReport is the outcome of one scenario file.
type ScenarioReport struct {
	Name   string               `json:"name"`
	File   string               `json:"file"`
	Pass   bool                 `json:"pass"`
	Passed int                  `json:"passed"`
	Failed int                  `json:"failed"`
	Hash   string               `json:"hash,omitempty"`
	RunID  string               `json:"run_id,omitempty"`
	Golden string               `json:"golden,omitempty"` // "match", "mismatch" or "updated"
	Checks []checks.CheckResult `json:"checks,omitempty"`
	Errors []string             `json:"errors,omitempty"`
}

// CheckSummary is the outcome of a check command.
type CheckSummary struct {
	Scenarios []ScenarioReport `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// Golden comparison outcomes.
const (
	goldenMatch    = "match"
	goldenMismatch = "mismatch"
	goldenUpdated  = "updated"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <scenario-file-or-dir>...",
		Short: "Run check scenarios",
		Long: `Run check scenarios against their fixtures.

Each argument is a scenario file or a directory searched recursively for
.yaml and .yml scenarios. When a golden file exists for a scenario its
canonical report must match it.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (missing paths, database errors)

Examples:
  buildassert check ./scenarios
  buildassert check ./scenarios --filter "app-*"
  buildassert check ./scenarios/app.yaml --update
  buildassert check ./scenarios --record runs.db --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Record, "record", "", "record runs in this SQLite database")
	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Golden, "golden", "", "golden file directory (default: <scenario dir>/golden)")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runChecks(cmd *cobra.Command, opts *CheckOptions, paths []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := opts.formatter(cmd)
	logger := opts.Logger()

	var files []string
	for _, p := range paths {
		found, err := collectScenarioFiles(p, opts.Filter)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to find scenarios in %s", p), err)
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		if opts.Format == "json" {
			return out.Result(CheckSummary{Scenarios: []ScenarioReport{}}, nil)
		}
		fmt.Fprintln(out.Writer, "No scenarios found.")
		return nil
	}

	var st *store.Store
	if opts.Record != "" {
		var err error
		st, err = store.Open(opts.Record)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open run database", err)
		}
		defer st.Close()
	}

	summary := CheckSummary{
		Scenarios: make([]ScenarioReport, 0, len(files)),
		Total:     len(files),
	}
	for _, file := range files {
		report := runScenarioFile(ctx, opts, st, file, logger)
		summary.Scenarios = append(summary.Scenarios, report)
		if report.Pass {
			summary.Passed++
		} else {
			summary.Failed++
		}
		if opts.Format != "json" {
			writeScenarioText(out, opts, report)
		}
	}

	var failure *CLIError
	if summary.Failed > 0 {
		failure = &CLIError{
			Code:    ErrCodeCheckFailed,
			Message: fmt.Sprintf("%d scenario(s) failed", summary.Failed),
		}
	}

	if opts.Format == "json" {
		if err := out.Result(summary, failure); err != nil {
			return err
		}
	} else {
		writeSummaryText(out, summary)
	}

	if failure != nil {
		return NewExitError(ExitFailure, failure.Message)
	}
	return nil
}

// collectScenarioFiles returns path itself when it is a file, or the
// .yaml and .yml files beneath it when it is a directory. Golden
// directories are skipped.
func collectScenarioFiles(path, filter string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && d.Name() == "golden" {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(p)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(p), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, p)
		return nil
	})
	return files, err
}

func runScenarioFile(ctx context.Context, opts *CheckOptions, st *store.Store, file string, logger *zap.Logger) ScenarioReport {
	report := ScenarioReport{Name: filepath.Base(file), File: file}
	fail := func(format string, args ...any) ScenarioReport {
		report.Pass = false
		report.Errors = append(report.Errors, fmt.Sprintf(format, args...))
		return report
	}

	scenario, err := checks.LoadScenario(file)
	if err != nil {
		return fail("failed to load scenario: %v", err)
	}
	report.Name = scenario.Name

	result, err := checks.Run(ctx, scenario, logger.With(zap.String("scenario", scenario.Name)))
	if err != nil {
		return fail("execution failed: %v", err)
	}
	report.Pass = result.Pass
	report.Passed = result.Passed()
	report.Failed = result.Failed()
	report.Checks = result.Checks

	data, err := checks.Canonical(result)
	if err != nil {
		return fail("failed to encode report: %v", err)
	}
	if report.Hash, err = checks.Hash(result); err != nil {
		return fail("failed to hash report: %v", err)
	}

	goldenPath := goldenFilePath(opts.Golden, file, scenario.Name)
	switch {
	case opts.Update:
		if err := writeGolden(goldenPath, data); err != nil {
			return fail("failed to update golden file: %v", err)
		}
		report.Golden = goldenUpdated
	default:
		want, err := os.ReadFile(goldenPath)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return fail("failed to read golden file: %v", err)
		case bytes.Equal(want, data):
			report.Golden = goldenMatch
		default:
			report.Golden = goldenMismatch
			report.Pass = false
			report.Errors = append(report.Errors, "report does not match golden file (run with --update to regenerate)")
		}
	}

	if st != nil {
		run, err := st.RecordRun(ctx, toRun(result, data, report.Hash))
		if err != nil {
			return fail("failed to record run: %v", err)
		}
		report.RunID = run.ID
		logger.Debug("run recorded", zap.String("run_id", run.ID), zap.Int64("seq", run.Seq))
	}

	return report
}

// goldenFilePath returns dir/<name>.golden, or <scenario dir>/golden/<name>.golden
// when dir is empty.
func goldenFilePath(dir, scenarioFile, name string) string {
	if dir == "" {
		dir = filepath.Join(filepath.Dir(scenarioFile), "golden")
	}
	return filepath.Join(dir, name+".golden")
}

func writeGolden(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func toRun(result *checks.Result, report []byte, hash string) store.Run {
	run := store.Run{
		Scenario:   result.Scenario,
		Fixture:    result.Fixture,
		Pass:       result.Pass,
		ReportHash: hash,
		Report:     report,
		Checks:     make([]store.CheckRecord, len(result.Checks)),
	}
	for i, c := range result.Checks {
		run.Checks[i] = store.CheckRecord{
			Index:    c.Index,
			Subject:  c.Subject,
			Assert:   c.Assert,
			Pass:     c.Pass,
			Message:  c.Message,
			Expected: c.Expected,
			Error:    c.Error,
		}
	}
	return run
}

func writeScenarioText(out *OutputFormatter, opts *CheckOptions, report ScenarioReport) {
	w := out.Writer

	if report.Pass {
		fmt.Fprintf(w, "%s %s (%d checks)\n", out.ok("✓"), report.Name, report.Passed)
	} else {
		fmt.Fprintf(w, "%s %s\n", out.fail("✗"), report.Name)
	}

	for _, c := range report.Checks {
		if c.Pass && !opts.Verbose {
			continue
		}
		writeCheckText(w, out, c)
	}
	for _, e := range report.Errors {
		fmt.Fprintf(w, "  %s\n", e)
	}
	if report.Golden == goldenUpdated {
		fmt.Fprintf(w, "  %s\n", out.dim("golden updated"))
	}
	if report.RunID != "" {
		out.VerboseLog("  recorded run %s", report.RunID)
	}
	if !report.Pass {
		fmt.Fprintf(w, "  %s %s\n", out.dim("rerun:"), rerunCommand(opts, report.File))
	}
}

func writeCheckText(w io.Writer, out *OutputFormatter, c checks.CheckResult) {
	mark := out.ok("✓")
	if !c.Pass {
		mark = out.fail("✗")
	}
	fmt.Fprintf(w, "  %s [%d] %s: %s\n", mark, c.Index, c.Subject, c.Assert)

	switch {
	case c.Error != "":
		fmt.Fprintf(w, "      error: %s\n", c.Error)
	case !c.Pass && c.Expected != "":
		fmt.Fprintf(w, "      expected failure: %s\n", c.Expected)
		fmt.Fprintf(w, "      actual:           %s\n", c.Message)
	case !c.Pass:
		fmt.Fprintf(w, "      %s\n", indent(c.Message, "      "))
	}
}

func writeSummaryText(out *OutputFormatter, summary CheckSummary) {
	w := out.Writer
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check Summary: %d passed, %d failed, %d total\n", summary.Passed, summary.Failed, summary.Total)
	if summary.Failed == 0 {
		fmt.Fprintf(w, "%s All scenarios passed\n", out.ok("✓"))
	}
}

// indent prefixes every line after the first with prefix.
func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
