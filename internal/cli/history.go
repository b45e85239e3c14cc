package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/buildassert/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB       string
	Scenario string
	Limit    int
	Run      string
}

// RunSummary is one recorded run.
type RunSummary struct {
	ID         string        `json:"id"`
	Seq        int64         `json:"seq"`
	Scenario   string        `json:"scenario"`
	Fixture    string        `json:"fixture"`
	Pass       bool          `json:"pass"`
	ReportHash string        `json:"report_hash"`
	RecordedAt string        `json:"recorded_at"`
	Checks     []CheckOutput `json:"checks,omitempty"`
}

// CheckOutput is one recorded check.
type CheckOutput struct {
	Index   int    `json:"index"`
	Subject string `json:"subject"`
	Assert  string `json:"assert"`
	Pass    bool   `json:"pass"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded check runs",
		Long: `List the check runs recorded with "buildassert check --record".

Examples:
  buildassert history --db runs.db
  buildassert history --db runs.db --scenario app_layout --limit 5
  buildassert history --db runs.db --run <run-id>`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "run database (required)")
	cmd.Flags().StringVar(&opts.Scenario, "scenario", "", "only list runs of this scenario")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to list (0 for all)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "show the checks of one run")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := opts.formatter(cmd)

	st, err := store.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open run database", err)
	}
	defer st.Close()

	if opts.Run != "" {
		return showRun(ctx, out, st, opts.Run)
	}

	runs, err := st.ListRuns(ctx, opts.Scenario, opts.Limit)
	if err != nil {
		if opts.Format == "json" {
			_ = out.Error(ErrCodeStore, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	summaries := make([]RunSummary, len(runs))
	for i, r := range runs {
		summaries[i] = toRunSummary(r)
	}

	if opts.Format == "json" {
		return out.Success(summaries)
	}

	if len(summaries) == 0 {
		fmt.Fprintln(out.Writer, "No runs recorded.")
		return nil
	}
	for _, r := range summaries {
		mark := out.ok("✓")
		if !r.Pass {
			mark = out.fail("✗")
		}
		fmt.Fprintf(out.Writer, "%s #%d %s  %s  %s  %s\n", mark, r.Seq, r.Scenario, r.RecordedAt, out.dim(r.ReportHash[:min(12, len(r.ReportHash))]), r.ID)
	}
	return nil
}

func showRun(ctx context.Context, out *OutputFormatter, st *store.Store, id string) error {
	run, err := st.GetRun(ctx, id)
	if errors.Is(err, store.ErrRunNotFound) {
		if out.Format == "json" {
			_ = out.Error(ErrCodeStore, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "unknown run", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}

	summary := toRunSummary(run)
	if out.Format == "json" {
		return out.Success(summary)
	}

	fmt.Fprintf(out.Writer, "Run #%d %s (%s)\n", summary.Seq, summary.Scenario, summary.ID)
	fmt.Fprintf(out.Writer, "  fixture:  %s\n", summary.Fixture)
	fmt.Fprintf(out.Writer, "  recorded: %s\n", summary.RecordedAt)
	fmt.Fprintf(out.Writer, "  hash:     %s\n", summary.ReportHash)
	for _, c := range summary.Checks {
		mark := out.ok("✓")
		if !c.Pass {
			mark = out.fail("✗")
		}
		fmt.Fprintf(out.Writer, "  %s [%d] %s: %s\n", mark, c.Index, c.Subject, c.Assert)
		if c.Message != "" && !c.Pass {
			fmt.Fprintf(out.Writer, "      %s\n", c.Message)
		}
		if c.Error != "" {
			fmt.Fprintf(out.Writer, "      error: %s\n", c.Error)
		}
	}
	return nil
}

func toRunSummary(r store.Run) RunSummary {
	s := RunSummary{
		ID:         r.ID,
		Seq:        r.Seq,
		Scenario:   r.Scenario,
		Fixture:    r.Fixture,
		Pass:       r.Pass,
		ReportHash: r.ReportHash,
		RecordedAt: r.RecordedAt.UTC().Format(time.RFC3339),
	}
	for _, c := range r.Checks {
		s.Checks = append(s.Checks, CheckOutput{
			Index:   c.Index,
			Subject: c.Subject,
			Assert:  c.Assert,
			Pass:    c.Pass,
			Message: c.Message,
			Error:   c.Error,
		})
	}
	return s
}
