package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when no run has the requested id.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded scenario run.
type Run struct {
	// ID is a UUIDv7 assigned by RecordRun when empty.
	ID string
	// Seq is assigned by RecordRun and orders runs.
	Seq        int64
	Scenario   string
	Fixture    string
	Pass       bool
	ReportHash string
	// Report is the canonical JSON report.
	Report     []byte
	RecordedAt time.Time
	Checks     []CheckRecord
}

// CheckRecord is one check of a recorded run.
type CheckRecord struct {
	Index    int
	Subject  string
	Assert   string
	Pass     bool
	Message  string
	Expected string
	Error    string
}

// RecordRun stores run and its checks in one transaction and returns the
// run with ID, Seq and RecordedAt filled in.
func (s *Store) RecordRun(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return Run{}, fmt.Errorf("record run: generate id: %w", err)
		}
		run.ID = id.String()
	}
	if run.RecordedAt.IsZero() {
		run.RecordedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("record run: begin: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&run.Seq); err != nil {
		return Run{}, fmt.Errorf("record run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, seq, scenario, fixture, pass, report_hash, report, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Seq,
		run.Scenario,
		run.Fixture,
		run.Pass,
		run.ReportHash,
		string(run.Report),
		run.RecordedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}

	for _, c := range run.Checks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO check_results (run_id, idx, subject, assertion, pass, message, expected, error)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, run.ID, c.Index, c.Subject, c.Assert, c.Pass, c.Message, c.Expected, c.Error)
		if err != nil {
			return Run{}, fmt.Errorf("record run: check %d: %w", c.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("record run: commit: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs first, without their checks. An
// empty scenario lists every scenario; a limit <= 0 means no limit.
// Returns an empty slice, not nil, when nothing matches.
func (s *Store) ListRuns(ctx context.Context, scenario string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, scenario, fixture, pass, report_hash, report, recorded_at
		FROM runs
		WHERE ? = '' OR scenario = ?
		ORDER BY seq DESC, id COLLATE BINARY ASC
		LIMIT ?
	`, scenario, scenario, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun returns the run with id and its checks.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, scenario, fixture, pass, report_hash, report, recorded_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, err
	}

	run.Checks, err = s.RunChecks(ctx, id)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

// RunChecks returns the checks of a run in check order.
func (s *Store) RunChecks(ctx context.Context, runID string) ([]CheckRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT idx, subject, assertion, pass, message, expected, error
		FROM check_results
		WHERE run_id = ?
		ORDER BY idx ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query checks: %w", err)
	}
	defer rows.Close()

	checks := []CheckRecord{}
	for rows.Next() {
		var c CheckRecord
		if err := rows.Scan(&c.Index, &c.Subject, &c.Assert, &c.Pass, &c.Message, &c.Expected, &c.Error); err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checks: %w", err)
	}
	return checks, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run        Run
		report     string
		recordedAt string
	)
	if err := row.Scan(&run.ID, &run.Seq, &run.Scenario, &run.Fixture, &run.Pass, &run.ReportHash, &report, &recordedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, recordedAt)
	if err != nil {
		return Run{}, fmt.Errorf("scan run %s: recorded_at: %w", run.ID, err)
	}
	run.Report = []byte(report)
	run.RecordedAt = t
	return run, nil
}
