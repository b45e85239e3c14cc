package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run with one passing and one failing check.
func createTestRun(scenario string) Run {
	return Run{
		Scenario:   scenario,
		Fixture:    "app.yaml",
		Pass:       false,
		ReportHash: fmt.Sprintf("hash-%s", scenario),
		Report:     []byte(`{"scenario":"` + scenario + `"}`),
		RecordedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Checks: []CheckRecord{
			{Index: 0, Subject: "project", Assert: "has_name", Pass: true},
			{Index: 1, Subject: "task test", Assert: "is_enabled", Pass: false,
				Message: "Expected task 'test' to be enabled, but it was disabled"},
		},
	}
}
