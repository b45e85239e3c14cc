package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/buildassert/internal/store"
)

// recordRuns stores one run per scenario name and returns their ids.
func recordRuns(t *testing.T, db string, scenarios ...string) []string {
	t.Helper()

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	var ids []string
	for _, name := range scenarios {
		run, err := st.RecordRun(t.Context(), store.Run{
			Scenario:   name,
			Fixture:    "app.yaml",
			Pass:       name != "broken",
			ReportHash: "0123456789abcdef0123",
			Report:     []byte("{}"),
			Checks: []store.CheckRecord{
				{Index: 0, Subject: "project", Assert: "has_name", Pass: true},
				{Index: 1, Subject: "task test", Assert: "is_enabled", Pass: name != "broken", Message: "Expected task ':test' to be enabled"},
			},
		})
		require.NoError(t, err)
		ids = append(ids, run.ID)
	}
	return ids
}

func decodeRuns(t *testing.T, stdout string) []RunSummary {
	t.Helper()

	var resp struct {
		Status string       `json:"status"`
		Data   []RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Equal(t, "ok", resp.Status)
	return resp.Data
}

func TestHistory_ListsNewestFirst(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	recordRuns(t, db, "app_layout", "broken", "app_layout")

	stdout, _, err := executeCommand(t, "history", "--format", "json", "--db", db)
	require.NoError(t, err)

	runs := decodeRuns(t, stdout)
	require.Len(t, runs, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{runs[0].Seq, runs[1].Seq, runs[2].Seq})
	assert.False(t, runs[1].Pass)
	assert.Empty(t, runs[0].Checks)
}

func TestHistory_ScenarioAndLimit(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	recordRuns(t, db, "app_layout", "broken", "app_layout", "app_layout")

	stdout, _, err := executeCommand(t, "history", "--format", "json", "--db", db, "--scenario", "app_layout", "--limit", "2")
	require.NoError(t, err)

	runs := decodeRuns(t, stdout)
	require.Len(t, runs, 2)
	assert.Equal(t, int64(4), runs[0].Seq)
	assert.Equal(t, int64(3), runs[1].Seq)
	for _, r := range runs {
		assert.Equal(t, "app_layout", r.Scenario)
	}
}

func TestHistory_Text(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	ids := recordRuns(t, db, "app_layout", "broken")

	stdout, _, err := executeCommand(t, "history", "--no-color", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✗ #2 broken")
	assert.Contains(t, stdout, "✓ #1 app_layout")
	assert.Contains(t, stdout, "0123456789ab  "+ids[0])
}

func TestHistory_EmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	stdout, _, err := executeCommand(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "No runs recorded.\n", stdout)

	stdout, _, err = executeCommand(t, "history", "--format", "json", "--db", db)
	require.NoError(t, err)
	assert.Empty(t, decodeRuns(t, stdout))
}

func TestHistory_ShowRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	ids := recordRuns(t, db, "broken")

	stdout, _, err := executeCommand(t, "history", "--format", "json", "--db", db, "--run", ids[0])
	require.NoError(t, err)

	var resp struct {
		Data RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, ids[0], resp.Data.ID)
	require.Len(t, resp.Data.Checks, 2)
	assert.Equal(t, "is_enabled", resp.Data.Checks[1].Assert)
	assert.False(t, resp.Data.Checks[1].Pass)

	stdout, _, err = executeCommand(t, "history", "--no-color", "--db", db, "--run", ids[0])
	require.NoError(t, err)
	assert.Contains(t, stdout, "Run #1 broken ("+ids[0]+")")
	assert.Contains(t, stdout, "  ✗ [1] task test: is_enabled\n      Expected task ':test' to be enabled\n")
}

func TestHistory_UnknownRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	recordRuns(t, db, "app_layout")

	_, _, err := executeCommand(t, "history", "--db", db, "--run", "no-such-run")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestHistory_RequiresDB(t *testing.T) {
	_, _, err := executeCommand(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
}
