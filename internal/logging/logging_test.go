package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Format: FormatJSON}, &buf)
	require.NoError(t, err)

	logger.Debug("loaded fixture", zap.String("path", "app.yaml"), zap.Int("tasks", 3))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "loaded fixture", entry["msg"])
	assert.Equal(t, "app.yaml", entry["path"])
	assert.EqualValues(t, 3, entry["tasks"])
	assert.NotContains(t, entry, "ts")
}

func TestNew_ConsoleFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", zap.String("check", "project"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `{"check": "project"}`)
}

func TestNew_Timestamps(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: FormatJSON, Timestamps: true}, &buf)
	require.NoError(t, err)

	logger.Info("x")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry, "ts")
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "loud"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `invalid log level "loud"`)

	_, err = New(Config{Format: "xml"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `invalid log format "xml"`)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Info("discarded") })
}
