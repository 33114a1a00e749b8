package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "json")
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.Int("run", 2))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, float64(2), line["run"])
}

func TestNew_Rejects(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)
	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}
