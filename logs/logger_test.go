package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewFanout(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "log.json")

	logger, closer, err := New(&buf, slog.LevelInfo, path)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("pivot", "iteration", 1)
	require.NoError(t, closer.Close())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=pivot iteration=1")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "pivot", record["msg"])
	assert.Equal(t, float64(1), record["iteration"])
}

func TestNewTextOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(&buf, slog.LevelDebug, "")
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
