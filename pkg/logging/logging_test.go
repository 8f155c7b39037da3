package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume_log.txt")
	require.NoError(t, os.WriteFile(path, []byte("earlier line\n"), 0o644))

	logger, w, closeFn, err := New(path, "info")
	require.NoError(t, err)
	require.NotNil(t, w)

	logger.Info("resume generated", "name", "Ada")
	logger.Debug("hidden")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(b)
	assert.Contains(t, content, "earlier line")
	assert.Contains(t, content, "resume generated")
	assert.Contains(t, content, "name=Ada")
	assert.NotContains(t, content, "hidden")
}

func TestNew_BadPath(t *testing.T) {
	_, _, _, err := New(filepath.Join(t.TempDir(), "missing", "log.txt"), "info")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}
