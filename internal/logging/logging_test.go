package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Disabled(t *testing.T) {
	logger, cleanup, err := Setup("", slog.LevelDebug)
	require.NoError(t, err)
	require.NotNil(t, logger)
	defer cleanup()

	logger.Info("dropped")
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admindash.log")

	logger, cleanup, err := Setup(path, slog.LevelInfo)
	require.NoError(t, err)

	logger.Debug("below level")
	logger.Info("orders loaded", "count", 20)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "orders loaded")
	assert.Contains(t, string(data), "count=20")
	assert.NotContains(t, string(data), "below level")
}

func TestSetup_BadPath(t *testing.T) {
	_, _, err := Setup(filepath.Join(t.TempDir(), "missing", "x.log"), slog.LevelInfo)
	assert.Error(t, err)
}
