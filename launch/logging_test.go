package launch

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingJSON(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer

	logger, closeLog, err := SetupLogging(LoggingConfig{Level: "warn", Format: "json", Output: &buf})
	require.NoError(t, err)
	defer closeLog()

	logger.Info("hidden")
	slog.Warn("Frame took too long", slog.Int("ticks", 12))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "Frame took too long", record["msg"])
	assert.Equal(t, 12.0, record["ticks"])
}

func TestSetupLoggingFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	path := filepath.Join(t.TempDir(), "pixloop.log")

	logger, closeLog, err := SetupLogging(LoggingConfig{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Debug("Resize surface", slog.Int("width", 640))
	closeLog()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "level=DEBUG")
	assert.Contains(t, string(content), "width=640")
}

func TestSetupLoggingInvalid(t *testing.T) {
	_, _, err := SetupLogging(LoggingConfig{Level: "loud"})
	assert.Error(t, err)

	_, _, err = SetupLogging(LoggingConfig{Format: "xml"})
	assert.Error(t, err)
}
