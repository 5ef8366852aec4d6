package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesJSONToComponentFile(t *testing.T) {
	dir := t.TempDir()
	logger, closeFn := NewLogger("proctor", WithDir(dir), WithoutConsole(), WithLevel("debug"))

	logger.WithField("session_id", "s-1").Debug("frame analyzed")
	closeFn()

	data, err := os.ReadFile(filepath.Join(dir, "proctor.log"))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "frame analyzed", entry["msg"])
	assert.Equal(t, "s-1", entry["session_id"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_InvalidComponentFallsBackToStderr(t *testing.T) {
	logger, closeFn := NewLogger("../escape", WithDir(t.TempDir()), WithoutConsole())
	defer closeFn()

	assert.Equal(t, os.Stderr, logger.Out)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, parseLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, parseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, parseLevel(""))
}

func TestAsyncFileWriter_CloseIsIdempotent(t *testing.T) {
	w, err := NewAsyncFileWriter(filepath.Join(t.TempDir(), "x.log"), 64)
	require.NoError(t, err)

	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	w.Close()
	w.Close()

	_, err = w.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)
}
