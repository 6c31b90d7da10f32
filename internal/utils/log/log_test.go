package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(
		UseOutput(&buf),
		UseLevel(DebugLevel),
		UseFormatter(LogfmtFormatter),
		UseFields("run_id", "abc"),
	)

	logger.Debug("converted", "input", "90s")
	logger.Info("done")

	out := buf.String()
	assert.Contains(t, out, "msg=converted")
	assert.Contains(t, out, "input=90s")
	assert.Contains(t, out, "run_id=abc")
	assert.Equal(t, 2, strings.Count(out, "run_id=abc"))
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := New(UseOutput(&buf), UseLevel(WarnLevel))
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestDefault(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	New(UseOutput(&buf), UseLevel(DebugLevel), AsDefault())
	Debug("via package helper", "key", "value")
	assert.Contains(t, buf.String(), "via package helper")
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"debug", "info", "warn", "error", "INFO"} {
		_, err := ParseLevel(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestRotateWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debug.log")

	w, err := NewRotateWriter(path, "10B", 1)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	_, err = w.Write([]byte("12345678"))
	require.NoError(t, err)
	_, err = w.Write([]byte("abcdefgh"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRotateWriter_InvalidSize(t *testing.T) {
	_, err := NewRotateWriter(filepath.Join(t.TempDir(), "debug.log"), "lots", 1)
	assert.Error(t, err)
}
