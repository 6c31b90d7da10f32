package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0644))

	var buf bytes.Buffer
	require.NoError(t, Logs(&buf, path, false))
	assert.Equal(t, "line one\nline two\n", buf.String())
}

func TestLogs_Missing(t *testing.T) {
	var buf bytes.Buffer
	err := Logs(&buf, filepath.Join(t.TempDir(), "missing.log"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no log file exists yet")
}
