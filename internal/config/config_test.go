package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/babarot/goduration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestDefault(t *testing.T) {
	require.NoError(t, Validate(Default()))
	assert.Contains(t, DefaultContents(), "timeout: 30s")
}

func TestParse(t *testing.T) {
	path := writeConfig(t, `
core:
  concurrency: 8
  timeout: 1m30s
output:
  format: table
`)
	cfg, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Core.Concurrency)
	assert.Equal(t, 90*goduration.Second, cfg.Core.Timeout)
	assert.Equal(t, "table", cfg.Output.Format)
	// Keys missing from the file keep their defaults.
	assert.Equal(t, "string", cfg.Output.Encoding)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParse_TimeoutAsNanoseconds(t *testing.T) {
	cfg, err := Parse(writeConfig(t, "core:\n  timeout: 5000000000\n"))
	require.NoError(t, err)
	assert.Equal(t, 5*goduration.Second, cfg.Core.Timeout)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "bad duration",
			contents: "core:\n  timeout: 5 minutes\n",
			wantErr:  `time: unknown unit " minutes" in duration`,
		},
		{
			name:     "negative timeout",
			contents: "core:\n  timeout: -1s\n",
			wantErr:  "timeout",
		},
		{
			name:     "zero concurrency",
			contents: "core:\n  concurrency: 0\n",
			wantErr:  "concurrency",
		},
		{
			name:     "unknown format",
			contents: "output:\n  format: xml\n",
			wantErr:  "format",
		},
		{
			name:     "unknown encoding",
			contents: "output:\n  encoding: seconds\n",
			wantErr:  "encoding",
		},
		{
			name:     "unknown log level",
			contents: "logging:\n  level: verbose\n",
			wantErr:  "level",
		},
		{
			name:     "bad rotation size",
			contents: "logging:\n  rotation:\n    max_size: huge\n",
			wantErr:  "max_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(writeConfig(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse config")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "Example YAML file contents")
}
