package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"

	appDirname = "goduration"
)

var (
	GODURATION_CONFIG_PATH string

	GODURATION_LOG_PATH string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")

	GODURATION_CONFIG_PATH = resolve("GODURATION_CONFIG_PATH", "XDG_CONFIG_HOME", defaultXDGConfigDirname, "config.yaml")
	GODURATION_LOG_PATH = resolve("GODURATION_LOG_PATH", "XDG_DATA_HOME", defaultXDGDataDirname, "debug.log")
}

// resolve follows https://specifications.freedesktop.org/basedir-spec/latest/
// unless the path is set explicitly through key.
func resolve(key, xdgKey, fallbackDir, filename string) string {
	if e := os.Getenv(key); e != "" {
		return e
	}
	base := os.Getenv(xdgKey)
	if base == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), appDirname, filename)
		}
		base = filepath.Join(homeDir, fallbackDir)
	}
	return filepath.Join(base, appDirname, filename)
}
