package paths

import (
	"os"
	"path/filepath"
)

// GetHome returns MUXDECK_HOME or ~/.muxdeck
func GetHome() string {
	home := os.Getenv("MUXDECK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".muxdeck"
		}
		return filepath.Join(homeDir, ".muxdeck")
	}
	return ExpandPath(home)
}

// GetDBPath returns $MUXDECK_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $MUXDECK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSSHDir returns $MUXDECK_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
