package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "dx"

// AppDataDir returns the application data directory for config/database.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// DefaultSourceRoot returns the conventional source tree root (~/src)
// used when no source.root is configured.
func DefaultSourceRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "src"
	}
	return filepath.Join(home, "src")
}

// ConfigFilePath returns the path to the local configuration file.
func ConfigFilePath() string {
	return filepath.Join(AppDataDir(), "config.json")
}

// RemoteCachePath returns the path where the fetched remote defaults
// document is cached.
func RemoteCachePath() string {
	return filepath.Join(AppDataDir(), "remote-config.json")
}

// DBPath returns the path to the run-history database.
func DBPath() string {
	return filepath.Join(AppDataDir(), "dx.db")
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "dx.log")
}
