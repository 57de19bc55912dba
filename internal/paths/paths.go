package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "cmdext"

// AppDataDir returns the application data directory for the log and the
// history database. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns ~/.cmdextrc. CMDEXT_CONFIG overrides it.
func ConfigFilePath() (string, error) {
	if p := os.Getenv("CMDEXT_CONFIG"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".cmdextrc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "cmdext.log")
}

// DBPath returns the path to the dispatch history database. CMDEXT_DB
// overrides it.
func DBPath() string {
	if p := os.Getenv("CMDEXT_DB"); p != "" {
		return p
	}
	return filepath.Join(AppDataDir(), "history.db")
}
