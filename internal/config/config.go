// Package config owns the file-backed documents under the user config
// directory: settings (TOML), service credentials and mail credentials
// (JSON). A missing file is never an error; loaders hand back defaults or nil.
package config

import (
	"os"
	"path/filepath"
)

// AppName is the directory name under the user config dir.
const AppName = "clockin"

// Dir returns the application config directory, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// DataDir returns the application data directory (sqlite store), creating it
// if needed.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "share", AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
