package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "nomi"

// GetConfigDir returns the OS-appropriate configuration directory for nomi.
// xdg maps this to $XDG_CONFIG_HOME on Linux, Application Support on macOS
// and %APPDATA% on Windows.
func GetConfigDir() (string, error) {
	return filepath.Join(xdg.ConfigHome, appName), nil
}

// GetConfigFile returns the path of config.toml
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetLogFile returns the path the interactive form logs to
func GetLogFile() (string, error) {
	return xdg.StateFile(filepath.Join(appName, "nomi.log"))
}
