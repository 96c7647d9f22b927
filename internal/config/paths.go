// Package config loads gutils settings from config files and GUTILS_*
// environment variables using koanf, and validates them with validator.
package config

import (
	"os"
	"path/filepath"

	"github.com/deskscript/gutils/internal/xdg"
)

// UserConfigNames are the file names looked up in the user config dir, in order.
var UserConfigNames = []string{"config.yml", "config.yaml", "config.json"}

// UserConfigDir returns the user-level config directory
func UserConfigDir() (string, error) {
	return xdg.ConfigDir()
}

// UserConfigPath returns the first existing user config file, or the
// path of config.yml when none exists.
func UserConfigPath() (string, error) {
	dir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	for _, name := range UserConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return filepath.Join(dir, UserConfigNames[0]), nil
}
