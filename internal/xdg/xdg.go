// Package xdg resolves per-script directories following the XDG base
// directory layout.
package xdg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppName is the directory name gutils uses under the XDG config home.
const AppName = "gutils"

// RuntimeDir returns the runtime directory for the named script.
//
// $XDG_RUNTIME_DIR/<script> is used when XDG_RUNTIME_DIR is set. Otherwise
// the directory falls back to <tmp>/gutils-<uid>/<script> so that users on
// the same host do not share pid files. The directory is not created.
func RuntimeDir(scriptName string) string {
	name := NormalizeName(scriptName, "script")
	if base := os.Getenv("XDG_RUNTIME_DIR"); base != "" {
		return filepath.Join(base, name)
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d", AppName, os.Getuid()), name)
}

// ConfigDir returns the gutils config directory:
// $XDG_CONFIG_HOME/gutils, or ~/.config/gutils when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// ScriptName derives a script identifier from a path such as os.Args[0]:
// the base name without its extension.
func ScriptName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// NormalizeName maps raw to a string safe to use as a single path element.
// Characters outside [A-Za-z0-9._-] become '_' and leading or trailing
// separators are trimmed. fallback is returned when nothing usable remains.
func NormalizeName(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	normalized := strings.Trim(b.String(), "_-.")
	if normalized == "" {
		return fallback
	}
	return normalized
}
