// Package xdg_test tests runtime and config directory resolution.
// Related: internal/xdg/xdg.go
// Tags: xdg, paths, runtime-dir, config-dir
package xdg

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeDir_XDGRuntimeDir(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	assert.Equal(t, filepath.Join("/run/user/1000", "backup"), RuntimeDir("backup"))
}

func TestRuntimeDir_Fallback(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")

	want := filepath.Join(os.TempDir(), fmt.Sprintf("gutils-%d", os.Getuid()), "backup")
	assert.Equal(t, want, RuntimeDir("backup"))
}

func TestRuntimeDir_NormalizesName(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	assert.Equal(t, filepath.Join("/run/user/1000", "a_b"), RuntimeDir("../a/b"))
	assert.Equal(t, filepath.Join("/run/user/1000", "script"), RuntimeDir("  "))
}

func TestConfigDir(t *testing.T) {
	t.Run("XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		dir, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/custom/config", "gutils"), dir)
	})

	t.Run("falls back to home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		dir, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "gutils"), dir)
	})
}

func TestScriptName(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		path string
		want string
	}{
		"bare name":         {path: "backup", want: "backup"},
		"with extension":    {path: "/home/me/bin/backup.sh", want: "backup"},
		"dotted name":       {path: "./clip.sync.py", want: "clip.sync"},
		"go run temp build": {path: "/tmp/go-build123/exe/main", want: "main"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ScriptName(tt.path))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  string
		want string
	}{
		"plain":            {raw: "backup", want: "backup"},
		"keeps separators": {raw: "my-script_v1.2", want: "my-script_v1.2"},
		"replaces slash":   {raw: "a/b", want: "a_b"},
		"replaces spaces":  {raw: "my script", want: "my_script"},
		"trims edges":      {raw: "..hidden..", want: "hidden"},
		"unicode":          {raw: "naïve", want: "na_ve"},
		"only junk":        {raw: "///", want: "fallback"},
		"empty":            {raw: "", want: "fallback"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeName(tt.raw, "fallback"))
		})
	}
}
