// Package config_test tests configuration loading, precedence, environment
// overrides and validation errors.
// Related: internal/config/config.go, internal/config/validate.go
// Tags: config, loading, env-vars, yaml, json, validation
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deskscript/gutils/internal/notify"
	"github.com/deskscript/gutils/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate gives the test an empty HOME and config dir with no GUTILS_*
// variables set, so real user config never leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	return testutil.IsolateEnv(t).Home
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.RuntimeDir)
	assert.False(t, cfg.FileLock)
	assert.Equal(t, "/bin/sh", cfg.Shell)
	assert.Equal(t, 150, cfg.XTypeDelayMS)
	assert.Equal(t, 150*time.Millisecond, cfg.TypeDelay())
	assert.Equal(t, "/tmp", cfg.SecretDir)
	assert.Equal(t, notify.Config{}, cfg.Notify)
}

func TestLoad_UserConfigYAML(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "gutils", "config.yml"), `
file_lock: true
xtype_delay_ms: 40
notify:
  title: desktop
  urgency: low
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.FileLock)
	assert.Equal(t, 40, cfg.XTypeDelayMS)
	assert.Equal(t, "desktop", cfg.Notify.Title)
	assert.Equal(t, notify.UrgencyLow, cfg.Notify.Urgency)
}

func TestLoad_ExplicitOverridesUser(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "gutils", "config.yml"), "xtype_delay_ms: 40\nshell: /bin/bash\n")
	explicit := writeFile(t, filepath.Join(t.TempDir(), "gutils.json"), `{"xtype_delay_ms": 5}`)

	cfg, err := Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.XTypeDelayMS)
	assert.Equal(t, "/bin/bash", cfg.Shell, "keys absent from the explicit file keep the user value")
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	isolate(t)
	explicit := writeFile(t, filepath.Join(t.TempDir(), "gutils.yaml"), "xtype_delay_ms: 5\n")
	t.Setenv("GUTILS_XTYPE_DELAY_MS", "75")
	t.Setenv("GUTILS_FILE_LOCK", "true")
	t.Setenv("GUTILS_NOTIFY_URGENCY", "critical")
	t.Setenv("GUTILS_RUNTIME_DIR", "~/run")

	cfg, err := Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.XTypeDelayMS)
	assert.True(t, cfg.FileLock)
	assert.Equal(t, notify.UrgencyCritical, cfg.Notify.Urgency)
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, "run"), cfg.RuntimeDir)
}

func TestLoad_ExplicitMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := map[string]struct {
		content string
		field   string
		message string
	}{
		"bad urgency": {
			content: "notify:\n  urgency: loud\n",
			field:   "notify.urgency",
			message: "must be one of: low, normal, critical",
		},
		"negative delay": {
			content: "xtype_delay_ms: -1\n",
			field:   "xtype_delay_ms",
			message: "must be at least 0",
		},
		"empty shell": {
			content: "shell: \"\"\n",
			field:   "shell",
			message: "is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			path := writeFile(t, filepath.Join(t.TempDir(), "config.yml"), tt.content)

			_, err := Load(path)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.message, vErr.Message)
			assert.Equal(t, path, vErr.FilePath)
		})
	}
}

func TestLoad_YAMLSyntaxError(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "config.yml"), "shell \"sh\"\nfile_lock: true\n")

	_, err := Load(path)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, path, vErr.FilePath)
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"GUTILS_SHELL":          "shell",
		"GUTILS_XTYPE_DELAY_MS": "xtype_delay_ms",
		"GUTILS_NOTIFY_TITLE":   "notify.title",
		"GUTILS_NOTIFY_URGENCY": "notify.urgency",
	}
	for in, want := range tests {
		assert.Equal(t, want, envTransform(in), in)
	}
}

func TestUserConfigPath(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "gutils")

	path, err := UserConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yml"), path)

	writeFile(t, filepath.Join(dir, "config.json"), "{}")
	path, err = UserConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.json"), path)
}
