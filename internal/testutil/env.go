package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Env describes an isolated environment created by IsolateEnv.
type Env struct {
	// Home is the temporary HOME
	Home string
	// Bin is searched first on PATH; FakeTool installs tools here
	Bin string
	// RuntimeDir is $XDG_RUNTIME_DIR; it does not exist until something creates it
	RuntimeDir string
}

// IsolateEnv points HOME and the XDG directories at a temp dir, puts a
// private bin directory first on PATH and unsets every GUTILS_* variable,
// so neither real user config nor real tools leak into a test.
// Tests using it cannot run in parallel.
func IsolateEnv(t *testing.T) Env {
	t.Helper()

	home := t.TempDir()
	env := Env{
		Home:       home,
		Bin:        filepath.Join(home, "bin"),
		RuntimeDir: filepath.Join(home, "run"),
	}
	if err := os.Mkdir(env.Bin, 0755); err != nil {
		t.Fatalf("failed to create bin directory: %v", err)
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "GUTILS_") {
			t.Setenv(key, "") // restores the original value on cleanup
			os.Unsetenv(key)
		}
	}

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_RUNTIME_DIR", env.RuntimeDir)
	t.Setenv("PATH", env.Bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	return env
}
