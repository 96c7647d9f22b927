package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FakeTool is an executable script standing in for an external program
// such as notify-send or xdotool.
type FakeTool struct {
	// Path is the script's location
	Path string
	// ArgsFile receives the arguments of the last invocation, one per line
	ArgsFile string
}

// NewFakeTool writes an executable named name into dir. Each run records
// its arguments, prints stderr to standard error and exits with exitCode.
func NewFakeTool(t *testing.T, dir, name string, exitCode int, stderr string) *FakeTool {
	t.Helper()

	tool := &FakeTool{
		Path:     filepath.Join(dir, name),
		ArgsFile: filepath.Join(dir, name+".args"),
	}
	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$@\" > %q\n", tool.ArgsFile)
	if stderr != "" {
		script += fmt.Sprintf("echo %q >&2\n", stderr)
	}
	script += fmt.Sprintf("exit %d\n", exitCode)

	if err := os.WriteFile(tool.Path, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write fake %s: %v", name, err)
	}
	return tool
}

// Called reports whether the tool has run.
func (f *FakeTool) Called() bool {
	return FileExists(f.ArgsFile)
}

// Args returns the arguments of the last invocation.
func (f *FakeTool) Args(t *testing.T) []string {
	t.Helper()
	return strings.Split(strings.TrimSuffix(ReadFile(t, f.ArgsFile), "\n"), "\n")
}
