// Package shell_test tests command joining, output trimming and exit status handling.
// Related: internal/shell/shell.go
// Tags: shell, exec, sh
package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a", Join("a"))
	assert.Equal(t, "a; b; c", Join("a", "b", "c"))
}

func TestRun(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cmds []string
		want string
	}{
		"single command":       {cmds: []string{"echo hello"}, want: "hello"},
		"trims whitespace":     {cmds: []string{"printf '  padded \\n\\n'"}, want: "padded"},
		"multiple commands":    {cmds: []string{"echo one", "echo two"}, want: "one\ntwo"},
		"continues on failure": {cmds: []string{"false", "echo after"}, want: "after"},
		"shell features":       {cmds: []string{"x=3", "echo $((x * 2))"}, want: "6"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := Run(context.Background(), tt.cmds...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRun_ExitError(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), "echo oops >&2", "exit 3")

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "oops", exitErr.Stderr)
	assert.Equal(t, "echo oops >&2; exit 3", exitErr.Command)
	assert.Contains(t, err.Error(), "exited with status 3: oops")
}

func TestRun_NoCommand(t *testing.T) {
	t.Parallel()
	_, err := Run(context.Background())
	assert.EqualError(t, err, "no command specified")
}

func TestRun_ContextTimeout(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Run(ctx, "sleep 5")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunner_DirAndEnv(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	r := Runner{Dir: dir, Env: []string{"GREETING=hi"}}
	out, err := r.Run(context.Background(), "echo $GREETING", "pwd -P")
	require.NoError(t, err)
	assert.Contains(t, out, "hi\n")
}

func TestRunner_MissingShell(t *testing.T) {
	t.Parallel()
	_, err := Runner{Shell: "/nonexistent/sh"}.Run(context.Background(), "true")

	require.Error(t, err)
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}
