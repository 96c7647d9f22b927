// Package shell runs shell command lines and captures their output.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultShell is used when a Runner has no shell configured.
const DefaultShell = "/bin/sh"

const waitDelay = 2 * time.Second

// ExitError is returned when the command line exits non-zero.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
	}
	return fmt.Sprintf("command %q exited with status %d: %s", e.Command, e.Code, e.Stderr)
}

// Runner runs command lines through a POSIX shell.
type Runner struct {
	// Shell is the interpreter invoked as "<Shell> -c <line>".
	Shell string
	// Dir is the working directory; empty means the caller's.
	Dir string
	// Env, when non-nil, replaces the environment.
	Env []string
}

// Join combines commands into one command line separated by "; ", so every
// command runs regardless of earlier failures and the line's exit status is
// the last command's.
func Join(cmds ...string) string {
	return strings.Join(cmds, "; ")
}

// Run executes cmds as a single command line and returns its stdout with
// surrounding whitespace trimmed.
func (r Runner) Run(ctx context.Context, cmds ...string) (string, error) {
	if len(cmds) == 0 {
		return "", errors.New("no command specified")
	}
	line := Join(cmds...)

	sh := r.Shell
	if sh == "" {
		sh = DefaultShell
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, sh, "-c", line)
	cmd.Dir = r.Dir
	cmd.Env = r.Env
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Background children of the line can hold the output pipes open after
	// the shell is killed; stop waiting for them shortly after.
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("command %q: %w", line, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{
				Command: line,
				Code:    exitErr.ExitCode(),
				Stderr:  strings.TrimSpace(stderr.String()),
			}
		}
		return "", fmt.Errorf("failed to run %q: %w", line, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Run executes cmds with the default Runner.
func Run(ctx context.Context, cmds ...string) (string, error) {
	return Runner{}.Run(ctx, cmds...)
}
