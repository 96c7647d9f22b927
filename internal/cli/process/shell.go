package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/deskscript/gutils/internal/progress"
	"github.com/deskscript/gutils/internal/shell"
	"github.com/deskscript/gutils/internal/sigs"
	"github.com/spf13/cobra"
)

func newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell [flags] -- <command>...",
		Short: "Run commands through the shell and print their output",
		Long: `Run commands through the shell and print their output.

Each argument is one command line; they are joined with "; " and run by the
configured shell. Trimmed standard output is printed. A non-zero exit status
is passed through as gutils' own exit status. SIGINT and SIGTERM stop the
command.`,
		Example: `  gutils shell -- "cd /tmp" "ls"
  gutils shell --timeout 5s -- "sleep 10"`,
		Args: shared.Args(cobra.MinimumNArgs(1)),
		RunE: runShell,
	}
	cmd.Flags().String("dir", "", "Working directory for the command")
	cmd.Flags().Duration("timeout", 0, "Stop the command after this long (0 = no limit)")
	return cmd
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("dir")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
		defer cancelTimeout()
	}

	logger := shared.Logger(cmd)
	stop := sigs.Handle(func(sig os.Signal) {
		logger.Printf("received %s, stopping command", sig)
		cancel()
	}, os.Interrupt, syscall.SIGTERM)
	defer stop()

	display := newDisplay(cmd)
	line := shell.Join(args...)
	display.Start("Running " + truncate(line, 60))

	runner := shell.Runner{Shell: cfg.Shell, Dir: dir}
	start := time.Now()
	out, err := runner.Run(ctx, args...)
	logger.Printf("shell %q finished in %s", line, time.Since(start).Round(time.Millisecond))
	if err != nil {
		display.Fail("command failed", err)
		var exitErr *shell.ExitError
		if errors.As(err, &exitErr) && exitErr.Code > 0 {
			return shared.WithExitCode(exitErr.Code, err)
		}
		return err
	}
	display.Stop()

	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

// newDisplay shows a spinner only when stderr is an interactive terminal.
func newDisplay(cmd *cobra.Command) *progress.Display {
	var caps progress.TerminalCapabilities
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		caps = progress.DetectTerminalCapabilities(f)
	}
	if !caps.IsTTY {
		return nil
	}
	return progress.NewDisplay(cmd.ErrOrStderr(), caps)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "..."
}
