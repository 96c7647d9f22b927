package process

import (
	"fmt"
	"os"

	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/deskscript/gutils/internal/pidfile"
	"github.com/spf13/cobra"
)

func newPidfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pidfile",
		Short: "Guard a script against running twice",
		Long: `Guard a script against running twice.

The pid file lives in $XDG_RUNTIME_DIR/<name>/pid unless --runtime-dir or the
runtime_dir config key says otherwise. By default the recorded pid is that of
the calling process (the script running gutils).`,
		Example: `  # At the top of a script
  gutils pidfile acquire backup || exit

  # Is it running?
  gutils pidfile status backup

  # On exit
  gutils pidfile release backup`,
	}

	cmd.PersistentFlags().String("runtime-dir", "", "Directory holding the pid file")
	cmd.PersistentFlags().Int("pid", 0, "Pid to record or release (default: the calling process)")
	cmd.PersistentFlags().Bool("lock", false, "Serialize acquisition with an advisory file lock")

	cmd.AddCommand(newPidfileAcquireCmd(), newPidfileStatusCmd(), newPidfileReleaseCmd())
	return cmd
}

func newPidfileAcquireCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "acquire <name>",
		Short: "Record the pid unless a live instance already holds the file",
		Long: `Record the pid unless a live instance already holds the file.

Exits with status 5 when the recorded process is still alive. A stale or
malformed pid file is overwritten.`,
		Args: shared.Args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			guard, err := newGuard(cmd, args[0])
			if err != nil {
				return err
			}
			if err := guard.Acquire(); err != nil {
				if pid, ok := pidfile.IsStillAlive(err); ok {
					return shared.WithExitCode(shared.ExitStillAlive,
						fmt.Errorf("%s is already running (pid %d)", args[0], pid))
				}
				return err
			}
			if shared.Verbose(cmd) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: pid %d\n", guard.Path(), guard.PID())
			}
			return nil
		},
	}
}

func newPidfileStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <name>",
		Short: "Report whether the recorded process is alive",
		Long: `Report whether the recorded process is alive.

Exits with status 0 when it is alive and 1 otherwise.`,
		Args: shared.Args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			guard, err := newGuard(cmd, args[0])
			if err != nil {
				return err
			}
			pid, state, err := guard.Status()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeStatus(pid, state))
			if !state.Alive() {
				return shared.NewExitError(shared.ExitFailure)
			}
			return nil
		},
	}
}

func newPidfileReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release <name>",
		Short: "Remove the pid file if it records the given pid",
		Args:  shared.Args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			guard, err := newGuard(cmd, args[0])
			if err != nil {
				return err
			}
			return guard.Release()
		},
	}
}

// newGuard builds a guard from flags, falling back to the configuration.
func newGuard(cmd *cobra.Command, name string) (*pidfile.Guard, error) {
	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	runtimeDir := cfg.RuntimeDir
	if cmd.Flags().Changed("runtime-dir") {
		runtimeDir, _ = cmd.Flags().GetString("runtime-dir")
	}

	pid, _ := cmd.Flags().GetInt("pid")
	if pid == 0 {
		pid = os.Getppid()
	}

	opts := []pidfile.Option{
		pidfile.WithPID(pid),
		pidfile.WithLogger(shared.Logger(cmd)),
	}
	if lock, _ := cmd.Flags().GetBool("lock"); lock || cfg.FileLock {
		opts = append(opts, pidfile.WithFileLock())
	}
	return pidfile.NewGuard(runtimeDir, name, opts...), nil
}

func describeStatus(pid int, state pidfile.ProcessState) string {
	switch {
	case pid == 0:
		return "not running"
	case state == pidfile.Exists:
		return fmt.Sprintf("running (pid %d)", pid)
	case state == pidfile.PermissionDenied:
		return fmt.Sprintf("running (pid %d, owned by another user)", pid)
	default:
		return fmt.Sprintf("stale (pid %d)", pid)
	}
}
