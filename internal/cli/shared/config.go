package shared

import (
	"log"

	"github.com/deskscript/gutils/internal/argparse"
	"github.com/deskscript/gutils/internal/config"
	"github.com/spf13/cobra"
)

// LoadConfig loads the configuration named by the --config flag, falling
// back to the user config and defaults. Failures carry ExitInvalidArguments.
func LoadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, WithExitCode(ExitInvalidArguments, err)
	}
	Logger(cmd).Printf("config loaded: runtime_dir=%q file_lock=%t shell=%q", cfg.RuntimeDir, cfg.FileLock, cfg.Shell)
	return cfg, nil
}

// Logger returns the debug logger selected by the --debug flag.
func Logger(cmd *cobra.Command) *log.Logger {
	return argparse.Parse(cmd).Logger(cmd.ErrOrStderr())
}

// Verbose reports whether --verbose is set.
func Verbose(cmd *cobra.Command) bool {
	return argparse.Parse(cmd).Verbose
}

// Args wraps a positional argument validator so failures exit with
// ExitInvalidArguments.
func Args(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return WithExitCode(ExitInvalidArguments, fn(cmd, args))
	}
}
