package util

import (
	"fmt"
	"path/filepath"

	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/deskscript/gutils/internal/health"
	"github.com/deskscript/gutils/internal/xdg"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the tools gutils relies on are available",
		Long: `Check that the tools gutils relies on are available.

This command checks for:
  - the configured shell (required)
  - notify-send and xdotool
  - a graphical display
  - a writable runtime directory (required)

Exits with status 4 when a required check fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.LoadConfig(cmd)
			if err != nil {
				return err
			}

			runtimeDir := cfg.RuntimeDir
			if runtimeDir == "" {
				runtimeDir = filepath.Dir(xdg.RuntimeDir(xdg.AppName))
			}

			report := health.RunHealthChecks(cfg.Shell, runtimeDir)
			fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

			if !report.Passed {
				return shared.NewExitError(shared.ExitMissingDependency)
			}
			return nil
		},
	}
}
