// Package process provides CLI commands that guard and run processes.
// Includes: pidfile, shell
package process

import (
	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/spf13/cobra"
)

// Register adds all process commands to the root command.
func Register(rootCmd *cobra.Command) {
	pidfileCmd := newPidfileCmd()
	pidfileCmd.GroupID = shared.GroupProcess
	rootCmd.AddCommand(pidfileCmd)

	shellCmd := newShellCmd()
	shellCmd.GroupID = shared.GroupProcess
	rootCmd.AddCommand(shellCmd)
}
