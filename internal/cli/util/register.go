// Package util provides utility CLI commands for gutils.
// Includes: doctor, version
package util

import (
	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/spf13/cobra"
)

// Register adds all utility commands to the root command.
func Register(rootCmd *cobra.Command) {
	for _, cmd := range []*cobra.Command{newDoctorCmd(), newVersionCmd()} {
		cmd.GroupID = shared.GroupDiagnostics
		rootCmd.AddCommand(cmd)
	}
}
