// Package files provides CLI commands that prepare files for scripts.
// Includes: secret, mkfifo, mkdir
package files

import (
	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/spf13/cobra"
)

// Register adds all file commands to the root command.
func Register(rootCmd *cobra.Command) {
	for _, cmd := range []*cobra.Command{newSecretCmd(), newMkfifoCmd(), newMkdirCmd()} {
		cmd.GroupID = shared.GroupFiles
		rootCmd.AddCommand(cmd)
	}
}
