// Package desktop provides CLI commands that talk to the desktop session.
// Includes: notify, xkey, xtype
package desktop

import (
	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/spf13/cobra"
)

// Register adds all desktop commands to the root command.
func Register(rootCmd *cobra.Command) {
	for _, cmd := range []*cobra.Command{newNotifyCmd(), newXKeyCmd(), newXTypeCmd()} {
		cmd.GroupID = shared.GroupDesktop
		rootCmd.AddCommand(cmd)
	}
}
