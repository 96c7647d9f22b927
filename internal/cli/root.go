// Package cli provides the Cobra-based gutils command line. Each command
// exposes one helper to shell scripts: pid file guarding, notifications,
// shell execution, keyboard simulation, secrets and filesystem setup.
package cli

import (
	"fmt"
	"io"

	"github.com/deskscript/gutils/internal/argparse"
	"github.com/deskscript/gutils/internal/cli/desktop"
	"github.com/deskscript/gutils/internal/cli/files"
	"github.com/deskscript/gutils/internal/cli/process"
	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/deskscript/gutils/internal/cli/util"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the gutils command tree.
func NewRootCmd() *cobra.Command {
	root := argparse.New("gutils", shared.Tagline+`

Small building blocks for desktop shell scripts: a single-instance pid
file guard, desktop notifications, keyboard simulation and more.`)
	root.Example = `  # Refuse to start twice
  gutils pidfile acquire backup || exit

  # Notify with critical urgency
  gutils notify -u critical "Backup failed"

  # Type text into the focused window
  gutils xtype --delay 50 "hello"`

	root.AddGroup(&cobra.Group{ID: shared.GroupProcess, Title: "Process:"})
	root.AddGroup(&cobra.Group{ID: shared.GroupDesktop, Title: "Desktop:"})
	root.AddGroup(&cobra.Group{ID: shared.GroupFiles, Title: "Files:"})
	root.AddGroup(&cobra.Group{ID: shared.GroupDiagnostics, Title: "Diagnostics:"})
	root.SetHelpCommandGroupID(shared.GroupDiagnostics)
	root.SetCompletionCommandGroupID(shared.GroupDiagnostics)

	root.PersistentFlags().StringP("config", "c", "", "Path to config file (YAML or JSON)")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return shared.WithExitCode(shared.ExitInvalidArguments, err)
	})

	process.Register(root)
	desktop.Register(root)
	files.Register(root)
	util.Register(root)
	return root
}

// Execute runs the command tree with args and returns the process exit code.
// Errors are printed to errOut.
func Execute(args []string, out, errOut io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err != nil && !shared.Silent(err) {
		c := shared.NewColors(errOut)
		fmt.Fprintf(errOut, "%s %v\n", c.Red("Error:"), err)
	}
	return ExitCode(err)
}
