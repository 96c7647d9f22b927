package files

import (
	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/deskscript/gutils/internal/fsutil"
	"github.com/spf13/cobra"
)

func newMkfifoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkfifo <path>...",
		Short: "Create named pipes, ignoring ones that already exist",
		Args:  shared.Args(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := fsutil.Mkfifo(path); err != nil {
					return err
				}
				shared.Logger(cmd).Printf("fifo %s ready", path)
			}
			return nil
		},
	}
}

func newMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>...",
		Short: "Create directories and their parents, ignoring existing ones",
		Args:  shared.Args(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := fsutil.CreateDir(path); err != nil {
					return err
				}
				shared.Logger(cmd).Printf("directory %s ready", path)
			}
			return nil
		},
	}
}
