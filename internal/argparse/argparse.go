// Package argparse builds cobra commands that carry the flags every gutils
// script shares.
package argparse

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// Options are the values of the shared flags.
type Options struct {
	Debug   bool
	Verbose bool
}

// New returns a command with persistent -d/--debug and -v/--verbose flags.
// description becomes the command's short help; its first line is used
// when description spans several lines, and the whole text is the long help.
func New(use, description string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         firstLine(description),
		Long:          description,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debugging mode.")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output.")
	return cmd
}

// Parse reads the shared flags from cmd or any of its parents.
func Parse(cmd *cobra.Command) Options {
	debug, _ := cmd.Flags().GetBool("debug")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return Options{Debug: debug, Verbose: verbose}
}

// Logger returns a logger writing to w when debug is enabled and
// discarding everything otherwise. A nil w means stderr.
func (o Options) Logger(w io.Writer) *log.Logger {
	if !o.Debug {
		return log.New(io.Discard, "", 0)
	}
	if w == nil {
		w = os.Stderr
	}
	return log.New(w, "[DEBUG] ", 0)
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
