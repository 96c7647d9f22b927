package desktop

import (
	"fmt"
	"time"

	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/deskscript/gutils/internal/xdo"
	"github.com/spf13/cobra"
)

func newXKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "xkey <key>",
		Short:   "Send a key or key combination with xdotool",
		Example: `  gutils xkey ctrl+v`,
		Args:    shared.Args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.Logger(cmd).Printf("xdotool key %s", args[0])
			return xdo.New().Key(cmd.Context(), args[0])
		},
	}
}

func newXTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xtype [flags] <text>",
		Short: "Type text with xdotool",
		Long: `Type text with xdotool.

Leading and trailing newlines are dropped. The delay between keystrokes
defaults to the xtype_delay_ms config key.`,
		Example: `  gutils xtype "hello world"
  gutils xtype --delay 50 "$(date)"`,
		Args: shared.Args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.LoadConfig(cmd)
			if err != nil {
				return err
			}
			delay := cfg.TypeDelay()
			if cmd.Flags().Changed("delay") {
				ms, _ := cmd.Flags().GetInt("delay")
				if ms < 0 {
					return shared.WithExitCode(shared.ExitInvalidArguments, fmt.Errorf("invalid delay %d: must not be negative", ms))
				}
				delay = time.Duration(ms) * time.Millisecond
			}
			shared.Logger(cmd).Printf("xdotool type %d chars, delay %s", len(args[0]), delay)
			return xdo.New().Type(cmd.Context(), args[0], delay)
		},
	}
	cmd.Flags().Int("delay", 0, "Delay between keystrokes in milliseconds")
	return cmd
}
