package desktop

import (
	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/deskscript/gutils/internal/notify"
	"github.com/spf13/cobra"
)

func newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify [flags] <message> [notify-send args]...",
		Short: "Show a desktop notification",
		Long: `Show a desktop notification through notify-send.

The title and urgency default to the notify.title and notify.urgency config
keys. Extra arguments are passed to notify-send unchanged. When notify-send
is not installed the desktop notification service is used directly.`,
		Example: `  gutils notify "Backup finished"
  gutils notify -t backup -u critical "Disk full"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.LoadConfig(cmd)
			if err != nil {
				return err
			}
			title, _ := cmd.Flags().GetString("title")
			urgency, _ := cmd.Flags().GetString("urgency")

			defaults := cfg.Notify
			if defaults.Title == "" {
				defaults.Title = notify.DefaultConfig().Title
			}

			n := notify.NewNotifier(defaults)
			n.SetLogger(shared.Logger(cmd))
			return n.Notify(cmd.Context(), notify.Notification{
				Title:   title,
				Urgency: notify.Urgency(urgency),
				Args:    args,
			})
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringP("title", "t", "", "Notification title (default: notify.title or \"gutils\")")
	cmd.Flags().StringP("urgency", "u", "", "Urgency: low, normal or critical")
	return cmd
}
