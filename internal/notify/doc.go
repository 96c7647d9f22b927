// Package notify sends desktop notifications on behalf of a script.
//
// Notifications go through notify-send when it is on PATH. Hosts without
// notify-send fall back to gen2brain/beeep, which talks to the desktop
// notification service directly. Both paths are hidden behind the Sender
// interface so callers and tests can substitute their own.
//
// # Usage
//
//	n := notify.NewNotifier(notify.Config{Title: "backup"})
//	err := n.Notify(ctx, notify.Notification{
//		Urgency: notify.UrgencyCritical,
//		Args:    []string{"Backup failed", "disk full"},
//	})
//
// The notification title defaults to the configured title, which callers
// normally set to their script name. At least one argument is required and
// urgency, when given, must be low, normal or critical.
package notify
