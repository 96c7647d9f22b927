package notify

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gen2brain/beeep"
)

// Sender delivers a validated notification
type Sender interface {
	// Send delivers n to the desktop
	Send(ctx context.Context, n Notification) error

	// Name identifies the sender in logs and doctor output
	Name() string
}

// NewSender returns a notify-send sender when notify-send is on PATH and
// a beeep sender otherwise.
func NewSender() Sender {
	if path, err := exec.LookPath("notify-send"); err == nil {
		return &execSender{path: path}
	}
	return &beeepSender{notify: beeep.Notify, alert: beeep.Alert}
}

// HasDisplay checks if an X11 or Wayland display is available
func HasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// execSender implements Sender by running notify-send
type execSender struct {
	path string
}

func (s *execSender) Name() string { return "notify-send" }

// Send runs notify-send and waits for it
func (s *execSender) Send(ctx context.Context, n Notification) error {
	cmd := exec.CommandContext(ctx, s.path, n.Argv()...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("notify-send failed: %w", err)
		}
		return fmt.Errorf("notify-send failed: %w: %s", err, msg)
	}
	return nil
}

// beeepSender implements Sender through gen2brain/beeep. beeep has no
// urgency, so critical notifications are sent with beeep.Alert.
type beeepSender struct {
	notify func(title, message string, icon any) error
	alert  func(title, message string, icon any) error
}

func (s *beeepSender) Name() string { return "beeep" }

// Send joins the arguments into a single message body
func (s *beeepSender) Send(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	send := s.notify
	if n.Urgency == UrgencyCritical {
		send = s.alert
	}
	if err := send(n.Title, strings.Join(n.Args, " "), ""); err != nil {
		return fmt.Errorf("beeep notification failed: %w", err)
	}
	return nil
}
