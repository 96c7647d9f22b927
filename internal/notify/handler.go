package notify

import (
	"context"
	"io"
	"log"
)

// Notifier fills in configured defaults, validates notifications and hands
// them to a Sender.
type Notifier struct {
	config Config
	sender Sender
	logger *log.Logger
}

// NewNotifier creates a notifier using the platform sender chosen by NewSender.
func NewNotifier(config Config) *Notifier {
	return NewNotifierWithSender(config, NewSender())
}

// NewNotifierWithSender creates a notifier with a custom sender (for testing).
func NewNotifierWithSender(config Config, sender Sender) *Notifier {
	return &Notifier{
		config: config,
		sender: sender,
		logger: log.New(io.Discard, "", 0),
	}
}

// SetLogger enables debug output for dispatched notifications
func (n *Notifier) SetLogger(l *log.Logger) {
	if l != nil {
		n.logger = l
	}
}

// Config returns the notifier's configuration
func (n *Notifier) Config() Config {
	return n.config
}

// Sender returns the sender notifications are dispatched to
func (n *Notifier) Sender() Sender {
	return n.sender
}

// Notify sends note, taking the title and urgency from the configuration
// when note leaves them empty. Validation errors are returned before
// anything is sent.
func (n *Notifier) Notify(ctx context.Context, note Notification) error {
	note = n.withDefaults(note)
	if err := note.Validate(); err != nil {
		return err
	}

	n.logger.Printf("[notify] sending via %s: title=%q urgency=%q args=%d",
		n.sender.Name(), note.Title, note.Urgency, len(note.Args))
	return n.sender.Send(ctx, note)
}

// Send is shorthand for Notify with only message arguments.
func (n *Notifier) Send(ctx context.Context, args ...string) error {
	return n.Notify(ctx, Notification{Args: args})
}

func (n *Notifier) withDefaults(note Notification) Notification {
	if note.Title == "" {
		note.Title = n.config.Title
	}
	if note.Urgency == "" {
		note.Urgency = n.config.Urgency
	}
	return note
}
