package notify

import (
	"errors"
	"fmt"
)

// Urgency is the notify-send urgency level
type Urgency string

const (
	// UrgencyLow is for background information
	UrgencyLow Urgency = "low"
	// UrgencyNormal is the notification daemon's default
	UrgencyNormal Urgency = "normal"
	// UrgencyCritical is for failures that need attention
	UrgencyCritical Urgency = "critical"
)

// ValidUrgency checks if the given string is a valid urgency.
// The empty string is valid and means "let the daemon decide".
func ValidUrgency(s string) bool {
	switch Urgency(s) {
	case "", UrgencyLow, UrgencyNormal, UrgencyCritical:
		return true
	default:
		return false
	}
}

// ErrNoMessage is returned when a notification has no arguments.
var ErrNoMessage = errors.New("no notification message specified")

// InvalidUrgencyError is returned for an urgency outside low/normal/critical.
type InvalidUrgencyError struct {
	Urgency Urgency
}

func (e *InvalidUrgencyError) Error() string {
	return fmt.Sprintf("invalid urgency: %q", string(e.Urgency))
}

// Config holds notification defaults loaded from the gutils config.
type Config struct {
	// Title is used when a notification does not set one, usually the script name
	Title string `koanf:"title" yaml:"title" json:"title"`

	// Urgency is used when a notification does not set one
	Urgency Urgency `koanf:"urgency" yaml:"urgency" json:"urgency" validate:"omitempty,oneof=low normal critical"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		Title:   "gutils",
		Urgency: "",
	}
}

// Notification is a single notification to dispatch
type Notification struct {
	// Title is the notification summary
	Title string

	// Urgency is optional; empty leaves it to the daemon
	Urgency Urgency

	// Args are passed to notify-send after the title and urgency. The first
	// is normally the body text.
	Args []string
}

// Validate checks that the notification can be sent.
func (n Notification) Validate() error {
	if len(n.Args) == 0 {
		return ErrNoMessage
	}
	if !ValidUrgency(string(n.Urgency)) {
		return &InvalidUrgencyError{Urgency: n.Urgency}
	}
	return nil
}

// Argv returns the notify-send arguments for n, without the program name:
// title, then "-u urgency" when set, then the remaining arguments.
func (n Notification) Argv() []string {
	argv := make([]string, 0, len(n.Args)+3)
	argv = append(argv, n.Title)
	if n.Urgency != "" {
		argv = append(argv, "-u", string(n.Urgency))
	}
	return append(argv, n.Args...)
}
