// Package xdo simulates keyboard input through xdotool.
package xdo

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultTypeDelay is the per-keystroke delay used when none is given.
const DefaultTypeDelay = 150 * time.Millisecond

// UseDefaultDelay asks Type for DefaultTypeDelay. A zero delay types without pausing.
const UseDefaultDelay time.Duration = -1

// Runner executes an external command. It exists so tests can capture argv.
type Runner func(ctx context.Context, name string, args ...string) error

// Client wraps xdotool.
type Client struct {
	// Binary is the xdotool executable; empty means "xdotool" on PATH.
	Binary string
	run    Runner
}

// New returns a client that runs the real xdotool.
func New() *Client {
	return &Client{run: execRunner}
}

// NewWithRunner returns a client that hands every invocation to run.
func NewWithRunner(run Runner) *Client {
	return &Client{run: run}
}

func (c *Client) binary() string {
	if c.Binary == "" {
		return "xdotool"
	}
	return c.Binary
}

// Key sends a key or key combination such as "ctrl+v" or "Return".
func (c *Client) Key(ctx context.Context, key string) error {
	return c.run(ctx, c.binary(), KeyArgs(key)...)
}

// Type types keys one character at a time with delay between keystrokes.
func (c *Client) Type(ctx context.Context, keys string, delay time.Duration) error {
	return c.run(ctx, c.binary(), TypeArgs(keys, delay)...)
}

// KeyArgs returns the xdotool arguments for Key.
func KeyArgs(key string) []string {
	return []string{"key", key}
}

// TypeArgs returns the xdotool arguments for Type. Leading and trailing
// newlines are stripped from keys so a trailing newline never presses Return.
// A negative delay becomes DefaultTypeDelay; zero is passed through.
func TypeArgs(keys string, delay time.Duration) []string {
	if delay < 0 {
		delay = DefaultTypeDelay
	}
	return []string{
		"type",
		"--delay", strconv.FormatInt(delay.Milliseconds(), 10),
		strings.Trim(keys, "\n"),
	}
}

func execRunner(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s %s failed: %w: %s", name, args[0], err, msg)
		}
		return fmt.Errorf("%s %s failed: %w", name, args[0], err)
	}
	return nil
}
