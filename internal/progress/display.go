package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Display shows progress for one running task at a time.
// A nil *Display discards everything.
type Display struct {
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	out          io.Writer
	spinner      *spinner.Spinner
}

// NewDisplay creates a display writing to out with the given capabilities.
// out is normally os.Stderr so progress never mixes with command output.
func NewDisplay(out io.Writer, caps TerminalCapabilities) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		out:          out,
	}
}

// Start begins showing msg. On a terminal a spinner animates next to it;
// otherwise msg is printed once.
func (d *Display) Start(msg string) {
	if d == nil {
		return
	}
	d.stopSpinner()

	if !d.capabilities.IsTTY {
		fmt.Fprintln(d.out, msg)
		return
	}

	d.spinner = spinner.New(
		spinner.CharSets[d.symbols.SpinnerSet],
		100*time.Millisecond,
		spinner.WithWriter(d.out),
	)
	d.spinner.Suffix = " " + msg
	d.spinner.Start()
}

// Succeed stops the spinner and prints msg with a success mark
func (d *Display) Succeed(msg string) {
	if d == nil {
		return
	}
	d.stopSpinner()
	fmt.Fprintf(d.out, "%s %s\n", d.mark(d.symbols.Checkmark, color.FgGreen), msg)
}

// Fail stops the spinner and prints msg and err with a failure mark
func (d *Display) Fail(msg string, err error) {
	if d == nil {
		return
	}
	d.stopSpinner()
	fmt.Fprintf(d.out, "%s %s: %v\n", d.mark(d.symbols.Failure, color.FgRed), msg, err)
}

// Stop stops the spinner without printing anything
func (d *Display) Stop() {
	if d == nil {
		return
	}
	d.stopSpinner()
}

func (d *Display) stopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

func (d *Display) mark(symbol string, attr color.Attribute) string {
	if !d.capabilities.SupportsColor {
		return symbol
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(symbol)
}
