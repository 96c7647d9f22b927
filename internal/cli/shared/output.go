package shared

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Tagline is the project tagline.
const Tagline = "Helpers for desktop shell scripts"

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// GetTerminalWidth returns the width of w, defaulting to 80 if unavailable.
func GetTerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// Colors provides reusable color functions for CLI output.
type Colors struct {
	Cyan   func(a ...interface{}) string
	Green  func(a ...interface{}) string
	Yellow func(a ...interface{}) string
	Red    func(a ...interface{}) string
	Dim    func(a ...interface{}) string
}

// NewColors returns colors for output written to w. Colors are disabled
// when w is not a terminal or NO_COLOR is set.
func NewColors(w io.Writer) *Colors {
	enabled := IsTerminal(w) && os.Getenv("NO_COLOR") == ""
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return &Colors{
		Cyan:   mk(color.FgCyan, color.Bold),
		Green:  mk(color.FgGreen),
		Yellow: mk(color.FgYellow),
		Red:    mk(color.FgRed),
		Dim:    mk(color.Faint),
	}
}
