// Package progress tests plain and colored progress output, spinner lifecycle, and symbol selection.
// Related: internal/progress/display.go, internal/progress/terminal.go
// Tags: progress, spinner, terminal, symbols
package progress

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay_NonTTY(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	d := NewDisplay(&buf, TerminalCapabilities{})

	d.Start("Running backup")
	d.Succeed("backup done")
	d.Start("Running sync")
	d.Fail("sync", errors.New("exit 1"))

	assert.Equal(t, "Running backup\n[OK] backup done\nRunning sync\n[FAIL] sync: exit 1\n", buf.String())
}

func TestDisplay_ColorMarks(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	d := NewDisplay(&buf, TerminalCapabilities{SupportsColor: true, SupportsUnicode: true})

	d.Succeed("ok")

	assert.Contains(t, buf.String(), "\x1b[32m✓\x1b[0m ok")
}

func TestDisplay_TTYSpinnerStops(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	d := NewDisplay(&buf, TerminalCapabilities{IsTTY: true})

	d.Start("working")
	d.Stop()
	d.Stop()

	assert.Nil(t, d.spinner)
}

func TestSelectSymbols(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		caps TerminalCapabilities
		want ProgressSymbols
	}{
		"unicode": {
			caps: TerminalCapabilities{SupportsUnicode: true},
			want: ProgressSymbols{Checkmark: "✓", Failure: "✗", SpinnerSet: 14},
		},
		"ascii": {
			caps: TerminalCapabilities{},
			want: ProgressSymbols{Checkmark: "[OK]", Failure: "[FAIL]", SpinnerSet: 9},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SelectSymbols(tt.caps))
		})
	}
}

func TestDetectTerminalCapabilities_Pipe(t *testing.T) {
	t.Parallel()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	caps := DetectTerminalCapabilities(w)
	assert.Equal(t, TerminalCapabilities{}, caps)
}

func TestDisplay_NilIsNoop(t *testing.T) {
	t.Parallel()
	var d *Display

	assert.NotPanics(t, func() {
		d.Start("x")
		d.Succeed("x")
		d.Fail("x", errors.New("y"))
		d.Stop()
	})
}
