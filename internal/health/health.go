// Package health checks that the external tools and directories gutils
// relies on are available.
package health

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/deskscript/gutils/internal/fsutil"
	"github.com/deskscript/gutils/internal/notify"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name     string
	Passed   bool
	Required bool
	Message  string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	// Passed is false when any required check failed
	Passed bool
}

// Add appends a check and updates Passed
func (r *HealthReport) Add(check CheckResult) {
	r.Checks = append(r.Checks, check)
	if check.Required && !check.Passed {
		r.Passed = false
	}
}

// RunHealthChecks runs all health checks and returns a report
func RunHealthChecks(shell, runtimeDir string) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0, 5),
		Passed: true,
	}

	report.Add(CheckTool("Shell", shell, true, ""))
	report.Add(CheckTool("notify-send", "notify-send", false, "notifications fall back to the desktop notification service"))
	report.Add(CheckTool("xdotool", "xdotool", false, "xkey and xtype are unavailable"))
	report.Add(CheckDisplay())
	report.Add(CheckRuntimeDir(runtimeDir))

	return report
}

// CheckTool checks if an executable is available. hint explains the
// consequence of a missing optional tool.
func CheckTool(name, executable string, required bool, hint string) CheckResult {
	path, err := exec.LookPath(executable)
	if err != nil {
		msg := fmt.Sprintf("%s not found in PATH", executable)
		if hint != "" {
			msg += " (" + hint + ")"
		}
		return CheckResult{Name: name, Passed: false, Required: required, Message: msg}
	}

	return CheckResult{
		Name:     name,
		Passed:   true,
		Required: required,
		Message:  fmt.Sprintf("%s found at %s", name, path),
	}
}

// CheckDisplay checks for an X11 or Wayland session
func CheckDisplay() CheckResult {
	if !notify.HasDisplay() {
		return CheckResult{
			Name:    "Display",
			Passed:  false,
			Message: "neither DISPLAY nor WAYLAND_DISPLAY is set",
		}
	}
	return CheckResult{Name: "Display", Passed: true, Message: "Display session detected"}
}

// CheckRuntimeDir checks that dir can be created and written to
func CheckRuntimeDir(dir string) CheckResult {
	const name = "Runtime directory"
	if err := fsutil.CreateDir(dir); err != nil {
		return CheckResult{Name: name, Passed: false, Required: true, Message: fmt.Sprintf("cannot create %s: %v", dir, err)}
	}

	probe, err := os.CreateTemp(dir, ".gutils-doctor-*")
	if err != nil {
		return CheckResult{Name: name, Passed: false, Required: true, Message: fmt.Sprintf("%s is not writable: %v", dir, err)}
	}
	_ = probe.Close()
	_ = os.Remove(probe.Name())

	return CheckResult{Name: name, Passed: true, Required: true, Message: fmt.Sprintf("%s is writable", dir)}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var output string

	for _, check := range report.Checks {
		switch {
		case check.Passed:
			output += fmt.Sprintf("✓ %s\n", check.Message)
		case check.Required:
			output += fmt.Sprintf("✗ Error: %s\n", check.Message)
		default:
			output += fmt.Sprintf("! Warning: %s\n", check.Message)
		}
	}

	return output
}
