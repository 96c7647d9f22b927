package pidfile

import (
	"errors"
	"fmt"
	"math"
	"syscall"
)

// ProcessState is the outcome of a liveness probe.
type ProcessState int

const (
	// Absent means the OS reports no process with the pid.
	Absent ProcessState = iota
	// Exists means the process exists and the caller may signal it.
	Exists
	// PermissionDenied means the process exists but belongs to someone the
	// caller cannot signal.
	PermissionDenied
)

// String returns a human-readable name for the state.
func (s ProcessState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Exists:
		return "exists"
	case PermissionDenied:
		return "permission denied"
	default:
		return fmt.Sprintf("ProcessState(%d)", int(s))
	}
}

// Alive reports whether the state counts as a running instance.
// PermissionDenied counts: the process is there, we just cannot signal it.
func (s ProcessState) Alive() bool {
	return s == Exists || s == PermissionDenied
}

// Prober checks whether a process exists.
type Prober interface {
	ProcessExists(pid int) (ProcessState, error)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(pid int) (ProcessState, error)

// ProcessExists calls f(pid).
func (f ProberFunc) ProcessExists(pid int) (ProcessState, error) {
	return f(pid)
}

// SignalProber probes liveness by sending signal 0, which performs the
// permission and existence checks of kill(2) without delivering anything.
type SignalProber struct{}

// ProcessExists implements Prober.
func (SignalProber) ProcessExists(pid int) (ProcessState, error) {
	// kill(0, 0) and kill(-1, 0) address process groups, not a process.
	// Values outside pid_t would be truncated by the kernel.
	if pid <= 0 || pid > math.MaxInt32 {
		return Absent, nil
	}

	err := syscall.Kill(pid, syscall.Signal(0))
	switch {
	case err == nil:
		return Exists, nil
	case errors.Is(err, syscall.ESRCH):
		return Absent, nil
	case errors.Is(err, syscall.EPERM):
		return PermissionDenied, nil
	default:
		return Absent, fmt.Errorf("failed to probe pid %d: %w", pid, err)
	}
}
