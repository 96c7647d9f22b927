package pidfile

import (
	"errors"
	"fmt"
)

// StillAliveError is returned when the pid file names a process that is
// still running.
type StillAliveError struct {
	PID int
}

func (e *StillAliveError) Error() string {
	return fmt.Sprintf("another instance is still alive (pid %d)", e.PID)
}

// IsStillAlive reports whether err is or wraps a *StillAliveError and
// returns the conflicting pid when it is.
func IsStillAlive(err error) (int, bool) {
	var alive *StillAliveError
	if errors.As(err, &alive) {
		return alive.PID, true
	}
	return 0, false
}
