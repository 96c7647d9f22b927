package cli

import (
	"errors"

	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/deskscript/gutils/internal/notify"
	"github.com/deskscript/gutils/internal/pidfile"
)

// Exit codes for the gutils CLI (re-exported from shared)
const (
	ExitSuccess             = shared.ExitSuccess
	ExitFailure             = shared.ExitFailure
	ExitInvalidArguments    = shared.ExitInvalidArguments
	ExitMissingDependencies = shared.ExitMissingDependency
	ExitStillAlive          = shared.ExitStillAlive
)

// ExitCode returns the exit code for err. Codes attached with
// shared.WithExitCode win; otherwise known domain errors are mapped.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if code := shared.ExitCode(err); code != ExitFailure {
		return code
	}
	if _, ok := pidfile.IsStillAlive(err); ok {
		return ExitStillAlive
	}
	var urgency *notify.InvalidUrgencyError
	if errors.Is(err, notify.ErrNoMessage) || errors.As(err, &urgency) {
		return ExitInvalidArguments
	}
	return ExitFailure
}
