package pidfile

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the advisory lock used by WithFileLock.
const LockFileName = "pid.lock"

// lock blocks until the advisory lock next to the pid file is held.
func (g *Guard) lock() (func(), error) {
	fl := flock.New(filepath.Join(g.dir, LockFileName))
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", fl.Path(), err)
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			g.logger.Printf("[pidfile] %s: failed to unlock %s: %v", g.scriptName, fl.Path(), err)
		}
	}, nil
}
