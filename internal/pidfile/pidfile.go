// Package pidfile keeps a script from running twice by recording its pid in
// a well-known file and refusing to start while the recorded process lives.
//
// The check and the write are two separate steps. Two instances started at
// the same moment can both see a free slot and both write their pid; the
// last write wins. Callers that need strict exclusion among cooperating
// processes can opt in to an advisory lock with WithFileLock.
//
// The pid file is never removed automatically. A file left behind by a
// crashed run is detected as stale on the next start and overwritten.
package pidfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/deskscript/gutils/internal/fsutil"
	"github.com/deskscript/gutils/internal/result"
	"github.com/deskscript/gutils/internal/xdg"
)

// FileName is the name of the pid file inside the runtime directory.
const FileName = "pid"

// Guard is a single-instance guard for one script.
type Guard struct {
	scriptName string
	dir        string
	path       string
	pid        int
	prober     Prober
	useLock    bool
	logger     *log.Logger
}

// Option configures a Guard.
type Option func(*Guard)

// WithProber replaces the signal-based liveness probe.
func WithProber(p Prober) Option {
	return func(g *Guard) {
		g.prober = p
	}
}

// WithPID sets the pid written to the file instead of os.Getpid().
func WithPID(pid int) Option {
	return func(g *Guard) {
		g.pid = pid
	}
}

// WithFileLock holds an advisory lock on <dir>/pid.lock around the
// check-then-write so cooperating guards cannot interleave.
func WithFileLock() Option {
	return func(g *Guard) {
		g.useLock = true
	}
}

// WithLogger enables debug tracing of each guard decision.
func WithLogger(l *log.Logger) Option {
	return func(g *Guard) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGuard creates a guard for scriptName whose pid file lives in
// runtimeDir. An empty runtimeDir is resolved with xdg.RuntimeDir.
// Nothing touches the filesystem until Acquire.
func NewGuard(runtimeDir, scriptName string, opts ...Option) *Guard {
	if runtimeDir == "" {
		runtimeDir = xdg.RuntimeDir(scriptName)
	}

	g := &Guard{
		scriptName: scriptName,
		dir:        runtimeDir,
		path:       filepath.Join(runtimeDir, FileName),
		pid:        os.Getpid(),
		prober:     SignalProber{},
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Path returns the pid file path.
func (g *Guard) Path() string {
	return g.path
}

// PID returns the pid this guard writes.
func (g *Guard) PID() int {
	return g.pid
}

// ScriptName returns the script identifier the guard was created for.
func (g *Guard) ScriptName() string {
	return g.scriptName
}

// Acquire claims the pid file for this process.
//
// It returns *StillAliveError when the file names a live process, including
// one the caller lacks permission to signal. Unparseable content counts as
// no prior instance. Errors creating the runtime directory are returned
// unwrapped.
func (g *Guard) Acquire() error {
	if err := fsutil.CreateDir(g.dir); err != nil {
		return err
	}

	if g.useLock {
		unlock, err := g.lock()
		if err != nil {
			return err
		}
		defer unlock()
	}

	oldPID, ok, err := g.readPID()
	if err != nil {
		return err
	}
	if ok {
		state, err := g.prober.ProcessExists(oldPID)
		if err != nil {
			return err
		}
		g.logger.Printf("[pidfile] %s: recorded pid %d is %s", g.scriptName, oldPID, state)
		if state.Alive() {
			return &StillAliveError{PID: oldPID}
		}
	}

	if err := os.WriteFile(g.path, []byte(strconv.Itoa(g.pid)), 0o644); err != nil {
		return fmt.Errorf("failed to write pid file: %w", err)
	}
	g.logger.Printf("[pidfile] %s: wrote pid %d to %s", g.scriptName, g.pid, g.path)
	return nil
}

// Status reports the pid recorded in the file and its liveness without
// modifying anything. A missing or malformed file yields (0, Absent, nil).
func (g *Guard) Status() (int, ProcessState, error) {
	pid, ok, err := g.readPID()
	if err != nil || !ok {
		return 0, Absent, err
	}
	state, err := g.prober.ProcessExists(pid)
	if err != nil {
		return pid, Absent, err
	}
	return pid, state, nil
}

// Release removes the pid file if it still records this guard's pid.
// A missing file, or one claimed by another process since, is left alone.
func (g *Guard) Release() error {
	pid, ok, err := g.readPID()
	if err != nil || !ok || pid != g.pid {
		return err
	}
	if err := os.Remove(g.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove pid file: %w", err)
	}
	g.logger.Printf("[pidfile] %s: released %s", g.scriptName, g.path)
	return nil
}

// readPID returns the recorded pid and whether the file held one.
// A missing file and unparseable content, including numbers too large for
// a pid, report ok=false.
func (g *Guard) readPID() (int, bool, error) {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read pid file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid > math.MaxInt32 {
		g.logger.Printf("[pidfile] %s: ignoring malformed pid file %s", g.scriptName, g.path)
		return 0, false, nil
	}
	return pid, true, nil
}

// Acquire is shorthand for NewGuard(runtimeDir, scriptName, opts...).Acquire().
func Acquire(runtimeDir, scriptName string, opts ...Option) error {
	return NewGuard(runtimeDir, scriptName, opts...).Acquire()
}

// TryAcquire is Acquire returning a Result whose Ok value is the pid written.
func TryAcquire(runtimeDir, scriptName string, opts ...Option) result.Result[int, error] {
	g := NewGuard(runtimeDir, scriptName, opts...)
	if err := g.Acquire(); err != nil {
		return result.NewErr[int](err)
	}
	return result.NewOk[int, error](g.pid)
}
