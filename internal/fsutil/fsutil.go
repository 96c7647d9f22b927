// Package fsutil holds small filesystem helpers used by scripts during startup.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// CreateDir creates directory and any missing parents. A directory that
// already exists is not an error. Any other failure is returned unchanged
// so callers can inspect it with errors.Is.
func CreateDir(directory string) error {
	err := os.MkdirAll(directory, 0o755)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return nil
	}
	return err
}

// Mkfifo creates a named pipe at path unless something already exists there.
func Mkfifo(path string) error {
	err := syscall.Mkfifo(path, 0o600)
	if err == nil || errors.Is(err, syscall.EEXIST) {
		return nil
	}
	return &fs.PathError{Op: "mkfifo", Path: path, Err: err}
}

// IsFifo reports whether path exists and is a named pipe.
func IsFifo(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeNamedPipe != 0
}
