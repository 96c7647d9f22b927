// Package secret generates a short random token and publishes it in a file
// named after the script, so a companion process can prove it was started
// by the same user session.
package secret

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"

	"github.com/deskscript/gutils/internal/xdg"
)

// DefaultDir is where secret files are written when no directory is given.
const DefaultDir = "/tmp"

// Length is the number of characters in a generated secret.
const Length = 16

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Secret is a published secret.
type Secret struct {
	Value string
	Path  string
}

// New generates a secret and writes it to <dir>/<script>.secret with mode
// 0600. Call Remove, typically deferred, to delete the file on exit.
func New(dir, scriptName string) (*Secret, error) {
	value, err := Generate()
	if err != nil {
		return nil, err
	}

	path := PathFor(dir, scriptName)
	if err := os.WriteFile(path, []byte(value), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write secret file: %w", err)
	}
	return &Secret{Value: value, Path: path}, nil
}

// PathFor returns <dir>/<script>.secret, using DefaultDir when dir is empty.
func PathFor(dir, scriptName string) string {
	if dir == "" {
		dir = DefaultDir
	}
	return filepath.Join(dir, xdg.NormalizeName(scriptName, "script")+".secret")
}

// Generate returns Length random characters from [A-Za-z0-9].
func Generate() (string, error) {
	buf := make([]byte, Length)
	limit := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate secret: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}

// Remove deletes the secret file. A file that is already gone is not an error.
func (s *Secret) Remove() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove secret file: %w", err)
	}
	return nil
}
