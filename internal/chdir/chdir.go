// Package chdir implements the signal-file protocol that lets gitpr
// change the invoking shell's working directory.
//
// A child process cannot change its parent shell's directory, so the
// shell function installed by 'gitpr shell-init' and the gitpr binary
// communicate through a one-shot file: the shell resets the file before
// running gitpr, gitpr writes a target directory into it when it wants
// the shell to move, and the shell reads it after gitpr exits and cds
// into the path if one is present.
package chdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the fixed signal-file name used when no
// per-invocation path is supplied. It matches the path the original
// wrapper sourced, so old shell setups keep working.
const DefaultFileName = "git-pull-request-chdir"

// EnvVar overrides the signal-file location. The shell function exports
// a unique per-invocation path here so that concurrent gitpr runs never
// race on the shared default file.
const EnvVar = "GITPR_CHDIR_FILE"

// SignalFile is a handle on one signal file.
type SignalFile struct {
	path string
}

// New returns the signal file for this invocation: the path in
// GITPR_CHDIR_FILE if set, otherwise the fixed file in the system
// temporary directory.
func New() *SignalFile {
	if p := os.Getenv(EnvVar); p != "" {
		return &SignalFile{path: p}
	}
	return &SignalFile{path: filepath.Join(os.TempDir(), DefaultFileName)}
}

// NewAt returns a signal file at an explicit path.
func NewAt(path string) *SignalFile {
	return &SignalFile{path: path}
}

// Path returns the signal file's location.
func (s *SignalFile) Path() string {
	return s.path
}

// Reset truncates the signal file to zero length, creating it if
// absent. Running this before the delegate guarantees a stale path from
// an earlier run can never be misread if the delegate exits without
// writing.
func (s *SignalFile) Reset() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to reset signal file %s: %w", s.path, err)
	}
	return f.Close()
}

// Request asks the invoking shell to change into dir. The write is
// atomic (temp file in the same directory, then rename) so an
// interrupted gitpr can never leave a partial path behind.
func (s *SignalFile) Request(dir string) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp signal file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(dir); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write signal file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write signal file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to publish signal file: %w", err)
	}
	return nil
}

// Read returns the requested directory, trimmed of surrounding
// whitespace. An empty or missing file means no change was requested.
func (s *SignalFile) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read signal file %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
