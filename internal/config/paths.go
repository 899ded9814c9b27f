// Package config resolves where the task store lives on disk.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// defaultDataDirSuffix is the store directory relative to $HOME.
	defaultDataDirSuffix = ".local/taskmanager"

	// DefaultDataFile is the store filename inside the data directory.
	DefaultDataFile = "tasks.txt"
)

// DataDir resolves the store directory. An explicitly configured
// directory wins; otherwise the directory is derived from the HOME
// environment variable, and a missing HOME is a hard error because there
// is nowhere sensible to keep the store.
func DataDir(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	home := os.Getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("HOME environment variable not set; cannot determine the task directory (set data.dir to override)")
	}
	return filepath.Join(home, defaultDataDirSuffix), nil
}

// EnsureDataDir creates dir with owner-only permissions if it does not
// already exist. An existing directory is not an error.
func EnsureDataDir(fsys afero.Fs, dir string) error {
	if err := fsys.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create task directory %s: %w", dir, err)
	}
	return nil
}
