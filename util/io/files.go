package io

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileModeScript is the bitmask for the Unix permission flags
// `u=rwx,g=rx,o=rx`, used for generated executables and desktop
// entries.
var FileModeScript os.FileMode = 0755

// FileModeDir is the bitmask for directories created on demand.
var FileModeDir os.FileMode = 0755

// DirExists returns if a directory exists at the given path, following symlinks.
func DirExists(name string) (bool, error) {
	stat, err := os.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return stat.IsDir(), nil
}

// FileExists returns if a file exists at the given path, following symlinks.
func FileExists(name string) (bool, error) {
	stat, err := os.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !stat.IsDir(), nil
}

// WriteExecutable writes content to name with executable permissions,
// creating parent directories as needed. Existing files are replaced
// and re-chmodded, so repeated writes converge on the same state.
func WriteExecutable(name string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), FileModeDir); err != nil {
		return err
	}
	if err := os.WriteFile(name, content, FileModeScript); err != nil {
		return err
	}
	// WriteFile does not change the mode of a pre-existing file.
	return os.Chmod(name, FileModeScript)
}
