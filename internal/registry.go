package internal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	uerror "bravectl/util/error"
)

// ListLaunchers scans applicationsDir for desktop entries generated by
// this tool. Foreign desktop files and unreadable files are ignored.
// A missing directory yields an empty list, not an error.
func ListLaunchers(applicationsDir string) ([]Launcher, error) {
	dirEntries, err := os.ReadDir(applicationsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Launcher{}, nil
	}
	if err != nil {
		return nil, uerror.WithStackTrace(err)
	}

	desktopFiles := lo.Filter(dirEntries, func(entry fs.DirEntry, _ int) bool {
		return !entry.IsDir() && strings.HasSuffix(entry.Name(), ".desktop")
	})

	launchers := []Launcher{}
	for _, entry := range desktopFiles {
		launcher, ours := parseLauncher(filepath.Join(applicationsDir, entry.Name()))
		if ours {
			launchers = append(launchers, launcher)
		}
	}
	return launchers, nil
}

// parseLauncher reads a desktop file and reports whether it carries
// this tool's marker key. Only marked files are considered ours.
func parseLauncher(path string) (Launcher, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Launcher{}, false
	}

	launcher := Launcher{Path: path}
	marked := false
	for _, line := range strings.Split(string(content), "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if !found {
			continue
		}
		switch key {
		case markerKey:
			marked = value == "true"
		case markerProfileKey:
			launcher.ProfileID = value
		case "Name":
			launcher.Title = value
		}
	}
	if !marked || launcher.ProfileID == "" {
		return Launcher{}, false
	}
	return launcher, true
}

// RemoveLauncher deletes the launcher's desktop file. A file that is
// already gone counts as removed.
func RemoveLauncher(launcher Launcher) error {
	err := os.Remove(launcher.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return uerror.WithStackTrace(err)
	}
	return nil
}

// RemoveAllLaunchers deletes every given launcher, continuing past
// per-file failures. It returns the number of files removed alongside
// the errors encountered.
func RemoveAllLaunchers(launchers []Launcher) (removed int, errs []error) {
	for _, launcher := range launchers {
		if err := RemoveLauncher(launcher); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errs
}
