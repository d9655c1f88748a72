package internal

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	uerror "bravectl/util/error"
	uio "bravectl/util/io"
	ustring "bravectl/util/string"
)

// Generated desktop entries are recognized by a custom key rather than
// their file name, so renamed copies still count as ours and foreign
// entries never match by accident.
const (
	markerKey        = "X-BraveProfileManager"
	markerProfileKey = "X-BraveProfileManager-Profile"
)

//go:embed desktop-entry.tmpl
var desktopEntryTemplate string

var desktopEntryTmpl = template.Must(template.New("desktop-entry").Parse(desktopEntryTemplate))

// DesktopEntry is the typed input of the desktop entry template.
type DesktopEntry struct {
	Title       string
	ProfileID   string
	ProfileName string
	Exec        string
}

// RenderDesktopEntry formats a desktop entry file for the given record.
func RenderDesktopEntry(entry DesktopEntry) (string, error) {
	sb := strings.Builder{}
	if err := desktopEntryTmpl.Execute(&sb, entry); err != nil {
		return "", uerror.WithStackTrace(err)
	}
	return sb.String(), nil
}

// DefaultTitle is the launcher title used when no custom title is
// given.
func DefaultTitle(profile Profile) string {
	return fmt.Sprintf("Brave - %s", profile.Name)
}

// LauncherFileName derives the deterministic desktop entry file name
// for a profile, so regenerating a launcher overwrites the old one.
func LauncherFileName(profile Profile) string {
	return fmt.Sprintf("brave-%s-%s.desktop", ustring.SanitizeLower(profile.Name), ustring.Sanitize(profile.ID))
}

// ExecLine builds the Exec value of a desktop entry. With a helper
// path it routes the launch through the shared focus-or-launch script;
// otherwise it invokes the browser directly. The command path is
// quoted too, so install locations with spaces survive.
func ExecLine(browserPath, helperPath string, profile Profile, title string) string {
	if helperPath != "" {
		return fmt.Sprintf("%q %q %q", helperPath, profile.ID, title)
	}
	return fmt.Sprintf("%q --profile-directory=%q", browserPath, profile.ID)
}

// GenerateLauncher writes (or overwrites) the desktop entry for
// profile into cfg.ApplicationsDir. An empty title selects the
// default "Brave - <name>" form. helperPath may be empty to launch
// the browser directly.
func GenerateLauncher(cfg Config, browserPath, helperPath string, profile Profile, title string) (Launcher, error) {
	if title == "" {
		title = DefaultTitle(profile)
	}

	content, err := RenderDesktopEntry(DesktopEntry{
		Title:       title,
		ProfileID:   profile.ID,
		ProfileName: profile.Name,
		Exec:        ExecLine(browserPath, helperPath, profile, title),
	})
	if err != nil {
		return Launcher{}, err
	}

	path := filepath.Join(cfg.ApplicationsDir, LauncherFileName(profile))
	if err := uio.WriteExecutable(path, []byte(content)); err != nil {
		return Launcher{}, uerror.WithStackTrace(err)
	}

	return Launcher{
		Path:      path,
		ProfileID: profile.ID,
		Title:     title,
	}, nil
}
