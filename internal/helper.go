package internal

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	uerror "bravectl/util/error"
	uio "bravectl/util/io"
)

// HelperScriptName is the file name of the shared focus-or-launch
// script under the configured bin directory.
const HelperScriptName = "brave-profile-launch"

//go:embed launch-helper.sh.tmpl
var helperScriptTemplate string

var helperScriptTmpl = template.Must(template.New("launch-helper").Parse(helperScriptTemplate))

// HelperPath returns where the shared helper script lives for the
// given bin directory.
func HelperPath(binDir string) string {
	return filepath.Join(binDir, HelperScriptName)
}

// RenderHelperScript formats the shared helper script for the given
// browser executable.
func RenderHelperScript(browserPath string) (string, error) {
	sb := strings.Builder{}
	if err := helperScriptTmpl.Execute(&sb, struct{ BrowserPath string }{browserPath}); err != nil {
		return "", uerror.WithStackTrace(err)
	}
	return sb.String(), nil
}

// WriteHelperScript writes (or overwrites) the shared helper script
// into binDir with executable permissions and returns its path.
// Repeated generation converges on a single file.
func WriteHelperScript(binDir, browserPath string) (string, error) {
	content, err := RenderHelperScript(browserPath)
	if err != nil {
		return "", err
	}
	path := HelperPath(binDir)
	if err := uio.WriteExecutable(path, []byte(content)); err != nil {
		return "", uerror.WithStackTrace(err)
	}
	return path, nil
}

// RemoveHelperScript deletes the shared helper script. The script is
// shared across launchers, so callers only do this on explicit
// request. A script that is already gone counts as removed.
func RemoveHelperScript(binDir string) error {
	err := os.Remove(HelperPath(binDir))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return uerror.WithStackTrace(err)
	}
	return nil
}
