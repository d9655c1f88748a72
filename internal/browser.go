package internal

import (
	"os/exec"

	uerror "bravectl/util/error"
	uio "bravectl/util/io"
)

// Locations Brave installs to, checked before falling back to $PATH.
var browserCandidates = []string{
	"/usr/bin/brave-browser",
	"/usr/bin/brave",
	"/snap/bin/brave",
	"/opt/brave.com/brave/brave",
}

var browserNames = []string{"brave-browser", "brave"}

// FindBrowser returns the path of the Brave executable. A configured
// path wins but must exist; otherwise well-known install locations are
// probed, then $PATH.
func FindBrowser(configured string) (string, error) {
	if configured != "" {
		exists, err := uio.FileExists(configured)
		if err != nil {
			return "", uerror.WithStackTrace(err)
		}
		if !exists {
			return "", uerror.StackTracef("configured browser path %s does not exist", configured)
		}
		return configured, nil
	}

	for _, candidate := range browserCandidates {
		exists, err := uio.FileExists(candidate)
		if err != nil {
			return "", uerror.WithStackTrace(err)
		}
		if exists {
			return candidate, nil
		}
	}

	for _, name := range browserNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", uerror.StackTracef("could not find the Brave executable; set browser_path in the config or BRAVECTL_BROWSER in the environment")
}
