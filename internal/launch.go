package internal

import (
	"context"
	"os/exec"

	uerror "bravectl/util/error"
)

// OpenProfile focuses an existing window for the profile or, failing
// that, starts a detached browser process for it. It returns whether
// an existing window was focused.
func OpenProfile(ctx context.Context, cfg Config, activator Activator, profile Profile, title string) (focused bool, err error) {
	if title == "" {
		title = DefaultTitle(profile)
	}

	focused, err = activator.Activate(ctx, title)
	if err != nil {
		return false, err
	}
	if focused {
		return true, nil
	}

	browserPath, err := FindBrowser(cfg.BrowserPath)
	if err != nil {
		return false, err
	}

	browserCmd := exec.Command(browserPath, "--profile-directory="+profile.ID)
	if err := browserCmd.Start(); err != nil {
		return false, uerror.WithStackTrace(err)
	}
	// The browser outlives this process; drop our handle on it.
	if err := browserCmd.Process.Release(); err != nil {
		return false, uerror.WithStackTrace(err)
	}
	return false, nil
}
