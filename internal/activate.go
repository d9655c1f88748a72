package internal

import (
	"context"
	"os/exec"

	uerror "bravectl/util/error"
)

// Activator focuses an existing browser window by title. Focusing is
// best effort: implementations report found=false instead of an error
// when no window matches.
type Activator interface {
	Activate(ctx context.Context, title string) (found bool, err error)
}

// WmctrlActivator focuses windows through wmctrl.
type WmctrlActivator struct{}

func (WmctrlActivator) Activate(ctx context.Context, title string) (bool, error) {
	return runActivation(exec.CommandContext(ctx, "wmctrl", "-a", title))
}

// XdotoolActivator focuses windows through xdotool.
type XdotoolActivator struct{}

func (XdotoolActivator) Activate(ctx context.Context, title string) (bool, error) {
	return runActivation(exec.CommandContext(ctx, "xdotool", "search", "--name", title, "windowactivate"))
}

// NoopActivator is used when no window tool is installed; every
// activation degrades to a fresh launch.
type NoopActivator struct{}

func (NoopActivator) Activate(context.Context, string) (bool, error) {
	return false, nil
}

func runActivation(cmd *exec.Cmd) (bool, error) {
	if err := cmd.Run(); err != nil {
		// A non-zero exit means no matching window, not a failure.
		if _, ok := err.(*exec.ExitError); ok {
			return false, nil
		}
		return false, uerror.WithStackTrace(err)
	}
	return true, nil
}

// DetectActivator picks the best available window tool at startup.
func DetectActivator() Activator {
	if _, err := exec.LookPath("wmctrl"); err == nil {
		return WmctrlActivator{}
	}
	if _, err := exec.LookPath("xdotool"); err == nil {
		return XdotoolActivator{}
	}
	return NoopActivator{}
}
