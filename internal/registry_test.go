package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"bravectl/internal"
)

// setUpLaunchers generates launchers for the fixture profiles and
// plants a foreign desktop file plus a non-desktop file next to them.
func setUpLaunchers(t *testing.T) (internal.Config, []internal.Launcher) {
	config := getConfigFixture(t)
	profiles := []internal.Profile{
		{ID: "Default", Name: "Personal"},
		{ID: "Profile 1", Name: "Work"},
	}

	launchers := make([]internal.Launcher, 0, len(profiles))
	for _, profile := range profiles {
		launcher, err := internal.GenerateLauncher(config, config.BrowserPath, "", profile, "")
		assert.NoError(t, err)
		launchers = append(launchers, launcher)
	}

	foreign := "[Desktop Entry]\nType=Application\nName=Text Editor\nExec=/usr/bin/gedit\n"
	assert.NoError(t, os.WriteFile(filepath.Join(config.ApplicationsDir, "org.gnome.gedit.desktop"), []byte(foreign), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(config.ApplicationsDir, "mimeapps.list"), []byte("[Default Applications]\n"), 0644))

	return config, launchers
}

func TestListLaunchers(t *testing.T) {
	config, created := setUpLaunchers(t)

	launchers, err := internal.ListLaunchers(config.ApplicationsDir)
	assert.NoError(t, err)
	assert.Equal(t, created, launchers)
}

func TestListLaunchersEmptyDir(t *testing.T) {
	launchers, err := internal.ListLaunchers(t.TempDir())
	assert.NoError(t, err)
	assert.Empty(t, launchers)
}

func TestListLaunchersMissingDir(t *testing.T) {
	launchers, err := internal.ListLaunchers(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.NoError(t, err)
	assert.Empty(t, launchers)
}

func TestRemoveLauncher(t *testing.T) {
	config, created := setUpLaunchers(t)

	assert.NoError(t, internal.RemoveLauncher(created[0]))

	remaining, err := internal.ListLaunchers(config.ApplicationsDir)
	assert.NoError(t, err)
	assert.Equal(t, created[1:], remaining)

	// The foreign desktop file is untouched.
	assert.FileExists(t, filepath.Join(config.ApplicationsDir, "org.gnome.gedit.desktop"))
}

func TestRemoveLauncherAlreadyGone(t *testing.T) {
	_, created := setUpLaunchers(t)

	assert.NoError(t, internal.RemoveLauncher(created[0]))
	assert.NoError(t, internal.RemoveLauncher(created[0]), "a missing file counts as removed")
}

func TestRemoveAllLaunchers(t *testing.T) {
	config, created := setUpLaunchers(t)
	helperPath, err := internal.WriteHelperScript(config.BinDir, config.BrowserPath)
	assert.NoError(t, err)

	removed, errs := internal.RemoveAllLaunchers(created)
	assert.Empty(t, errs)
	assert.Equal(t, len(created), removed)

	remaining, err := internal.ListLaunchers(config.ApplicationsDir)
	assert.NoError(t, err)
	assert.Empty(t, remaining)

	// Foreign files and the shared helper script survive.
	assert.FileExists(t, filepath.Join(config.ApplicationsDir, "org.gnome.gedit.desktop"))
	assert.FileExists(t, helperPath)
}

func TestRemoveAllLaunchersContinuesPastFailures(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	config, created := setUpLaunchers(t)

	// A read-only applications directory makes every single removal
	// fail with a permission error.
	assert.NoError(t, os.Chmod(config.ApplicationsDir, 0555))
	t.Cleanup(func() {
		assert.NoError(t, os.Chmod(config.ApplicationsDir, 0755))
	})

	removed, errs := internal.RemoveAllLaunchers(created)
	assert.Zero(t, removed)
	assert.Len(t, errs, len(created), "each failed removal is reported individually")

	assert.NoError(t, os.Chmod(config.ApplicationsDir, 0755))
	launchers, err := internal.ListLaunchers(config.ApplicationsDir)
	assert.NoError(t, err)
	assert.Equal(t, created, launchers, "failed removals leave the launchers in place")
}

func TestListLaunchersCountsTrackCreateAndRemove(t *testing.T) {
	config := getConfigFixture(t)

	launchers, err := internal.ListLaunchers(config.ApplicationsDir)
	assert.NoError(t, err)
	assert.Len(t, launchers, 0)

	first, err := internal.GenerateLauncher(config, config.BrowserPath, "", workProfile, "")
	assert.NoError(t, err)

	launchers, err = internal.ListLaunchers(config.ApplicationsDir)
	assert.NoError(t, err)
	assert.Len(t, launchers, 1)

	_, err = internal.GenerateLauncher(config, config.BrowserPath, "", internal.Profile{ID: "Default", Name: "Personal"}, "")
	assert.NoError(t, err)

	launchers, err = internal.ListLaunchers(config.ApplicationsDir)
	assert.NoError(t, err)
	assert.Len(t, launchers, 2)

	assert.NoError(t, internal.RemoveLauncher(first))

	launchers, err = internal.ListLaunchers(config.ApplicationsDir)
	assert.NoError(t, err)
	assert.Len(t, launchers, 1)
}
