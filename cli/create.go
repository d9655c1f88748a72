package cli

import (
	"fmt"

	"github.com/pterm/pterm"

	"bravectl/internal"
	uerror "bravectl/util/error"
)

type CreateCmd struct {
	Profile string `help:"ID of the profile to create a launcher for" short:"p"`
	All     bool   `help:"Create launchers for every profile" short:"a"`
	Title   string `help:"Custom launcher title (single profile only)" short:"t"`
}

func (cmd *CreateCmd) Run(common CommandContext) error {
	if cmd.Profile == "" && !cmd.All {
		return uerror.StackTracef("pass --profile <id> or --all (or run the interactive menu)")
	}
	if cmd.All && cmd.Title != "" {
		return uerror.StackTracef("--title only applies to a single profile")
	}

	profiles, err := internal.ReadProfiles(common.Config.LocalStatePath)
	if err != nil {
		return err
	}

	selected := profiles
	titles := map[string]string{}
	if !cmd.All {
		profile := internal.FindProfileByID(profiles, cmd.Profile)
		if profile == nil {
			return uerror.StackTracef("profile %s does not exist", cmd.Profile)
		}
		selected = []internal.Profile{*profile}
		titles[profile.ID] = cmd.Title
	}

	return createLaunchers(common, selected, titles)
}

// createLaunchers writes the shared helper script (when enabled) and
// one desktop entry per selected profile. Per-profile failures are
// reported and the batch continues.
func createLaunchers(common CommandContext, profiles []internal.Profile, titles map[string]string) error {
	browserPath, err := internal.FindBrowser(common.Config.BrowserPath)
	if err != nil {
		return err
	}

	helperPath := ""
	if common.Config.UseHelper {
		helperPath, err = internal.WriteHelperScript(common.Config.BinDir, browserPath)
		if err != nil {
			return err
		}
		pterm.Info.Printf("Helper script in place: %s\n", helperPath)
	}

	failures := 0
	for _, profile := range profiles {
		launcher, err := internal.GenerateLauncher(common.Config, browserPath, helperPath, profile, titles[profile.ID])
		if err != nil {
			failures++
			pterm.Error.Printf("Could not create launcher for %s: %v\n", profile.Name, err)
			continue
		}
		pterm.Success.Printf("Created launcher %q: %s\n", launcher.Title, launcher.Path)
	}

	if failures > 0 {
		return uerror.StackTracef("%d of %d launchers could not be created", failures, len(profiles))
	}
	pterm.Info.Println("You may need to log out and back in for new launchers to appear in the application menu")
	return nil
}

func profileOptionLabel(profile internal.Profile) string {
	return fmt.Sprintf("%s (ID: %s)", profile.Name, profile.ID)
}
