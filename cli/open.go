package cli

import (
	"github.com/pterm/pterm"
	"github.com/samber/lo"

	"bravectl/internal"
	uerror "bravectl/util/error"
)

type OpenCmd struct {
	Profile string `arg:"" optional:"" help:"ID of the profile to focus or launch"`
	Title   string `help:"Window title to match when focusing" short:"t"`
}

func (cmd *OpenCmd) Run(common CommandContext) error {
	profiles, err := internal.ReadProfiles(common.Config.LocalStatePath)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return uerror.StackTracef("no Brave profiles found")
	}

	var profile *internal.Profile
	if cmd.Profile == "" {
		profile, err = selectProfile(profiles)
		if err != nil {
			return err
		}
	} else {
		profile = internal.FindProfileByID(profiles, cmd.Profile)
		if profile == nil {
			return uerror.StackTracef("profile %s does not exist", cmd.Profile)
		}
	}

	return openProfile(common, *profile, cmd.Title)
}

func openProfile(common CommandContext, profile internal.Profile, title string) error {
	activator := internal.DetectActivator()
	focused, err := internal.OpenProfile(common.Context, common.Config, activator, profile, title)
	if err != nil {
		return err
	}
	if focused {
		pterm.Success.Printf("Focused existing window for %s\n", profile.Name)
	} else {
		pterm.Success.Printf("Launched Brave with profile %s\n", profile.Name)
	}
	return nil
}

// selectProfile prompts for one of the given profiles.
func selectProfile(profiles []internal.Profile) (*internal.Profile, error) {
	options := lo.Map(profiles, func(p internal.Profile, _ int) string {
		return profileOptionLabel(p)
	})
	choice, err := pterm.DefaultInteractiveSelect.WithOptions(options).Show("Profile")
	if err != nil {
		return nil, uerror.WithStackTrace(err)
	}
	for _, profile := range profiles {
		if profileOptionLabel(profile) == choice {
			return &profile, nil
		}
	}
	return nil, uerror.StackTracef("no profile selected")
}
