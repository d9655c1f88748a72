package cli

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/samber/lo"

	"bravectl/internal"
)

const (
	menuManage = "Manage profile launchers"
	menuCreate = "Create profile launcher"
	menuList   = "List Brave profiles"
	menuOpen   = "Open or focus a profile"
	menuExit   = "Exit"
)

type MenuCmd struct{}

// Run loops over the interactive main menu until the user exits.
// Failing actions are reported and drop back to the menu; only a
// broken prompt (closed stdin) ends the loop.
func (cmd *MenuCmd) Run(common CommandContext) error {
	for {
		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions([]string{menuManage, menuCreate, menuList, menuOpen, menuExit}).
			Show("Brave profile manager")
		if err != nil {
			return nil
		}

		var actionErr error
		switch choice {
		case menuManage:
			actionErr = manageLaunchersInteractive(common)
		case menuCreate:
			actionErr = createLaunchersInteractive(common)
		case menuList:
			actionErr = listProfiles(common)
		case menuOpen:
			actionErr = openProfileInteractive(common)
		case menuExit:
			return nil
		}
		if actionErr != nil {
			pterm.Error.Println(actionErr.Error())
		}
	}
}

const allProfilesOption = "All profiles"

// Prompt indirection, overridable in tests.
var (
	confirmPrompt = func(text string) (bool, error) {
		return pterm.DefaultInteractiveConfirm.WithDefaultText(text).Show()
	}
	textPrompt = func(text string) (string, error) {
		return pterm.DefaultInteractiveTextInput.WithDefaultText(text).Show()
	}
)

func createLaunchersInteractive(common CommandContext) error {
	profiles, err := internal.ReadProfiles(common.Config.LocalStatePath)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		pterm.Info.Println("No Brave profiles found")
		return nil
	}

	options := append([]string{allProfilesOption}, lo.Map(profiles, func(p internal.Profile, _ int) string {
		return profileOptionLabel(p)
	})...)
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		Show("Create a launcher for")
	if err != nil {
		return nil
	}

	selected := profiles
	if choice != allProfilesOption {
		selected = lo.Filter(profiles, func(p internal.Profile, _ int) bool {
			return profileOptionLabel(p) == choice
		})
	}

	titles, err := promptCustomTitles(selected, choice == allProfilesOption)
	if err != nil {
		// Broken prompt: drop back to the menu without generating.
		return nil
	}

	return createLaunchers(common, selected, titles)
}

// promptCustomTitles asks for per-profile title overrides. Empty input
// keeps the default "Brave - <name>" title. A failing prompt aborts
// the whole batch so generation never runs on a partial title map.
func promptCustomTitles(profiles []internal.Profile, askFirst bool) (map[string]string, error) {
	titles := map[string]string{}

	if askFirst {
		customize, err := confirmPrompt("Customize launcher titles?")
		if err != nil {
			return nil, err
		}
		if !customize {
			return titles, nil
		}
	}

	for _, profile := range profiles {
		title, err := textPrompt("Title for " + profile.Name + " (empty for \"" + internal.DefaultTitle(profile) + "\")")
		if err != nil {
			return nil, err
		}
		titles[profile.ID] = title
	}
	return titles, nil
}

const (
	manageRemoveOne = "Remove a launcher"
	manageRemoveAll = "Remove all generated launchers"
	manageBack      = "Back to main menu"
)

func manageLaunchersInteractive(common CommandContext) error {
	launchers, err := internal.ListLaunchers(common.Config.ApplicationsDir)
	if err != nil {
		return err
	}
	if len(launchers) == 0 {
		pterm.Info.Println("No generated launchers found")
		return nil
	}
	if err := listLaunchers(common); err != nil {
		return err
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{manageRemoveOne, manageRemoveAll, manageBack}).
		Show("Manage launchers")
	if err != nil {
		return nil
	}

	switch choice {
	case manageRemoveOne:
		options := lo.Map(launchers, func(l internal.Launcher, _ int) string {
			return l.Title + " (" + filepath.Base(l.Path) + ")"
		})
		selected, err := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			Show("Remove which launcher?")
		if err != nil {
			return nil
		}
		for i, option := range options {
			if option == selected {
				return removeLauncher(launchers[i])
			}
		}
	case manageRemoveAll:
		confirmed, err := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Remove ALL launchers generated by this tool?").
			Show()
		if err != nil || !confirmed {
			pterm.Info.Println("No changes made")
			return nil
		}
		return removeAllLaunchers(launchers)
	}
	return nil
}

func openProfileInteractive(common CommandContext) error {
	profiles, err := internal.ReadProfiles(common.Config.LocalStatePath)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		pterm.Info.Println("No Brave profiles found")
		return nil
	}
	profile, err := selectProfile(profiles)
	if err != nil {
		return err
	}
	return openProfile(common, *profile, "")
}
