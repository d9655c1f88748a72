package cli

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/samber/lo"

	"bravectl/internal"
	uerror "bravectl/util/error"
)

type LaunchersCmd struct{}

func (cmd *LaunchersCmd) Run(common CommandContext) error {
	return listLaunchers(common)
}

func listLaunchers(common CommandContext) error {
	launchers, err := internal.ListLaunchers(common.Config.ApplicationsDir)
	if err != nil {
		return err
	}
	if len(launchers) == 0 {
		pterm.Info.Println("No generated launchers found")
		return nil
	}

	tableData := pterm.TableData{{"Title", "Profile ID", "File"}}
	for _, launcher := range launchers {
		tableData = append(tableData, []string{launcher.Title, launcher.ProfileID, launcher.Path})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

type RmCmd struct {
	Launcher string `arg:"" optional:"" help:"Profile ID or desktop file name of the launcher to remove"`
	All      bool   `help:"Remove every launcher generated by this tool" short:"a"`
	Helper   bool   `help:"Also remove the shared helper script"`
}

func (cmd *RmCmd) Run(common CommandContext) error {
	if cmd.Launcher == "" && !cmd.All && !cmd.Helper {
		return uerror.StackTracef("pass a launcher, --all, or --helper")
	}

	launchers, err := internal.ListLaunchers(common.Config.ApplicationsDir)
	if err != nil {
		return err
	}

	switch {
	case cmd.All:
		if err := removeAllLaunchers(launchers); err != nil {
			return err
		}
	case cmd.Launcher != "":
		launcher, found := lo.Find(launchers, func(l internal.Launcher) bool {
			return l.ProfileID == cmd.Launcher || filepath.Base(l.Path) == cmd.Launcher
		})
		if !found {
			return uerror.StackTracef("no generated launcher matches %q", cmd.Launcher)
		}
		if err := removeLauncher(launcher); err != nil {
			return err
		}
	}

	if cmd.Helper {
		if err := internal.RemoveHelperScript(common.Config.BinDir); err != nil {
			return err
		}
		pterm.Success.Println("Removed shared helper script")
	}
	return nil
}

func removeLauncher(launcher internal.Launcher) error {
	if err := internal.RemoveLauncher(launcher); err != nil {
		return err
	}
	pterm.Success.Printf("Removed launcher %q: %s\n", launcher.Title, launcher.Path)
	return nil
}

// removeAllLaunchers removes every generated launcher but leaves the
// shared helper script alone; remaining launchers elsewhere may still
// use it.
func removeAllLaunchers(launchers []internal.Launcher) error {
	if len(launchers) == 0 {
		pterm.Info.Println("No generated launchers found")
		return nil
	}
	removed, errs := internal.RemoveAllLaunchers(launchers)
	for _, err := range errs {
		pterm.Error.Printf("Could not remove launcher: %v\n", err)
	}
	pterm.Success.Printf("Removed %d of %d launchers\n", removed, len(launchers))
	if len(errs) > 0 {
		return uerror.StackTracef("%d launchers could not be removed", len(errs))
	}
	return nil
}
