package cli

import (
	"github.com/pterm/pterm"

	"bravectl/internal"
)

type ProfilesCmd struct{}

func (cmd *ProfilesCmd) Run(common CommandContext) error {
	return listProfiles(common)
}

func listProfiles(common CommandContext) error {
	profiles, err := internal.ReadProfiles(common.Config.LocalStatePath)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		pterm.Info.Println("No Brave profiles found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name"}}
	for _, profile := range profiles {
		tableData = append(tableData, []string{profile.ID, profile.Name})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
