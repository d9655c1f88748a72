package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"bravectl/internal"
	uerror "bravectl/util/error"
)

var CLI struct {
	ConfigPath string `help:"Path of the configuration file to use (default: ~/.config/bravectl/config.yaml)" name:"config" optional:"" type:"path"`

	Menu MenuCmd `cmd:"" default:"1" help:"Interactive menu (default if no arguments are given)"`

	Profiles ProfilesCmd `cmd:"" help:"List Brave profiles"`

	Create CreateCmd `cmd:"" help:"Create desktop launchers for profiles"`

	Launchers LaunchersCmd `cmd:"" help:"List launchers generated by this tool"`

	Rm RmCmd `cmd:"" help:"Remove generated launchers"`

	Open OpenCmd `cmd:"" help:"Focus a running profile window or launch the profile"`
}

type CommandContext struct {
	Config  internal.Config
	Context context.Context
}

func Run(args []string) error {
	kctx, err := kong.Must(&CLI).Parse(args[1:])
	if err != nil {
		return uerror.WithStackTrace(err)
	}

	config, err := internal.LoadConfig(CLI.ConfigPath)
	if err != nil {
		return err
	}

	return kctx.Run(CommandContext{
		Config:  config,
		Context: context.Background(),
	})
}
