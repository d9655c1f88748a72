package main

import (
	"fmt"
	"os"

	"bravectl/cli"
	uerror "bravectl/util/error"
)

func main() {
	err := cli.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		if exitCode, hasExitCode := uerror.GetExitCode(err); hasExitCode {
			os.Exit(int(exitCode))
		}
		os.Exit(1)
	}
}
