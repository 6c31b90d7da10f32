package main

import (
	"fmt"
	"os"

	"github.com/babarot/goduration/internal/cli"
	"github.com/fatih/color"
)

const appName = "goduration"

// These variables are set in build step
var (
	Version   = "unset"
	Revision  = "unset"
	BuildDate = "unset"
)

func main() {
	err := cli.Run(cli.Version{
		AppName:   appName,
		Version:   Version,
		Revision:  Revision,
		BuildDate: BuildDate,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", color.New(color.FgRed, color.Bold).Sprint(appName), err)
		os.Exit(1)
	}
}
