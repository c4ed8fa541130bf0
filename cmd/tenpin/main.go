package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Score    ScoreCmd         `cmd:"" help:"Score a match given as frames or scoresheet notation"`
	File     FileCmd          `cmd:"" help:"Score every game in YAML game files"`
	Validate ValidateCmd      `cmd:"" help:"Check YAML game files without printing scores"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tenpin"),
		kong.Description("Ten-pin bowling score calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
