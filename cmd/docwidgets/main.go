package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docwidgets/cmd/docwidgets/commands"
	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
	"git.home.luguber.info/inful/docwidgets/internal/version"
)

func main() {
	var cli commands.CLI
	parser := kong.Parse(&cli,
		kong.Name("docwidgets"),
		kong.Description("Render documentation widgets: migration changelog headers, badges and remote code blocks."),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Logger: slog.Default()}
	if err := parser.Run(global, &cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
