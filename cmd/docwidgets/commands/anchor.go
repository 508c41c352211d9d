package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docwidgets/internal/migration"
)

// AnchorCmd implements the 'anchor' command.
type AnchorCmd struct {
	Date  string `required:"" help:"Entry date, e.g. 2024-05-01"`
	Title string `required:"" help:"Entry title"`
}

func (a *AnchorCmd) Run(g *Global, _ *CLI) error {
	_, err := fmt.Fprintln(g.out(), migration.AnchorID(a.Date, a.Title))
	return err
}
