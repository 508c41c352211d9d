package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docwidgets/internal/badge"
	"git.home.luguber.info/inful/docwidgets/internal/dom"
)

// BadgeCmd implements the 'badge' command.
type BadgeCmd struct {
	Variant string   `arg:"" help:"Badge variant (default, dark, red, green, yellow)"`
	Text    []string `arg:"" help:"Badge label"`
}

func (b *BadgeCmd) Run(g *Global, _ *CLI) error {
	v, err := badge.ParseVariant(b.Variant)
	if err != nil {
		return err
	}
	n, err := badge.Text(v, strings.Join(b.Text, " "))
	if err != nil {
		return err
	}
	out, err := dom.RenderString(n)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.out(), out)
	return err
}
