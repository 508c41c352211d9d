package commands

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
	"git.home.luguber.info/inful/docwidgets/internal/logfields"
	"git.home.luguber.info/inful/docwidgets/internal/markdown"
	"git.home.luguber.info/inful/docwidgets/internal/migration"
	"git.home.luguber.info/inful/docwidgets/internal/page"
)

// ChangelogCmd renders a directory of migration notes.
type ChangelogCmd struct {
	Dir string `short:"d" name:"dir" help:"Migration notes directory (overrides config)."`
	Out string `short:"o" name:"out" help:"Write HTML to this file instead of stdout."`
}

func (c *ChangelogCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	dir := cfg.Changelog.Dir
	if c.Dir != "" {
		dir = c.Dir
	}

	docs, err := migration.LoadDir(dir)
	if err != nil {
		return err
	}

	renderer := migration.NewRenderer(migration.WithOptions(cfg.MigrationOptions()))
	cl := page.Changelog{Renderer: renderer, Markdown: markdown.Options{Unsafe: cfg.Changelog.UnsafeRaw}}

	var w io.Writer = g.out()
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return errors.FileSystemError(err, "cannot create output file").WithContext("path", c.Out).Build()
		}
		defer func() {
			_ = f.Close()
		}()
		w = f
	}
	if err := cl.Write(w, docs); err != nil {
		return err
	}
	slog.Info("Changelog rendered", logfields.Path(dir), logfields.Count(len(docs)))
	return nil
}
