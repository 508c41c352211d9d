package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docwidgets/internal/dom"
	"git.home.luguber.info/inful/docwidgets/internal/page"
	"git.home.luguber.info/inful/docwidgets/internal/remotecode"
)

// SnapshotCmd fetches one file and prints the rendered code block. Nothing is
// printed when the content does not arrive.
type SnapshotCmd struct {
	Repo   string        `required:"" help:"Repository as owner/name"`
	Branch string        `default:"main" help:"Branch name"`
	Path   string        `required:"" help:"File path inside the repository"`
	Title  string        `help:"Display title"`
	Wait   time.Duration `help:"How long to wait for the content (defaults to config)."`
}

func (s *SnapshotCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	wait := s.Wait
	if wait <= 0 {
		wait = cfg.SnapshotWait()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fetcher := remotecode.NewHTTPFetcher(&http.Client{Timeout: cfg.RemoteTimeout()}, cfg.Remote.UserAgent, nil)
	widget := remotecode.NewWidget(
		remotecode.Reference{Repo: s.Repo, Branch: s.Branch, Path: s.Path},
		remotecode.WithTitle(s.Title),
		remotecode.WithHosts(cfg.Hosts()),
		remotecode.WithFetcher(fetcher),
	)
	node := page.Snapshot(ctx, widget, wait)
	if node == nil {
		return nil
	}
	out, err := dom.RenderString(node)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.out(), out)
	return err
}
