package commands

import (
	"context"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docwidgets/internal/server"
)

// ServeCmd starts the preview server.
type ServeCmd struct {
	Dir  string `short:"d" name:"dir" help:"Migration notes directory to watch (overrides config)."`
	Port int    `name:"port" help:"Server port (overrides config)."`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if s.Dir != "" {
		cfg.Changelog.Dir = s.Dir
	}
	if s.Port != 0 {
		cfg.Server.Port = s.Port
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return server.New(cfg).Run(ctx)
}
