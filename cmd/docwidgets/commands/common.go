package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docwidgets/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	// Stdout receives command output; nil means os.Stdout.
	Stdout io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docwidgets.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Anchor    AnchorCmd    `cmd:"" help:"Print the permalink anchor for a changelog entry"`
	Badge     BadgeCmd     `cmd:"" help:"Render a badge"`
	Changelog ChangelogCmd `cmd:"" help:"Render a directory of migration notes to HTML"`
	Snapshot  SnapshotCmd  `cmd:"" help:"Fetch a file from a repository and print it as a code block"`
	Serve     ServeCmd     `cmd:"" help:"Serve the changelog and code snapshots with live reload"`
	Init      InitCmd      `cmd:"" help:"Initialize a new configuration file"`
	Info      VersionCmd   `cmd:"" name:"version" help:"Print version information"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads root.Config. The configured log level applies unless -v was given.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	if !root.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Logging.Level.SlogLevel()}))
		slog.SetDefault(logger)
	}
	return cfg, nil
}
