// Package server is the local preview server: it renders the changelog
// directory on every request, reloads it on change and serves live code
// snapshots.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docwidgets/internal/config"
	"git.home.luguber.info/inful/docwidgets/internal/dom"
	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
	"git.home.luguber.info/inful/docwidgets/internal/logfields"
	"git.home.luguber.info/inful/docwidgets/internal/markdown"
	"git.home.luguber.info/inful/docwidgets/internal/metrics"
	"git.home.luguber.info/inful/docwidgets/internal/migration"
	"git.home.luguber.info/inful/docwidgets/internal/page"
	"git.home.luguber.info/inful/docwidgets/internal/remotecode"
)

// Server serves rendered components over HTTP.
type Server struct {
	cfg      *config.Config
	store    *changelogStore
	renderer *migration.Renderer
	fetcher  remotecode.Fetcher
	recorder metrics.Recorder
	registry *prom.Registry
	logger   *slog.Logger

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithFetcher replaces the raw content fetcher used by /snapshot.
func WithFetcher(f remotecode.Fetcher) Option {
	return func(s *Server) { s.fetcher = f }
}

// New wires a server from cfg. Metrics are collected only when enabled in cfg.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		store:    newChangelogStore(cfg.Changelog.Dir),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	if cfg.Server.MetricsEnabled {
		s.registry = prom.NewRegistry()
		s.recorder = metrics.NewPrometheusRecorder(s.registry)
	}
	s.renderer = migration.NewRenderer(
		migration.WithOptions(cfg.MigrationOptions()),
		migration.WithRecorder(s.recorder),
		migration.WithLogger(s.logger))
	for _, o := range opts {
		o(s)
	}
	if s.fetcher == nil {
		s.fetcher = remotecode.NewHTTPFetcher(&http.Client{Timeout: cfg.RemoteTimeout()}, cfg.Remote.UserAgent, s.recorder)
	}
	return s
}

// Handler returns the routed handler with logging and recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleChangelog)
	mux.HandleFunc("GET /snapshot", s.handleSnapshot)
	mux.HandleFunc("GET "+s.cfg.Server.HealthPath, s.handleHealth)
	if s.registry != nil {
		mux.Handle("GET "+s.cfg.Server.MetricsPath, metrics.HTTPHandler(s.registry))
	}
	return chain(s.logger, mux)
}

// Run loads the changelog, starts listening and watches for changes until ctx
// is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	_ = s.store.Reload()

	lc := net.ListenConfig{}
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "cannot bind preview server").WithContext("addr", addr).Build()
	}
	s.httpServer = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 2)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	go func() {
		if err := watchChangelog(ctx, s.store); err != nil {
			// Serving continues without live reload.
			s.logger.Warn("Changelog watcher stopped", logfields.Error(err))
		}
	}()
	s.logger.Info("Preview server listening", slog.Int("port", s.cfg.Server.Port), logfields.Path(s.cfg.Changelog.Dir))

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return errors.WrapError(err, errors.CategoryRuntime, "preview server failed").Build()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "preview server shutdown").Build()
	}
	s.logger.Info("Preview server stopped")
	return nil
}

func (s *Server) handleChangelog(w http.ResponseWriter, _ *http.Request) {
	docs, err := s.store.Get()
	if err != nil {
		http.Error(w, "changelog unavailable: "+err.Error(), http.StatusInternalServerError)
		return
	}
	section, err := page.Changelog{
		Renderer: s.renderer,
		Markdown: markdown.Options{Unsafe: s.cfg.Changelog.UnsafeRaw},
	}.Render(docs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dom.Render(w, page.Document("Changelog", section)); err != nil {
		s.logger.Warn("Writing changelog response failed", logfields.Error(err))
	}
}

// handleSnapshot mounts a fresh widget per request. Missing content yields 204.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ref := remotecode.Reference{Repo: q.Get("repo"), Branch: q.Get("branch"), Path: q.Get("path")}
	if ref.Repo == "" || ref.Path == "" {
		http.Error(w, "repo and path are required", http.StatusBadRequest)
		return
	}
	widget := remotecode.NewWidget(ref,
		remotecode.WithTitle(q.Get("title")),
		remotecode.WithHosts(s.cfg.Hosts()),
		remotecode.WithFetcher(s.fetcher),
		remotecode.WithRecorder(s.recorder),
		remotecode.WithLogger(s.logger))

	node := page.Snapshot(r.Context(), widget, s.cfg.SnapshotWait())
	if node == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dom.Render(w, node); err != nil {
		s.logger.Warn("Writing snapshot response failed", logfields.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
