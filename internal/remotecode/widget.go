// Package remotecode embeds a live snapshot of a file hosted in a source
// repository.
//
// A Widget corresponds to one mounted component instance. Mount issues exactly
// one fetch in the background; Render returns nothing until that fetch has
// produced content and a code block afterwards. Failures are not surfaced: the
// widget simply stays pending.
package remotecode

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docwidgets/internal/dom"
	"git.home.luguber.info/inful/docwidgets/internal/logfields"
	"git.home.luguber.info/inful/docwidgets/internal/metrics"
)

// DefaultTitle is the code block title when none is given.
const DefaultTitle = "GitHub"

// State is the fetch lifecycle of a widget.
type State int

const (
	Pending State = iota
	Loaded
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "pending"
}

// Option configures a Widget.
type Option func(*Widget)

// WithTitle sets the block title.
func WithTitle(title string) Option {
	return func(w *Widget) {
		if title != "" {
			w.title = title
		}
	}
}

// WithHosts overrides the source host endpoints.
func WithHosts(h Hosts) Option {
	return func(w *Widget) { w.hosts = h }
}

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(f Fetcher) Option {
	return func(w *Widget) {
		if f != nil {
			w.fetcher = f
		}
	}
}

// WithRecorder injects a metrics recorder.
func WithRecorder(rec metrics.Recorder) Option {
	return func(w *Widget) {
		if rec != nil {
			w.recorder = rec
		}
	}
}

// WithLogger sets the widget logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) {
		if l != nil {
			w.logger = l
		}
	}
}

// Widget is one remote code embedding. The Reference is fixed at construction;
// a different file needs a new Widget.
type Widget struct {
	id       string
	ref      Reference
	title    string
	hosts    Hosts
	fetcher  Fetcher
	recorder metrics.Recorder
	logger   *slog.Logger

	viewURL   string
	rawURL    string
	extension string

	mountOnce sync.Once
	loaded    chan struct{}

	mu        sync.Mutex
	state     State
	lines     []string
	unmounted bool
	cancel    context.CancelFunc
	onLoad    []func()
}

// NewWidget derives the view URL, raw URL and extension of ref. Nothing is fetched until Mount.
func NewWidget(ref Reference, opts ...Option) *Widget {
	w := &Widget{
		id:       uuid.NewString(),
		ref:      ref.WithDefaults(),
		title:    DefaultTitle,
		hosts:    GitHubHosts,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		loaded:   make(chan struct{}),
	}
	for _, o := range opts {
		o(w)
	}
	if w.fetcher == nil {
		w.fetcher = NewHTTPFetcher(nil, "", w.recorder)
	}
	w.viewURL = w.hosts.ViewURL(w.ref)
	w.rawURL = w.hosts.RawURL(w.ref)
	w.extension = w.ref.Extension()
	w.logger = w.logger.With(logfields.Instance(w.id))
	return w
}

func (w *Widget) ID() string           { return w.id }
func (w *Widget) Reference() Reference { return w.ref }
func (w *Widget) Title() string        { return w.title }
func (w *Widget) ViewURL() string      { return w.viewURL }
func (w *Widget) RawURL() string       { return w.rawURL }
func (w *Widget) Extension() string    { return w.extension }

// Mount starts the single background fetch. Later calls are no-ops, as is
// mounting a widget that was already unmounted.
func (w *Widget) Mount(ctx context.Context) {
	w.mountOnce.Do(func() {
		w.mu.Lock()
		if w.unmounted {
			w.mu.Unlock()
			return
		}
		fetchCtx, cancel := context.WithCancel(ctx)
		w.cancel = cancel
		w.mu.Unlock()

		w.logger.Debug("Mounting remote code widget",
			logfields.Repository(w.ref.Repo),
			logfields.Branch(w.ref.Branch),
			logfields.Path(w.ref.Path))
		go w.load(fetchCtx)
	})
}

// Unmount cancels an in-flight fetch. A result arriving afterwards is dropped.
func (w *Widget) Unmount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.unmounted = true
	w.onLoad = nil
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Widget) load(ctx context.Context) {
	content, err := w.fetcher.Fetch(ctx, w.rawURL)
	if err != nil {
		// Stays pending; the failure is only visible in logs and metrics.
		w.logger.Debug("Remote code fetch failed", logfields.URL(w.rawURL), logfields.Error(err))
		return
	}

	w.mu.Lock()
	if w.unmounted {
		w.mu.Unlock()
		w.recorder.IncFetchResult(metrics.ResultDiscarded)
		w.logger.Debug("Discarding fetch result of unmounted widget", logfields.URL(w.rawURL))
		return
	}
	w.lines = splitLines(content)
	w.state = Loaded
	callbacks := w.onLoad
	w.onLoad = nil
	close(w.loaded)
	w.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// OnLoad registers fn to run once content is loaded. If it already is, fn runs immediately.
func (w *Widget) OnLoad(fn func()) {
	w.mu.Lock()
	if w.state == Loaded {
		w.mu.Unlock()
		fn()
		return
	}
	if !w.unmounted {
		w.onLoad = append(w.onLoad, fn)
	}
	w.mu.Unlock()
}

// Loaded is closed when the widget transitions to Loaded. It never closes if the fetch fails.
func (w *Widget) Loaded() <-chan struct{} {
	return w.loaded
}

// State reports the current fetch state.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Lines returns a copy of the loaded lines (nil while pending).
func (w *Widget) Lines() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lines == nil {
		return nil
	}
	return append([]string(nil), w.lines...)
}

// Render returns nil until content is loaded. Afterwards it returns a code
// block titled with the view URL, tagged with the extension, one span.line per
// source line. An empty file renders nothing.
func (w *Widget) Render() *html.Node {
	lines := w.Lines()
	if len(lines) == 0 {
		return nil
	}

	codeAttrs := []dom.Attr{dom.A("data-language", w.extension), dom.A("data-theme", "default")}
	code := dom.Element("code", codeAttrs)
	for i, line := range lines {
		if i > 0 {
			dom.Append(code, dom.Text("\n"))
		}
		dom.Append(code, dom.Element("span", []dom.Attr{dom.Class("line")}, dom.Text(line)))
	}

	preAttrs := append([]dom.Attr{
		dom.A("data-filename", w.viewURL),
		dom.A("data-title", w.title),
	}, codeAttrs...)
	w.recorder.IncComponentRender("remote_code")
	return dom.Element("pre", preAttrs, code)
}

// splitLines splits on '\n'. A single trailing newline does not add an empty
// last line, and a trailing '\r' is dropped from each line.
func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
