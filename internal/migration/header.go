package migration

import (
	"log/slog"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docwidgets/internal/badge"
	"git.home.luguber.info/inful/docwidgets/internal/dom"
	"git.home.luguber.info/inful/docwidgets/internal/logfields"
	"git.home.luguber.info/inful/docwidgets/internal/metrics"
)

const (
	headingClass   = "x:tracking-tight x:text-slate-900 x:dark:text-slate-100 x:font-semibold x:target:animate-[fade-in_1.5s] x:mt-10 x:border-b x:pb-1 x:text-3xl nextra-border"
	permalinkClass = "x:focus-visible:nextra-focus subheading-anchor"
	permalinkLabel = "Permalink for this section"
	badgeRowClass  = "x:flex x:flex-wrap x:gap-2"
)

// BadgeKind identifies one of the fixed badge slots of a header.
type BadgeKind string

const (
	BadgePR       BadgeKind = "pr"
	BadgeVersion  BadgeKind = "version"
	BadgePlatform BadgeKind = "platform"
)

// BadgeSpec describes a badge before it is rendered.
type BadgeSpec struct {
	Kind    BadgeKind
	Variant badge.Variant
	Label   string
	Href    string // set for the PR badge only
}

// Options tunes header labels.
type Options struct {
	PRLabelPrefix     string
	PlatformPrefix    string
	DefaultRDMVersion string
	PRVariant         badge.Variant
	VersionVariant    badge.Variant
	PlatformVariant   badge.Variant
}

// DefaultOptions returns the labels used on the published changelog.
func DefaultOptions() Options {
	return Options{
		PRLabelPrefix:     "oarepo-ui PR #",
		PlatformPrefix:    "RDM ",
		DefaultRDMVersion: DefaultRDMVersion,
		PRVariant:         badge.Yellow,
		VersionVariant:    badge.Red,
		PlatformVariant:   badge.Green,
	}
}

// Renderer builds migration components.
type Renderer struct {
	opts     Options
	recorder metrics.Recorder
	logger   *slog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithOptions replaces the label options.
func WithOptions(o Options) RendererOption {
	return func(r *Renderer) { r.opts = o }
}

// WithRecorder injects a metrics recorder.
func WithRecorder(rec metrics.Recorder) RendererOption {
	return func(r *Renderer) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// WithLogger sets the logger used for render failures.
func WithLogger(l *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRenderer creates a Renderer with DefaultOptions.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		opts:     DefaultOptions(),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

var defaultRenderer = NewRenderer()

// Header renders e with the default renderer.
func Header(e Entry) (*html.Node, error) {
	return defaultRenderer.Header(e)
}

// Badges computes the ordered badge row for e: PR, version, platform.
// Missing optional slots are left out without reordering the rest.
func (r *Renderer) Badges(e Entry) []BadgeSpec {
	specs := make([]BadgeSpec, 0, 3)
	if number, ok := e.PRNumber(); ok {
		specs = append(specs, BadgeSpec{
			Kind:    BadgePR,
			Variant: r.opts.PRVariant,
			Label:   r.opts.PRLabelPrefix + number,
			Href:    e.PRHref,
		})
	}
	if e.VersionBadge != "" {
		specs = append(specs, BadgeSpec{Kind: BadgeVersion, Variant: r.opts.VersionVariant, Label: e.VersionBadge})
	}
	version := e.RDMVersion
	if version == "" {
		version = r.opts.DefaultRDMVersion
	}
	specs = append(specs, BadgeSpec{Kind: BadgePlatform, Variant: r.opts.PlatformVariant, Label: r.opts.PlatformPrefix + version})
	return specs
}

// Header renders the heading with permalink followed by the badge row.
// A badge variant outside the closed set aborts rendering and returns no node.
func (r *Renderer) Header(e Entry) (*html.Node, error) {
	anchor := e.AnchorID()

	row := dom.Element("div", []dom.Attr{dom.Class(badgeRowClass)})
	for _, spec := range r.Badges(e) {
		b, err := badge.Text(spec.Variant, spec.Label)
		if err != nil {
			r.recorder.IncRenderFailure("migration_header")
			r.logger.Error("Migration header aborted",
				logfields.Anchor(anchor),
				logfields.Variant(string(spec.Variant)),
				logfields.Error(err))
			return nil, err
		}
		if spec.Href != "" {
			b = dom.Element("a", []dom.Attr{
				dom.A("href", spec.Href),
				dom.A("target", "_blank"),
				dom.A("rel", "noopener noreferrer"),
			}, b)
		}
		dom.Append(row, b)
	}

	heading := dom.Element("h2", []dom.Attr{dom.A("id", anchor), dom.Class(headingClass)},
		dom.Text(e.Date+": "+e.Title),
		dom.Element("a", []dom.Attr{
			dom.A("href", "#"+anchor),
			dom.Class(permalinkClass),
			dom.A("aria-label", permalinkLabel),
		}),
	)

	r.recorder.IncComponentRender("migration_header")
	return dom.Element("div", []dom.Attr{dom.Class("x:mb-4")}, heading, row), nil
}
