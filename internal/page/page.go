// Package page composes components into the fragments served by the CLI and
// the preview server.
package page

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docwidgets/internal/dom"
	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
	"git.home.luguber.info/inful/docwidgets/internal/logfields"
	"git.home.luguber.info/inful/docwidgets/internal/markdown"
	"git.home.luguber.info/inful/docwidgets/internal/migration"
	"git.home.luguber.info/inful/docwidgets/internal/remotecode"
)

// Changelog renders migration notes in order.
type Changelog struct {
	Renderer *migration.Renderer
	Markdown markdown.Options
}

// Render renders every document into one <section>. The first configuration
// error aborts the whole page.
func (c Changelog) Render(docs []*migration.Document) (*html.Node, error) {
	r := c.Renderer
	if r == nil {
		r = migration.NewRenderer()
	}
	section := dom.Element("section", []dom.Attr{dom.Class("changelog")})
	for _, doc := range docs {
		nodes, err := r.RenderDocument(doc, c.Markdown)
		if err != nil {
			return nil, err
		}
		dom.Append(section, dom.Element("article", []dom.Attr{dom.A("data-source", doc.File)}, nodes...))
	}
	return section, nil
}

// Write renders docs to w.
func (c Changelog) Write(w io.Writer, docs []*migration.Document) error {
	section, err := c.Render(docs)
	if err != nil {
		return err
	}
	if err := dom.Render(w, section); err != nil {
		return errors.WrapError(err, errors.CategoryRender, "cannot write changelog").Build()
	}
	return nil
}

// Snapshot mounts w, waits until it loads, ctx ends or wait elapses, and
// returns its rendering. The result is nil when the content did not arrive;
// the widget is unmounted before returning.
func Snapshot(ctx context.Context, w *remotecode.Widget, wait time.Duration) *html.Node {
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	w.Mount(ctx)
	defer w.Unmount()

	select {
	case <-w.Loaded():
		return w.Render()
	case <-ctx.Done():
		slog.Debug("Snapshot not loaded in time",
			logfields.Instance(w.ID()),
			logfields.URL(w.RawURL()),
			logfields.DurationMS(float64(wait.Milliseconds())))
		return nil
	}
}

// Document wraps body nodes in a minimal standalone HTML document.
func Document(title string, body ...*html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	dom.Append(doc, dom.Element("html", []dom.Attr{dom.A("lang", "en")},
		dom.Element("head", nil,
			dom.Element("meta", []dom.Attr{dom.A("charset", "utf-8")}),
			dom.Element("title", nil, dom.Text(title)),
		),
		dom.Element("body", nil, body...),
	))
	return doc
}
