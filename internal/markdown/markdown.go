// Package markdown turns Markdown snippets (migration note bodies) into HTML
// node trees that can be embedded in component output.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options controls Markdown conversion.
type Options struct {
	// Unsafe passes raw HTML in the source through instead of omitting it.
	Unsafe bool
}

func newGoldmark(opts Options) goldmark.Markdown {
	rendererOpts := []renderer.Option{}
	if opts.Unsafe {
		rendererOpts = append(rendererOpts, gmhtml.WithUnsafe())
	}
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

// ToHTML renders body to an HTML string.
func ToHTML(body []byte, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := newGoldmark(opts).Convert(body, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToNodes renders body and parses the result into detached top-level nodes.
// Whitespace-only text nodes between blocks are dropped. Empty input yields no nodes.
func ToNodes(body []byte, opts Options) ([]*html.Node, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	rendered, err := ToHTML(body, opts)
	if err != nil {
		return nil, err
	}
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(rendered), context)
	if err != nil {
		return nil, err
	}
	out := nodes[:0]
	for _, n := range nodes {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
