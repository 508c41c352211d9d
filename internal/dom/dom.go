// Package dom is the rendering primitive set shared by all components: it builds
// golang.org/x/net/html node trees and serialises them.
package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr is a single element attribute.
type Attr = html.Attribute

// A returns an attribute.
func A(key, val string) Attr {
	return Attr{Key: key, Val: val}
}

// Class joins non-empty class names into one class attribute.
func Class(names ...string) Attr {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return A("class", strings.Join(parts, " "))
}

// Element builds an element node. Nil children are skipped.
func Element(tag string, attrs []Attr, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
		Attr:     attrs,
	}
	Append(n, children...)
	return n
}

// Text builds a text node. Escaping happens at render time.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Append attaches children to parent, detaching them from any previous parent.
func Append(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		parent.AppendChild(c)
	}
}

// GetAttr returns the value of key on n, or "".
func GetAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Render writes nodes in order. Nil nodes render nothing.
func Render(w io.Writer, nodes ...*html.Node) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// RenderString renders nodes into a string.
func RenderString(nodes ...*html.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, nodes...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// TextContent concatenates all text below n.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(TextContent(c))
	}
	return sb.String()
}

// FindAll returns every element below (and including) n with the given tag, in document order.
func FindAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode && cur.Data == tag {
			out = append(out, cur)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}
