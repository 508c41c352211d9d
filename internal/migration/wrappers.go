package migration

import (
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docwidgets/internal/dom"
)

// StepsSummary is the fixed disclosure label of Steps.
const StepsSummary = "Show migration steps"

// Affected groups the "who is affected" content of an entry. It renders its
// children unchanged.
func Affected(children ...*html.Node) []*html.Node {
	return children
}

// Steps wraps children in a collapsed native disclosure.
func Steps(children ...*html.Node) *html.Node {
	return dom.Element("details", []dom.Attr{dom.Class("x:mt-4")},
		dom.Element("summary", nil, dom.Text(StepsSummary)),
		dom.Element("div", []dom.Attr{dom.Class("x:pt-4")}, children...),
	)
}
