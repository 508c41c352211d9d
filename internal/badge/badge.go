// Package badge renders the small labelled pills used in migration headers.
//
// The variant set is closed: every Variant constant has exactly one style
// bundle in Style, and anything else is a content-authoring bug that aborts
// rendering instead of falling back to a default look.
package badge

import (
	stderrors "errors"
	"fmt"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docwidgets/internal/dom"
	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
)

// Variant selects a badge colour scheme.
type Variant string

const (
	Default Variant = "default"
	Dark    Variant = "dark"
	Red     Variant = "red"
	Green   Variant = "green"
	Yellow  Variant = "yellow"
)

// BaseClass is applied to every badge regardless of variant.
const BaseClass = "x:border-solid x:border-black x:border x:text-sm x:font-medium x:me-2 x:mb-24 x:px-2.5 x:py-1 x:rounded badge"

// ErrUnknownVariant is the cause of every unknown-variant error.
var ErrUnknownVariant = stderrors.New("unknown badge variant")

// Variants lists the recognised variants in declaration order.
func Variants() []Variant {
	return []Variant{Default, Dark, Red, Green, Yellow}
}

// Style returns the variant-specific class bundle.
func Style(v Variant) (string, error) {
	switch v {
	case Default:
		return "x:bg-primary-100 x:text-primary-800 dark:x:bg-blue-900 dark:x:text-blue-300", nil
	case Dark:
		return "x:bg-gray-100 x:text-gray-800 dark:x:bg-gray-300 dark:x:text-gray-600", nil
	case Red:
		return "x:bg-red-100 x:text-red-500 dark:x:bg-red-600 dark:x:text-gray-600", nil
	case Green:
		return "x:bg-green-100 x:text-green-800 dark:x:bg-green-900 dark:x:text-green-300", nil
	case Yellow:
		return "x:bg-yellow-100 x:text-yellow-800 dark:x:bg-yellow-900 dark:x:text-yellow-300", nil
	default:
		return "", errors.ConfigError(fmt.Sprintf("unknown badge variant %q", string(v))).
			WithCause(ErrUnknownVariant).
			WithContext("variant", string(v)).
			Build()
	}
}

// ParseVariant converts a string into a Variant, failing on anything outside the closed set.
// The empty string selects Default.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return Default, nil
	}
	v := Variant(s)
	if _, err := Style(v); err != nil {
		return "", err
	}
	return v, nil
}

// Render builds the badge element. On an unknown variant no node is produced.
func Render(v Variant, children ...*html.Node) (*html.Node, error) {
	style, err := Style(v)
	if err != nil {
		return nil, err
	}
	return dom.Element("span", []dom.Attr{dom.Class(style, BaseClass)}, children...), nil
}

// Text is Render with a single text child.
func Text(v Variant, label string) (*html.Node, error) {
	return Render(v, dom.Text(label))
}
