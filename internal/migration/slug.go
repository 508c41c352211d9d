package migration

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var prNumberPattern = regexp.MustCompile(`/pull/(\d+)`)

// ExtractPRNumber returns the digits following the first "/pull/" segment of href.
// ok is false when href carries no such segment; callers then drop the PR badge.
func ExtractPRNumber(href string) (number string, ok bool) {
	m := prNumberPattern.FindStringSubmatch(href)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Slugify lower-cases text, drops every rune that is not an ASCII word character,
// whitespace or '-', and replaces each whitespace run with a single '-'.
//
// The result only contains [a-z0-9_-], so Slugify is idempotent.
func Slugify(text string) string {
	lowered := cases.Lower(language.Und).String(text)

	var sb strings.Builder
	sb.Grow(len(lowered))
	inSpace := false
	for _, r := range lowered {
		switch {
		case isSpace(r):
			if !inSpace {
				sb.WriteByte('-')
			}
			inSpace = true
		case isWordRune(r), r == '-':
			sb.WriteRune(r)
			inSpace = false
		default:
			// dropped; does not end a whitespace run
		}
	}
	return sb.String()
}

// AnchorID is the permalink fragment for an entry. It depends only on date and
// title; entries sharing both share an anchor.
func AnchorID(date, title string) string {
	return date + "-" + Slugify(title)
}

func isWordRune(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// isSpace matches the ECMAScript whitespace class: unicode.IsSpace minus NEL, plus BOM.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\ufeff' || unicode.IsSpace(r)
}
