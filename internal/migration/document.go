package migration

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
	"git.home.luguber.info/inful/docwidgets/internal/frontmatter"
	"git.home.luguber.info/inful/docwidgets/internal/logfields"
	"git.home.luguber.info/inful/docwidgets/internal/markdown"
)

// StepsMarker separates the affected section from the migration steps in a note body.
const StepsMarker = "<!-- steps -->"

// Document is a migration note loaded from a Markdown file: front matter holds
// the Entry, the body holds the affected description and the optional steps.
type Document struct {
	File     string
	Entry    Entry
	Affected []byte
	Steps    []byte
}

// ParseDocument parses a migration note. Date and title are required.
func ParseDocument(file string, content []byte) (*Document, error) {
	fm, body, had, err := frontmatter.Split(content)
	if err != nil {
		return nil, errors.ValidationError("invalid front matter").
			WithCause(err).
			WithContext("file", file).
			Build()
	}
	if !had {
		return nil, errors.ValidationError("migration note has no front matter").
			WithContext("file", file).
			Build()
	}

	doc := &Document{File: file}
	if err := frontmatter.Decode(fm, &doc.Entry); err != nil {
		return nil, errors.ValidationError("cannot decode migration front matter").
			WithCause(err).
			WithContext("file", file).
			Build()
	}
	if doc.Entry.Date == "" || doc.Entry.Title == "" {
		return nil, errors.ValidationError("migration note requires date and title").
			WithContext("file", file).
			Build()
	}

	if before, after, found := bytes.Cut(body, []byte(StepsMarker)); found {
		doc.Affected = bytes.TrimSpace(before)
		doc.Steps = bytes.TrimSpace(after)
	} else {
		doc.Affected = bytes.TrimSpace(body)
	}
	return doc, nil
}

// LoadDir parses every *.md file in dir (not recursive). Documents are returned
// in reverse file-name order, so date-prefixed names list newest first.
func LoadDir(dir string) ([]*Document, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, errors.FileSystemError(err, "cannot list migration notes").WithContext("dir", dir).Build()
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))

	docs := make([]*Document, 0, len(matches))
	for _, path := range matches {
		content, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, errors.FileSystemError(err, "cannot read migration note").WithContext("file", path).Build()
		}
		doc, err := ParseDocument(filepath.Base(path), content)
		if err != nil {
			return nil, err
		}
		slog.Debug("Loaded migration note", logfields.File(doc.File), logfields.Anchor(doc.Entry.AnchorID()))
		docs = append(docs, doc)
	}
	return docs, nil
}

// RenderDocument renders the header, the affected section and, when present,
// the collapsed steps. Markdown is converted on every call so the document can
// be rendered repeatedly.
func (r *Renderer) RenderDocument(doc *Document, mdOpts markdown.Options) ([]*html.Node, error) {
	header, err := r.Header(doc.Entry)
	if err != nil {
		return nil, err
	}
	affected, err := markdown.ToNodes(doc.Affected, mdOpts)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "cannot render affected section").WithContext("file", doc.File).Build()
	}
	steps, err := markdown.ToNodes(doc.Steps, mdOpts)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "cannot render migration steps").WithContext("file", doc.File).Build()
	}

	out := append([]*html.Node{header}, Affected(affected...)...)
	if len(steps) > 0 {
		out = append(out, Steps(steps...))
	}
	return out, nil
}
