package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docwidgets/internal/dom"
	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
	"git.home.luguber.info/inful/docwidgets/internal/markdown"
)

const note = `---
date: 2025-03-01
title: New search UI
pr_href: https://github.com/oarepo/oarepo-ui/pull/42
version_badge: oarepo-ui >= 5.2
---
Repositories with a custom search page.

<!-- steps -->

1. Update the template.
2. Rebuild assets.
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument("2025-03-01-search.md", []byte(note))
	require.NoError(t, err)
	assert.Equal(t, Entry{
		Date:         "2025-03-01",
		Title:        "New search UI",
		PRHref:       "https://github.com/oarepo/oarepo-ui/pull/42",
		VersionBadge: "oarepo-ui >= 5.2",
	}, doc.Entry)
	assert.Equal(t, "Repositories with a custom search page.", string(doc.Affected))
	assert.Equal(t, "1. Update the template.\n2. Rebuild assets.", string(doc.Steps))
}

func TestParseDocument_Errors(t *testing.T) {
	cases := map[string]string{
		"no front matter": "# just markdown\n",
		"unclosed":        "---\ndate: x\n",
		"missing title":   "---\ndate: 2025-01-01\n---\nbody\n",
		"bad yaml":        "---\ndate: [\n---\nbody\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDocument("x.md", []byte(content))
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
		})
	}
}

func TestRenderDocument(t *testing.T) {
	doc, err := ParseDocument("n.md", []byte(note))
	require.NoError(t, err)
	r := NewRenderer()

	for i := 0; i < 2; i++ {
		nodes, err := r.RenderDocument(doc, markdown.Options{})
		require.NoError(t, err)
		require.Len(t, nodes, 3)
		assert.Equal(t, "div", nodes[0].Data)
		assert.Equal(t, "p", nodes[1].Data)
		assert.Equal(t, "details", nodes[2].Data)
		assert.Len(t, dom.FindAll(nodes[2], "li"), 2)
	}
}

func TestRenderDocument_NoSteps(t *testing.T) {
	doc, err := ParseDocument("n.md", []byte("---\ndate: d\ntitle: t\n---\n"))
	require.NoError(t, err)
	nodes, err := NewRenderer().RenderDocument(doc, markdown.Options{})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
}

func TestLoadDir_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	write := func(name, date string) {
		content := "---\ndate: " + date + "\ntitle: Entry " + date + "\n---\nbody\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	write("2024-12-01-a.md", "2024-12-01")
	write("2025-02-01-b.md", "2025-02-01")
	write("2025-01-01-c.md", "2025-01-01")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o600))

	docs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "2025-02-01", docs[0].Entry.Date)
	assert.Equal(t, "2025-01-01", docs[1].Entry.Date)
	assert.Equal(t, "2024-12-01", docs[2].Entry.Date)
}

func TestLoadDir_InvalidNote(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.md"), []byte("no front matter"), 0o600))
	_, err := LoadDir(dir)
	require.Error(t, err)
	file, ok := mustClassified(t, err).Context().GetString("file")
	require.True(t, ok)
	assert.Equal(t, "bad.md", file)
}

func mustClassified(t *testing.T, err error) *errors.ClassifiedError {
	t.Helper()
	c, ok := errors.AsClassified(err)
	require.True(t, ok)
	return c
}
