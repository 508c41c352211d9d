package page

import (
	"bytes"
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docwidgets/internal/badge"
	"git.home.luguber.info/inful/docwidgets/internal/dom"
	"git.home.luguber.info/inful/docwidgets/internal/migration"
	"git.home.luguber.info/inful/docwidgets/internal/remotecode"
)

func docs(t *testing.T) []*migration.Document {
	t.Helper()
	a, err := migration.ParseDocument("b.md", []byte("---\ndate: 2025-02-01\ntitle: Second\nversion_badge: oarepo >= 2\n---\nAll repos.\n<!-- steps -->\nDo it.\n"))
	require.NoError(t, err)
	b, err := migration.ParseDocument("a.md", []byte("---\ndate: 2025-01-01\ntitle: First\n---\nSome repos.\n"))
	require.NoError(t, err)
	return []*migration.Document{a, b}
}

func TestChangelog_Render(t *testing.T) {
	section, err := Changelog{}.Render(docs(t))
	require.NoError(t, err)

	articles := dom.FindAll(section, "article")
	require.Len(t, articles, 2)
	assert.Equal(t, "b.md", dom.GetAttr(articles[0], "data-source"))

	h2 := dom.FindAll(section, "h2")
	require.Len(t, h2, 2)
	assert.Equal(t, "2025-02-01-second", dom.GetAttr(h2[0], "id"))
	assert.Equal(t, "2025-01-01-first", dom.GetAttr(h2[1], "id"))
	assert.Len(t, dom.FindAll(section, "details"), 1)
}

func TestChangelog_AbortsOnConfigurationError(t *testing.T) {
	opts := migration.DefaultOptions()
	opts.VersionVariant = badge.Variant("orange")
	c := Changelog{Renderer: migration.NewRenderer(migration.WithOptions(opts))}

	var buf bytes.Buffer
	err := c.Write(&buf, docs(t))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, badge.ErrUnknownVariant))
	assert.Zero(t, buf.Len())
}

func TestSnapshot_Loaded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("a\nb\nc\n"))
	}))
	defer srv.Close()

	w := remotecode.NewWidget(remotecode.Reference{Repo: "o/r", Path: "f.yaml"},
		remotecode.WithHosts(remotecode.Hosts{View: "https://github.com", Raw: srv.URL}))
	n := Snapshot(context.Background(), w, 5*time.Second)
	require.NotNil(t, n)
	assert.Len(t, dom.FindAll(n, "span"), 3)
	assert.Equal(t, "yaml", dom.GetAttr(n, "data-language"))
}

func TestSnapshot_FailureRendersNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	w := remotecode.NewWidget(remotecode.Reference{Repo: "o/r", Path: "f.yaml"},
		remotecode.WithHosts(remotecode.Hosts{View: "https://github.com", Raw: srv.URL}))
	assert.Nil(t, Snapshot(context.Background(), w, 200*time.Millisecond))
}

func TestDocument(t *testing.T) {
	out, err := dom.RenderString(Document("Changelog", dom.Element("p", nil, dom.Text("hi"))))
	require.NoError(t, err)
	assert.Equal(t,
		`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><title>Changelog</title></head><body><p>hi</p></body></html>`,
		out)
}
