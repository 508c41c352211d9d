package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement_RendersEscapedText(t *testing.T) {
	n := Element("span", []Attr{Class("a", "", " b ")}, Text("x < y"), nil)
	out, err := RenderString(n)
	require.NoError(t, err)
	assert.Equal(t, `<span class="a b">x &lt; y</span>`, out)
}

func TestRender_SkipsNil(t *testing.T) {
	out, err := RenderString(nil, Text("a"), nil)
	require.NoError(t, err)
	assert.Equal(t, "a", out)
}

func TestAppend_MovesChild(t *testing.T) {
	child := Text("c")
	first := Element("div", nil, child)
	second := Element("p", nil)
	Append(second, child)

	assert.Nil(t, first.FirstChild)
	assert.Equal(t, second, child.Parent)
}

func TestFindAllAndTextContent(t *testing.T) {
	root := Element("div", nil,
		Element("span", []Attr{A("id", "1")}, Text("one")),
		Element("p", nil, Element("span", []Attr{A("id", "2")}, Text("two"))),
	)
	spans := FindAll(root, "span")
	require.Len(t, spans, 2)
	assert.Equal(t, "1", GetAttr(spans[0], "id"))
	assert.Equal(t, "2", GetAttr(spans[1], "id"))
	assert.Equal(t, "", GetAttr(spans[1], "missing"))
	assert.Equal(t, "onetwo", TextContent(root))
}
