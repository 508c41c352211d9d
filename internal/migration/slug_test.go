package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"Remove  deprecated   API!", "remove-deprecated-api"},
		{"a ! b", "a-b"},
		{"snake_case and-dashes", "snake_case-and-dashes"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"  leading and trailing  ", "-leading-and-trailing-"},
		{"Čeština a UTF-8", "etina-a-utf-8"},
		{"Non\u00a0breaking", "non-breaking"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello World",
		"Upgrade to RDM v13 (breaking!)",
		"İstanbul KELVIN \u212a",
		"--already-slugged--",
		"   ",
		"日本語 title",
		"emoji 🚀 rocket",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}

func TestAnchorID(t *testing.T) {
	assert.Equal(t, "2025-03-01-new-search-ui", AnchorID("2025-03-01", "New search UI"))

	// Distinct titles give distinct anchors unless their slugs coincide.
	assert.NotEqual(t, AnchorID("2025-03-01", "Search"), AnchorID("2025-03-01", "Deposit"))
	assert.Equal(t, AnchorID("2025-03-01", "Search!"), AnchorID("2025-03-01", "search"))
}

func TestExtractPRNumber(t *testing.T) {
	n, ok := ExtractPRNumber("https://github.com/oarepo/oarepo-ui/pull/1234")
	assert.True(t, ok)
	assert.Equal(t, "1234", n)

	n, ok = ExtractPRNumber("https://github.com/oarepo/oarepo-ui/pull/77/files")
	assert.True(t, ok)
	assert.Equal(t, "77", n)

	_, ok = ExtractPRNumber("https://github.com/oarepo/oarepo-ui/issues/1234")
	assert.False(t, ok)

	_, ok = ExtractPRNumber("https://github.com/oarepo/oarepo-ui/pull/")
	assert.False(t, ok)
}
