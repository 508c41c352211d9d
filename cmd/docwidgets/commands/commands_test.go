package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	// Keep tests from picking up a config file in the working directory.
	args = append([]string{"-c", filepath.Join(t.TempDir(), "docwidgets.yaml")}, args...)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = ctx.Run(&Global{Stdout: &out}, &cli)
	return out.String(), err
}

func TestAnchorCommand(t *testing.T) {
	out, err := runCLI(t, "anchor", "--date", "2024-05-01", "--title", "Vocabulary Fields")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01-vocabulary-fields\n", out)
}

func TestBadgeCommand(t *testing.T) {
	out, err := runCLI(t, "badge", "green", "RDM", "v13")
	require.NoError(t, err)
	assert.Contains(t, out, ">RDM v13</span>")
	assert.Contains(t, out, "x:bg-green-100")
}

func TestBadgeCommandUnknownVariant(t *testing.T) {
	_, err := runCLI(t, "badge", "purple", "x")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	assert.Equal(t, 7, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestChangelogCommand(t *testing.T) {
	dir := t.TempDir()
	note := "---\ndate: \"2024-05-01\"\ntitle: Search app\nversion_badge: v5\n---\nAffects search.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-05-01.md"), []byte(note), 0o600))

	out, err := runCLI(t, "changelog", "--dir", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<section class="changelog">`))
	assert.Contains(t, out, `id="2024-05-01-search-app"`)
	assert.Contains(t, out, "RDM v14")
	assert.Contains(t, out, "<p>Affects search.</p>")

	target := filepath.Join(t.TempDir(), "out.html")
	out, err = runCLI(t, "changelog", "--dir", dir, "--out", target)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Search app")
}

func TestChangelogCommandMissingDirIsEmpty(t *testing.T) {
	out, err := runCLI(t, "changelog", "--dir", filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, `<section class="changelog"></section>`, out)
}

func TestInitCommand(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	cfgPath := filepath.Join(t.TempDir(), "docwidgets.yaml")

	ctx, err := parser.Parse([]string{"-c", cfgPath, "init"})
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, ctx.Run(&Global{Stdout: &out}, &cli))
	assert.FileExists(t, cfgPath)

	ctx, err = parser.Parse([]string{"-c", cfgPath, "init"})
	require.NoError(t, err)
	err = ctx.Run(&Global{Stdout: &out}, &cli)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "docwidgets "))
}
