package remotecode

import (
	"path"
	"strings"
)

// DefaultBranch is used when a Reference names no branch.
const DefaultBranch = "main"

// Hosts holds the browsable and raw-content base URLs of a source host.
type Hosts struct {
	View string
	Raw  string
}

// GitHubHosts are the public GitHub endpoints.
var GitHubHosts = Hosts{
	View: "https://github.com",
	Raw:  "https://raw.githubusercontent.com",
}

// Reference points at one file of a repository.
type Reference struct {
	Repo   string `yaml:"repo"`
	Branch string `yaml:"branch,omitempty"`
	Path   string `yaml:"path"`
}

// WithDefaults fills in the default branch.
func (r Reference) WithDefaults() Reference {
	if r.Branch == "" {
		r.Branch = DefaultBranch
	}
	return r
}

// ViewURL is the human-browsable location of the file.
func (h Hosts) ViewURL(r Reference) string {
	r = r.WithDefaults()
	return strings.TrimSuffix(h.View, "/") + "/" + r.Repo + "/tree/" + r.Branch + "/" + r.Path
}

// RawURL is the unrendered-content location of the file.
func (h Hosts) RawURL(r Reference) string {
	r = r.WithDefaults()
	return strings.TrimSuffix(h.Raw, "/") + "/" + r.Repo + "/" + r.Branch + "/" + r.Path
}

// ViewURL uses GitHubHosts.
func (r Reference) ViewURL() string { return GitHubHosts.ViewURL(r) }

// RawURL uses GitHubHosts.
func (r Reference) RawURL() string { return GitHubHosts.RawURL(r) }

// Extension returns the text after the last '.' of the file name, or "" when
// the name has no dot. It only drives syntax highlighting.
func (r Reference) Extension() string {
	base := path.Base(r.Path)
	i := strings.LastIndexByte(base, '.')
	if i < 0 || base == "." || base == "/" {
		return ""
	}
	return base[i+1:]
}
