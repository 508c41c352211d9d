package migration

// DefaultRDMVersion is the target platform version shown when an entry names none.
const DefaultRDMVersion = "v14"

// Entry is one changelog item. Entries are treated as immutable values.
type Entry struct {
	Date         string `yaml:"date"`
	Title        string `yaml:"title"`
	PRHref       string `yaml:"pr_href,omitempty"`
	VersionBadge string `yaml:"version_badge,omitempty"`
	RDMVersion   string `yaml:"rdm_version,omitempty"`
}

// AnchorID returns the entry's permalink fragment.
func (e Entry) AnchorID() string {
	return AnchorID(e.Date, e.Title)
}

// PRNumber extracts the pull request number from PRHref.
func (e Entry) PRNumber() (string, bool) {
	if e.PRHref == "" {
		return "", false
	}
	return ExtractPRNumber(e.PRHref)
}
