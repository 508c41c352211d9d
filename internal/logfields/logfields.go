package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRepo       = "repository"
	KeyBranch     = "branch"
	KeyPath       = "path"
	KeyURL        = "url"
	KeyStatus     = "status"
	KeyInstance   = "instance"
	KeyAnchor     = "anchor"
	KeyVariant    = "variant"
	KeyFile       = "file"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Repository(r string) slog.Attr   { return slog.String(KeyRepo, r) }
func Branch(b string) slog.Attr       { return slog.String(KeyBranch, b) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func Instance(id string) slog.Attr    { return slog.String(KeyInstance, id) }
func Anchor(id string) slog.Attr      { return slog.String(KeyAnchor, id) }
func Variant(v string) slog.Attr      { return slog.String(KeyVariant, v) }
func File(name string) slog.Attr      { return slog.String(KeyFile, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
