package config

import (
	"strings"

	"git.home.luguber.info/inful/docwidgets/internal/migration"
	"git.home.luguber.info/inful/docwidgets/internal/remotecode"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// normalize case-folds enumerations and trims URLs, returning a warning per change.
func normalize(cfg *Config) []string {
	var warnings []string
	if raw := string(cfg.Logging.Level); raw != "" {
		folded := strings.ToLower(strings.TrimSpace(raw))
		if folded != raw {
			warnings = append(warnings, "normalized logging.level from '"+raw+"' to '"+folded+"'")
		}
		cfg.Logging.Level = LogLevel(folded)
	}
	cfg.Remote.ViewBaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.Remote.ViewBaseURL), "/")
	cfg.Remote.RawBaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.Remote.RawBaseURL), "/")
	return warnings
}

func applyDefaults(cfg *Config) {
	if cfg.Remote.ViewBaseURL == "" {
		cfg.Remote.ViewBaseURL = remotecode.GitHubHosts.View
	}
	if cfg.Remote.RawBaseURL == "" {
		cfg.Remote.RawBaseURL = remotecode.GitHubHosts.Raw
	}
	if cfg.Remote.Timeout == "" {
		cfg.Remote.Timeout = "30s"
	}
	if cfg.Remote.UserAgent == "" {
		cfg.Remote.UserAgent = "docwidgets"
	}

	def := migration.DefaultOptions()
	if cfg.Migration.DefaultRDMVersion == "" {
		cfg.Migration.DefaultRDMVersion = def.DefaultRDMVersion
	}
	if cfg.Migration.PRLabelPrefix == "" {
		cfg.Migration.PRLabelPrefix = def.PRLabelPrefix
	}
	if cfg.Migration.PlatformPrefix == "" {
		cfg.Migration.PlatformPrefix = def.PlatformPrefix
	}

	if cfg.Changelog.Dir == "" {
		cfg.Changelog.Dir = "content/changelog"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 1316
	}
	if cfg.Server.HealthPath == "" {
		cfg.Server.HealthPath = "/health"
	}
	if cfg.Server.MetricsPath == "" {
		cfg.Server.MetricsPath = "/metrics"
	}
	if cfg.Server.SnapshotWait == "" {
		cfg.Server.SnapshotWait = "10s"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
}

// Hosts converts the remote section into source host endpoints.
func (c *Config) Hosts() remotecode.Hosts {
	return remotecode.Hosts{View: c.Remote.ViewBaseURL, Raw: c.Remote.RawBaseURL}
}

// MigrationOptions converts the migration section into header options.
func (c *Config) MigrationOptions() migration.Options {
	opts := migration.DefaultOptions()
	opts.DefaultRDMVersion = c.Migration.DefaultRDMVersion
	opts.PRLabelPrefix = c.Migration.PRLabelPrefix
	opts.PlatformPrefix = c.Migration.PlatformPrefix
	return opts
}
