package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
)

func validate(cfg *Config) error {
	for name, raw := range map[string]string{
		"remote.view_base_url": cfg.Remote.ViewBaseURL,
		"remote.raw_base_url":  cfg.Remote.RawBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.ConfigError(fmt.Sprintf("%s must be an absolute http(s) URL, got %q", name, raw)).Build()
		}
	}

	for name, raw := range map[string]string{
		"remote.timeout":       cfg.Remote.Timeout,
		"server.snapshot_wait": cfg.Server.SnapshotWait,
	} {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return errors.ConfigError(fmt.Sprintf("%s must be a positive duration, got %q", name, raw)).Build()
		}
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return errors.ConfigError(fmt.Sprintf("server.port out of range: %d", cfg.Server.Port)).Build()
	}
	for name, p := range map[string]string{
		"server.health_path":  cfg.Server.HealthPath,
		"server.metrics_path": cfg.Server.MetricsPath,
	} {
		if !strings.HasPrefix(p, "/") || p == "/" {
			return errors.ConfigError(fmt.Sprintf("%s must be an absolute path below /, got %q", name, p)).Build()
		}
	}

	switch cfg.Logging.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return errors.ConfigError(fmt.Sprintf("invalid logging.level %q", cfg.Logging.Level)).Build()
	}
	return nil
}
