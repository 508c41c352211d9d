package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
)

// CurrentVersion is the only accepted configuration version.
const CurrentVersion = "1.0"

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "docwidgets.yaml"

// Config is the docwidgets configuration file.
type Config struct {
	Version   string          `yaml:"version"`
	Remote    RemoteConfig    `yaml:"remote"`
	Migration MigrationConfig `yaml:"migration"`
	Changelog ChangelogConfig `yaml:"changelog"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// RemoteConfig controls raw content fetches for embedded code.
type RemoteConfig struct {
	ViewBaseURL string `yaml:"view_base_url"` // Human-browsable host, e.g. https://github.com
	RawBaseURL  string `yaml:"raw_base_url"`  // Raw content host, e.g. https://raw.githubusercontent.com
	Timeout     string `yaml:"timeout"`       // Per-request timeout (Go duration)
	UserAgent   string `yaml:"user_agent"`
}

// MigrationConfig controls migration header labels.
type MigrationConfig struct {
	DefaultRDMVersion string `yaml:"default_rdm_version"`
	PRLabelPrefix     string `yaml:"pr_label_prefix"`
	PlatformPrefix    string `yaml:"platform_prefix"`
}

// ChangelogConfig locates the migration notes.
type ChangelogConfig struct {
	Dir       string `yaml:"dir"`
	UnsafeRaw bool   `yaml:"unsafe_raw_html"` // pass raw HTML in notes through
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Port           int    `yaml:"port"`
	HealthPath     string `yaml:"health_path"`
	MetricsPath    string `yaml:"metrics_path"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`
	SnapshotWait   string `yaml:"snapshot_wait"` // how long /snapshot waits for a fetch
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level LogLevel `yaml:"level"`
}

// RemoteTimeout parses Remote.Timeout (validated on load).
func (c *Config) RemoteTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Remote.Timeout)
	return d
}

// SnapshotWait parses Server.SnapshotWait (validated on load).
func (c *Config) SnapshotWait() time.Duration {
	d, _ := time.ParseDuration(c.Server.SnapshotWait)
	return d
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{Version: CurrentVersion}
	applyDefaults(cfg)
	return cfg
}

// Load reads configPath. A missing file yields Default(); .env files are loaded
// first and ${VAR} references in the YAML are expanded.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		cfg := Default()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.FileSystemError(err, "failed to read config file").WithContext("path", configPath).Build()
	}
	return Parse(data)
}

// Parse decodes, normalizes, defaults and validates raw YAML.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.ConfigError("failed to unmarshal config").WithCause(err).Build()
	}
	if cfg.Version != CurrentVersion {
		return nil, errors.ConfigError(fmt.Sprintf("unsupported configuration version: %q (expected %s)", cfg.Version, CurrentVersion)).Build()
	}

	for _, w := range normalize(&cfg) {
		fmt.Fprintf(os.Stderr, "config normalization: %s\n", w)
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ValidationError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).Build()
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example config").Build()
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return errors.FileSystemError(err, "failed to write config file").WithContext("path", configPath).Build()
	}
	return nil
}
