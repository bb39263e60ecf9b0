// Package config loads server settings from YAML or TOML files and MCP_FRONTEND_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/golovatskygroup/mcp-frontend/internal/logging"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
)

// Duration accepts "30s"-style strings in both YAML and TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Config struct {
	Server     ServerConfig     `yaml:"server" toml:"server" json:"server"`
	Validation ValidationConfig `yaml:"validation" toml:"validation" json:"validation"`
	Cache      CacheConfig      `yaml:"cache" toml:"cache" json:"cache"`
	Journal    JournalConfig    `yaml:"journal" toml:"journal" json:"journal"`
	Log        LogConfig        `yaml:"log" toml:"log" json:"log"`
	Providers  ProvidersConfig  `yaml:"providers" toml:"providers" json:"providers"`
}

type ServerConfig struct {
	Name               string   `yaml:"name" toml:"name" json:"name"`
	Version            string   `yaml:"version" toml:"version" json:"version"`
	MaxConcurrentCalls int      `yaml:"max_concurrent_calls" toml:"max_concurrent_calls" json:"max_concurrent_calls"`
	CallTimeout        Duration `yaml:"call_timeout" toml:"call_timeout" json:"call_timeout"`
}

type ValidationConfig struct {
	// Mode is "lenient" (default) or "strict".
	Mode string `yaml:"mode" toml:"mode" json:"mode"`
}

type CacheConfig struct {
	Enabled    bool     `yaml:"enabled" toml:"enabled" json:"enabled"`
	TTL        Duration `yaml:"ttl" toml:"ttl" json:"ttl"`
	MaxEntries int      `yaml:"max_entries" toml:"max_entries" json:"max_entries"`
}

type JournalConfig struct {
	// Path of the SQLite file. Empty disables the journal.
	Path string `yaml:"path" toml:"path" json:"path"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level" json:"level"`
}

type ProvidersConfig struct {
	Disabled []string `yaml:"disabled" toml:"disabled" json:"disabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Name:               "mcp-frontend",
			Version:            "1.0.0",
			MaxConcurrentCalls: 8,
		},
		Validation: ValidationConfig{Mode: "lenient"},
		Cache: CacheConfig{
			TTL:        Duration{5 * time.Minute},
			MaxEntries: 256,
		},
		Log: LogConfig{Level: "info"},
	}
}

// ValidationMode parses Validation.Mode.
func (c Config) ValidationMode() (schema.Mode, error) {
	return schema.ParseMode(c.Validation.Mode)
}

// ProviderDisabled reports whether the named provider is switched off.
func (c Config) ProviderDisabled(name string) bool {
	for _, d := range c.Providers.Disabled {
		if strings.EqualFold(strings.TrimSpace(d), name) {
			return true
		}
	}
	return false
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.ValidationMode(); err != nil {
		errs = append(errs, err)
	}
	if c.Server.MaxConcurrentCalls < 0 {
		errs = append(errs, fmt.Errorf("server.max_concurrent_calls must be >= 0, got %d", c.Server.MaxConcurrentCalls))
	}
	if c.Server.CallTimeout.Duration < 0 {
		errs = append(errs, fmt.Errorf("server.call_timeout must be >= 0, got %s", c.Server.CallTimeout))
	}
	if c.Cache.TTL.Duration < 0 {
		errs = append(errs, fmt.Errorf("cache.ttl must be >= 0, got %s", c.Cache.TTL))
	}
	if c.Cache.MaxEntries < 0 {
		errs = append(errs, fmt.Errorf("cache.max_entries must be >= 0, got %d", c.Cache.MaxEntries))
	}
	if c.Cache.Enabled && (c.Cache.TTL.Duration == 0 || c.Cache.MaxEntries == 0) {
		errs = append(errs, errors.New("cache is enabled but ttl or max_entries is zero"))
	}
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

// loadFile decodes path over base. The format follows the extension:
// .toml is TOML, anything else is YAML.
func loadFile(path string, base Config) (Config, error) {
	cfg := base
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Load resolves the effective configuration.
// Priority, lowest first:
// 1. built-in defaults
// 2. MCP_FRONTEND_PRESET
// 3. the config file, when path is not empty
// 4. MCP_FRONTEND_* overrides
func Load(path string) (Config, error) {
	cfg := Default()

	if preset, err := EnvPreset(); err != nil {
		return Config{}, err
	} else if preset != nil {
		cfg = *preset
	}

	if path != "" {
		var err error
		if cfg, err = loadFile(path, cfg); err != nil {
			return Config{}, err
		}
	}

	merged, err := MergeWithEnv(cfg)
	if err != nil {
		return Config{}, err
	}
	if err := merged.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return merged, nil
}
