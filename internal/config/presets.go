package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

var presets = map[string]func() Config{
	"default": Default,
	"strict": func() Config {
		cfg := Default()
		cfg.Validation.Mode = "strict"
		cfg.Server.CallTimeout = Duration{30 * time.Second}
		return cfg
	},
	"dev": func() Config {
		cfg := Default()
		cfg.Log.Level = "debug"
		cfg.Journal.Path = "mcp-frontend.db"
		return cfg
	},
}

// Preset returns a named configuration.
func Preset(name string) (Config, bool) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Config{}, false
	}
	return fn(), true
}

// EnvPreset returns the preset named by MCP_FRONTEND_PRESET, or nil when unset.
func EnvPreset() (*Config, error) {
	name := os.Getenv(envPrefix + "PRESET")
	if name == "" {
		return nil, nil
	}
	cfg, ok := Preset(name)
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s (known: %s)", name, strings.Join(ListPresets(), ", "))
	}
	return &cfg, nil
}

// ListPresets returns preset names sorted alphabetically.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
