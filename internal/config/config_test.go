package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golovatskygroup/mcp-frontend/internal/schema"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	mode, err := cfg.ValidationMode()
	require.NoError(t, err)
	assert.Equal(t, schema.Lenient, mode)
	assert.Empty(t, cfg.Journal.Path)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  max_concurrent_calls: 4
  call_timeout: 15s
validation:
  mode: strict
cache:
  enabled: true
  ttl: 1m
journal:
  path: /tmp/calls.db
providers:
  disabled: [flow]
`)

	cfg, err := loadFile(path, Default())
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Server.MaxConcurrentCalls)
	assert.Equal(t, 15*time.Second, cfg.Server.CallTimeout.Duration)
	assert.Equal(t, "strict", cfg.Validation.Mode)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.TTL.Duration)
	assert.Equal(t, 256, cfg.Cache.MaxEntries, "unset keys keep defaults")
	assert.Equal(t, "/tmp/calls.db", cfg.Journal.Path)
	assert.True(t, cfg.ProviderDisabled("Flow"))
	assert.Equal(t, "mcp-frontend", cfg.Server.Name)
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[server]
max_concurrent_calls = 2
call_timeout = "3s"

[validation]
mode = "strict"

[log]
level = "debug"
`)

	cfg, err := loadFile(path, Default())
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Server.MaxConcurrentCalls)
	assert.Equal(t, 3*time.Second, cfg.Server.CallTimeout.Duration)
	assert.Equal(t, "strict", cfg.Validation.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := loadFile(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "server:\n  call_timeout: soon\n")
	_, err = loadFile(path, Default())
	assert.Error(t, err)
}

func TestMergeWithEnv(t *testing.T) {
	t.Setenv("MCP_FRONTEND_VALIDATION_MODE", "strict")
	t.Setenv("MCP_FRONTEND_CALL_TIMEOUT", "2s")
	t.Setenv("MCP_FRONTEND_MAX_CONCURRENT_CALLS", "16")
	t.Setenv("MCP_FRONTEND_CACHE_ENABLED", "true")
	t.Setenv("MCP_FRONTEND_CACHE_TTL", "10s")
	t.Setenv("MCP_FRONTEND_CACHE_MAX_ENTRIES", "5")
	t.Setenv("MCP_FRONTEND_JOURNAL_PATH", "calls.db")
	t.Setenv("MCP_FRONTEND_LOG_LEVEL", "warn")
	t.Setenv("MCP_FRONTEND_DISABLED_PROVIDERS", " styling , packages,")

	cfg, err := MergeWithEnv(Default())
	require.NoError(t, err)

	assert.Equal(t, "strict", cfg.Validation.Mode)
	assert.Equal(t, 2*time.Second, cfg.Server.CallTimeout.Duration)
	assert.Equal(t, 16, cfg.Server.MaxConcurrentCalls)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Cache.TTL.Duration)
	assert.Equal(t, 5, cfg.Cache.MaxEntries)
	assert.Equal(t, "calls.db", cfg.Journal.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{"styling", "packages"}, cfg.Providers.Disabled)
}

func TestMergeWithEnv_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"MCP_FRONTEND_CALL_TIMEOUT":         "forever",
		"MCP_FRONTEND_MAX_CONCURRENT_CALLS": "many",
		"MCP_FRONTEND_CACHE_ENABLED":        "maybe",
		"MCP_FRONTEND_CACHE_TTL":            "x",
		"MCP_FRONTEND_CACHE_MAX_ENTRIES":    "1.5",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := MergeWithEnv(Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"mode", func(c *Config) { c.Validation.Mode = "paranoid" }},
		{"concurrency", func(c *Config) { c.Server.MaxConcurrentCalls = -1 }},
		{"timeout", func(c *Config) { c.Server.CallTimeout = Duration{-time.Second} }},
		{"cache ttl", func(c *Config) { c.Cache.TTL = Duration{-time.Second} }},
		{"cache entries", func(c *Config) { c.Cache.MaxEntries = -3 }},
		{"cache enabled without size", func(c *Config) { c.Cache.Enabled = true; c.Cache.MaxEntries = 0 }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_PresetFileEnvPriority(t *testing.T) {
	t.Setenv("MCP_FRONTEND_PRESET", "dev")
	path := writeFile(t, "config.yaml", "log:\n  level: error\n")
	t.Setenv("MCP_FRONTEND_VALIDATION_MODE", "strict")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mcp-frontend.db", cfg.Journal.Path, "from preset")
	assert.Equal(t, "error", cfg.Log.Level, "file overrides preset")
	assert.Equal(t, "strict", cfg.Validation.Mode, "env overrides file")
}

func TestLoad_UnknownPreset(t *testing.T) {
	t.Setenv("MCP_FRONTEND_PRESET", "nope")
	_, err := Load("")
	assert.EqualError(t, err, "unknown preset: nope (known: default, dev, strict)")
}

func TestLoad_InvalidAfterMerge(t *testing.T) {
	t.Setenv("MCP_FRONTEND_VALIDATION_MODE", "paranoid")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"default", "dev", "strict"}, ListPresets())

	cfg, ok := Preset("STRICT")
	require.True(t, ok)
	assert.Equal(t, "strict", cfg.Validation.Mode)
	assert.NoError(t, cfg.Validate())

	_, ok = Preset("unknown")
	assert.False(t, ok)
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, ".env", `
# comment
export MCP_FRONTEND_TEST_A="quoted value"
MCP_FRONTEND_TEST_B=plain
MCP_FRONTEND_TEST_C=keep
not a pair
`)
	t.Setenv("MCP_FRONTEND_TEST_C", "existing")
	t.Setenv("MCP_FRONTEND_TEST_A", "")
	os.Unsetenv("MCP_FRONTEND_TEST_A")
	t.Setenv("MCP_FRONTEND_TEST_B", "")
	os.Unsetenv("MCP_FRONTEND_TEST_B")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "quoted value", os.Getenv("MCP_FRONTEND_TEST_A"))
	assert.Equal(t, "plain", os.Getenv("MCP_FRONTEND_TEST_B"))
	assert.Equal(t, "existing", os.Getenv("MCP_FRONTEND_TEST_C"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
