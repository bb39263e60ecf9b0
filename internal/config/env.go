package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const envPrefix = "MCP_FRONTEND_"

// MergeWithEnv applies MCP_FRONTEND_* variables on top of cfg.
// Set variables take precedence over file values:
//
//	MCP_FRONTEND_VALIDATION_MODE        lenient | strict
//	MCP_FRONTEND_CALL_TIMEOUT           Go duration, 0 disables
//	MCP_FRONTEND_MAX_CONCURRENT_CALLS   integer, 0 means unbounded
//	MCP_FRONTEND_CACHE_ENABLED          bool
//	MCP_FRONTEND_CACHE_TTL              Go duration
//	MCP_FRONTEND_CACHE_MAX_ENTRIES      integer
//	MCP_FRONTEND_JOURNAL_PATH           SQLite file, empty disables
//	MCP_FRONTEND_LOG_LEVEL              debug | info | warn | error
//	MCP_FRONTEND_DISABLED_PROVIDERS     comma separated provider names
func MergeWithEnv(cfg Config) (Config, error) {
	result := cfg

	if v, ok := lookup("VALIDATION_MODE"); ok {
		result.Validation.Mode = v
	}
	if v, ok := lookup("CALL_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %sCALL_TIMEOUT: %w", envPrefix, err)
		}
		result.Server.CallTimeout = Duration{d}
	}
	if v, ok := lookup("MAX_CONCURRENT_CALLS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %sMAX_CONCURRENT_CALLS: %w", envPrefix, err)
		}
		result.Server.MaxConcurrentCalls = n
	}
	if v, ok := lookup("CACHE_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %sCACHE_ENABLED: %w", envPrefix, err)
		}
		result.Cache.Enabled = b
	}
	if v, ok := lookup("CACHE_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %sCACHE_TTL: %w", envPrefix, err)
		}
		result.Cache.TTL = Duration{d}
	}
	if v, ok := lookup("CACHE_MAX_ENTRIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %sCACHE_MAX_ENTRIES: %w", envPrefix, err)
		}
		result.Cache.MaxEntries = n
	}
	if v, ok := os.LookupEnv(envPrefix + "JOURNAL_PATH"); ok {
		// An explicitly empty value turns the journal off.
		result.Journal.Path = strings.TrimSpace(v)
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		result.Log.Level = v
	}
	if v, ok := lookup("DISABLED_PROVIDERS"); ok {
		var names []string
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				names = append(names, p)
			}
		}
		result.Providers.Disabled = names
	}

	return result, nil
}

func lookup(name string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(envPrefix + name))
	return v, v != ""
}
