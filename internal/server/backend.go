package server

import (
	"errors"
	"fmt"

	"github.com/golovatskygroup/mcp-frontend/internal/cache"
	"github.com/golovatskygroup/mcp-frontend/internal/config"
	"github.com/golovatskygroup/mcp-frontend/internal/dispatch"
	"github.com/golovatskygroup/mcp-frontend/internal/journal"
	"github.com/golovatskygroup/mcp-frontend/internal/logging"
	"github.com/golovatskygroup/mcp-frontend/internal/providers"
)

// Backend is the dispatcher together with the resources it owns.
type Backend struct {
	Dispatcher *dispatch.Dispatcher
	Journal    *journal.Journal
	Cache      *cache.ResultCache
}

// NewBackend builds the catalog from the enabled providers and wires the optional
// result cache and call journal. A catalog build failure is returned unchanged in
// the error chain so callers can match *catalog.CollisionError.
func NewBackend(cfg config.Config, log *logging.Logger) (*Backend, error) {
	if log == nil {
		log = logging.Nop()
	}
	mode, err := cfg.ValidationMode()
	if err != nil {
		return nil, err
	}

	cat, err := providers.Build(cfg)
	if err != nil {
		return nil, err
	}

	b := &Backend{}
	opts := dispatch.Options{
		Mode:    mode,
		Timeout: cfg.Server.CallTimeout.Duration,
		Logger:  log,
	}

	if cfg.Cache.Enabled {
		b.Cache = cache.New(cfg.Cache.TTL.Duration, cfg.Cache.MaxEntries)
		opts.Cache = b.Cache
	}
	if cfg.Journal.Path != "" {
		j, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("open journal %s: %w", cfg.Journal.Path, err)
		}
		b.Journal = j
		opts.Recorder = j
	}

	b.Dispatcher = dispatch.New(cat, opts)
	log.Info("catalog built",
		"tools", cat.Len(),
		"providers", cat.Providers(),
		"mode", mode,
		"cache", cfg.Cache.Enabled,
		"journal", cfg.Journal.Path,
	)
	return b, nil
}

// Close releases the cache janitor and the journal database.
func (b *Backend) Close() error {
	var errs []error
	if b.Cache != nil {
		b.Cache.Close()
	}
	if b.Journal != nil {
		if err := b.Journal.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close journal: %w", err))
		}
	}
	return errors.Join(errs...)
}
