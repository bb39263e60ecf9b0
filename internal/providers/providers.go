// Package providers assembles the shipped providers into a catalog.
package providers

import (
	"fmt"

	"github.com/golovatskygroup/mcp-frontend/internal/catalog"
	"github.com/golovatskygroup/mcp-frontend/internal/provider"
	"github.com/golovatskygroup/mcp-frontend/internal/providers/catalogtools"
	"github.com/golovatskygroup/mcp-frontend/internal/providers/components"
	"github.com/golovatskygroup/mcp-frontend/internal/providers/flow"
	"github.com/golovatskygroup/mcp-frontend/internal/providers/packages"
	"github.com/golovatskygroup/mcp-frontend/internal/providers/styling"
)

// Names lists the shipped providers in registration order.
var Names = []string{components.Name, styling.Name, packages.Name, flow.Name, catalogtools.Name}

// Disabler reports whether a provider has been switched off.
type Disabler interface {
	ProviderDisabled(name string) bool
}

// All returns a fresh instance of every shipped provider in registration order.
func All() []provider.Provider {
	return []provider.Provider{
		components.New(),
		styling.New(),
		packages.New(),
		flow.New(),
		catalogtools.New(),
	}
}

// Build registers every enabled provider and returns the finished catalog.
// A nil Disabler enables everything.
func Build(d Disabler) (*catalog.Catalog, error) {
	var enabled []provider.Provider
	var meta *catalogtools.Provider
	for _, p := range All() {
		if d != nil && d.ProviderDisabled(p.Name()) {
			continue
		}
		if m, ok := p.(*catalogtools.Provider); ok {
			meta = m
		}
		enabled = append(enabled, p)
	}

	c, err := catalog.Build(enabled...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	if meta != nil {
		meta.Bind(c)
	}
	return c, nil
}
