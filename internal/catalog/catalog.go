// Package catalog merges the tools of every provider into one read-only index.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/golovatskygroup/mcp-frontend/internal/provider"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

// Entry is everything the dispatcher needs to run one tool.
type Entry struct {
	Spec       mcp.Tool
	Descriptor *schema.Descriptor
	Handler    provider.HandlerFunc
	Provider   string
}

// Catalog is built once and never mutated afterwards, so reads need no locking.
type Catalog struct {
	tools      []mcp.Tool
	entries    map[string]Entry
	providers  []string
	categories []Category
}

// Duplicate records one tool name declared more than once.
type Duplicate struct {
	Name      string
	Providers []string
}

// CollisionError is returned by Build when a tool name is declared more than once.
type CollisionError struct {
	Duplicates []Duplicate
}

func (e *CollisionError) Error() string {
	parts := make([]string, 0, len(e.Duplicates))
	for _, d := range e.Duplicates {
		parts = append(parts, fmt.Sprintf("%q (%s)", d.Name, strings.Join(d.Providers, ", ")))
	}
	return "duplicate tool names: " + strings.Join(parts, "; ")
}

// SpecError is returned by Build when a provider's tool table is inconsistent.
type SpecError struct {
	Provider string
	Tool     string
	Reason   string
	Err      error
}

func (e *SpecError) Error() string {
	msg := fmt.Sprintf("provider %s: tool %q: %s", e.Provider, e.Tool, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SpecError) Unwrap() error { return e.Err }

// Build merges providers in registration order. Every duplicate name across (or within)
// providers is collected into a single *CollisionError; nothing is silently overwritten.
func Build(providers ...provider.Provider) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry)}

	owners := make(map[string][]string)
	var order []string

	for _, p := range providers {
		if p == nil {
			continue
		}
		pname := p.Name()
		c.providers = append(c.providers, pname)

		cat := Category{Name: pname}
		if d, ok := p.(provider.Describer); ok {
			cat.Description = d.Description()
			cat.Keywords = d.Keywords()
		}

		handlers := p.Handlers()
		specNames := make(map[string]struct{})

		for _, spec := range p.Specs() {
			if strings.TrimSpace(spec.Name) == "" {
				return nil, &SpecError{Provider: pname, Tool: spec.Name, Reason: "empty tool name"}
			}
			specNames[spec.Name] = struct{}{}
			if _, seen := owners[spec.Name]; !seen {
				order = append(order, spec.Name)
			}
			owners[spec.Name] = append(owners[spec.Name], pname)
			if len(owners[spec.Name]) > 1 {
				continue
			}

			h, ok := handlers[spec.Name]
			if !ok || h == nil {
				return nil, &SpecError{Provider: pname, Tool: spec.Name, Reason: "no handler registered"}
			}
			desc, err := schema.Parse(spec.Name, spec.InputSchema)
			if err != nil {
				return nil, &SpecError{Provider: pname, Tool: spec.Name, Reason: "invalid inputSchema", Err: err}
			}

			c.tools = append(c.tools, spec)
			c.entries[spec.Name] = Entry{Spec: spec, Descriptor: desc, Handler: h, Provider: pname}
			cat.Tools = append(cat.Tools, spec.Name)
		}
		c.categories = append(c.categories, cat)

		for name := range handlers {
			if _, ok := specNames[name]; !ok {
				return nil, &SpecError{Provider: pname, Tool: name, Reason: "handler has no tool definition"}
			}
		}
	}

	var dups []Duplicate
	for _, name := range order {
		if ps := owners[name]; len(ps) > 1 {
			dups = append(dups, Duplicate{Name: name, Providers: ps})
		}
	}
	if len(dups) > 0 {
		return nil, &CollisionError{Duplicates: dups}
	}

	return c, nil
}

// List returns the tool definitions in registration order.
// The returned slice is a copy; callers may modify it.
func (c *Catalog) List() []mcp.Tool {
	out := make([]mcp.Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

// Resolve looks up a tool by name.
func (c *Catalog) Resolve(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Len returns the number of tools.
func (c *Catalog) Len() int { return len(c.tools) }

// Providers returns provider names in registration order.
func (c *Catalog) Providers() []string {
	out := make([]string, len(c.providers))
	copy(out, c.providers)
	return out
}

// Names returns all tool names sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
