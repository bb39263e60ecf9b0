// Package provider defines the boundary between the dispatcher and the areas that own tools.
package provider

import (
	"context"
	"fmt"

	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

// HandlerFunc executes one tool with already-normalized arguments.
type HandlerFunc func(ctx context.Context, args schema.Args) (*mcp.CallToolResult, error)

// Provider owns a fixed set of tools and their handlers.
type Provider interface {
	// Name identifies the provider in logs and build errors.
	Name() string

	// Specs returns the provider's tool definitions in display order.
	Specs() []mcp.Tool

	// Handlers returns the flat name -> handler table, nested tables included.
	Handlers() map[string]HandlerFunc

	// Dispatch runs one of the provider's tools. Names the provider does not own
	// produce an Unsupported result.
	Dispatch(ctx context.Context, name string, args schema.Args) (*mcp.CallToolResult, error)
}

// Describer is implemented by providers that contribute a category to tool search.
type Describer interface {
	Description() string
	Keywords() []string
}

// Unsupported is the result returned when a provider is asked for a tool it does not own.
func Unsupported(providerName, toolName string) *mcp.CallToolResult {
	return mcp.ErrorResult(fmt.Sprintf("Tool %s is not supported by provider %s", toolName, providerName))
}

// Tool pairs a definition with its handler.
type Tool struct {
	Spec    mcp.Tool
	Handler HandlerFunc
}

// Table is an ordered tool table that implements Provider.
// Providers embed or return a Table instead of hand-writing dispatch switches.
type Table struct {
	name        string
	description string
	keywords    []string
	tools       []Tool
}

// NewTable creates a table named after its provider.
func NewTable(name string, tools ...Tool) *Table {
	t := &Table{name: name}
	t.tools = append(t.tools, tools...)
	return t
}

// Describe sets the search category description and keywords.
func (t *Table) Describe(description string, keywords ...string) *Table {
	t.description = description
	t.keywords = append(t.keywords[:0], keywords...)
	return t
}

// Add appends tools to the table.
func (t *Table) Add(tools ...Tool) *Table {
	t.tools = append(t.tools, tools...)
	return t
}

// Mount appends every tool of a nested table. The nested table's own dispatch
// is bypassed: the flattened handlers are what the catalog sees.
func (t *Table) Mount(sub *Table) *Table {
	t.tools = append(t.tools, sub.tools...)
	return t
}

func (t *Table) Name() string { return t.name }

func (t *Table) Description() string { return t.description }

func (t *Table) Keywords() []string { return t.keywords }

func (t *Table) Specs() []mcp.Tool {
	out := make([]mcp.Tool, 0, len(t.tools))
	for _, tl := range t.tools {
		out = append(out, tl.Spec)
	}
	return out
}

// Handlers returns the table's handlers keyed by tool name. When the same name is
// added twice the first registration is kept; the catalog reports the duplicate spec.
func (t *Table) Handlers() map[string]HandlerFunc {
	out := make(map[string]HandlerFunc, len(t.tools))
	for _, tl := range t.tools {
		if _, exists := out[tl.Spec.Name]; exists {
			continue
		}
		out[tl.Spec.Name] = tl.Handler
	}
	return out
}

func (t *Table) Dispatch(ctx context.Context, name string, args schema.Args) (*mcp.CallToolResult, error) {
	for _, tl := range t.tools {
		if tl.Spec.Name == name {
			if args == nil {
				args = schema.Args{}
			}
			return tl.Handler(ctx, args)
		}
	}
	return Unsupported(t.name, name), nil
}
