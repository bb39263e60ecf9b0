package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golovatskygroup/mcp-frontend/internal/provider"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

func tool(name, desc string) provider.Tool {
	return provider.Tool{
		Spec: mcp.Tool{Name: name, Description: desc, InputSchema: json.RawMessage(`{"type":"object","properties":{}}`)},
		Handler: func(context.Context, schema.Args) (*mcp.CallToolResult, error) {
			return mcp.TextResult(name), nil
		},
	}
}

// mapProvider lets tests declare specs and handlers independently.
type mapProvider struct {
	name     string
	specs    []mcp.Tool
	handlers map[string]provider.HandlerFunc
}

func (p *mapProvider) Name() string                              { return p.name }
func (p *mapProvider) Specs() []mcp.Tool                         { return p.specs }
func (p *mapProvider) Handlers() map[string]provider.HandlerFunc { return p.handlers }
func (p *mapProvider) Dispatch(ctx context.Context, name string, args schema.Args) (*mcp.CallToolResult, error) {
	if h, ok := p.handlers[name]; ok {
		return h(ctx, args)
	}
	return provider.Unsupported(p.name, name), nil
}

func TestBuild_ListIsRegistrationOrder(t *testing.T) {
	p1 := provider.NewTable("components", tool("react_component_generator", "Generate"), tool("react_hook_generator", "Hooks"))
	p2 := provider.NewTable("styling", tool("tailwind_optimizer", "Optimize"))

	c, err := Build(p1, p2)
	require.NoError(t, err)

	names := make([]string, 0)
	for _, s := range c.List() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"react_component_generator", "react_hook_generator", "tailwind_optimizer"}, names)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"components", "styling"}, c.Providers())

	e, ok := c.Resolve("tailwind_optimizer")
	require.True(t, ok)
	assert.Equal(t, "styling", e.Provider)
	assert.NotNil(t, e.Descriptor)
}

func TestBuild_ListReturnsCopy(t *testing.T) {
	c, err := Build(provider.NewTable("a", tool("x", "X")))
	require.NoError(t, err)

	l := c.List()
	l[0].Name = "mutated"
	assert.Equal(t, "x", c.List()[0].Name)
}

func TestBuild_NestedTableIsFlattened(t *testing.T) {
	flow := provider.NewTable("flow", tool("dagre_configuration_optimizer", "Dagre"))
	components := provider.NewTable("components", tool("react_component_generator", "Gen")).Mount(flow)

	c, err := Build(components)
	require.NoError(t, err)

	e, ok := c.Resolve("dagre_configuration_optimizer")
	require.True(t, ok)
	assert.Equal(t, "components", e.Provider)
}

func TestBuild_CollisionAcrossProviders(t *testing.T) {
	p1 := provider.NewTable("alpha", tool("shared", "a"), tool("other", "o"))
	p2 := provider.NewTable("beta", tool("shared", "b"))

	_, err := Build(p1, p2)
	require.Error(t, err)

	var ce *CollisionError
	require.True(t, errors.As(err, &ce))
	require.Len(t, ce.Duplicates, 1)
	assert.Equal(t, "shared", ce.Duplicates[0].Name)
	assert.Equal(t, []string{"alpha", "beta"}, ce.Duplicates[0].Providers)
	assert.Contains(t, err.Error(), `"shared"`)
}

func TestBuild_CollisionWithinProvider(t *testing.T) {
	_, err := Build(provider.NewTable("alpha", tool("x", "1"), tool("x", "2")))

	var ce *CollisionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"alpha", "alpha"}, ce.Duplicates[0].Providers)
}

func TestBuild_ReportsAllCollisions(t *testing.T) {
	p1 := provider.NewTable("a", tool("x", ""), tool("y", ""))
	p2 := provider.NewTable("b", tool("y", ""), tool("x", ""))

	_, err := Build(p1, p2)
	var ce *CollisionError
	require.True(t, errors.As(err, &ce))
	require.Len(t, ce.Duplicates, 2)
	assert.Equal(t, "x", ce.Duplicates[0].Name)
	assert.Equal(t, "y", ce.Duplicates[1].Name)
}

func TestBuild_SpecWithoutHandler(t *testing.T) {
	p := &mapProvider{
		name:     "broken",
		specs:    []mcp.Tool{{Name: "ghost", InputSchema: json.RawMessage(`{"type":"object"}`)}},
		handlers: map[string]provider.HandlerFunc{},
	}

	_, err := Build(p)
	var se *SpecError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "ghost", se.Tool)
	assert.Equal(t, "no handler registered", se.Reason)
}

func TestBuild_HandlerWithoutSpec(t *testing.T) {
	p := &mapProvider{
		name: "broken",
		handlers: map[string]provider.HandlerFunc{
			"orphan": func(context.Context, schema.Args) (*mcp.CallToolResult, error) { return nil, nil },
		},
	}

	_, err := Build(p)
	var se *SpecError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "orphan", se.Tool)
}

func TestBuild_InvalidSchema(t *testing.T) {
	bad := tool("bad", "")
	bad.Spec.InputSchema = json.RawMessage(`{"type":"array"}`)

	_, err := Build(provider.NewTable("p", bad))
	var se *SpecError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "invalid inputSchema", se.Reason)
	assert.Error(t, errors.Unwrap(err))
}

func TestBuild_EmptyName(t *testing.T) {
	_, err := Build(provider.NewTable("p", tool("  ", "")))
	var se *SpecError
	assert.True(t, errors.As(err, &se))
}

func TestResolve_UnknownOnEmptyCatalog(t *testing.T) {
	c, err := Build()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	_, ok := c.Resolve("nope")
	assert.False(t, ok)
}

func TestSearch_RanksNameMatchesFirst(t *testing.T) {
	components := provider.NewTable("components",
		tool("react_component_generator", "Generate React components"),
		tool("react_hook_generator", "Generate custom hooks"),
	).Describe("React code generation", "react", "hook")
	styling := provider.NewTable("styling",
		tool("tailwind_optimizer", "Optimize Tailwind classes"),
		tool("tailwind_color_palette", "Generate a color palette"),
	).Describe("Tailwind CSS", "tailwind", "css")

	c, err := Build(components, styling)
	require.NoError(t, err)

	res := c.Search("hook", "", 0)
	require.NotEmpty(t, res)
	assert.Equal(t, "react_hook_generator", res[0].Name)
	assert.Equal(t, "components", res[0].Category)

	res = c.Search("palette", "styling", 5)
	require.NotEmpty(t, res)
	assert.Equal(t, "tailwind_color_palette", res[0].Name)

	res = c.Search("", "styling", 0)
	assert.Len(t, res, 2)

	res = c.Search("generate", "", 1)
	assert.Len(t, res, 1)

	assert.Empty(t, c.Search("zzzzqqq", "", 0))
	assert.Len(t, c.Categories(), 2)
}
