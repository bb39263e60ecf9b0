package providers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golovatskygroup/mcp-frontend/internal/config"
	"github.com/golovatskygroup/mcp-frontend/internal/dispatch"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
)

func TestBuild_RegistersEveryProvider(t *testing.T) {
	c, err := Build(nil)
	require.NoError(t, err)

	assert.Equal(t, Names, c.Providers())
	assert.Equal(t, 33, c.Len())

	seen := map[string]bool{}
	for _, tool := range c.List() {
		assert.False(t, seen[tool.Name], "duplicate %s", tool.Name)
		seen[tool.Name] = true
	}
}

func TestBuild_SkipsDisabledProviders(t *testing.T) {
	cfg := config.Default()
	cfg.Providers.Disabled = []string{"flow", "PACKAGES"}

	c, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"components", "styling", "catalog"}, c.Providers())

	_, ok := c.Resolve("dagre_configuration_optimizer")
	assert.False(t, ok)
}

func TestBuild_BindsCatalogTools(t *testing.T) {
	c, err := Build(nil)
	require.NoError(t, err)

	d := dispatch.New(c, dispatch.Options{})
	res := d.CallTool(context.Background(), "search_tools", json.RawMessage(`{"query":"hook"}`))
	require.False(t, res.IsError, res.Text())
	assert.Contains(t, res.Text(), "react_hook_generator")
}

// Every shipped tool must answer with at least one non-empty text block for empty
// arguments and for arguments carrying an unknown key, in both validation modes.
func TestEveryToolAnswersInBothModes(t *testing.T) {
	c, err := Build(nil)
	require.NoError(t, err)

	inputs := []json.RawMessage{
		json.RawMessage(`{}`),
		json.RawMessage(`{"unexpected_key": 1}`),
		nil,
	}

	for _, mode := range []schema.Mode{schema.Lenient, schema.Strict} {
		d := dispatch.New(c, dispatch.Options{Mode: mode})
		for _, tool := range c.List() {
			for _, in := range inputs {
				res := d.CallTool(context.Background(), tool.Name, in)
				require.NotNil(t, res, "%s %s", mode, tool.Name)
				require.NotEmpty(t, res.Content, "%s %s", mode, tool.Name)
				assert.Equal(t, "text", res.Content[0].Type)
				assert.NotEmpty(t, res.Text(), "%s %s", mode, tool.Name)
				if mode == schema.Lenient {
					assert.False(t, res.IsError, "%s %s: %s", mode, tool.Name, res.Text())
				}
			}
		}
	}
}

func TestStrictModeRejectsMissingRequired(t *testing.T) {
	c, err := Build(nil)
	require.NoError(t, err)

	d := dispatch.New(c, dispatch.Options{Mode: schema.Strict})
	res := d.CallTool(context.Background(), "tailwind_class_suggester", json.RawMessage(`{"design_description":"x"}`))
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text(), "Invalid arguments for tailwind_class_suggester")
	assert.Contains(t, res.Text(), "element_type")
}

func TestMalformedInputDoesNotAffectLaterCalls(t *testing.T) {
	c, err := Build(nil)
	require.NoError(t, err)
	d := dispatch.New(c, dispatch.Options{})

	bad := d.CallTool(context.Background(), "package_analyzer", json.RawMessage(`{"package_json":"{not json"}`))
	assert.True(t, bad.IsError)
	assert.Contains(t, bad.Text(), "Error analyzing package.json")

	good := d.CallTool(context.Background(), "react_hook_generator", json.RawMessage(`{"hook_name":"useThing","functionality":"x"}`))
	assert.False(t, good.IsError)
	assert.Contains(t, good.Text(), "export const useThing")
}
