// Package catalogtools exposes the catalog itself as tools: search and describe.
package catalogtools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/golovatskygroup/mcp-frontend/internal/catalog"
	"github.com/golovatskygroup/mcp-frontend/internal/provider"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

const Name = "catalog"

// Provider serves search_tools and describe_tool. It is registered like any other
// provider and bound to the finished catalog with Bind.
type Provider struct {
	*provider.Table
	catalog atomic.Pointer[catalog.Catalog]
}

// New returns an unbound provider.
func New() *Provider {
	p := &Provider{}
	p.Table = provider.NewTable(Name,
		provider.Tool{Spec: searchSpec, Handler: p.search},
		provider.Tool{Spec: describeSpec, Handler: p.describe},
	).Describe("Discover the available tools and their input schemas", "search", "find", "tool", "tools", "describe", "schema", "help")
	return p
}

// Bind attaches the catalog the tools answer from.
func (p *Provider) Bind(c *catalog.Catalog) {
	p.catalog.Store(c)
}

var searchSpec = mcp.Tool{
	Name:        "search_tools",
	Description: "Search available tools by keyword or category. By default returns text; set format=json for machine-readable output.",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {"type": "string", "description": "Search query (e.g., 'react hook', 'tailwind', 'dagre')"},
			"category": {"type": "string", "description": "Filter by category (provider name, e.g. components, styling, packages, flow)"},
			"limit": {"type": "integer", "description": "Max results (default: 10)", "default": 10, "minimum": 1, "maximum": 100},
			"format": {"type": "string", "description": "Output format: text (default) or json", "enum": ["text", "json"], "default": "text"},
			"include_schemas": {"type": "boolean", "description": "Include inputSchema for each tool (json format only)", "default": false}
		},
		"required": ["query"]
	}`),
}

var describeSpec = mcp.Tool{
	Name:        "describe_tool",
	Description: "Get the full schema and description of a specific tool. Use this after search_tools to understand a tool's parameters.",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {"type": "string", "description": "Exact tool name (from search_tools results)"}
		},
		"required": ["name"]
	}`),
}

func (p *Provider) bound() (*catalog.Catalog, *mcp.CallToolResult) {
	c := p.catalog.Load()
	if c == nil {
		return nil, mcp.ErrorResult("Error: tool catalog is not available yet")
	}
	return c, nil
}

func (p *Provider) search(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	c, res := p.bound()
	if res != nil {
		return res, nil
	}
	query := strings.TrimSpace(args.String("query"))
	category := strings.TrimSpace(args.String("category"))
	results := c.Search(query, category, args.Int("limit", 10))

	if strings.EqualFold(args.String("format"), "json") {
		tools := make([]map[string]any, 0, len(results))
		for _, r := range results {
			item := map[string]any{
				"name":        r.Name,
				"category":    r.Category,
				"description": r.Description,
			}
			if args.Bool("include_schemas") {
				if e, ok := c.Resolve(r.Name); ok {
					var s any
					_ = json.Unmarshal(e.Spec.InputSchema, &s)
					item["inputSchema"] = s
				}
			}
			tools = append(tools, item)
		}
		return jsonResult(map[string]any{
			"query":    query,
			"category": category,
			"count":    len(tools),
			"tools":    tools,
		}), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d tools matching '%s':\n\n", len(results), query)
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. **%s** [%s]\n   %s\n\n", i+1, r.Name, r.Category, r.Description)
	}
	if len(results) == 0 {
		names := make([]string, 0, len(c.Categories()))
		for _, cat := range c.Categories() {
			names = append(names, cat.Name)
		}
		fmt.Fprintf(&sb, "Try a broader query or one of the categories: %s\n", strings.Join(names, ", "))
	}
	return mcp.TextResult(strings.TrimRight(sb.String(), "\n")), nil
}

func (p *Provider) describe(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	c, res := p.bound()
	if res != nil {
		return res, nil
	}
	name := strings.TrimSpace(args.String("name"))
	if name == "" {
		return mcp.TextResult("Specify a tool name. Available tools:\n" + bulletList(c.Names())), nil
	}
	e, ok := c.Resolve(name)
	if !ok {
		return mcp.ErrorResult(fmt.Sprintf("Error: tool '%s' not found. Use search_tools to find available tools.", name)), nil
	}
	return formatTool(e), nil
}

func formatTool(e catalog.Entry) *mcp.CallToolResult {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", e.Spec.Name)
	fmt.Fprintf(&sb, "**Provider:** %s\n\n", e.Provider)
	fmt.Fprintf(&sb, "**Description:** %s\n\n", e.Spec.Description)
	sb.WriteString("**Input Schema:**\n```json\n")

	var pretty map[string]any
	_ = json.Unmarshal(e.Spec.InputSchema, &pretty)
	b, _ := json.MarshalIndent(pretty, "", "  ")
	sb.Write(b)
	sb.WriteString("\n```\n")

	return mcp.TextResult(sb.String())
}

func bulletList(names []string) string {
	var sb strings.Builder
	for _, n := range names {
		sb.WriteString("- " + n + "\n")
	}
	return sb.String()
}

func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.ErrorResult("Error: encode result: " + err.Error())
	}
	return mcp.TextResult(string(b))
}
