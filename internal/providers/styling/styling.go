// Package styling provides Tailwind CSS class, layout and palette tools.
package styling

import (
	"encoding/json"

	"github.com/golovatskygroup/mcp-frontend/internal/provider"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

const Name = "styling"

// New returns the styling provider.
func New() *provider.Table {
	return provider.NewTable(Name,
		provider.Tool{Spec: classSuggesterSpec, Handler: suggestClasses},
		provider.Tool{Spec: componentBuilderSpec, Handler: buildComponent},
		provider.Tool{Spec: responsiveGeneratorSpec, Handler: generateResponsive},
		provider.Tool{Spec: optimizerSpec, Handler: optimizeClasses},
		provider.Tool{Spec: colorPaletteSpec, Handler: generatePalette},
	).Describe("Tailwind CSS classes, components, responsive layouts and color palettes", "tailwind", "css", "class", "style", "color", "palette", "responsive", "layout")
}

var classSuggesterSpec = mcp.Tool{
	Name:        "tailwind_class_suggester",
	Description: "Suggest appropriate Tailwind CSS classes based on design requirements",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"design_description": {"type": "string", "description": "Description of the desired design/styling"},
			"element_type": {"type": "string", "enum": ["button", "card", "form", "navigation", "layout", "text", "general"], "description": "Type of element to style"},
			"responsive": {"type": "boolean", "description": "Whether to include responsive variants", "default": true}
		},
		"required": ["design_description", "element_type"]
	}`),
}

var componentBuilderSpec = mcp.Tool{
	Name:        "tailwind_component_builder",
	Description: "Build complete Tailwind CSS component markup with best practices",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"component_type": {"type": "string", "enum": ["button", "card", "modal", "form", "navigation", "hero", "grid", "table"], "description": "Type of component to build"},
			"style_variant": {"type": "string", "enum": ["primary", "secondary", "outline", "ghost", "minimal"], "description": "Style variant for the component", "default": "primary"},
			"size": {"type": "string", "enum": ["xs", "sm", "md", "lg", "xl"], "description": "Size variant", "default": "md"},
			"color_scheme": {"type": "string", "enum": ["blue", "green", "red", "purple", "gray", "indigo"], "description": "Color scheme to use", "default": "blue"}
		},
		"required": ["component_type"]
	}`),
}

var responsiveGeneratorSpec = mcp.Tool{
	Name:        "tailwind_responsive_generator",
	Description: "Generate responsive design patterns using Tailwind CSS",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"layout_type": {"type": "string", "enum": ["grid", "flex", "stack", "sidebar"], "description": "Type of responsive layout"},
			"breakpoints": {"type": "array", "items": {"type": "string", "enum": ["sm", "md", "lg", "xl", "2xl"]}, "description": "Breakpoints to target"},
			"mobile_first": {"type": "boolean", "description": "Use mobile-first approach", "default": true}
		},
		"required": ["layout_type"]
	}`),
}

var optimizerSpec = mcp.Tool{
	Name:        "tailwind_optimizer",
	Description: "Optimize Tailwind CSS usage and suggest improvements",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"html_content": {"type": "string", "description": "HTML content with Tailwind classes to optimize"},
			"optimization_type": {"type": "string", "enum": ["duplicate_removal", "class_ordering", "responsive_optimization", "all"], "description": "Type of optimization to perform", "default": "all"}
		},
		"required": ["html_content"]
	}`),
}

var colorPaletteSpec = mcp.Tool{
	Name:        "tailwind_color_palette",
	Description: "Generate comprehensive color palettes and usage patterns",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"primary_color": {"type": "string", "description": "Primary color name or hex code"},
			"palette_type": {"type": "string", "enum": ["monochromatic", "complementary", "triadic", "analogous"], "description": "Type of color palette to generate", "default": "monochromatic"},
			"include_usage": {"type": "boolean", "description": "Include usage examples for each color", "default": true}
		},
		"required": ["primary_color"]
	}`),
}
