// Package components provides React, React Native and TypeScript code generators.
package components

import (
	"encoding/json"

	"github.com/golovatskygroup/mcp-frontend/internal/provider"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

const Name = "components"

// New returns the components provider.
func New() *provider.Table {
	return provider.NewTable(Name,
		provider.Tool{Spec: componentGeneratorSpec, Handler: generateComponent},
		provider.Tool{Spec: hookGeneratorSpec, Handler: generateHook},
		provider.Tool{Spec: componentAnalysisSpec, Handler: analyzeComponent},
		provider.Tool{Spec: performanceOptimizerSpec, Handler: optimizePerformance},
		provider.Tool{Spec: testingGeneratorSpec, Handler: generateTests},
		provider.Tool{Spec: nativeComponentSpec, Handler: generateNativeComponent},
		provider.Tool{Spec: interfaceGeneratorSpec, Handler: generateInterface},
	).Describe("React, React Native and TypeScript code generation", "react", "component", "hook", "typescript", "interface", "native", "jsx")
}

var componentGeneratorSpec = mcp.Tool{
	Name:        "react_component_generator",
	Description: "Generate React components with TypeScript, props interface, and styling",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"component_name": {"type": "string", "description": "Name of the React component"},
			"component_type": {"type": "string", "enum": ["functional", "class"], "description": "Type of component to generate", "default": "functional"},
			"props": {
				"type": "array",
				"description": "Component props definition",
				"items": {
					"type": "object",
					"properties": {
						"name": {"type": "string"},
						"type": {"type": "string"},
						"optional": {"type": "boolean", "default": false},
						"description": {"type": "string"}
					},
					"required": ["name", "type"]
				},
				"default": []
			},
			"styling": {"type": "string", "enum": ["tailwind", "css-modules", "styled-components", "none"], "description": "Styling approach", "default": "tailwind"},
			"functionality": {"type": "string", "description": "Description of component functionality"}
		},
		"required": ["component_name"]
	}`),
}

var hookGeneratorSpec = mcp.Tool{
	Name:        "react_hook_generator",
	Description: "Generate custom React hooks based on requirements",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"hook_name": {"type": "string", "description": "Name of the custom hook"},
			"functionality": {"type": "string", "description": "Description of what the hook should do"},
			"dependencies": {"type": "array", "items": {"type": "string"}, "description": "React hooks or external dependencies to use"}
		},
		"required": ["hook_name", "functionality"]
	}`),
}

var componentAnalysisSpec = mcp.Tool{
	Name:        "react_component_analysis",
	Description: "Analyze React components for best practices, performance issues, and potential improvements",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"component_code": {"type": "string", "description": "The React component code to analyze"},
			"analysis_type": {"type": "string", "enum": ["performance", "accessibility", "best_practices", "all"], "description": "Type of analysis to perform", "default": "all"}
		},
		"required": ["component_code"]
	}`),
}

var performanceOptimizerSpec = mcp.Tool{
	Name:        "react_performance_optimizer",
	Description: "Suggest performance optimizations for React components",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"component_code": {"type": "string", "description": "React component code to optimize"},
			"optimization_focus": {"type": "string", "enum": ["rendering", "memory", "bundle_size", "all"], "description": "Focus area for optimization", "default": "all"}
		},
		"required": ["component_code"]
	}`),
}

var testingGeneratorSpec = mcp.Tool{
	Name:        "react_testing_generator",
	Description: "Generate unit tests for React components using Jest and React Testing Library",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"component_code": {"type": "string", "description": "React component code to test"},
			"test_type": {"type": "string", "enum": ["unit", "integration", "snapshot"], "description": "Type of tests to generate", "default": "unit"},
			"coverage_level": {"type": "string", "enum": ["basic", "comprehensive"], "description": "Level of test coverage", "default": "comprehensive"}
		},
		"required": ["component_code"]
	}`),
}

var nativeComponentSpec = mcp.Tool{
	Name:        "react_native_component_generator",
	Description: "Generate React Native components with platform-specific optimizations",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"component_name": {"type": "string", "description": "Name of the React Native component"},
			"platform": {"type": "string", "enum": ["ios", "android", "both"], "description": "Target platform", "default": "both"}
		},
		"required": ["component_name"]
	}`),
}

var interfaceGeneratorSpec = mcp.Tool{
	Name:        "typescript_interface_generator",
	Description: "Generate TypeScript interfaces from a JSON sample or a description",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"data_source": {"type": "string", "description": "JSON data or description to generate interface from"},
			"interface_name": {"type": "string", "description": "Name for the generated interface"},
			"export": {"type": "boolean", "description": "Prefix interfaces with export", "default": true}
		},
		"required": ["data_source", "interface_name"]
	}`),
}
