package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golovatskygroup/mcp-frontend/internal/schema"
)

func TestHookExamples(t *testing.T) {
	out := call(t, "react_flow_hook_examples", schema.Args{"hook_name": "useViewport", "use_case": "state_management", "include_typescript": false})
	assert.Contains(t, out, "# React Flow Hook: useViewport")
	assert.Contains(t, out, "## Use Case: State Management")
	assert.Contains(t, out, "## TypeScript Support: No")
	assert.Contains(t, out, "const { x, y, zoom } = useViewport();")

	out = call(t, "react_flow_hook_examples", schema.Args{"hook_name": "useReactFlow", "use_case": "advanced_patterns"})
	assert.Contains(t, out, "// advanced_patterns implementation for useReactFlow hook")
	assert.Contains(t, out, "## TypeScript Support: Yes")

	out = call(t, "react_flow_hook_examples", schema.Args{"hook_name": "useNodeId", "use_case": "basic_usage"})
	assert.Contains(t, out, "// Implementation for useNodeId hook with basic_usage use case")
}

func TestAdvancedComponents(t *testing.T) {
	out := call(t, "react_flow_advanced_components", schema.Args{
		"component_type":      "Handle",
		"customization_level": "production",
		"features":            []any{"keyboard_navigation", "theming"},
		"integration_context": "enterprise",
	})
	assert.Contains(t, out, "# React Flow Component: Handle")
	assert.Contains(t, out, "## Customization Level: Production")
	assert.Contains(t, out, "## Integration Context: Enterprise")
	assert.Contains(t, out, "- Keyboard Navigation\n- Theming")
	assert.Contains(t, out, "export default AdvancedHandle;")

	out = call(t, "react_flow_advanced_components", schema.Args{"component_type": "MiniMap", "customization_level": "basic"})
	assert.Contains(t, out, "// MiniMap component implementation with basic level customization")
	assert.Contains(t, out, "- No additional features selected")
	assert.Contains(t, out, "- Designed for standalone usage")
}

func TestUtilities(t *testing.T) {
	out := call(t, "react_flow_utilities_generator", schema.Args{"utility_category": "edge_utilities", "specific_functions": []any{"addEdge", "getBezierPath"}})
	assert.Contains(t, out, "# React Flow Utilities: Edge Utilities")
	assert.Contains(t, out, "## Complexity: Intermediate")
	assert.Contains(t, out, "## Use Case: Development")
	assert.Contains(t, out, "export const addEdgeWithValidation")
	assert.Contains(t, out, "- addEdge\n- getBezierPath")

	out = call(t, "react_flow_utilities_generator", schema.Args{"utility_category": "path_utilities", "complexity": "advanced"})
	assert.Contains(t, out, "// path_utilities utilities with advanced complexity")
	assert.Contains(t, out, "- All functions in the category")
}

func TestTypeDefinitions(t *testing.T) {
	out := call(t, "react_flow_typescript_definitions", schema.Args{
		"definition_scope": "complete_application",
		"type_categories":  []any{"Viewport", "XYPosition"},
		"strictness_level": "flexible",
		"include_generics": false,
	})
	assert.Contains(t, out, "## Scope: Complete Application")
	assert.Contains(t, out, "## Strictness: Flexible")
	assert.Contains(t, out, "## Generic Support: No")
	assert.Contains(t, out, "import type { Viewport, XYPosition } from 'reactflow';")
	assert.Contains(t, out, "export type CustomNode = Node<CustomNodeData>;")
	assert.Contains(t, out, "viewport?: { x: number")

	out = call(t, "react_flow_typescript_definitions", schema.Args{"definition_scope": "nodes_and_edges"})
	assert.Contains(t, out, "export type CustomNode<T extends")
	assert.Contains(t, out, "  viewport: { x: number")
	assert.NotContains(t, out, "import type { Viewport")
}

func TestPerformanceOptimizer(t *testing.T) {
	out := call(t, "react_flow_performance_optimizer", schema.Args{
		"optimization_focus":      "large_datasets",
		"node_count_range":        "xlarge_10000_plus",
		"optimization_techniques": []any{"viewport_culling", "web_workers"},
		"target_metrics":          []any{"fps_60"},
	})
	assert.Contains(t, out, "## Focus: Large Datasets")
	assert.Contains(t, out, "## Node Count: Xlarge 10000 Plus")
	assert.Contains(t, out, "- Viewport Culling\n- Web Workers")
	assert.Contains(t, out, "- Fps 60")
	assert.Contains(t, out, "export const useViewportCulling")

	out = call(t, "react_flow_performance_optimizer", schema.Args{})
	assert.Contains(t, out, "- Memoization (default)")
	assert.Contains(t, out, "- No explicit targets")
}

func TestAccessibilityEnhancer(t *testing.T) {
	out := call(t, "react_flow_accessibility_enhancer", schema.Args{
		"accessibility_level":    "WCAG_AAA",
		"accessibility_features": []any{"skip_links"},
		"user_scenarios":         []any{"voice_only"},
		"testing_requirements":   false,
	})
	assert.Contains(t, out, "## WCAG Compliance: WCAG_AAA")
	assert.Contains(t, out, "## Testing Included: No")
	assert.Contains(t, out, "// WCAG_AAA compliant React Flow wrapper")
	assert.Contains(t, out, "- Skip Links")
	assert.Contains(t, out, "- Voice Only")
	assert.Contains(t, out, "- Follow WCAG AAA success criteria")
	assert.NotContains(t, out, "jest-axe")

	out = call(t, "react_flow_accessibility_enhancer", schema.Args{"accessibility_level": "WCAG_AA"})
	assert.Contains(t, out, "jest-axe")
	assert.Contains(t, out, "- Keyboard Navigation")
}
