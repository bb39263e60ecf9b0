package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golovatskygroup/mcp-frontend/internal/provider"
	"github.com/golovatskygroup/mcp-frontend/internal/providers/textutil"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

// API returns the React Flow API reference generators (hooks, components, utils, types).
func API() *provider.Table {
	return provider.NewTable("api",
		provider.Tool{Spec: hookExamplesSpec, Handler: hookExamples},
		provider.Tool{Spec: advancedComponentsSpec, Handler: advancedComponents},
		provider.Tool{Spec: utilitiesSpec, Handler: utilities},
		provider.Tool{Spec: typeDefinitionsSpec, Handler: typeDefinitions},
		provider.Tool{Spec: performanceOptimizerSpec, Handler: performanceOptimizer},
		provider.Tool{Spec: accessibilityEnhancerSpec, Handler: accessibilityEnhancer},
	)
}

var hookExamplesSpec = mcp.Tool{
	Name:        "react_flow_hook_examples",
	Description: "Generate examples for React Flow hooks (useReactFlow, useStore, useConnection, useViewport, etc.)",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"hook_name": {"type": "string", "enum": ["useReactFlow", "useStore", "useStoreApi", "useConnection", "useViewport", "useKeyPress", "useNodes", "useEdges", "useNodesState", "useEdgesState", "useNodesInitialized", "useHandleConnections", "useNodeConnections", "useNodeId", "useOnSelectionChange", "useOnViewportChange", "useUpdateNodeInternals", "useNodesData", "useInternalNode"], "description": "React Flow hook to generate examples for"},
			"use_case": {"type": "string", "enum": ["basic_usage", "advanced_patterns", "performance_optimization", "custom_components", "state_management"], "description": "Specific use case for the hook example"},
			"include_typescript": {"type": "boolean", "default": true, "description": "Include TypeScript type definitions and interfaces"}
		},
		"required": ["hook_name", "use_case"]
	}`),
}

var advancedComponentsSpec = mcp.Tool{
	Name:        "react_flow_advanced_components",
	Description: "Generate React Flow component implementations (Handle, NodeToolbar, EdgeToolbar, MiniMap, etc.)",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"component_type": {"type": "string", "enum": ["Handle", "NodeToolbar", "EdgeToolbar", "MiniMap", "Controls", "Background", "Panel", "ViewportPortal", "BaseEdge", "EdgeText", "EdgeLabelRenderer", "NodeResizer", "NodeResizeControl", "ControlButton"], "description": "React Flow component to create implementation for"},
			"customization_level": {"type": "string", "enum": ["basic", "styled", "advanced", "production"], "description": "Level of customization and features to include"},
			"features": {
				"type": "array",
				"items": {"type": "string", "enum": ["animations", "drag_and_drop", "responsive_design", "accessibility", "keyboard_navigation", "touch_support", "theming", "performance_optimization", "custom_styling", "event_handling", "validation", "persistence"]},
				"description": "Additional features to include in the component"
			},
			"integration_context": {"type": "string", "enum": ["standalone", "with_forms", "with_data_binding", "with_animations", "enterprise"], "default": "standalone", "description": "Context for component integration"}
		},
		"required": ["component_type", "customization_level"]
	}`),
}

var utilitiesSpec = mcp.Tool{
	Name:        "react_flow_utilities_generator",
	Description: "Generate React Flow utility functions (addEdge, getBezierPath, getConnectedEdges, viewport calculations, etc.)",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"utility_category": {"type": "string", "enum": ["edge_utilities", "node_utilities", "viewport_utilities", "path_utilities", "validation_utilities", "transformation_utilities", "selection_utilities", "change_utilities"], "description": "Category of utilities to generate"},
			"specific_functions": {
				"type": "array",
				"items": {"type": "string", "enum": ["addEdge", "applyNodeChanges", "applyEdgeChanges", "getBezierPath", "getSmoothStepPath", "getStraightPath", "getSimpleBezierPath", "getConnectedEdges", "getIncomers", "getOutgoers", "getNodesBounds", "getViewportForBounds", "isNode", "isEdge", "reconnectEdge"]},
				"description": "Specific utility functions to implement"
			},
			"complexity": {"type": "string", "enum": ["basic", "intermediate", "advanced", "enterprise"], "default": "intermediate", "description": "Complexity level of utility implementations"},
			"use_case": {"type": "string", "enum": ["development", "production", "performance_critical", "educational"], "default": "development", "description": "Intended use case for the utilities"}
		},
		"required": ["utility_category"]
	}`),
}

var typeDefinitionsSpec = mcp.Tool{
	Name:        "react_flow_typescript_definitions",
	Description: "Generate TypeScript interfaces, types and definitions for React Flow applications",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"definition_scope": {"type": "string", "enum": ["nodes_and_edges", "custom_components", "event_handlers", "hook_types", "utility_types", "configuration_types", "state_management", "complete_application"], "description": "Scope of TypeScript definitions to generate"},
			"type_categories": {
				"type": "array",
				"items": {"type": "string", "enum": ["Node", "Edge", "NodeProps", "EdgeProps", "Connection", "ConnectionState", "Viewport", "ReactFlowInstance", "Handle", "Position", "XYPosition", "NodeChange", "EdgeChange", "FitViewOptions", "OnConnect", "OnMove", "NodeTypes", "EdgeTypes", "BackgroundVariant", "PanelPosition", "SelectionMode", "ConnectionMode", "MarkerType", "AriaLabelConfig"]},
				"description": "Specific type categories to include"
			},
			"strictness_level": {"type": "string", "enum": ["strict", "moderate", "flexible"], "default": "strict", "description": "Level of TypeScript strictness for generated definitions"},
			"include_generics": {"type": "boolean", "default": true, "description": "Include generic type parameters for extensibility"}
		},
		"required": ["definition_scope"]
	}`),
}

var performanceOptimizerSpec = mcp.Tool{
	Name:        "react_flow_performance_optimizer",
	Description: "Generate performance optimization strategies and implementations for React Flow applications",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"optimization_focus": {"type": "string", "enum": ["rendering_performance", "memory_optimization", "interaction_responsiveness", "large_datasets", "real_time_updates", "mobile_performance", "bundle_size", "initial_load_time"], "description": "Primary performance optimization focus"},
			"node_count_range": {"type": "string", "enum": ["small_10_100", "medium_100_1000", "large_1000_10000", "xlarge_10000_plus"], "description": "Expected node count range for optimization"},
			"optimization_techniques": {
				"type": "array",
				"items": {"type": "string", "enum": ["virtualization", "memoization", "web_workers", "lazy_loading", "debouncing", "throttling", "batch_updates", "viewport_culling", "component_splitting", "state_optimization", "edge_pooling"]},
				"description": "Specific optimization techniques to implement"
			},
			"target_metrics": {
				"type": "array",
				"items": {"type": "string", "enum": ["fps_60", "memory_under_100mb", "load_time_under_3s", "smooth_interactions"]},
				"description": "Target performance metrics"
			}
		},
		"required": ["optimization_focus", "node_count_range"]
	}`),
}

var accessibilityEnhancerSpec = mcp.Tool{
	Name:        "react_flow_accessibility_enhancer",
	Description: "Generate accessibility features for React Flow applications (ARIA, keyboard navigation, screen readers)",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"accessibility_level": {"type": "string", "enum": ["WCAG_A", "WCAG_AA", "WCAG_AAA"], "description": "Target WCAG compliance level"},
			"accessibility_features": {
				"type": "array",
				"items": {"type": "string", "enum": ["keyboard_navigation", "screen_reader_support", "focus_management", "aria_labels", "high_contrast", "reduced_motion", "voice_control", "alternative_text", "semantic_markup", "skip_links"]},
				"description": "Specific accessibility features to implement"
			},
			"user_scenarios": {
				"type": "array",
				"items": {"type": "string", "enum": ["vision_impaired", "motor_impaired", "cognitive_impaired", "keyboard_only", "mobile_touch", "voice_only"]},
				"description": "User scenarios to optimize for"
			},
			"testing_requirements": {"type": "boolean", "default": true, "description": "Include accessibility testing implementations"}
		},
		"required": ["accessibility_level", "accessibility_features"]
	}`),
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// titled renders each item as a title-cased bullet.
func titled(items []string, fallback string) string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = textutil.Title(it)
	}
	return textutil.Bullets(out, fallback)
}

func tsBlock(code string) string { return codeBlock("typescript", code) }

func hookExamples(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	hook := args.StringOr("hook_name", "useReactFlow")
	useCase := args.StringOr("use_case", "basic_usage")
	ts := args.BoolOr("include_typescript", true)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# React Flow Hook: %s\n\n## Use Case: %s\n## TypeScript Support: %s\n\n", hook, textutil.Title(useCase), yesNo(ts))
	sb.WriteString(hookSnippet(hook, useCase))
	fmt.Fprintf(&sb, `

### Best Practices:
- Call %s only inside a component rendered under ReactFlowProvider
- Keep hook dependency arrays complete
- Select the narrowest slice of state you need to limit re-renders
- Handle loading states before nodes are initialized

### Related Documentation:
- [React Flow Hooks](https://reactflow.dev/api-reference/hooks)
- [React Flow TypeScript Guide](https://reactflow.dev/learn/advanced-use/typescript)
`, hook)
	return mcp.TextResult(sb.String()), nil
}

func hookSnippet(hook, useCase string) string {
	if hook == "useReactFlow" && useCase != "basic_usage" {
		return fmt.Sprintf("// %s implementation for useReactFlow hook", useCase)
	}
	if code, ok := hookSnippets[hook]; ok {
		return tsBlock(code)
	}
	return fmt.Sprintf("// Implementation for %s hook with %s use case", hook, useCase)
}

var hookSnippets = map[string]string{
	"useReactFlow": `
import React, { useCallback } from 'react';
import { useReactFlow } from 'reactflow';

const FlowControls: React.FC = () => {
  const { addNodes, fitView, zoomIn, zoomOut, screenToFlowPosition } = useReactFlow();

  const handleFitView = useCallback(() => {
    fitView({ duration: 800, padding: 0.2 });
  }, [fitView]);

  const handleAddNode = useCallback(() => {
    addNodes({
      id: 'node-' + Date.now(),
      position: screenToFlowPosition({ x: 100, y: 100 }),
      data: { label: 'New Node' }
    });
  }, [addNodes, screenToFlowPosition]);

  return (
    <div className="flow-controls">
      <button onClick={handleFitView}>Fit View</button>
      <button onClick={handleAddNode}>Add Node</button>
      <button onClick={() => zoomIn({ duration: 200 })}>Zoom In</button>
      <button onClick={() => zoomOut({ duration: 200 })}>Zoom Out</button>
    </div>
  );
};`,
	"useStore": `
import React from 'react';
import { useStore } from 'reactflow';

const FlowAnalytics: React.FC = () => {
  const nodeCount = useStore(state => state.getNodes().length);
  const edgeCount = useStore(state => state.getEdges().length);
  const zoom = useStore(state => state.transform[2]);

  return (
    <div className="flow-analytics">
      <div>Nodes: {nodeCount}</div>
      <div>Edges: {edgeCount}</div>
      <div>Zoom: {zoom.toFixed(2)}</div>
    </div>
  );
};`,
	"useConnection": `
import React from 'react';
import { Handle, Position, useConnection } from 'reactflow';

const SmartHandle: React.FC<{ id: string; type: 'source' | 'target' }> = ({ id, type }) => {
  const connection = useConnection();
  const isSource = connection.fromHandle?.id === id;
  const isValidTarget = !!connection.fromHandle && type === 'target' && connection.fromHandle.id !== id;

  return (
    <Handle
      id={id}
      type={type}
      position={type === 'source' ? Position.Right : Position.Left}
      style={{
        backgroundColor: isSource ? '#10b981' : isValidTarget ? '#3b82f6' : '#6b7280',
        transform: connection.inProgress ? 'scale(1.2)' : 'scale(1)',
        transition: 'all 0.2s ease'
      }}
    />
  );
};`,
	"useViewport": `
import React from 'react';
import { useViewport } from 'reactflow';

const ViewportInfo: React.FC = () => {
  const { x, y, zoom } = useViewport();

  return (
    <div className="viewport-info">
      <div>X: {x.toFixed(2)}</div>
      <div>Y: {y.toFixed(2)}</div>
      <div>Zoom: {zoom.toFixed(2)}x</div>
    </div>
  );
};`,
	"useKeyPress": `
import { useEffect } from 'react';
import { useKeyPress, useReactFlow } from 'reactflow';

const KeyboardControls = () => {
  const deletePressed = useKeyPress('Delete');
  const selectAll = useKeyPress(['Meta+a', 'Control+a']);
  const { setNodes } = useReactFlow();

  useEffect(() => {
    if (deletePressed) {
      setNodes(nodes => nodes.filter(node => !node.selected));
    }
  }, [deletePressed, setNodes]);

  useEffect(() => {
    if (selectAll) {
      setNodes(nodes => nodes.map(node => ({ ...node, selected: true })));
    }
  }, [selectAll, setNodes]);

  return null;
};`,
	"useNodesInitialized": `
import React from 'react';
import { useNodesInitialized } from 'reactflow';

const LoadingOverlay: React.FC = () => {
  const nodesInitialized = useNodesInitialized();
  if (nodesInitialized) return null;

  return (
    <div className="loading-overlay">
      <div className="loading-spinner">Initializing nodes...</div>
    </div>
  );
};`,
}

func advancedComponents(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	component := args.StringOr("component_type", "Handle")
	level := args.StringOr("customization_level", "basic")
	features := args.Strings("features")
	integration := args.StringOr("integration_context", "standalone")

	impl := fmt.Sprintf("// %s component implementation with %s level customization", component, level)
	if component == "Handle" {
		impl = tsBlock(advancedHandle)
	}

	text := fmt.Sprintf(`# React Flow Component: %s

## Customization Level: %s
## Integration Context: %s

%s

### Component Features:
%s

### Integration Guidelines:
- Designed for %s usage
- Compatible with the React Flow v11+ API
- Render inside a ReactFlow tree so store hooks resolve

### Related Documentation:
- [React Flow Components](https://reactflow.dev/api-reference/components)
- [Custom Nodes](https://reactflow.dev/learn/customization/custom-nodes)
`, component, textutil.Title(level), textutil.Title(integration), impl,
		titled(features, "- No additional features selected"), strings.ReplaceAll(integration, "_", " "))
	return mcp.TextResult(text), nil
}

const advancedHandle = `
import React, { useMemo } from 'react';
import { Handle, Position, useConnection, HandleProps } from 'reactflow';

interface AdvancedHandleProps extends Omit<HandleProps, 'position'> {
  position: Position;
  label?: string;
  validationRule?: (connection: any) => boolean;
  size?: 'small' | 'medium' | 'large';
}

const sizes = { small: 8, medium: 12, large: 16 };

const AdvancedHandle: React.FC<AdvancedHandleProps> = ({
  id, type, position, label, validationRule, size = 'medium', style, ...props
}) => {
  const connection = useConnection();

  const isValid = useMemo(() => {
    if (!connection.fromHandle || !validationRule) return true;
    return validationRule(connection);
  }, [connection, validationRule]);

  const isActive = connection.fromHandle?.id === id;
  const isValidTarget = connection.inProgress && type === 'target' && isValid;

  return (
    <div className="advanced-handle-wrapper">
      {label && <div className={'handle-label ' + position}>{label}</div>}
      <Handle
        id={id}
        type={type}
        position={position}
        style={{
          width: sizes[size],
          height: sizes[size],
          backgroundColor: isActive ? '#10b981' : isValidTarget ? '#3b82f6' : '#6b7280',
          border: '2px solid white',
          transition: 'all 0.2s ease',
          ...style
        }}
        {...props}
      />
    </div>
  );
};

export default AdvancedHandle;`

func utilities(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	category := args.StringOr("utility_category", "edge_utilities")
	fns := args.Strings("specific_functions")
	complexity := args.StringOr("complexity", "intermediate")
	useCase := args.StringOr("use_case", "development")

	impl := fmt.Sprintf("// %s utilities with %s complexity", category, complexity)
	if category == "edge_utilities" {
		impl = tsBlock(edgeUtilities)
	}

	text := fmt.Sprintf(`# React Flow Utilities: %s

## Complexity: %s
## Use Case: %s

%s

### Requested Functions:
%s

### Implementation Notes:
- Utilities return new arrays and never mutate React Flow state in place
- Type guards (isNode, isEdge) keep mixed element lists safe
- Validation rules are opt-in and default to the strictest setting

### Related Documentation:
- [React Flow Utils](https://reactflow.dev/api-reference/utils)
`, textutil.Title(category), textutil.Title(complexity), textutil.Title(useCase), impl,
		textutil.Bullets(fns, "- All functions in the category"))
	return mcp.TextResult(text), nil
}

const edgeUtilities = `
import { Edge, Connection, MarkerType, addEdge } from 'reactflow';

export const addEdgeWithValidation = (
  edge: Edge | Connection,
  edges: Edge[],
  rules = { preventSelfConnection: true, preventDuplicates: true }
): Edge[] => {
  if (rules.preventSelfConnection && edge.source === edge.target) {
    return edges;
  }
  if (rules.preventDuplicates && edges.some(e =>
    e.source === edge.source &&
    e.target === edge.target &&
    e.sourceHandle === edge.sourceHandle &&
    e.targetHandle === edge.targetHandle
  )) {
    return edges;
  }
  return addEdge(edge, edges);
};

export const createStyledEdge = (
  connection: Connection,
  style: 'default' | 'animated' | 'dashed' = 'default'
): Edge => {
  const base: Edge = {
    id: 'edge-' + connection.source + '-' + connection.target + '-' + Date.now(),
    source: connection.source!,
    target: connection.target!,
    sourceHandle: connection.sourceHandle,
    targetHandle: connection.targetHandle
  };

  switch (style) {
    case 'animated':
      return { ...base, animated: true, markerEnd: { type: MarkerType.ArrowClosed, color: '#3b82f6' } };
    case 'dashed':
      return { ...base, style: { stroke: '#6b7280', strokeDasharray: '5,5' } };
    default:
      return base;
  }
};`

func typeDefinitions(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	scope := args.StringOr("definition_scope", "nodes_and_edges")
	categories := args.Strings("type_categories")
	strictness := args.StringOr("strictness_level", "strict")
	generics := args.BoolOr("include_generics", true)

	var sb strings.Builder
	sb.WriteString("import type { Node, Edge, OnConnect, OnNodesChange, OnEdgesChange } from 'reactflow';\n")
	if len(categories) > 0 {
		fmt.Fprintf(&sb, "import type { %s } from 'reactflow';\n", strings.Join(categories, ", "))
	}
	sb.WriteString(`
export interface CustomNodeData {
  label: string;
  description?: string;
  color?: string;
}

export interface CustomEdgeData {
  label?: string;
  weight?: number;
  style?: 'solid' | 'dashed' | 'dotted';
}
`)
	if generics {
		sb.WriteString(`
export type CustomNode<T extends Record<string, unknown> = CustomNodeData> = Node<T>;
export type CustomEdge<T extends Record<string, unknown> = CustomEdgeData> = Edge<T>;
`)
	} else {
		sb.WriteString(`
export type CustomNode = Node<CustomNodeData>;
export type CustomEdge = Edge<CustomEdgeData>;
`)
	}
	optional := "?"
	if strictness == "strict" {
		optional = ""
	}
	fmt.Fprintf(&sb, `
export interface FlowState {
  nodes: CustomNode[];
  edges: CustomEdge[];
  viewport%s: { x: number; y: number; zoom: number };
}

export interface FlowEventHandlers {
  onConnect: OnConnect;
  onNodesChange: OnNodesChange;
  onEdgesChange: OnEdgesChange;
  onNodeClick?: (event: React.MouseEvent, node: CustomNode) => void;
}`, optional)

	text := fmt.Sprintf(`# React Flow TypeScript Definitions

## Scope: %s
## Strictness: %s
## Generic Support: %s

%s

### Usage Guidelines:
- Parameterize Node and Edge with your data types instead of using any
- Extend the base interfaces for custom node and edge components
- Keep nodeTypes and edgeTypes maps typed to catch key mismatches

### Related Documentation:
- [React Flow Types](https://reactflow.dev/api-reference/types)
`, textutil.Title(scope), textutil.Title(strictness), yesNo(generics), tsBlock(sb.String()))
	return mcp.TextResult(text), nil
}

func performanceOptimizer(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	focus := args.StringOr("optimization_focus", "rendering_performance")
	nodes := args.StringOr("node_count_range", "small_10_100")
	techniques := args.Strings("optimization_techniques")
	metrics := args.Strings("target_metrics")

	text := fmt.Sprintf(`# React Flow Performance Optimization

## Focus: %s
## Node Count: %s

%s

### Optimization Techniques:
%s

### Target Metrics:
%s

### Implementation Notes:
- Wrap custom nodes in React.memo and define nodeTypes outside components
- Cull nodes outside the viewport for large node counts
- Debounce or batch change handlers during drag operations
- Profile with React DevTools before and after each change

### Related Documentation:
- [React Flow Performance Guide](https://reactflow.dev/learn/advanced-use/performance)
`, textutil.Title(focus), textutil.Title(nodes), tsBlock(optimizedNode),
		titled(techniques, "- Memoization (default)"), titled(metrics, "- No explicit targets"))
	return mcp.TextResult(text), nil
}

const optimizedNode = `
import React, { memo, useMemo } from 'react';
import { Node, NodeProps, OnNodesChange } from 'reactflow';
import debounce from 'lodash/debounce';

export const OptimizedNode = memo<NodeProps>(({ data, selected }) => {
  const style = useMemo(() => ({
    border: selected ? '2px solid blue' : '1px solid gray',
    borderRadius: '8px',
    padding: '10px',
    background: 'white'
  }), [selected]);

  return <div style={style}>{data.label}</div>;
});

export const useViewportCulling = (nodes: Node[], bounds: { x: number; y: number; width: number; height: number }) =>
  useMemo(() => nodes.filter(node =>
    node.position.x + 200 > bounds.x &&
    node.position.x < bounds.x + bounds.width &&
    node.position.y + 100 > bounds.y &&
    node.position.y < bounds.y + bounds.height
  ), [nodes, bounds]);

export const useDebouncedNodeChanges = (onNodesChange: OnNodesChange, delay = 100) =>
  useMemo(() => debounce(onNodesChange, delay), [onNodesChange, delay]);`

func accessibilityEnhancer(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	level := args.StringOr("accessibility_level", "WCAG_AA")
	features := args.Strings("accessibility_features")
	scenarios := args.Strings("user_scenarios")
	testing := args.BoolOr("testing_requirements", true)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# React Flow Accessibility Enhancement\n\n## WCAG Compliance: %s\n## Testing Included: %s\n\n", level, yesNo(testing))
	fmt.Fprintf(&sb, "```typescript\n// %s compliant React Flow wrapper\n%s\n```\n", level, strings.TrimSpace(accessibleFlow))
	if testing {
		sb.WriteString("\n```typescript\n" + strings.TrimSpace(accessibilityTest) + "\n```\n")
	}
	fmt.Fprintf(&sb, `
### Accessibility Features:
%s

### Supported User Scenarios:
%s

### Implementation Guidelines:
- Follow WCAG %s success criteria
- Announce selection and connection changes through a live region
- Keep every pointer action reachable from the keyboard

### Related Documentation:
- [React Flow Accessibility](https://reactflow.dev/learn/advanced-use/accessibility)
- [WCAG Quick Reference](https://www.w3.org/WAI/WCAG21/quickref/)
`, titled(features, "- Keyboard Navigation"), titled(scenarios, "- Keyboard Only"), strings.TrimPrefix(level, "WCAG_"))
	return mcp.TextResult(sb.String()), nil
}

const accessibleFlow = `
import React, { useCallback } from 'react';
import ReactFlow, { useReactFlow } from 'reactflow';

const AccessibleReactFlow: React.FC = () => {
  const { getNodes, setNodes } = useReactFlow();

  const announce = useCallback((message: string) => {
    const region = document.getElementById('flow-announcements');
    if (region) region.textContent = message;
  }, []);

  const handleKeyDown = useCallback((event: React.KeyboardEvent) => {
    if (event.key !== 'Tab' || !event.altKey) return;
    event.preventDefault();
    const nodes = getNodes();
    const current = nodes.findIndex(n => n.selected);
    const next = nodes[(current + 1) % nodes.length];
    setNodes(nodes.map(n => ({ ...n, selected: n.id === next.id })));
    announce('Selected node: ' + (next.data.label || next.id));
  }, [getNodes, setNodes, announce]);

  return (
    <div role="application" aria-label="Interactive flow diagram" aria-describedby="flow-instructions" onKeyDown={handleKeyDown} tabIndex={0}>
      <div id="flow-instructions" className="sr-only">Use Alt+Tab to move between nodes, Enter to select</div>
      <div id="flow-announcements" aria-live="assertive" aria-atomic="true" className="sr-only" />
      <ReactFlow
        onNodeClick={(_, node) => announce('Selected node: ' + (node.data.label || node.id))}
        onEdgeClick={(_, edge) => announce('Selected edge from ' + edge.source + ' to ' + edge.target)}
      />
    </div>
  );
};`

const accessibilityTest = `
import { render } from '@testing-library/react';
import { axe, toHaveNoViolations } from 'jest-axe';

expect.extend(toHaveNoViolations);

it('has no detectable accessibility violations', async () => {
  const { container } = render(<AccessibleReactFlow />);
  expect(await axe(container)).toHaveNoViolations();
});`
