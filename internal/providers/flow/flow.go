// Package flow provides React Flow node placement, API reference and learning tools.
//
// Positioning, API and learning tools live in their own tables and are mounted into
// the provider, so the catalog sees a single flat list.
package flow

import (
	"encoding/json"

	"github.com/golovatskygroup/mcp-frontend/internal/provider"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

const Name = "flow"

// New returns the flow provider.
func New() *provider.Table {
	return provider.NewTable(Name).
		Describe("React Flow connection-aware positioning, layouts, API reference and learning guides", "react flow", "reactflow", "node", "edge", "handle", "dagre", "layout", "whiteboard", "diagram", "graph", "tutorial", "debugging").
		Mount(Positioning()).
		Mount(API()).
		Mount(Learning())
}

// Positioning returns the connection positioning tools as a standalone table.
func Positioning() *provider.Table {
	return provider.NewTable("positioning",
		provider.Tool{Spec: connectionAwareNodeSpec, Handler: generateConnectionAwareNode},
		provider.Tool{Spec: positioningPromptsSpec, Handler: positioningPrompts},
		provider.Tool{Spec: dagreOptimizerSpec, Handler: optimizeDagre},
		provider.Tool{Spec: handleGuideSpec, Handler: handleGuide},
		provider.Tool{Spec: whiteboardOptimizerSpec, Handler: optimizeWhiteboard},
	)
}

var connectionAwareNodeSpec = mcp.Tool{
	Name:        "generate_connection_aware_node",
	Description: "Generate React Flow node placement code that positions nodes on the correct connection side",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"connection_side": {"type": "string", "enum": ["right", "left", "top", "bottom"], "description": "Side where the connection originates from the source node"},
			"layout_style": {"type": "string", "enum": ["whiteboard", "hierarchical", "organic", "tree"], "description": "Overall layout style for the flow diagram"},
			"spacing_config": {
				"type": "object",
				"properties": {
					"horizontal": {"type": "number", "default": 200},
					"vertical": {"type": "number", "default": 150},
					"margin": {"type": "number", "default": 20}
				},
				"description": "Spacing configuration for node placement"
			},
			"auto_layout": {"type": "boolean", "description": "Apply automatic layout after node creation", "default": true}
		},
		"required": ["connection_side", "layout_style"]
	}`),
}

var positioningPromptsSpec = mcp.Tool{
	Name:        "codex_positioning_prompts",
	Description: "Generate specific prompts for instructing a coding assistant on connection-aware positioning",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"scenario": {"type": "string", "enum": ["new_node_creation", "workflow_building", "decision_tree", "whiteboard_brainstorming", "process_flow", "mindmap"], "description": "Specific scenario for node positioning"},
			"complexity_level": {"type": "string", "enum": ["basic", "intermediate", "advanced"], "description": "Complexity level for the positioning logic", "default": "intermediate"}
		},
		"required": ["scenario"]
	}`),
}

var dagreOptimizerSpec = mcp.Tool{
	Name:        "dagre_configuration_optimizer",
	Description: "Generate optimized Dagre layout configurations for connection-aware positioning",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"flow_direction": {"type": "string", "enum": ["TB", "BT", "LR", "RL"], "description": "Primary flow direction (Top-Bottom, Bottom-Top, Left-Right, Right-Left)"},
			"node_count": {"type": "string", "enum": ["small_1_10", "medium_10_50", "large_50_100", "xlarge_100_plus"], "description": "Expected number of nodes for optimization", "default": "medium_10_50"},
			"connection_density": {"type": "string", "enum": ["sparse", "moderate", "dense"], "description": "Expected connection density between nodes", "default": "moderate"}
		},
		"required": ["flow_direction"]
	}`),
}

var handleGuideSpec = mcp.Tool{
	Name:        "handle_positioning_guide",
	Description: "Generate handle positioning configurations for optimal connection-side placement",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"node_type": {"type": "string", "enum": ["input", "output", "process", "decision", "connector", "custom"], "description": "Type of node for handle configuration"},
			"connection_pattern": {"type": "string", "enum": ["linear", "branching", "converging", "bidirectional"], "description": "Expected connection pattern"},
			"visual_style": {"type": "string", "enum": ["minimal", "styled", "animated", "professional"], "description": "Visual style for handles", "default": "minimal"}
		},
		"required": ["node_type", "connection_pattern"]
	}`),
}

var whiteboardOptimizerSpec = mcp.Tool{
	Name:        "whiteboard_layout_optimizer",
	Description: "Generate whiteboard-optimized layout configurations for natural node placement",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"whiteboard_size": {"type": "string", "enum": ["compact_800x600", "standard_1200x800", "large_1600x1200", "xlarge_2000x1500"], "description": "Target whiteboard dimensions"},
			"content_type": {"type": "string", "enum": ["brainstorming", "process_mapping", "system_design", "workflow_creation"], "description": "Type of content being created"},
			"collaboration_mode": {"type": "boolean", "description": "Whether this is for collaborative editing", "default": false}
		},
		"required": ["whiteboard_size", "content_type"]
	}`),
}
