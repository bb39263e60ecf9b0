package flow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/golovatskygroup/mcp-frontend/internal/providers/textutil"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

var oppositeSides = map[string]string{
	"right":  "left",
	"left":   "right",
	"top":    "bottom",
	"bottom": "top",
}

func oppositeSide(side string) string {
	if s, ok := oppositeSides[side]; ok {
		return s
	}
	return "left"
}

// rankdirForStyle picks the dagre rank direction for a layout style.
func rankdirForStyle(style string) string {
	switch style {
	case "hierarchical", "organic", "tree":
		return "TB"
	default:
		return "LR"
	}
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func generateConnectionAwareNode(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	side := args.StringOr("connection_side", "right")
	style := args.StringOr("layout_style", "whiteboard")
	spacing := args.Object("spacing_config")
	horizontal := spacing.Float("horizontal", 200)
	vertical := spacing.Float("vertical", 150)
	margin := spacing.Float("margin", 20)
	autoLayout := args.BoolOr("auto_layout", true)

	layoutFn := "get" + textutil.Pascal(style) + "Layout"

	var apply string
	if autoLayout {
		apply = fmt.Sprintf(`    // Apply automatic layout
    const { nodes: layoutedNodes, edges: layoutedEdges } = %s(updatedNodes, updatedEdges);
    setNodes(layoutedNodes);
    setEdges(layoutedEdges);`, layoutFn)
	} else {
		apply = `    // Manual positioning (auto-layout disabled)
    setNodes(updatedNodes);
    setEdges(updatedEdges);`
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "```typescript\n// Connection-Aware Node Positioning for %s Side\n", textutil.Title(side))
	fmt.Fprintf(&sb, `import dagre from 'dagre';
import { Node, Edge, Position } from 'reactflow';

interface PositioningConfig {
  horizontal: number;
  vertical: number;
  margin: number;
}

const SPACING_CONFIG: PositioningConfig = {
  horizontal: %s,
  vertical: %s,
  margin: %s
};

// Calculate position based on connection side
const getConnectionAwarePosition = (
  sourceNode: Node,
  connectionSide: '%[4]s',
  customSpacing?: Partial<PositioningConfig>
): { x: number; y: number } => {
  const spacing = { ...SPACING_CONFIG, ...customSpacing };

  const sideOffsets = {
    'right': { x: spacing.horizontal, y: 0 },
    'left': { x: -spacing.horizontal, y: 0 },
    'bottom': { x: 0, y: spacing.vertical },
    'top': { x: 0, y: -spacing.vertical }
  };

  const offset = sideOffsets[connectionSide] || sideOffsets['right'];

  return {
    x: sourceNode.position.x + offset.x,
    y: sourceNode.position.y + offset.y
  };
};

// Generate new node with connection-aware positioning
const generateConnectedNode = (
  sourceNodeId: string,
  sourceHandleSide: '%[4]s',
  nodeData: any,
  nodes: Node[],
  edges: Edge[]
): { newNode: Node; newEdge: Edge } => {
  const sourceNode = nodes.find(n => n.id === sourceNodeId);
  if (!sourceNode) {
    throw new Error(`+"`Source node ${sourceNodeId} not found`"+`);
  }

  const position = getConnectionAwarePosition(sourceNode, sourceHandleSide);

  const newNode: Node = {
    id: `+"`node-${Date.now()}-${Math.random().toString(36).substr(2, 9)}`"+`,
    type: 'default',
    position,
    data: nodeData,
    width: 172,
    height: 36
  };

  const newEdge: Edge = {
    id: `+"`edge-${sourceNodeId}-${newNode.id}`"+`,
    source: sourceNodeId,
    sourceHandle: 'source-%[4]s',
    target: newNode.id,
    targetHandle: 'target-%[5]s',
    animated: false,
    type: 'default'
  };

  return { newNode, newEdge };
};

// %[6]s Layout Configuration
const %[7]s = (nodes: Node[], edges: Edge[]): { nodes: Node[]; edges: Edge[] } => {
  const g = new dagre.graphlib.Graph();
  g.setDefaultEdgeLabel(() => ({}));

  g.setGraph({
    rankdir: '%[8]s',
    nodesep: SPACING_CONFIG.horizontal * 0.5,
    ranksep: SPACING_CONFIG.vertical,
    marginx: SPACING_CONFIG.margin,
    marginy: SPACING_CONFIG.margin
  });

  nodes.forEach((node) => {
    g.setNode(node.id, { width: node.width || 172, height: node.height || 36 });
  });

  edges.forEach((edge) => {
    g.setEdge(edge.source, edge.target);
  });

  dagre.layout(g);

  const layoutedNodes = nodes.map((node) => {
    const nodeWithPosition = g.node(node.id);
    return {
      ...node,
      position: {
        x: nodeWithPosition.x - (node.width || 172) / 2,
        y: nodeWithPosition.y - (node.height || 36) / 2,
      },
    };
  });

  return { nodes: layoutedNodes, edges };
};

// Usage in React Flow component
const useConnectionAwareNodeCreation = () => {
  const [nodes, setNodes] = useNodesState([]);
  const [edges, setEdges] = useEdgesState([]);

  const addConnectedNode = useCallback((
    sourceNodeId: string,
    nodeData: any,
    connectionSide: '%[4]s' = '%[4]s'
  ) => {
    const { newNode, newEdge } = generateConnectedNode(sourceNodeId, connectionSide, nodeData, nodes, edges);

    const updatedNodes = [...nodes, newNode];
    const updatedEdges = [...edges, newEdge];

%[9]s
  }, [nodes, edges, setNodes, setEdges]);

  return { addConnectedNode };
};

export {
  getConnectionAwarePosition,
  generateConnectedNode,
  %[7]s,
  useConnectionAwareNodeCreation
};
`+"```\n", num(horizontal), num(vertical), num(margin), side, oppositeSide(side), textutil.Title(style), layoutFn, rankdirForStyle(style), apply)

	mode := "Manual positioning control"
	if autoLayout {
		mode = "Automatic layout application"
	}
	fmt.Fprintf(&sb, `
## Key Features:
- Automatic positioning based on connection side (%s)
- Optimized for %s layout style
- Configurable spacing: %spx horizontal, %spx vertical
- %s
- TypeScript support with proper interfaces

## Usage Example:
`+"```typescript"+`
// Add a node connected to the %[1]s side
const { addConnectedNode } = useConnectionAwareNodeCreation();

addConnectedNode('existing-node-id', {
  label: 'New Connected Node',
  description: 'Placed on %[1]s side'
});
`+"```\n", side, style, num(horizontal), num(vertical), mode)

	return mcp.TextResult(sb.String()), nil
}

var scenarioPrompts = map[string]string{
	"new_node_creation": `### Primary Prompts:
` + "```" + `
"Create a new node connected to the {connection_side} side of node {node_id}"
"Generate a connected node positioned {spacing}px to the {direction} of the source"
"Add a new node that connects from the {handle_id} handle with proper spacing"
` + "```",
	"workflow_building": `### Workflow-Specific Prompts:
` + "```" + `
"Add the next step in the workflow, positioned to the right of the current step"
"Create a parallel process branch extending downward from the decision node"
"Generate a workflow node that maintains the process flow direction"
` + "```",
	"decision_tree": `### Decision Tree Prompts:
` + "```" + `
"Add a 'yes' branch below the decision node and a 'no' branch to its right"
"Place every outcome of this decision one rank below it, spaced evenly"
"Lay out the tree top-to-bottom with dagre and keep sibling outcomes aligned"
` + "```",
	"whiteboard_brainstorming": `### Brainstorming Prompts:
` + "```" + `
"Add an idea node on the side of the handle I dragged from, without moving existing nodes"
"Cluster related ideas around the central topic with free positioning"
"Leave room for collaborators by keeping at least 150px between idea nodes"
` + "```",
	"process_flow": `### Process Flow Prompts:
` + "```" + `
"Append the next process step to the right of the last step and connect source-right to target-left"
"Insert a step between two nodes and shift downstream nodes to keep spacing"
"Re-run a left-to-right dagre layout after adding each step"
` + "```",
	"mindmap": `### Mindmap Prompts:
` + "```" + `
"Add a child topic on the side facing away from the root node"
"Balance child topics between the left and right of the root"
"Keep second-level topics closer to their parent than to the root"
` + "```",
}

func scenarioText(scenario, complexity string) string {
	text, ok := scenarioPrompts[scenario]
	if !ok {
		return "# Prompts for " + textutil.Title(scenario) + " scenario"
	}
	switch complexity {
	case "intermediate", "advanced":
		text += fmt.Sprintf(`

### Advanced Prompts (%s level):
`+"```"+`
"Create a node with connection-aware positioning and apply dagre layout"
"Generate a new node that maintains whiteboard flow patterns"
"Position the new node optimally based on the source handle location"
`+"```", complexity)
	}
	if complexity == "advanced" {
		text += `

### Edge Cases:
` + "```" + `
"If the computed position overlaps another node, offset along the connection axis until it is free"
"When the source has several handles on one side, stack new nodes in handle order"
` + "```"
	}
	return text
}

func positioningPrompts(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	scenario := args.StringOr("scenario", "new_node_creation")
	complexity := args.StringOr("complexity_level", "intermediate")

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Codex Positioning Prompts for %s\n\n## Complexity Level: %s\n\n%s\n\n",
		textutil.Title(scenario), textutil.Title(complexity), scenarioText(scenario, complexity))
	sb.WriteString(`### General Codex Instructions:
When working with React Flow node positioning, always:
1. Check the source node's handle position before creating new nodes
2. Use connection-aware positioning functions
3. Apply consistent spacing based on connection side
4. Consider the overall layout pattern (whiteboard, hierarchical, etc.)
5. Test positioning with different screen sizes and zoom levels

### Debugging Prompts:
- "Show me the current node positions and their connection relationships"
- "Validate that new nodes are positioned correctly relative to their source"
- "Check if the layout algorithm is maintaining proper spacing"
- "Ensure handles are positioned for optimal connection flow"
`)
	return mcp.TextResult(sb.String()), nil
}

type dagreSpacing struct{ nodesep, ranksep float64 }

var nodeCountSpacing = map[string]dagreSpacing{
	"small_1_10":      {50, 80},
	"medium_10_50":    {75, 120},
	"large_50_100":    {100, 150},
	"xlarge_100_plus": {120, 180},
}

var densityMultiplier = map[string]float64{
	"sparse":   1.0,
	"moderate": 1.2,
	"dense":    1.5,
}

// dagreSeparation returns nodesep and ranksep for a graph size and connection density.
func dagreSeparation(nodeCount, density string) (int, int) {
	base, ok := nodeCountSpacing[nodeCount]
	if !ok {
		base = nodeCountSpacing["medium_10_50"]
	}
	m, ok := densityMultiplier[density]
	if !ok {
		m = 1.0
	}
	return int(base.nodesep * m), int(base.ranksep * m)
}

func optimizeDagre(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	direction := args.StringOr("flow_direction", "TB")
	nodeCount := args.StringOr("node_count", "medium_10_50")
	density := args.StringOr("connection_density", "moderate")
	nodesep, ranksep := dagreSeparation(nodeCount, density)

	perf := "// Standard performance settings\n  acyclicer: undefined,\n  ranker: 'network-simplex'"
	if strings.HasPrefix(nodeCount, "xlarge") {
		perf = "// Large graph optimizations\n  acyclicer: 'greedy',\n  ranker: 'tight-tree'"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Optimized Dagre Configuration\n\n## Flow Direction: %s\n## Node Count: %s\n## Connection Density: %s\n\n",
		direction, textutil.Title(nodeCount), textutil.Title(density))
	fmt.Fprintf(&sb, "```typescript\n// Optimized Dagre Configuration for %s flow\nconst dagreConfig = {\n  rankdir: '%s',\n  nodesep: %d,\n  ranksep: %d,\n  marginx: 20,\n  marginy: 20,\n\n  %s\n};\n\ng.setGraph(dagreConfig);\n```\n",
		direction, direction, nodesep, ranksep, perf)
	sb.WriteString(`
### Performance Considerations:
- Node count range affects layout calculation time
- Dense connections may require larger spacing
- Consider viewport culling for large graphs
- Use React.memo for node components in large layouts

### Configuration Tuning:
- Adjust nodesep for horizontal spacing between nodes
- Modify ranksep for vertical spacing between levels
- Use marginx/marginy for overall layout padding
- Test with different rankdir values for optimal flow
`)
	return mcp.TextResult(sb.String()), nil
}

var handleLayouts = map[string][]string{
	"linear": {
		`<Handle type="target" position={Position.Left} id="input"%s />`,
		`<Handle type="source" position={Position.Right} id="output"%s />`,
	},
	"branching": {
		`<Handle type="target" position={Position.Left} id="input"%s />`,
		`<Handle type="source" position={Position.Right} id="primary"%s />`,
		`<Handle type="source" position={Position.Bottom} id="secondary"%s />`,
	},
	"converging": {
		`<Handle type="target" position={Position.Left} id="input-a"%s />`,
		`<Handle type="target" position={Position.Top} id="input-b"%s />`,
		`<Handle type="source" position={Position.Right} id="output"%s />`,
	},
	"bidirectional": {
		`<Handle type="target" position={Position.Left} id="left-in"%s />`,
		`<Handle type="source" position={Position.Left} id="left-out"%s />`,
		`<Handle type="target" position={Position.Right} id="right-in"%s />`,
		`<Handle type="source" position={Position.Right} id="right-out"%s />`,
	},
}

var handleStyles = map[string]string{
	"minimal":      "",
	"styled":       ` style={{ background: '#555', width: 10, height: 10 }}`,
	"animated":     ` className="handle-animated"`,
	"professional": ` style={{ background: '#1f2937', border: '2px solid #fff', width: 12, height: 12 }}`,
}

func handleJSX(pattern, style string) string {
	lines, ok := handleLayouts[pattern]
	if !ok {
		return fmt.Sprintf("{/* Handles for %s pattern */}", pattern)
	}
	attr := handleStyles[style]
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fmt.Sprintf(l, attr)
	}
	return strings.Join(out, "\n      ")
}

func handleGuide(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	nodeType := args.StringOr("node_type", "process")
	pattern := args.StringOr("connection_pattern", "linear")
	style := args.StringOr("visual_style", "minimal")
	component := textutil.Pascal(nodeType) + "Node"

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Handle Positioning Guide\n\n## Node Type: %s\n## Connection Pattern: %s\n## Visual Style: %s\n\n",
		textutil.Title(nodeType), textutil.Title(pattern), textutil.Title(style))
	fmt.Fprintf(&sb, "```typescript\n// %s Node Handle Configuration for %s Pattern\nimport { Handle, Position } from 'reactflow';\n\n",
		textutil.Title(nodeType), textutil.Title(pattern))
	fmt.Fprintf(&sb, "const %s = ({ data, id }) => {\n  return (\n    <div className=\"%s-node\">\n      %s\n      <div className=\"node-content\">{data.label}</div>\n    </div>\n  );\n};\n```\n",
		component, nodeType, handleJSX(pattern, style))
	sb.WriteString(`
### Handle Best Practices:
- Position handles based on expected connection flow
- Use consistent handle sizing across node types
- Implement visual feedback for connection states
- Consider accessibility for handle interaction

### Integration with Positioning:
- Handles determine connection sides for new node placement
- Handle IDs should indicate their purpose and position
- Use handle validation to enforce proper connections
`)
	return mcp.TextResult(sb.String()), nil
}

var whiteboardDimensions = map[string][2]int{
	"compact_800x600":   {800, 600},
	"standard_1200x800": {1200, 800},
	"large_1600x1200":   {1600, 1200},
	"xlarge_2000x1500":  {2000, 1500},
}

var contentLayout = map[string]struct {
	spacing   int
	direction string
}{
	"brainstorming":     {150, "LR"},
	"process_mapping":   {200, "TB"},
	"system_design":     {250, "LR"},
	"workflow_creation": {180, "TB"},
}

func optimizeWhiteboard(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	size := args.StringOr("whiteboard_size", "standard_1200x800")
	content := args.StringOr("content_type", "brainstorming")
	collaboration := args.BoolOr("collaboration_mode", false)

	dims, ok := whiteboardDimensions[size]
	if !ok {
		dims = whiteboardDimensions["standard_1200x800"]
	}
	layout, ok := contentLayout[content]
	if !ok {
		layout.spacing, layout.direction = 200, "LR"
	}

	collab, collabLabel, mode := "realTimeSync: false,\n  localStoragePersistence: true,", "Single-user mode", "Disabled"
	if collaboration {
		collab, collabLabel, mode = "realTimeSync: true,\n  cursorSharing: true,\n  conflictResolution: 'last-write-wins',", "Collaboration features", "Enabled"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Whiteboard Layout Optimizer\n\n## Size: %s\n## Content Type: %s\n## Collaboration: %s\n\n",
		textutil.Title(size), textutil.Title(content), mode)
	fmt.Fprintf(&sb, "```typescript\n// Whiteboard Configuration for %s\nconst whiteboardConfig = {\n  dimensions: {\n    width: %d,\n    height: %d\n  },\n\n  nodeSpacing: %d,\n  fitViewPadding: 0.1,\n\n  // %s\n  %s\n\n  defaultDirection: '%s',\n  allowFreePositioning: true,\n  snapToGrid: false\n};\n```\n",
		textutil.Title(content), dims[0], dims[1], layout.spacing, collabLabel, collab, layout.direction)
	sb.WriteString(`
### Whiteboard Considerations:
- Larger canvas allows for more organic positioning
- Collaborative mode requires real-time position synchronization
- Consider touch device interaction for handle positioning
- Use minimap for navigation on large whiteboards

### Performance Optimization:
- Implement viewport culling for large whiteboards
- Use node virtualization for 100+ nodes
- Debounce layout calculations during rapid changes
`)
	return mcp.TextResult(sb.String()), nil
}
