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

// Learning returns the guidance tools that teach layouting, performance, debugging and
// accessibility. Every parameter is optional.
func Learning() *provider.Table {
	return provider.NewTable("learning",
		provider.Tool{Spec: layoutingExpertSpec, Handler: layoutingExpert},
		provider.Tool{Spec: performanceMasterySpec, Handler: performanceMastery},
		provider.Tool{Spec: tutorialGeneratorSpec, Handler: tutorialGenerator},
		provider.Tool{Spec: troubleshootingExpertSpec, Handler: troubleshootingExpert},
		provider.Tool{Spec: accessibilityExpertSpec, Handler: accessibilityExpert},
		provider.Tool{Spec: devtoolsMasterySpec, Handler: devtoolsMastery},
	)
}

var layoutingExpertSpec = mcp.Tool{
	Name:        "react_flow_layouting_expert",
	Description: "Expert guidance on React Flow layouting using Dagre, D3-Hierarchy, D3-Force and ELK",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"requirement": {"type": "string", "enum": ["dagre", "d3-hierarchy", "d3-force", "elkjs"], "description": "Layouting system to use", "default": "dagre"},
			"use_case": {"type": "string", "description": "Specific use case or layout requirements", "default": "hierarchical tree"}
		}
	}`),
}

var performanceMasterySpec = mcp.Tool{
	Name:        "react_flow_performance_mastery",
	Description: "Advanced performance optimization strategies for React Flow applications",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"scenario": {"type": "string", "enum": ["large_dataset", "complex_interactions", "memory_optimization", "rendering_performance"], "description": "Performance optimization scenario", "default": "large_dataset"},
			"node_count": {"type": "integer", "description": "Approximate number of nodes in the flow", "default": 1000}
		}
	}`),
}

var tutorialGeneratorSpec = mcp.Tool{
	Name:        "react_flow_tutorial_generator",
	Description: "Generate step-by-step tutorials for React Flow applications",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"tutorial_type": {"type": "string", "enum": ["mind_map", "slideshow", "web_audio", "whiteboard"], "description": "Type of tutorial to generate", "default": "mind_map"},
			"complexity": {"type": "string", "enum": ["beginner", "intermediate", "advanced", "expert"], "description": "Tutorial complexity level", "default": "intermediate"}
		}
	}`),
}

var troubleshootingExpertSpec = mcp.Tool{
	Name:        "react_flow_troubleshooting_expert",
	Description: "Expert troubleshooting guide for React Flow issues",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"error_type": {"type": "string", "enum": ["common", "nodes_not_rendering", "performance_issues", "connection_issues", "typescript_errors", "layout_problems"], "description": "Type of error or issue", "default": "common"},
			"issue_description": {"type": "string", "description": "Detailed description of the issue", "default": ""}
		}
	}`),
}

var accessibilityExpertSpec = mcp.Tool{
	Name:        "react_flow_accessibility_expert",
	Description: "Accessibility implementation guidance for React Flow",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"feature": {"type": "string", "enum": ["keyboard_navigation", "screen_reader", "focus_management", "color_contrast"], "description": "Accessibility feature to implement", "default": "keyboard_navigation"},
			"compliance_level": {"type": "string", "enum": ["WCAG_A", "WCAG_AA", "WCAG_AAA"], "description": "WCAG compliance level", "default": "WCAG_AA"}
		}
	}`),
}

var devtoolsMasterySpec = mcp.Tool{
	Name:        "react_flow_devtools_mastery",
	Description: "Debugging and development tools guidance for React Flow",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"debugging_scenario": {"type": "string", "enum": ["performance", "state_debugging", "layout_debugging", "connection_debugging"], "description": "Debugging scenario", "default": "performance"},
			"issue_type": {"type": "string", "description": "Specific type of issue to debug", "default": "re_renders"}
		}
	}`),
}

// pair is an ordered key/value line; maps would shuffle the rendered output.
type pair struct{ key, value string }

func pairs(ps []pair) string {
	lines := make([]string, len(ps))
	for i, p := range ps {
		lines[i] = fmt.Sprintf("- **%s**: %s", p.key, p.value)
	}
	return strings.Join(lines, "\n")
}

func codeBlock(lang, code string) string {
	return "```" + lang + "\n" + strings.TrimSpace(code) + "\n```"
}

type layoutSystem struct {
	bestFor []string
	code    string
	options []pair
}

var layoutSystems = map[string]layoutSystem{
	"dagre": {
		bestFor: []string{"Tree layouts", "Hierarchical flows", "Quick setup", "Speed over precision"},
		options: []pair{
			{"rankdir", "TB (top-bottom), LR (left-right), BT (bottom-top), RL (right-left)"},
			{"nodesep", "Number of pixels between nodes"},
			{"ranksep", "Number of pixels between ranks"},
		},
		code: `
import dagre from 'dagre';

const getLayoutedElements = (nodes, edges, direction = 'TB') => {
  const g = new dagre.graphlib.Graph();
  g.setDefaultEdgeLabel(() => ({}));
  g.setGraph({ rankdir: direction });

  nodes.forEach((node) => g.setNode(node.id, { width: nodeWidth, height: nodeHeight }));
  edges.forEach((edge) => g.setEdge(edge.source, edge.target));

  dagre.layout(g);

  return {
    nodes: nodes.map((node) => {
      const { x, y } = g.node(node.id);
      return { ...node, position: { x: x - nodeWidth / 2, y: y - nodeHeight / 2 } };
    }),
    edges,
  };
};`,
	},
	"d3-hierarchy": {
		bestFor: []string{"Single root trees", "Tree maps", "Partition layouts", "Enclosure diagrams"},
		options: []pair{{"patterns", "Tree, Cluster, Partition, Pack, Treemap"}},
		code: `
import { hierarchy, tree } from 'd3-hierarchy';

const getLayoutedElements = (nodes, edges) => {
  const root = hierarchy(stratify(nodes, edges));
  const layoutRoot = tree().nodeSize([nodeWidth + 50, nodeHeight + 50])(root);

  return {
    nodes: nodes.map((node) => {
      const placed = layoutRoot.descendants().find((d) => d.data.id === node.id);
      return { ...node, position: { x: placed.x, y: placed.y } };
    }),
    edges,
  };
};`,
	},
	"d3-force": {
		bestFor: []string{"Dynamic layouts", "Interactive flows", "Non-hierarchical structures", "Organic positioning"},
		options: []pair{
			{"charge", "Repulsion/attraction between nodes"},
			{"link", "Connection strength between linked nodes"},
			{"center", "Pull towards center point"},
			{"collision", "Prevent node overlap"},
		},
		code: `
import { forceSimulation, forceLink, forceManyBody, forceCenter } from 'd3-force';

const simulation = forceSimulation()
  .force('charge', forceManyBody().strength(-300))
  .force('link', forceLink().id((d) => d.id).distance(100))
  .force('center', forceCenter(0, 0))
  .alphaTarget(0.05);

const tick = (onNodesChange) => {
  simulation.tick();
  onNodesChange(simulation.nodes().map((node) => ({
    id: node.id,
    type: 'position',
    position: { x: node.x, y: node.y },
  })));
};`,
	},
	"elkjs": {
		bestFor: []string{"Complex layouts", "Advanced configuration", "Multiple algorithms", "Production systems"},
		options: []pair{{"algorithms", "layered, stress, mrtree, radial, force, disco"}},
		code: `
import ELK from 'elkjs/lib/elk.bundled.js';

const elk = new ELK();

const layout = async (nodes, edges) => {
  const graph = await elk.layout({
    id: 'root',
    layoutOptions: {
      'elk.algorithm': 'layered',
      'elk.direction': 'RIGHT',
      'elk.spacing.nodeNode': '100',
    },
    children: nodes.map((node) => ({ id: node.id, width: 150, height: 50 })),
    edges: edges.map((edge) => ({ id: edge.id, sources: [edge.source], targets: [edge.target] })),
  });

  return {
    nodes: nodes.map((node) => {
      const placed = graph.children.find((n) => n.id === node.id);
      return { ...node, position: { x: placed.x, y: placed.y } };
    }),
    edges,
  };
};`,
	},
}

var layoutComparison = []struct {
	aspect string
	levels []pair
}{
	{"complexity", []pair{{"dagre", "Low"}, {"d3-hierarchy", "Medium"}, {"d3-force", "High"}, {"elkjs", "Very High"}}},
	{"bundle_size", []pair{{"dagre", "Small"}, {"d3-hierarchy", "Small"}, {"d3-force", "Medium"}, {"elkjs", "Large"}}},
	{"configurability", []pair{{"dagre", "Basic"}, {"d3-hierarchy", "Limited"}, {"d3-force", "High"}, {"elkjs", "Extensive"}}},
	{"performance", []pair{{"dagre", "Fast"}, {"d3-hierarchy", "Fast"}, {"d3-force", "Variable"}, {"elkjs", "Good"}}},
}

func layoutingExpert(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	requirement := args.StringOr("requirement", "dagre")
	useCase := args.StringOr("use_case", "hierarchical tree")
	system, ok := layoutSystems[strings.ToLower(requirement)]
	if !ok {
		system = layoutSystems["dagre"]
	}

	var matrix strings.Builder
	for _, row := range layoutComparison {
		fmt.Fprintf(&matrix, "- **%s**:\n", row.aspect)
		for _, l := range row.levels {
			fmt.Fprintf(&matrix, "  - %s: %s\n", l.key, l.value)
		}
	}

	text := fmt.Sprintf(`# React Flow Layouting Expert

## Layout System: %s
## Use Case: %s

### Recommendation
**Best for**: %s

**Implementation:**
%s

### Configuration Options
%s

### Comparison Matrix
%s
### Edge Routing Options
- **Smart Edge**: react-flow-smart-edge for orthogonal routing
- **Custom Routing**: Manual path definition with editable edges

### Expert Tips
- Test in the playground: https://reactflow.dev/playground/layouting
- Start simple with Dagre for most use cases
- Use D3-Force for organic, interactive layouts
- Choose ELK for complex production requirements

Based on the React Flow layouting guide: https://reactflow.dev/learn/layouting/layouting
`, strings.ToUpper(requirement), useCase, strings.Join(system.bestFor, ", "), codeBlock("javascript", system.code), pairs(system.options), matrix.String())
	return mcp.TextResult(text), nil
}

// optimizationLevel buckets a node count into small (<100), medium (<500),
// large (<1000) or enterprise.
func optimizationLevel(nodeCount int) string {
	switch {
	case nodeCount < 100:
		return "small"
	case nodeCount < 500:
		return "medium"
	case nodeCount < 1000:
		return "large"
	default:
		return "enterprise"
	}
}

var levelStrategies = map[string][]string{
	"small":      {"Basic memoization", "Simple styling"},
	"medium":     {"Component memoization", "State optimization", "Selective rendering"},
	"large":      {"Tree collapsing", "Virtualization", "CSS optimization"},
	"enterprise": {"Full optimization stack", "Custom rendering", "Web Workers"},
}

func performanceMastery(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	scenario := args.StringOr("scenario", "large_dataset")
	count := args.Int("node_count", 1000)
	level := optimizationLevel(count)

	text := fmt.Sprintf(`# React Flow Performance Mastery

## Scenario: %s (%d nodes)
**Optimization Level**: %s

### Recommended Strategies
%s

### Implementation Guide

#### Memoization Patterns
%s

#### State Optimization
%s

#### CSS Performance
%s

### Performance Monitoring
- **react_devtools**: Use the React DevTools Profiler to identify re-renders
- **browser_devtools**: Monitor FPS and memory usage in the Performance tab
- **custom_metrics**: Track node/edge update frequency

Based on the React Flow performance guide: https://reactflow.dev/learn/advanced-use/performance
`, scenario, count, strings.ToUpper(level), textutil.Bullets(levelStrategies[level], ""),
		codeBlock("javascript", memoizationPattern), codeBlock("javascript", selectorPattern), codeBlock("css", cssContainment))
	return mcp.TextResult(text), nil
}

const memoizationPattern = `
// Memoize custom nodes and define nodeTypes outside the component
const NodeComponent = memo(({ data }) => <div>{data.label}</div>);
const nodeTypes = { custom: NodeComponent };

function MyFlow() {
  const onNodeClick = useCallback((event, node) => console.log('clicked', node.id), []);
  const defaultEdgeOptions = useMemo(() => ({ type: 'smoothstep', animated: true }), []);

  return <ReactFlow nodeTypes={nodeTypes} onNodeClick={onNodeClick} defaultEdgeOptions={defaultEdgeOptions} />;
}`

const selectorPattern = `
// Select only what the component renders instead of the whole nodes array
const useSelectedNodeIds = () =>
  useStore(
    useCallback((state) => state.nodes.filter((n) => n.selected).map((n) => n.id), []),
    shallow
  );`

const cssContainment = `
.optimized-node {
  background: #fff;
  border: 2px solid #1a365d;
  transition: border-color 0.2s ease;
}

.react-flow__node {
  contain: layout style paint;
}`

type tutorialStep struct {
	title, explanation, code string
}

type tutorial struct {
	description string
	difficulty  string
	concepts    []string
	steps       []tutorialStep
}

var tutorials = map[string]tutorial{
	"mind_map": {
		description: "Create an interactive mind mapping application with expandable nodes",
		difficulty:  "Intermediate",
		concepts:    []string{"Custom nodes", "Tree structures", "Dynamic expansion", "Data flow"},
		steps: []tutorialStep{
			{"Setup Mind Map Node Structure", "Create a custom node component with handles for connections", `
const MindMapNode = ({ data }) => (
  <div className="mind-map-node">
    <Handle type="target" position={Position.Left} />
    <h3>{data.label}</h3>
    <Handle type="source" position={Position.Right} />
  </div>
);
export default memo(MindMapNode);`},
			{"Implement Expansion Logic", "Add child nodes next to their parent and connect them", `
export const useMindMap = (initialNodes, initialEdges) => {
  const [nodes, setNodes, onNodesChange] = useNodesState(initialNodes);
  const [edges, setEdges, onEdgesChange] = useEdgesState(initialEdges);

  const addChildNode = useCallback((parentId, childData) => {
    const parent = nodes.find((n) => n.id === parentId);
    const childId = parentId + '-child-' + Date.now();
    const siblings = nodes.filter((n) => n.id.startsWith(parentId)).length;
    setNodes((prev) => [...prev, {
      id: childId,
      type: 'mindMap',
      position: { x: parent.position.x + 200, y: parent.position.y + siblings * 100 },
      data: childData,
    }]);
    setEdges((prev) => [...prev, { id: parentId + '-' + childId, source: parentId, target: childId, type: 'smoothstep' }]);
  }, [nodes, setNodes, setEdges]);

  return { nodes, edges, onNodesChange, onEdgesChange, addChildNode };
};`},
			{"Add Interaction Handlers", "Double-click a node to add a subtopic", `
const nodeTypes = { mindMap: MindMapNode };

const MindMapFlow = () => {
  const { nodes, edges, onNodesChange, onEdgesChange, addChildNode } = useMindMap(initialNodes, initialEdges);
  const onNodeDoubleClick = useCallback((event, node) => {
    const topic = prompt('Enter new topic:');
    if (topic) addChildNode(node.id, { label: topic });
  }, [addChildNode]);

  return (
    <ReactFlow nodes={nodes} edges={edges} onNodesChange={onNodesChange} onEdgesChange={onEdgesChange}
      onNodeDoubleClick={onNodeDoubleClick} nodeTypes={nodeTypes} fitView>
      <Background />
      <Controls />
    </ReactFlow>
  );
};`},
		},
	},
	"slideshow": {
		description: "Build a presentation system with React Flow for visual storytelling",
		difficulty:  "Advanced",
		concepts:    []string{"Viewport control", "Animations", "Slide transitions", "Presentation mode"},
		steps: []tutorialStep{
			{"Create Slide Node Components", "Each slide is a node carrying its title and body", `
const SlideNode = ({ data, selected }) => (
  <div className={selected ? 'slide-node selected' : 'slide-node'}>
    <h2>{data.title}</h2>
    <div className="slide-body">{data.content}</div>
    <div className="slide-number">Slide {data.slideNumber}</div>
    <Handle type="source" position={Position.Bottom} />
    <Handle type="target" position={Position.Top} />
  </div>
);`},
			{"Implement Presentation Controller", "Animate the viewport from slide to slide", `
export const useSlideshow = (slides) => {
  const [current, setCurrent] = useState(0);
  const { setViewport } = useReactFlow();

  const goToSlide = useCallback((index) => {
    const slide = slides[index];
    if (!slide) return;
    setCurrent(index);
    setViewport({
      x: -slide.position.x + window.innerWidth / 2 - 200,
      y: -slide.position.y + window.innerHeight / 2 - 150,
      zoom: 1.2,
    }, { duration: 800 });
  }, [slides, setViewport]);

  return {
    current,
    next: () => goToSlide(Math.min(current + 1, slides.length - 1)),
    prev: () => goToSlide(Math.max(current - 1, 0)),
  };
};`},
		},
	},
	"web_audio": {
		description: "Connect React Flow to the Web Audio API for visual audio programming",
		difficulty:  "Expert",
		concepts:    []string{"Web Audio API", "Audio nodes", "Signal flow", "Real-time audio"},
		steps: []tutorialStep{
			{"Audio Context Setup", "Map flow nodes to Web Audio nodes by id", `
export const useAudioContext = () => {
  const ctx = useMemo(() => new AudioContext(), []);
  const audioNodes = useRef(new Map());

  useEffect(() => () => ctx.close(), [ctx]);

  const createAudioNode = (type, id, params = {}) => {
    let node;
    switch (type) {
      case 'oscillator':
        node = ctx.createOscillator();
        node.frequency.setValueAtTime(params.frequency || 440, ctx.currentTime);
        break;
      case 'gain':
        node = ctx.createGain();
        node.gain.setValueAtTime(params.gain || 0.5, ctx.currentTime);
        break;
      default:
        return null;
    }
    audioNodes.current.set(id, node);
    return node;
  };

  return { ctx, audioNodes, createAudioNode };
};`},
		},
	},
	"whiteboard": {
		description: "Build collaborative whiteboard features with an infinite canvas",
		difficulty:  "Advanced",
		concepts:    []string{"Infinite canvas", "Collaborative editing", "Real-time sync", "Drawing tools"},
		steps: []tutorialStep{
			{"Drawing Canvas Integration", "Render stored strokes in a resizable canvas node", `
const DrawingNode = ({ data, selected }) => {
  const canvasRef = useRef(null);

  useEffect(() => {
    const ctx = canvasRef.current?.getContext('2d');
    if (!ctx) return;
    ctx.strokeStyle = data.strokeColor || '#000';
    ctx.lineWidth = data.lineWidth || 2;
    (data.paths || []).forEach((path) => {
      ctx.beginPath();
      path.points.forEach((p, i) => (i === 0 ? ctx.moveTo(p.x, p.y) : ctx.lineTo(p.x, p.y)));
      ctx.stroke();
    });
  }, [data]);

  return (
    <div className="drawing-node">
      <canvas ref={canvasRef} width={data.width || 300} height={data.height || 200} />
      {selected && <NodeResizer minWidth={100} minHeight={100} />}
    </div>
  );
};`},
		},
	},
}

func tutorialGenerator(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	kind := args.StringOr("tutorial_type", "mind_map")
	complexity := args.StringOr("complexity", "intermediate")
	tut, ok := tutorials[kind]
	if !ok {
		tut = tutorials["mind_map"]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `# React Flow Tutorial: %s

## Overview
**Description**: %s
**Difficulty**: %s
**Complexity**: %s

### Concepts Covered
%s

## Step-by-Step Tutorial
`, textutil.Title(kind), tut.description, tut.difficulty, textutil.Title(complexity), textutil.Bullets(tut.concepts, ""))
	for i, step := range tut.steps {
		fmt.Fprintf(&sb, "\n### Step %d: %s\n\n%s\n\n%s\n", i+1, step.title, step.explanation, codeBlock("javascript", step.code))
	}
	fmt.Fprintf(&sb, `
### Prerequisites
- Basic React knowledge
- Understanding of React Flow fundamentals
- State management patterns

### Next Steps
- Add persistence with localStorage
- Implement undo/redo
- Add collaborative features with WebRTC

### Related Resources
- **Official Examples**: https://reactflow.dev/examples/%s
- **Playground**: https://reactflow.dev/playground
`, kind)
	return mcp.TextResult(sb.String()), nil
}

type troubleshootingGuide struct {
	symptoms, causes []string
	solution         string
}

var troubleshootingGuides = map[string]troubleshootingGuide{
	"nodes_not_rendering": {
		symptoms: []string{"Nodes don't appear", "Empty flow", "Missing components"},
		causes:   []string{"Missing nodeTypes definition", "Incorrect node type in data", "Component not exported properly", "CSS issues hiding nodes"},
		solution: `
// nodeTypes keys must match node.type
const nodeTypes = { customNode: CustomNodeComponent };

<ReactFlow nodeTypes={nodeTypes} />

const nodes = [{ id: '1', type: 'customNode', position: { x: 0, y: 0 }, data: { label: 'Node 1' } }];

// The parent needs a width and height, and reactflow/dist/style.css must be imported`,
	},
	"performance_issues": {
		symptoms: []string{"Slow dragging", "Laggy interactions", "High CPU usage"},
		causes:   []string{"Missing memoization", "Accessing nodes/edges in components", "Complex CSS animations", "Large dataset without optimization"},
		solution: `
const MyNode = memo(({ data }) => <div>{data.label}</div>);

const onNodeClick = useCallback((event, node) => {}, []);

const selectedCount = useStore((state) => state.nodes.filter((n) => n.selected).length);`,
	},
	"connection_issues": {
		symptoms: []string{"Edges not connecting", "Handle not working", "Invalid connections"},
		causes:   []string{"Missing handles", "Incorrect handle positions", "Connection validation blocking", "Handle IDs not matching"},
		solution: `
const CustomNode = ({ data }) => (
  <div>
    <Handle type="target" position={Position.Left} id="input" />
    <div>{data.label}</div>
    <Handle type="source" position={Position.Right} id="output" />
  </div>
);

const isValidConnection = useCallback((c) => c.source !== c.target, []);
<ReactFlow isValidConnection={isValidConnection} />`,
	},
	"typescript_errors": {
		symptoms: []string{"Type errors", "Missing type definitions", "Generic type issues"},
		causes:   []string{"Missing type imports", "Incorrect generic parameters", "Custom node type not defined", "Edge data type mismatch"},
		solution: `
import type { Node, Edge, NodeProps } from 'reactflow';

type CustomNodeData = { label: string; value: number };
type CustomNode = Node<CustomNodeData>;

const CustomNode = ({ data }: NodeProps<CustomNodeData>) => <div>{data.label}: {data.value}</div>;

const [nodes, setNodes] = useState<CustomNode[]>([]);
const [edges, setEdges] = useState<Edge[]>([]);`,
	},
	"layout_problems": {
		symptoms: []string{"Overlapping nodes", "Poor positioning", "Layout not updating"},
		causes:   []string{"Missing node dimensions", "Incorrect layout configuration", "Async layout not handled", "Missing dependencies"},
		solution: `
const [isLayouting, setIsLayouting] = useState(false);

const applyLayout = useCallback(async () => {
  setIsLayouting(true);
  try {
    const layouted = await layoutElements(nodes, edges);
    setNodes(layouted.nodes);
    setEdges(layouted.edges);
  } finally {
    setIsLayouting(false);
  }
}, [nodes, edges]);

useEffect(() => {
  if (nodes.length > 0) applyLayout();
}, [nodes.length, applyLayout]);`,
	},
}

func troubleshootingExpert(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	errType := args.StringOr("error_type", "common")
	description := strings.TrimSpace(args.String("issue_description"))
	guide, ok := troubleshootingGuides[errType]
	if !ok {
		guide = troubleshootingGuides["nodes_not_rendering"]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# React Flow Troubleshooting Expert\n\n## Issue: %s\n", textutil.Title(errType))
	if description != "" {
		fmt.Fprintf(&sb, "**Description**: %s\n", description)
	}
	fmt.Fprintf(&sb, `
### Symptoms
%s

### Common Causes
%s

### Solutions
%s

### Debugging Tools
- **react_devtools**: Profile component re-renders and state changes
- **browser_devtools**: Monitor network, performance and console errors
- **console_logging**: Log node and edge arrays at each change handler

### Migration Guides
- **v12**: New package structure (@xyflow/react) and updated APIs
- **v11**: Edge label positioning changes, new edge types

### Quick Fixes Checklist
- Check the console for JavaScript errors
- Verify all dependencies are up to date
- Ensure reactflow styles are imported
- Check CSS for conflicting styles

Based on React Flow troubleshooting: https://reactflow.dev/learn/troubleshooting/common-errors
`, textutil.Bullets(guide.symptoms, ""), textutil.Bullets(guide.causes, ""), codeBlock("javascript", guide.solution))
	return mcp.TextResult(sb.String()), nil
}

var complianceRequirements = map[string][]string{
	"WCAG_A":   {"Basic accessibility", "Keyboard navigation", "Alt text"},
	"WCAG_AA":  {"Enhanced accessibility", "4.5:1 contrast ratio", "Focus indicators"},
	"WCAG_AAA": {"Highest accessibility", "7:1 contrast ratio", "Advanced features"},
}

type accessibilityGuide struct {
	lang, code string
}

var accessibilityGuides = map[string]accessibilityGuide{
	"keyboard_navigation": {"javascript", `
const useKeyboardNavigation = () => {
  const { setViewport, getViewport } = useReactFlow();

  const handleKeyDown = useCallback((event) => {
    const step = event.shiftKey ? 50 : 10;
    const v = getViewport();
    const moves = {
      ArrowUp: { ...v, y: v.y + step },
      ArrowDown: { ...v, y: v.y - step },
      ArrowLeft: { ...v, x: v.x + step },
      ArrowRight: { ...v, x: v.x - step },
    };
    if (moves[event.key]) {
      event.preventDefault();
      setViewport(moves[event.key]);
    }
  }, [getViewport, setViewport]);

  useEffect(() => {
    document.addEventListener('keydown', handleKeyDown);
    return () => document.removeEventListener('keydown', handleKeyDown);
  }, [handleKeyDown]);
};`},
	"screen_reader": {"javascript", `
const useAnnouncer = () => {
  const region = useRef(null);
  const announce = useCallback((message) => {
    if (region.current) region.current.textContent = message;
  }, []);
  const Region = () => <div ref={region} aria-live="polite" aria-atomic="true" className="sr-only" />;
  return { announce, Region };
};

const AccessibleNode = ({ data, selected }) => (
  <div role="button" tabIndex={0} aria-label={data.label} aria-pressed={selected}>
    {data.label}
  </div>
);`},
	"focus_management": {"javascript", `
const useFocusManagement = (nodes) => {
  const [focusedId, setFocusedId] = useState(null);
  const refs = useRef(new Map());

  const setNodeRef = useCallback((id, ref) => {
    if (ref) refs.current.set(id, ref);
    else refs.current.delete(id);
  }, []);

  const focusNode = useCallback((id) => {
    refs.current.get(id)?.focus();
    setFocusedId(id);
  }, []);

  const focusNext = useCallback(() => {
    const i = nodes.findIndex((n) => n.id === focusedId);
    focusNode(nodes[(i + 1) % nodes.length].id);
  }, [nodes, focusedId, focusNode]);

  return { focusedId, setNodeRef, focusNode, focusNext };
};`},
	"color_contrast": {"javascript", `
const luminance = (hex) => {
  const [r, g, b] = [1, 3, 5].map((i) => {
    const c = parseInt(hex.slice(i, i + 2), 16) / 255;
    return c <= 0.03928 ? c / 12.92 : Math.pow((c + 0.055) / 1.055, 2.4);
  });
  return 0.2126 * r + 0.7152 * g + 0.0722 * b;
};

export const contrastRatio = (fg, bg) => {
  const [a, b] = [luminance(fg), luminance(bg)].sort((x, y) => y - x);
  const ratio = (a + 0.05) / (b + 0.05);
  return { ratio, AA: ratio >= 4.5, AAA: ratio >= 7, AA_large: ratio >= 3 };
};`},
}

func accessibilityExpert(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	feature := args.StringOr("feature", "keyboard_navigation")
	level := args.StringOr("compliance_level", "WCAG_AA")
	reqs, ok := complianceRequirements[level]
	if !ok {
		reqs = complianceRequirements["WCAG_AA"]
	}
	guide, ok := accessibilityGuides[feature]
	if !ok {
		guide = accessibilityGuides["keyboard_navigation"]
	}

	text := fmt.Sprintf(`# React Flow Accessibility Expert

## Feature: %s
**Compliance Level**: %s

### Requirements
%s

### Implementation Guide
%s

### Testing Tools
- axe-core for automated testing
- WAVE browser extension
- Screen reader testing (NVDA, JAWS, VoiceOver)
- Keyboard-only navigation testing

### Best Practices
- Test with actual assistive technologies
- Ensure all functionality is keyboard accessible
- Use semantic HTML and ARIA appropriately

Based on the React Flow accessibility guide: https://reactflow.dev/learn/advanced-use/accessibility
`, textutil.Title(feature), level, textutil.Bullets(reqs, ""), codeBlock(guide.lang, guide.code))
	return mcp.TextResult(text), nil
}

// debuggingStrategies holds ordered snippets per scenario. Scenarios without an
// entry fall back to performance.
var debuggingStrategies = map[string][]pair{
	"performance": {
		{"react_devtools_profiler", `
const ReactFlowProfiler = ({ children }) => (
  <Profiler id="react-flow" onRender={(id, phase, actual, base) => {
    console.log('React Flow render', { id, phase, actual, base });
  }}>
    {children}
  </Profiler>
);`},
		{"memory_monitoring", `
useEffect(() => {
  const interval = setInterval(() => {
    if (performance.memory) {
      console.log('heap MB', (performance.memory.usedJSHeapSize / 1048576).toFixed(1));
    }
  }, 5000);
  return () => clearInterval(interval);
}, []);`},
	},
	"state_debugging": {
		{"store_inspection", `
const ReactFlowDebugger = () => {
  const store = useStoreApi();
  useEffect(() => store.subscribe((state) => {
    console.log('store changed', { nodes: state.nodes.length, edges: state.edges.length });
  }), [store]);
  return null;
};`},
		{"connection_debugging", `
const isValidConnection = useCallback((connection) => {
  console.group('connection');
  console.log(connection);
  console.groupEnd();
  return connection.source !== connection.target;
}, []);`},
	},
	"layout_debugging": {
		{"layout_visualization", `
const debugLayout = async (layout, nodes, edges) => {
  const start = performance.now();
  const result = await layout(nodes, edges);
  console.log('layout took', (performance.now() - start).toFixed(1), 'ms');
  return result;
};`},
	},
}

func devtoolsMastery(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	scenario := args.StringOr("debugging_scenario", "performance")
	issue := args.StringOr("issue_type", "re_renders")
	strategy, ok := debuggingStrategies[scenario]
	if !ok {
		strategy = debuggingStrategies["performance"]
	}

	var examples strings.Builder
	for _, s := range strategy {
		fmt.Fprintf(&examples, "#### %s\n%s\n\n", textutil.Title(s.key), codeBlock("javascript", s.value))
	}

	text := fmt.Sprintf(`# React Flow DevTools Mastery

## Debugging Scenario: %s
**Issue Type**: %s

### Implementation Examples

%s### Browser DevTools Strategies
- Record interaction performance in the Performance tab
- Use console.group() and console.time() for structured logging
- Check bundle sizes and WebSocket traffic in the Network tab

### Debugging Checklist
- Enable React Strict Mode for development
- Use the React DevTools Profiler
- Monitor the console for warnings and errors
- Test with different viewport sizes

Based on the React Flow debugging guide: https://reactflow.dev/learn/advanced-use/devtools-and-debugging
`, textutil.Title(scenario), issue, examples.String())
	return mcp.TextResult(text), nil
}
