package styling

import (
	"context"
	"fmt"
	"strings"

	"github.com/golovatskygroup/mcp-frontend/internal/providers/textutil"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

type keywordRule struct {
	words   []string
	classes []string
}

// Rules are checked in order; rules sharing a group stop at the first match.
var descriptionRules = []struct {
	group string
	keywordRule
}{
	{"", keywordRule{[]string{"center", "centered"}, []string{"flex", "items-center", "justify-center"}}},
	{"", keywordRule{[]string{"shadow", "elevated"}, []string{"shadow-md", "shadow-lg", "drop-shadow"}}},
	{"", keywordRule{[]string{"rounded", "circle"}, []string{"rounded", "rounded-lg", "rounded-full"}}},
	{"color", keywordRule{[]string{"blue"}, []string{"bg-blue-500", "text-blue-600", "border-blue-500"}}},
	{"color", keywordRule{[]string{"red"}, []string{"bg-red-500", "text-red-600", "border-red-500"}}},
	{"color", keywordRule{[]string{"green"}, []string{"bg-green-500", "text-green-600", "border-green-500"}}},
	{"size", keywordRule{[]string{"large", "big"}, []string{"text-lg", "text-xl", "p-6", "p-8"}}},
	{"size", keywordRule{[]string{"small"}, []string{"text-sm", "text-xs", "p-2", "p-3"}}},
}

var elementClasses = map[string][]string{
	"button": {"inline-flex", "items-center", "px-4", "py-2", "border", "border-transparent", "text-sm", "font-medium", "rounded-md", "shadow-sm", "focus:outline-none", "focus:ring-2"},
	"card":   {"bg-white", "overflow-hidden", "shadow", "rounded-lg", "border", "border-gray-200", "p-6"},
	"form":   {"space-y-4", "p-6", "bg-white", "rounded-lg", "shadow", "border", "border-gray-200"},
}

// suggestFor returns the deduplicated class list for a description and element type.
func suggestFor(description, element string, responsive bool) []string {
	var out []string
	matched := make(map[string]bool)
	for _, r := range descriptionRules {
		if r.group != "" && matched[r.group] {
			continue
		}
		for _, w := range r.words {
			if strings.Contains(description, w) {
				out = append(out, r.classes...)
				if r.group != "" {
					matched[r.group] = true
				}
				break
			}
		}
	}
	out = append(out, elementClasses[element]...)

	if responsive && len(out) > 0 {
		for _, c := range textutil.Head(out, 5) {
			out = append(out, "sm:"+c, "md:"+c, "lg:"+c)
		}
	}
	return textutil.Dedupe(out)
}

func suggestClasses(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	description := strings.ToLower(args.String("design_description"))
	element := args.StringOr("element_type", "general")
	classes := suggestFor(description, element, args.BoolOr("responsive", true))

	list := make([]string, 0, len(classes))
	for _, c := range classes {
		list = append(list, "`"+c+"`")
	}

	var sb strings.Builder
	sb.WriteString("# Tailwind CSS Class Suggestions\n\n")
	fmt.Fprintf(&sb, "**Design Description:** %s\n**Element Type:** %s\n\n", description, element)
	sb.WriteString("## Recommended Classes\n\n")
	fmt.Fprintf(&sb, "### Core Classes\n```css\n%s\n```\n\n", strings.Join(textutil.Head(classes, 10), " "))
	fmt.Fprintf(&sb, "### Complete Class List\n%s\n\n", textutil.Bullets(list, "No specific classes matched; start from the element defaults."))
	fmt.Fprintf(&sb, "## Usage Example\n```html\n<div class=\"%s\">\n  <!-- Your %s content -->\n</div>\n```\n\n", strings.Join(textutil.Head(classes, 8), " "), element)
	fmt.Fprintf(&sb, "## Alternative Combinations\n```css\n/* Minimal variant */\n%s\n\n/* Enhanced variant */\n%s\n```\n",
		strings.Join(textutil.Head(classes, 5), " "), strings.Join(textutil.Head(classes, 12), " "))

	return mcp.TextResult(sb.String()), nil
}

var buttonSizes = map[string]string{
	"xs": "px-2 py-1 text-xs rounded",
	"sm": "px-3 py-2 text-sm leading-4 rounded-md",
	"md": "px-4 py-2 text-sm rounded-md",
	"lg": "px-4 py-2 text-base rounded-md",
	"xl": "px-6 py-3 text-base rounded-md",
}

func componentClasses(component, variant, size, color string) string {
	ring := fmt.Sprintf("focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-%s-500", color)
	switch component {
	case "button":
		sz, ok := buttonSizes[size]
		if !ok {
			break
		}
		switch variant {
		case "primary":
			return fmt.Sprintf("inline-flex items-center %s border border-transparent font-medium text-white bg-%[2]s-600 hover:bg-%[2]s-700 %s", sz, color, ring)
		case "secondary":
			if size == "md" {
				return fmt.Sprintf("inline-flex items-center %s border border-%[2]s-300 font-medium text-%[2]s-700 bg-white hover:bg-%[2]s-50 %s", sz, color, ring)
			}
		}
	case "card":
		if variant == "primary" && size == "md" {
			return "bg-white overflow-hidden shadow rounded-lg border border-gray-200 p-6"
		}
	case "modal":
		if variant == "primary" && size == "md" {
			return "fixed inset-0 z-50 overflow-y-auto bg-white rounded-lg shadow-xl transform transition-all sm:max-w-lg sm:w-full sm:mx-auto sm:my-8"
		}
	}
	return fmt.Sprintf("p-4 bg-%s-500 text-white rounded", color)
}

func componentMarkup(component, classes, color string) string {
	action := fmt.Sprintf("inline-flex items-center px-3 py-2 border border-transparent text-sm leading-4 font-medium rounded-md text-white bg-%[1]s-600 hover:bg-%[1]s-700 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-%[1]s-500", color)
	switch component {
	case "button":
		return fmt.Sprintf("<button type=\"button\" class=\"%s\">\n  Button Text\n</button>", classes)
	case "card":
		return fmt.Sprintf(`<div class="%s">
  <div class="px-4 py-5 sm:p-6">
    <h3 class="text-lg leading-6 font-medium text-gray-900">Card Title</h3>
    <div class="mt-2 max-w-xl text-sm text-gray-500">
      <p>Card description goes here.</p>
    </div>
    <div class="mt-5">
      <button type="button" class="%s">
        Action
      </button>
    </div>
  </div>
</div>`, classes, action)
	case "modal":
		return fmt.Sprintf(`<div class="fixed inset-0 z-50 overflow-y-auto" aria-labelledby="modal-title" role="dialog" aria-modal="true">
  <div class="flex items-end justify-center min-h-screen pt-4 px-4 pb-20 text-center sm:block sm:p-0">
    <div class="fixed inset-0 bg-gray-500 bg-opacity-75 transition-opacity" aria-hidden="true"></div>
    <div class="%s">
      <div class="bg-white px-4 pt-5 pb-4 sm:p-6 sm:pb-4">
        <h3 class="text-lg leading-6 font-medium text-gray-900" id="modal-title">Modal Title</h3>
        <p class="mt-2 text-sm text-gray-500">Modal content goes here.</p>
      </div>
      <div class="bg-gray-50 px-4 py-3 sm:px-6 sm:flex sm:flex-row-reverse">
        <button type="button" class="%s sm:ml-3">Confirm</button>
        <button type="button" class="mt-3 inline-flex items-center px-3 py-2 border border-gray-300 text-sm font-medium rounded-md text-gray-700 bg-white hover:bg-gray-50 sm:mt-0">Cancel</button>
      </div>
    </div>
  </div>
</div>`, classes, action)
	default:
		return fmt.Sprintf("<div class=\"%s\">Component content</div>", classes)
	}
}

func buildComponent(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	component := args.StringOr("component_type", "button")
	variant := args.StringOr("style_variant", "primary")
	size := args.StringOr("size", "md")
	color := args.StringOr("color_scheme", "blue")

	classes := componentClasses(component, variant, size, color)
	markup := componentMarkup(component, classes, color)
	title := textutil.Title(component)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s Component - %s (%s)\n\n", title, textutil.Title(variant), strings.ToUpper(size))
	fmt.Fprintf(&sb, "## Generated Markup\n```html\n%s\n```\n\n", markup)
	fmt.Fprintf(&sb, "## Class Breakdown\n```css\n%s\n```\n\n", classes)
	sb.WriteString(`## Variants

### Size Variants
- **xs**: Extra small
- **sm**: Small
- **md**: Medium (default)
- **lg**: Large
- **xl**: Extra large

### Style Variants
- **primary**: Filled background
- **secondary**: Outlined style
- **outline**: Border only
- **ghost**: Minimal styling

`)
	fmt.Fprintf(&sb, "### Usage in React\n```jsx\nconst %sComponent = () => {\n  return (\n%s\n  );\n};\n```\n",
		textutil.Pascal(component), indent(strings.ReplaceAll(markup, "class=", "className="), "    "))

	return mcp.TextResult(sb.String()), nil
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

var layoutPatterns = map[string][2]string{
	"grid":    {"grid grid-cols-1 sm:grid-cols-2 md:grid-cols-3 lg:grid-cols-4 gap-4", "grid grid-cols-4 lg:grid-cols-3 md:grid-cols-2 sm:grid-cols-1 gap-4"},
	"flex":    {"flex flex-col sm:flex-row items-center justify-between space-y-4 sm:space-y-0 sm:space-x-4", "flex flex-row sm:flex-col items-center justify-between space-x-4 sm:space-x-0 sm:space-y-4"},
	"stack":   {"space-y-4 sm:space-y-6 md:space-y-8", "space-y-8 md:space-y-6 sm:space-y-4"},
	"sidebar": {"flex flex-col lg:flex-row min-h-screen", "flex flex-row lg:flex-col min-h-screen"},
}

func layoutMarkup(layout, classes string) string {
	switch layout {
	case "grid":
		var sb strings.Builder
		fmt.Fprintf(&sb, "<div class=\"%s\">\n", classes)
		for i := 1; i <= 4; i++ {
			fmt.Fprintf(&sb, "  <div class=\"bg-white p-4 rounded-lg shadow\">Item %d</div>\n", i)
		}
		sb.WriteString("</div>")
		return sb.String()
	case "flex":
		return fmt.Sprintf(`<div class="%s">
  <div class="flex-1">
    <h2 class="text-xl font-bold">Main Content</h2>
    <p>Content goes here</p>
  </div>
  <div class="w-full sm:w-auto">
    <button class="w-full sm:w-auto px-4 py-2 bg-blue-600 text-white rounded">
      Action
    </button>
  </div>
</div>`, classes)
	case "sidebar":
		return fmt.Sprintf(`<div class="%s">
  <aside class="w-full lg:w-64 bg-gray-100 p-4">
    <nav>Sidebar Navigation</nav>
  </aside>
  <main class="flex-1 p-4">
    <h1 class="text-2xl font-bold mb-4">Main Content</h1>
    <p>Page content goes here</p>
  </main>
</div>`, classes)
	default:
		return fmt.Sprintf("<div class=\"%s\">Content</div>", classes)
	}
}

func generateResponsive(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	layout := args.StringOr("layout_type", "grid")
	mobileFirst := args.BoolOr("mobile_first", true)
	breakpoints := []string{"sm", "md", "lg"}
	if args.Has("breakpoints") {
		breakpoints = args.Strings("breakpoints")
	}

	approach, idx := "Mobile-First", 0
	if !mobileFirst {
		approach, idx = "Desktop-First", 1
	}
	classes := layoutPatterns[layout][idx]

	var behaviour []string
	for _, bp := range breakpoints {
		switch layout {
		case "grid":
			behaviour = append(behaviour, fmt.Sprintf("**%s**: %s:grid-cols-2 (2 columns)", strings.ToUpper(bp), bp))
		case "flex":
			behaviour = append(behaviour, fmt.Sprintf("**%s**: %s:flex-row (horizontal layout)", strings.ToUpper(bp), bp))
		case "stack":
			behaviour = append(behaviour, fmt.Sprintf("**%s**: %s:space-y-6 (wider spacing)", strings.ToUpper(bp), bp))
		case "sidebar":
			behaviour = append(behaviour, fmt.Sprintf("**%s**: %s:flex-row (sidebar beside content)", strings.ToUpper(bp), bp))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Responsive %s Layout\n\n## Approach: %s\n\n", textutil.Title(layout), approach)
	fmt.Fprintf(&sb, "## Generated Classes\n```css\n%s\n```\n\n", classes)
	fmt.Fprintf(&sb, "## Breakpoint Behavior\n%s\n\n", strings.Join(behaviour, "\n"))
	fmt.Fprintf(&sb, "## Complete Example\n```html\n%s\n```\n\n", layoutMarkup(layout, classes))
	sb.WriteString(`## Breakpoint Reference
- **sm**: 640px and up
- **md**: 768px and up
- **lg**: 1024px and up
- **xl**: 1280px and up
- **2xl**: 1536px and up

## Best Practices
1. Start with mobile design (mobile-first approach recommended)
2. Use logical breakpoints based on content, not device sizes
3. Test across different screen sizes
4. Consider touch targets on mobile (minimum 44px)
5. Ensure adequate spacing between interactive elements
`)
	return mcp.TextResult(sb.String()), nil
}
