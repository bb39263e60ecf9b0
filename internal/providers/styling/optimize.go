package styling

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/golovatskygroup/mcp-frontend/internal/providers/textutil"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

const manyClassesThreshold = 50

var responsivePrefixes = []string{"sm:", "md:", "lg:", "xl:", "2xl:"}

// text-* utilities that set size or alignment rather than color.
var typographyText = map[string]bool{
	"text-xs": true, "text-sm": true, "text-base": true, "text-lg": true, "text-xl": true,
	"text-2xl": true, "text-3xl": true, "text-4xl": true, "text-5xl": true,
	"text-left": true, "text-center": true, "text-right": true, "text-justify": true,
}

// extractClassLists returns the class attribute of every element, in document order.
// JSX className attributes are picked up too; the parser lower-cases attribute names.
func extractClassLists(content string) [][]string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil
	}
	var lists [][]string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "class" || a.Key == "classname" {
					if fields := strings.Fields(a.Val); len(fields) > 0 {
						lists = append(lists, fields)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return lists
}

// classGroup ranks a utility by the conventional order:
// layout, spacing, sizing, typography, colors, effects.
func classGroup(cls string) int {
	base := cls[strings.LastIndex(cls, ":")+1:]
	base = strings.TrimPrefix(base, "-")
	switch {
	case hasAnyPrefix(base, "flex", "grid", "block", "inline", "hidden", "relative", "absolute", "fixed", "sticky", "items-", "justify-", "content-", "self-", "order-", "col-", "row-", "gap-", "inset-", "top-", "bottom-", "left-", "right-", "z-", "overflow-", "container"):
		return 0
	case hasAnyPrefix(base, "p-", "px-", "py-", "pt-", "pb-", "pl-", "pr-", "m-", "mx-", "my-", "mt-", "mb-", "ml-", "mr-", "space-"):
		return 1
	case hasAnyPrefix(base, "w-", "h-", "min-", "max-"):
		return 2
	case hasAnyPrefix(base, "font-", "leading-", "tracking-", "uppercase", "lowercase", "capitalize", "italic", "underline", "truncate"),
		typographyText[base]:
		return 3
	case hasAnyPrefix(base, "bg-", "text-", "border", "ring", "fill-", "stroke-", "divide-"):
		return 4
	default:
		return 5
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// orderClasses sorts a class list by group, keeping relative order inside a group.
func orderClasses(classes []string) []string {
	out := append([]string(nil), classes...)
	sort.SliceStable(out, func(i, j int) bool { return classGroup(out[i]) < classGroup(out[j]) })
	return out
}

type finding struct {
	kind, issue, suggestion string
	classes                 []string
	example                 string
}

func optimizeClasses(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	content := args.String("html_content")
	kind := args.StringOr("optimization_type", "all")
	wants := func(k string) bool { return kind == k || kind == "all" }

	lists := extractClassLists(content)
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	unique := textutil.Dedupe(all)
	counts := make(map[string]int, len(unique))
	for _, c := range all {
		counts[c]++
	}

	var findings []finding

	if wants("duplicate_removal") {
		var dups []string
		for _, c := range unique {
			if counts[c] > 1 {
				dups = append(dups, c)
			}
		}
		if len(dups) > 0 {
			findings = append(findings, finding{
				kind:       "Duplicate Classes",
				issue:      fmt.Sprintf("Found %d duplicate classes", len(dups)),
				suggestion: "Consider extracting common class combinations into CSS components",
				classes:    textutil.Head(dups, 10),
			})
		}
		var redundant []string
		for _, l := range lists {
			if len(textutil.Dedupe(l)) != len(l) {
				redundant = append(redundant, strings.Join(l, " "))
			}
		}
		if len(redundant) > 0 {
			findings = append(findings, finding{
				kind:       "Redundant Classes",
				issue:      fmt.Sprintf("%d elements repeat a class in the same attribute", len(redundant)),
				suggestion: "Remove the repeated utility; it has no additional effect",
				classes:    textutil.Head(redundant, 5),
			})
		}
	}

	if wants("class_ordering") {
		f := finding{
			kind:       "Class Ordering",
			issue:      "Classes could be better organized",
			suggestion: "Follow this order: Layout → Spacing → Typography → Colors → Effects",
			example:    "flex items-center px-4 py-2 text-sm font-medium text-white bg-blue-600 rounded-md shadow hover:bg-blue-700",
		}
		for _, l := range lists {
			ordered := orderClasses(l)
			if strings.Join(ordered, " ") != strings.Join(l, " ") {
				f.issue = fmt.Sprintf("Class list %q is not in conventional order", strings.Join(l, " "))
				f.example = strings.Join(ordered, " ")
				break
			}
		}
		findings = append(findings, f)
	}

	if wants("responsive_optimization") {
		var responsive []string
		for _, c := range unique {
			for _, bp := range responsivePrefixes {
				if strings.Contains(c, bp) {
					responsive = append(responsive, c)
					break
				}
			}
		}
		if len(responsive) > 0 {
			findings = append(findings, finding{
				kind:       "Responsive Classes",
				issue:      fmt.Sprintf("Found %d responsive classes", len(responsive)),
				suggestion: "Ensure mobile-first approach and logical breakpoint progression",
				classes:    textutil.Head(responsive, 5),
			})
		}
	}

	if len(unique) > manyClassesThreshold {
		findings = append(findings, finding{
			kind:       "Performance",
			issue:      fmt.Sprintf("High number of utility classes (%d)", len(unique)),
			suggestion: "Consider using @apply directive for repeated patterns",
			example:    "@apply flex items-center px-4 py-2 text-white bg-blue-600 rounded;",
		})
	}

	var sb strings.Builder
	sb.WriteString("# Tailwind CSS Optimization Report\n\n## Summary\n")
	fmt.Fprintf(&sb, "- **Total classes found**: %d\n- **Unique classes**: %d\n- **Potential optimizations**: %d\n\n## Optimizations\n",
		len(all), len(unique), len(findings))
	for _, f := range findings {
		fmt.Fprintf(&sb, "\n### %s\n**Issue**: %s\n**Suggestion**: %s\n\n", f.kind, f.issue, f.suggestion)
		if len(f.classes) > 0 {
			fmt.Fprintf(&sb, "**Classes**: %s\n\n", strings.Join(f.classes, ", "))
		}
		if f.example != "" {
			fmt.Fprintf(&sb, "**Example**:\n```css\n%s\n```\n", f.example)
		}
	}
	if len(findings) == 0 {
		sb.WriteString("\nNo obvious optimizations needed! Your Tailwind usage looks good.\n")
	}
	return mcp.TextResult(sb.String()), nil
}
