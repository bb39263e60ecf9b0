package components

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/golovatskygroup/mcp-frontend/internal/providers/textutil"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// interfaceWriter emits one interface per JSON object, nested objects first.
type interfaceWriter struct {
	export bool
	blocks []string
	used   map[string]int
}

func generateInterface(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	source := args.String("data_source")
	name := textutil.Pascal(args.StringOr("interface_name", "MyInterface"))
	if name == "" {
		name = "MyInterface"
	}
	w := &interfaceWriter{export: args.BoolOr("export", true), used: make(map[string]int)}

	trimmed := strings.TrimSpace(source)
	var body string
	if trimmed != "" && gjson.Valid(trimmed) {
		root := gjson.Parse(trimmed)
		if root.IsArray() {
			items := root.Array()
			if len(items) > 0 && items[0].IsObject() {
				root = items[0]
			}
		}
		if root.IsObject() {
			w.object(name, root)
			body = strings.Join(w.blocks, "\n\n")
		}
	}
	if body == "" {
		body = w.placeholder(name, source)
	}

	return mcp.TextResult(fmt.Sprintf("# TypeScript Interface: %s\n\n```typescript\n%s\n```\n", name, body)), nil
}

func (w *interfaceWriter) keyword() string {
	if w.export {
		return "export interface"
	}
	return "interface"
}

func (w *interfaceWriter) reserve(name string) string {
	n := w.used[name]
	w.used[name] = n + 1
	if n == 0 {
		return name
	}
	return fmt.Sprintf("%s%d", name, n+1)
}

func (w *interfaceWriter) object(name string, obj gjson.Result) string {
	name = w.reserve(name)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s {\n", w.keyword(), name)
	obj.ForEach(func(key, value gjson.Result) bool {
		field := key.String()
		if !identRe.MatchString(field) {
			field = fmt.Sprintf("%q", field)
		}
		fmt.Fprintf(&sb, "  %s: %s;\n", field, w.typeOf(name, key.String(), value))
		return true
	})
	sb.WriteString("}")
	w.blocks = append(w.blocks, sb.String())
	return name
}

func (w *interfaceWriter) typeOf(parent, key string, v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Null:
		return "null"
	}
	if v.IsArray() {
		items := v.Array()
		if len(items) == 0 {
			return "unknown[]"
		}
		elem := w.typeOf(parent, key, items[0])
		if strings.ContainsAny(elem, " |") {
			elem = "(" + elem + ")"
		}
		return elem + "[]"
	}
	if v.IsObject() {
		return w.object(parent+textutil.Pascal(key), v)
	}
	return "unknown"
}

func (w *interfaceWriter) placeholder(name, source string) string {
	hint := textutil.Truncate(strings.TrimSpace(source), 50)
	return fmt.Sprintf("%s %s {\n  // Generated based on: %s...\n  id: string;\n  name: string;\n  // Add specific properties based on your data\n}", w.keyword(), name, hint)
}
