package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

type normalizer struct {
	mode       Mode
	violations []Violation
}

func (n *normalizer) fail(path, format string, args ...any) {
	n.violations = append(n.violations, Violation{Path: path, Message: fmt.Sprintf(format, args...)})
}

// object normalizes the declared properties of an object value.
func (n *normalizer) object(p *Property, in map[string]any, prefix string) map[string]any {
	out := make(map[string]any, len(in)+len(p.Properties))
	for k, v := range in {
		out[k] = v
	}

	for _, name := range p.names() {
		prop := p.Properties[name]
		path := prefix + "/" + name

		v, present := in[name]
		if present && v == nil {
			present = false
			delete(out, name)
		}

		if !present {
			switch {
			case p.isRequired(name) && n.mode == Strict:
				n.fail(path, "missing required argument %q", name)
			case p.isRequired(name):
				out[name] = fallback(prop)
			case prop.HasDefault():
				out[name] = prop.DefaultValue()
			}
			continue
		}

		out[name] = n.value(prop, v, path)
	}
	return out
}

// value normalizes a single present value against its property.
func (n *normalizer) value(prop *Property, v any, path string) any {
	cv, ok := coerce(prop.Type, v, n.mode == Lenient)
	if !ok {
		if n.mode == Strict {
			n.fail(path, "expected %s, got %s", prop.Type, jsonKind(v))
			return v
		}
		return fallback(prop)
	}
	v = cv

	if len(prop.Enum) > 0 && !inEnum(prop.Enum, v) {
		if n.mode == Strict {
			n.fail(path, "value %s is not one of %s", render(v), render(prop.Enum))
			return v
		}
		return enumFallback(prop)
	}

	switch prop.Type {
	case "object":
		if m, ok := v.(map[string]any); ok && len(prop.Properties) > 0 {
			return n.object(prop, m, path)
		}
	case "array":
		if items, ok := v.([]any); ok && prop.Items != nil {
			return n.array(prop.Items, items, path)
		}
	}
	return v
}

// array normalizes array elements. In lenient mode elements that cannot be
// made valid are dropped instead of being replaced.
func (n *normalizer) array(item *Property, in []any, path string) []any {
	out := make([]any, 0, len(in))
	for i, el := range in {
		elPath := path + "/" + strconv.Itoa(i)
		cv, ok := coerce(item.Type, el, n.mode == Lenient)
		if !ok {
			if n.mode == Strict {
				n.fail(elPath, "expected %s, got %s", item.Type, jsonKind(el))
				out = append(out, el)
			}
			continue
		}
		if len(item.Enum) > 0 && !inEnum(item.Enum, cv) {
			if n.mode == Strict {
				n.fail(elPath, "value %s is not one of %s", render(cv), render(item.Enum))
				out = append(out, cv)
			}
			continue
		}
		if item.Type == "object" && len(item.Properties) > 0 {
			if m, ok := cv.(map[string]any); ok {
				cv = n.object(item, m, elPath)
			}
		}
		out = append(out, cv)
	}
	return out
}

// fallback is the value substituted for a missing or unusable argument:
// the declared default, else the first enum member, else the type's zero value.
func fallback(p *Property) any {
	if p.HasDefault() {
		return p.DefaultValue()
	}
	if len(p.Enum) > 0 {
		return p.Enum[0]
	}
	return ZeroValue(p.Type)
}

func enumFallback(p *Property) any {
	if p.HasDefault() {
		if d := p.DefaultValue(); inEnum(p.Enum, d) {
			return d
		}
	}
	return p.Enum[0]
}

// ZeroValue returns the zero value substituted for a missing argument of the given JSON type.
func ZeroValue(typ string) any {
	switch typ {
	case "boolean":
		return false
	case "number", "integer":
		return float64(0)
	case "array":
		return []any{}
	case "object":
		return map[string]any{}
	default:
		return ""
	}
}

// coerce checks v against a JSON type. When convert is set, lossless conversions
// between strings, numbers and booleans are attempted.
func coerce(typ string, v any, convert bool) (any, bool) {
	switch typ {
	case "":
		return v, true
	case "string":
		switch x := v.(type) {
		case string:
			return x, true
		case float64:
			if convert {
				return strconv.FormatFloat(x, 'f', -1, 64), true
			}
		case bool:
			if convert {
				return strconv.FormatBool(x), true
			}
		}
	case "number", "integer":
		var f float64
		switch x := v.(type) {
		case float64:
			f = x
		case json.Number:
			parsed, err := x.Float64()
			if err != nil {
				return nil, false
			}
			f = parsed
		case string:
			if !convert {
				return nil, false
			}
			parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
			if err != nil {
				return nil, false
			}
			f = parsed
		default:
			return nil, false
		}
		if typ == "integer" && f != math.Trunc(f) {
			return nil, false
		}
		return f, true
	case "boolean":
		switch x := v.(type) {
		case bool:
			return x, true
		case string:
			if convert {
				if b, err := strconv.ParseBool(strings.TrimSpace(x)); err == nil {
					return b, true
				}
			}
		}
	case "array":
		if x, ok := v.([]any); ok {
			return x, true
		}
	case "object":
		if x, ok := v.(map[string]any); ok {
			return x, true
		}
	default:
		// Unknown or union types are not interpreted here.
		return v, true
	}
	return nil, false
}

func inEnum(enum []any, v any) bool {
	for _, e := range enum {
		if reflect.DeepEqual(e, v) {
			return true
		}
	}
	return false
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func render(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
