package schema

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Args is the normalized argument map passed to a handler.
// Values have JSON shapes: string, float64, bool, []any, map[string]any.
type Args map[string]any

// Has reports whether key is present with a non-null value.
func (a Args) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// String returns the value as a string, or "" when absent.
func (a Args) String(key string) string {
	switch v := a[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// StringOr returns the trimmed string value, or def when it is absent or blank.
func (a Args) StringOr(key, def string) string {
	if s := strings.TrimSpace(a.String(key)); s != "" {
		return s
	}
	return def
}

// Bool returns the value as a bool, or false when absent.
func (a Args) Bool(key string) bool {
	return a.BoolOr(key, false)
}

// BoolOr returns the value as a bool, or def when absent or not a boolean.
func (a Args) BoolOr(key string, def bool) bool {
	switch v := a[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}

// Float returns the value as a float64, or def when absent or not numeric.
func (a Args) Float(key string, def float64) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

// Int returns the value truncated to an int, or def when absent or not numeric.
func (a Args) Int(key string, def int) int {
	if !a.Has(key) {
		return def
	}
	return int(a.Float(key, float64(def)))
}

// Strings returns the string elements of an array value. Non-string elements are skipped.
func (a Args) Strings(key string) []string {
	items, _ := a[key].([]any)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Objects returns the object elements of an array value.
func (a Args) Objects(key string) []Args {
	items, _ := a[key].([]any)
	out := make([]Args, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, Args(m))
		}
	}
	return out
}

// Object returns a nested object value, or an empty Args when absent.
func (a Args) Object(key string) Args {
	switch v := a[key].(type) {
	case map[string]any:
		return Args(v)
	case Args:
		return v
	}
	return Args{}
}
