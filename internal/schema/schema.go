// Package schema interprets tool inputSchemas: it parses the JSON object schema a tool declares,
// fills in defaults, and checks arguments in either lenient or strict mode.
package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Mode selects how argument violations are handled.
type Mode string

const (
	// Lenient substitutes defaults (or zero values) for missing and invalid arguments.
	Lenient Mode = "lenient"
	// Strict rejects calls whose arguments violate the schema.
	Strict Mode = "strict"
)

// ParseMode converts a config value into a Mode. Empty means Lenient.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Lenient):
		return Lenient, nil
	case string(Strict):
		return Strict, nil
	default:
		return "", fmt.Errorf("unknown validation mode %q (want lenient or strict)", s)
	}
}

// Property describes one parameter of a tool.
type Property struct {
	Type        string               `json:"type,omitempty"`
	Description string               `json:"description,omitempty"`
	Default     json.RawMessage      `json:"default,omitempty"`
	Enum        []any                `json:"enum,omitempty"`
	Items       *Property            `json:"items,omitempty"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
}

// HasDefault reports whether the property declares a default value.
func (p *Property) HasDefault() bool {
	return p != nil && len(p.Default) > 0
}

// DefaultValue decodes the declared default. It returns nil when none is declared.
func (p *Property) DefaultValue() any {
	if !p.HasDefault() {
		return nil
	}
	var v any
	if err := json.Unmarshal(p.Default, &v); err != nil {
		return nil
	}
	return v
}

func (p *Property) isRequired(name string) bool {
	for _, r := range p.Required {
		if r == name {
			return true
		}
	}
	return false
}

func (p *Property) names() []string {
	names := make([]string, 0, len(p.Properties))
	for name := range p.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptor is the parsed inputSchema of a single tool.
type Descriptor struct {
	Property

	tool     string
	raw      json.RawMessage
	compiled *jsonschema.Schema
}

// Parse parses and compiles a tool's inputSchema. The root must be an object schema.
func Parse(tool string, raw json.RawMessage) (*Descriptor, error) {
	if len(raw) == 0 {
		raw = json.RawMessage(`{"type":"object"}`)
	}

	d := &Descriptor{tool: tool, raw: raw}
	if err := json.Unmarshal(raw, &d.Property); err != nil {
		return nil, fmt.Errorf("inputSchema for %s is not a JSON object schema: %w", tool, err)
	}
	if d.Type != "" && d.Type != "object" {
		return nil, fmt.Errorf("inputSchema for %s must have type object, got %q", tool, d.Type)
	}
	for _, r := range d.Required {
		if _, ok := d.Properties[r]; !ok {
			return nil, fmt.Errorf("inputSchema for %s lists undeclared required property %q", tool, r)
		}
	}

	compiled, err := compileSchema(tool, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid tool inputSchema for %s: %w", tool, err)
	}
	d.compiled = compiled
	return d, nil
}

// Tool returns the name of the tool the descriptor belongs to.
func (d *Descriptor) Tool() string { return d.tool }

// Raw returns the schema exactly as declared.
func (d *Descriptor) Raw() json.RawMessage { return d.raw }

// Apply checks args against the descriptor and returns the argument map the handler receives.
//
// In Lenient mode it never fails: missing parameters get their default or a zero value, and
// values outside an enum or of the wrong type are replaced. In Strict mode defaults are still
// applied to absent optional parameters, but every violation is reported as a *ValidationError
// and the full schema is checked with jsonschema. Keys not declared in the schema are passed
// through untouched in both modes.
func (d *Descriptor) Apply(args map[string]any, mode Mode) (Args, error) {
	n := normalizer{mode: mode}
	out := n.object(&d.Property, args, "")
	if len(n.violations) > 0 {
		return out, &ValidationError{Tool: d.tool, Violations: n.violations}
	}
	if mode == Strict && d.compiled != nil {
		if err := validateCompiled(d.tool, d.compiled, map[string]any(out)); err != nil {
			return out, err
		}
	}
	return out, nil
}
