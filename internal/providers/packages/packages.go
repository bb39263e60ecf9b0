// Package packages analyzes package.json manifests.
package packages

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/golovatskygroup/mcp-frontend/internal/provider"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

const Name = "packages"

// New returns the packages provider.
func New() *provider.Table {
	return provider.NewTable(Name,
		provider.Tool{Spec: analyzerSpec, Handler: analyzePackage},
		provider.Tool{Spec: updaterSpec, Handler: suggestUpdates},
	).Describe("package.json analysis and dependency update suggestions", "package", "npm", "yarn", "dependency", "dependencies", "version", "semver", "update")
}

var analyzerSpec = mcp.Tool{
	Name:        "package_analyzer",
	Description: "Analyze package.json for dependencies, vulnerabilities, and optimization opportunities",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"package_json": {"type": "string", "description": "Content of package.json file"},
			"analysis_type": {"type": "string", "enum": ["dependencies", "vulnerabilities", "optimization", "all"], "description": "Type of analysis to perform", "default": "all"}
		},
		"required": ["package_json"]
	}`),
}

var updaterSpec = mcp.Tool{
	Name:        "package_updater",
	Description: "Suggest package updates and compatibility checks",
	InputSchema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"package_json": {"type": "string", "description": "Content of package.json file"},
			"update_type": {"type": "string", "enum": ["major", "minor", "patch", "safe"], "description": "Type of updates to suggest", "default": "safe"}
		},
		"required": ["package_json"]
	}`),
}

// Manifest is the subset of package.json the tools read.
type Manifest struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// ParseManifest decodes package.json content. Blank input is an empty manifest.
func ParseManifest(content string) (*Manifest, error) {
	m := &Manifest{}
	if strings.TrimSpace(content) == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(content), m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// Dependency is one declared dependency.
type Dependency struct {
	Name  string
	Range string
	Kind  string
}

// All returns runtime, dev and peer dependencies, each group sorted by name.
func (m *Manifest) All() []Dependency {
	var out []Dependency
	for _, g := range []struct {
		kind string
		deps map[string]string
	}{
		{"dependencies", m.Dependencies},
		{"devDependencies", m.DevDependencies},
		{"peerDependencies", m.PeerDependencies},
	} {
		names := make([]string, 0, len(g.deps))
		for n := range g.deps {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			out = append(out, Dependency{Name: n, Range: g.deps[n], Kind: g.kind})
		}
	}
	return out
}

// lookup returns the range declared for name in runtime or dev dependencies.
func (m *Manifest) lookup(name string) (string, bool) {
	if v, ok := m.Dependencies[name]; ok {
		return v, true
	}
	v, ok := m.DevDependencies[name]
	return v, ok
}
