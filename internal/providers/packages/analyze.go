package packages

import (
	"context"
	"fmt"
	"strings"

	"github.com/golovatskygroup/mcp-frontend/internal/providers/textutil"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

var frontendPackages = []struct{ name, desc string }{
	{"react", "React framework"},
	{"react-dom", "React DOM renderer"},
	{"next", "Next.js framework"},
	{"vue", "Vue.js framework"},
	{"angular", "Angular framework"},
	{"typescript", "TypeScript compiler"},
	{"tailwindcss", "Tailwind CSS framework"},
	{"styled-components", "CSS-in-JS library"},
	{"react-router", "React routing"},
	{"axios", "HTTP client"},
	{"lodash", "Utility library"},
}

var deprecatedPackages = map[string]string{
	"request":   "deprecated; use fetch, undici or axios",
	"node-sass": "deprecated; use sass (Dart Sass)",
	"tslint":    "deprecated; use eslint with @typescript-eslint",
	"moment":    "in maintenance mode; consider date-fns or dayjs",
	"left-pad":  "unmaintained; use String.prototype.padStart",
}

var heavyPackages = map[string]string{
	"moment":  "dayjs or date-fns",
	"lodash":  "lodash-es or per-method imports",
	"jquery":  "native DOM APIs",
	"core-js": "targeted polyfills via browserslist",
}

func analyzePackage(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	m, err := ParseManifest(args.String("package_json"))
	if err != nil {
		return mcp.ErrorResult("Error analyzing package.json: " + err.Error()), nil
	}
	kind := args.StringOr("analysis_type", "all")
	wants := func(k string) bool { return kind == k || kind == "all" }

	var sb strings.Builder
	sb.WriteString("# Package Analysis Report\n\n")
	if m.Name != "" {
		fmt.Fprintf(&sb, "**Package:** %s %s\n\n", m.Name, m.Version)
	}

	if wants("dependencies") {
		fmt.Fprintf(&sb, "## Dependencies Overview\n- **Runtime dependencies**: %d\n- **Development dependencies**: %d\n- **Peer dependencies**: %d\n\n",
			len(m.Dependencies), len(m.DevDependencies), len(m.PeerDependencies))
		var found []string
		for _, p := range frontendPackages {
			if v, ok := m.lookup(p.name); ok {
				found = append(found, fmt.Sprintf("**%s** (%s): %s", p.name, v, p.desc))
			}
		}
		fmt.Fprintf(&sb, "### Frontend-specific packages detected:\n%s\n\n", textutil.Bullets(found, "No common frontend packages detected."))
	}

	if wants("vulnerabilities") {
		var risks []string
		for _, d := range m.All() {
			if note, ok := deprecatedPackages[d.Name]; ok {
				risks = append(risks, fmt.Sprintf("**%s**: %s", d.Name, note))
			}
			switch r := classifyRange(d.Range); r.kind {
			case rangeWildcard:
				risks = append(risks, fmt.Sprintf("**%s** (%s): unbounded range accepts any published version", d.Name, d.Range))
			case rangeExternal:
				risks = append(risks, fmt.Sprintf("**%s** (%s): installed from outside the registry, not covered by npm audit", d.Name, d.Range))
			}
		}
		fmt.Fprintf(&sb, "## Vulnerability Review\n%s\n\nRun `npm audit` for advisories against the resolved lockfile.\n\n", textutil.Bullets(risks, "No risky ranges or deprecated packages found."))
	}

	if wants("optimization") {
		var tips []string
		for _, d := range m.All() {
			if d.Kind != "dependencies" {
				continue
			}
			if alt, ok := heavyPackages[d.Name]; ok {
				tips = append(tips, fmt.Sprintf("**%s** adds significant bundle weight; consider %s", d.Name, alt))
			}
			if strings.HasPrefix(d.Name, "@types/") {
				tips = append(tips, fmt.Sprintf("**%s** is only needed at build time; move it to devDependencies", d.Name))
			}
			if _, dup := m.DevDependencies[d.Name]; dup {
				tips = append(tips, fmt.Sprintf("**%s** is declared in both dependencies and devDependencies", d.Name))
			}
		}
		fmt.Fprintf(&sb, "## Optimization Opportunities\n%s\n", textutil.Bullets(tips, "No obvious optimizations found."))
	}

	return mcp.TextResult(strings.TrimRight(sb.String(), "\n") + "\n"), nil
}
