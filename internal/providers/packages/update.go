package packages

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

type rangeKind string

const (
	rangeExact    rangeKind = "exact"
	rangeCaret    rangeKind = "caret"
	rangeTilde    rangeKind = "tilde"
	rangeWildcard rangeKind = "wildcard"
	rangeComplex  rangeKind = "range"
	rangeExternal rangeKind = "external"
)

// versionRange is a classified dependency range.
type versionRange struct {
	kind rangeKind
	// base is the lowest version named by the range, nil for wildcard and external ranges.
	base       *semver.Version
	constraint *semver.Constraints
}

// admits reports the highest update level the range already accepts: "major", "minor", "patch" or "none".
func (r versionRange) admits() string {
	if r.kind == rangeWildcard {
		return "major"
	}
	if r.base == nil || r.constraint == nil {
		return "none"
	}
	for _, lvl := range []struct {
		name string
		next semver.Version
	}{
		{"major", r.base.IncMajor()},
		{"minor", r.base.IncMinor()},
		{"patch", r.base.IncPatch()},
	} {
		next := lvl.next
		if r.constraint.Check(&next) {
			return lvl.name
		}
	}
	return "none"
}

func classifyRange(spec string) versionRange {
	s := strings.TrimSpace(spec)
	switch {
	case s == "" || s == "*" || s == "latest" || s == "x" || s == "X":
		return versionRange{kind: rangeWildcard}
	case strings.Contains(s, "://") || strings.Contains(s, ":") && !strings.ContainsAny(s, "<>=^~") || strings.HasPrefix(s, "github:"):
		return versionRange{kind: rangeExternal}
	}

	c, err := semver.NewConstraint(s)
	if err != nil {
		return versionRange{kind: rangeExternal}
	}
	r := versionRange{kind: rangeComplex, constraint: c}

	switch {
	case strings.HasPrefix(s, "^"):
		r.kind = rangeCaret
	case strings.HasPrefix(s, "~"):
		r.kind = rangeTilde
	case !strings.ContainsAny(s, "<>=|* xX"):
		r.kind = rangeExact
	}
	if r.kind != rangeComplex {
		if v, err := semver.NewVersion(strings.TrimLeft(s, "^~=v")); err == nil {
			r.base = v
		}
	}
	return r
}

var levelRank = map[string]int{"none": 0, "patch": 1, "minor": 2, "major": 3}

// targetLevel resolves the requested update type for a base version. "safe" stays within
// what semver promises is compatible: minor for 1.x and later, patch for 0.x.
func targetLevel(updateType string, base *semver.Version) string {
	if updateType != "safe" {
		return updateType
	}
	if base != nil && base.Major() == 0 {
		return "patch"
	}
	return "minor"
}

// suggestRange returns the range that admits the target level, or "" when the
// current range already does.
func suggestRange(r versionRange, target string) string {
	if r.base == nil || levelRank[r.admits()] >= levelRank[target] {
		return ""
	}
	v := r.base.String()
	switch target {
	case "patch":
		return "~" + v
	case "minor":
		if r.base.Major() == 0 {
			return ">=" + v + " <1.0.0"
		}
		return "^" + v
	case "major":
		next := r.base.IncMajor()
		return "^" + next.String()
	}
	return ""
}

func suggestUpdates(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	m, err := ParseManifest(args.String("package_json"))
	if err != nil {
		return mcp.ErrorResult("Error analyzing package.json: " + err.Error()), nil
	}
	updateType := args.StringOr("update_type", "safe")

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Package Update Suggestions (%s)\n\n", updateType)

	deps := m.All()
	if len(deps) > 0 {
		sb.WriteString("## Dependency Ranges\n\n| Package | Current | Kind | Already admits | Suggested |\n|---|---|---|---|---|\n")
		var review []string
		for _, d := range deps {
			r := classifyRange(d.Range)
			target := targetLevel(updateType, r.base)
			suggested := suggestRange(r, target)
			cell := "keep"
			switch {
			case suggested != "":
				cell = "`" + suggested + "`"
			case r.kind == rangeWildcard:
				cell = "pin a caret range"
			case r.kind == rangeExternal:
				cell = "review manually"
			}
			fmt.Fprintf(&sb, "| %s | `%s` | %s | %s | %s |\n", d.Name, d.Range, r.kind, r.admits(), cell)
			if target == "major" && suggested != "" {
				review = append(review, d.Name)
			}
		}
		if len(review) > 0 {
			fmt.Fprintf(&sb, "\nMajor updates may contain breaking changes; read the changelogs for: %s\n", strings.Join(review, ", "))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`## Recommended Updates
- Check for updates using: ` + "`npm outdated`" + ` or ` + "`yarn outdated`" + `
- Update packages: ` + "`npm update`" + ` or ` + "`yarn upgrade`" + `

## Frontend Package Recommendations
- Keep React ecosystem packages in sync
- Update TypeScript regularly for latest features
- Monitor Tailwind CSS for new utilities
`)
	return mcp.TextResult(sb.String()), nil
}
