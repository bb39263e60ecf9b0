package packages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golovatskygroup/mcp-frontend/internal/schema"
)

const manifest = `{
	"name": "shop",
	"version": "1.0.0",
	"dependencies": {
		"react": "^18.2.0",
		"lodash": "4.17.21",
		"left-pad": "*",
		"tiny": "^0.2.3",
		"mylib": "github:me/lib",
		"@types/react": "^18.0.0",
		"moment": "~2.29.1"
	},
	"devDependencies": {
		"typescript": "~5.3.0",
		"lodash": "4.17.21"
	},
	"peerDependencies": {"react-dom": ">=18.0.0 <19.0.0"}
}`

func dispatch(t *testing.T, tool string, args schema.Args) (string, bool) {
	t.Helper()
	res, err := New().Dispatch(context.Background(), tool, args)
	require.NoError(t, err)
	return res.Text(), res.IsError
}

func TestClassifyRange(t *testing.T) {
	tests := []struct {
		spec   string
		kind   rangeKind
		admits string
	}{
		{"^1.2.3", rangeCaret, "minor"},
		{"~1.2.3", rangeTilde, "patch"},
		{"1.2.3", rangeExact, "none"},
		{"^0.2.3", rangeCaret, "patch"},
		{"*", rangeWildcard, "major"},
		{"latest", rangeWildcard, "major"},
		{"github:me/lib", rangeExternal, "none"},
		{"file:../lib", rangeExternal, "none"},
		{"https://example.com/lib.tgz", rangeExternal, "none"},
		{">=1.0.0 <2.0.0", rangeComplex, "none"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			r := classifyRange(tt.spec)
			assert.Equal(t, tt.kind, r.kind)
			assert.Equal(t, tt.admits, r.admits())
		})
	}
}

func TestSuggestRange(t *testing.T) {
	tests := []struct {
		spec, target, want string
	}{
		{"1.2.3", "patch", "~1.2.3"},
		{"1.2.3", "minor", "^1.2.3"},
		{"^1.2.3", "minor", ""},
		{"~1.2.3", "minor", "^1.2.3"},
		{"^1.2.3", "major", "^2.0.0"},
		{"0.4.1", "minor", ">=0.4.1 <1.0.0"},
		{"*", "minor", ""},
	}
	for _, tt := range tests {
		t.Run(tt.spec+"/"+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestRange(classifyRange(tt.spec), tt.target))
		})
	}
}

func TestTargetLevel(t *testing.T) {
	assert.Equal(t, "minor", targetLevel("safe", classifyRange("^1.0.0").base))
	assert.Equal(t, "patch", targetLevel("safe", classifyRange("^0.3.0").base))
	assert.Equal(t, "major", targetLevel("major", nil))
}

func TestPackageAnalyzer(t *testing.T) {
	out, isErr := dispatch(t, "package_analyzer", schema.Args{"package_json": manifest, "analysis_type": "all"})
	require.False(t, isErr)

	assert.Contains(t, out, "**Package:** shop 1.0.0")
	assert.Contains(t, out, "- **Runtime dependencies**: 7")
	assert.Contains(t, out, "- **Development dependencies**: 2")
	assert.Contains(t, out, "- **Peer dependencies**: 1")
	assert.Contains(t, out, "- **react** (^18.2.0): React framework")
	assert.Contains(t, out, "- **typescript** (~5.3.0): TypeScript compiler")
	assert.Contains(t, out, "**left-pad**: unmaintained")
	assert.Contains(t, out, "**left-pad** (*): unbounded range")
	assert.Contains(t, out, "**mylib** (github:me/lib): installed from outside the registry")
	assert.Contains(t, out, "**moment** adds significant bundle weight")
	assert.Contains(t, out, "**@types/react** is only needed at build time")
	assert.Contains(t, out, "**lodash** is declared in both dependencies and devDependencies")
}

func TestPackageAnalyzer_DependenciesOnly(t *testing.T) {
	out, isErr := dispatch(t, "package_analyzer", schema.Args{"package_json": `{"dependencies":{"express":"^4.0.0"}}`, "analysis_type": "dependencies"})
	require.False(t, isErr)
	assert.Contains(t, out, "No common frontend packages detected.")
	assert.NotContains(t, out, "## Vulnerability Review")
}

func TestPackageAnalyzer_MalformedJSON(t *testing.T) {
	out, isErr := dispatch(t, "package_analyzer", schema.Args{"package_json": `{"dependencies": `})
	assert.True(t, isErr)
	assert.Contains(t, out, "Error analyzing package.json: ")

	// A later call on another tool is unaffected.
	out, isErr = dispatch(t, "package_updater", schema.Args{"package_json": `{}`})
	assert.False(t, isErr)
	assert.Contains(t, out, "# Package Update Suggestions (safe)")
}

func TestPackageUpdater(t *testing.T) {
	out, isErr := dispatch(t, "package_updater", schema.Args{"package_json": manifest, "update_type": "safe"})
	require.False(t, isErr)

	assert.Contains(t, out, "| react | `^18.2.0` | caret | minor | keep |")
	assert.Contains(t, out, "| lodash | `4.17.21` | exact | none | `^4.17.21` |")
	assert.Contains(t, out, "| left-pad | `*` | wildcard | major | pin a caret range |")
	assert.Contains(t, out, "| tiny | `^0.2.3` | caret | patch | keep |")
	assert.Contains(t, out, "| mylib | `github:me/lib` | external | none | review manually |")
	assert.Contains(t, out, "| typescript | `~5.3.0` | tilde | patch | `^5.3.0` |")
	assert.NotContains(t, out, "breaking changes")
}

func TestPackageUpdater_Major(t *testing.T) {
	out, _ := dispatch(t, "package_updater", schema.Args{"package_json": `{"dependencies":{"react":"^17.0.2"}}`, "update_type": "major"})
	assert.Contains(t, out, "| react | `^17.0.2` | caret | minor | `^18.0.0` |")
	assert.Contains(t, out, "read the changelogs for: react")
}

func TestEveryToolAcceptsEmptyArguments(t *testing.T) {
	p := New()
	for _, spec := range p.Specs() {
		res, err := p.Dispatch(context.Background(), spec.Name, schema.Args{})
		require.NoError(t, err, spec.Name)
		assert.False(t, res.IsError, spec.Name)
		assert.NotEmpty(t, res.Text(), spec.Name)
	}
}
