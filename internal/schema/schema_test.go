package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const componentSchema = `{
	"type": "object",
	"properties": {
		"component_name": {"type": "string"},
		"styling": {"type": "string", "enum": ["tailwind", "css-modules", "none"], "default": "tailwind"},
		"responsive": {"type": "boolean", "default": true},
		"count": {"type": "integer"},
		"tags": {"type": "array", "items": {"type": "string", "enum": ["a", "b"]}},
		"spacing": {"type": "object", "properties": {"gap": {"type": "number", "default": 8}}}
	},
	"required": ["component_name"]
}`

func mustParse(t *testing.T, raw string) *Descriptor {
	t.Helper()
	d, err := Parse("test_tool", json.RawMessage(raw))
	require.NoError(t, err)
	return d
}

func TestParse_RejectsNonObjectRoot(t *testing.T) {
	_, err := Parse("bad", json.RawMessage(`{"type":"string"}`))
	assert.Error(t, err)

	_, err = Parse("bad", json.RawMessage(`[1,2]`))
	assert.Error(t, err)
}

func TestParse_RejectsUndeclaredRequired(t *testing.T) {
	_, err := Parse("bad", json.RawMessage(`{"type":"object","properties":{},"required":["x"]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestParse_EmptySchemaIsObject(t *testing.T) {
	d, err := Parse("empty", nil)
	require.NoError(t, err)
	out, err := d.Apply(map[string]any{"anything": 1.0}, Strict)
	require.NoError(t, err)
	assert.Equal(t, 1.0, out["anything"])
}

func TestApply_LenientFillsMissing(t *testing.T) {
	d := mustParse(t, componentSchema)

	out, err := d.Apply(map[string]any{}, Lenient)
	require.NoError(t, err)

	assert.Equal(t, "", out["component_name"], "required without default gets zero value")
	assert.Equal(t, "tailwind", out["styling"])
	assert.Equal(t, true, out["responsive"])
	_, hasCount := out["count"]
	assert.False(t, hasCount, "optional without default stays absent")
}

func TestApply_LenientEnumFallback(t *testing.T) {
	d := mustParse(t, componentSchema)

	out, err := d.Apply(map[string]any{"component_name": "Card", "styling": "sass"}, Lenient)
	require.NoError(t, err)
	assert.Equal(t, "tailwind", out["styling"])
}

func TestApply_LenientEnumWithoutDefaultUsesFirstMember(t *testing.T) {
	d := mustParse(t, `{"type":"object","properties":{"side":{"type":"string","enum":["right","left"]}},"required":["side"]}`)

	out, err := d.Apply(map[string]any{}, Lenient)
	require.NoError(t, err)
	assert.Equal(t, "right", out["side"])

	out, err = d.Apply(map[string]any{"side": "diagonal"}, Lenient)
	require.NoError(t, err)
	assert.Equal(t, "right", out["side"])
}

func TestApply_LenientCoercion(t *testing.T) {
	d := mustParse(t, componentSchema)

	out, err := d.Apply(map[string]any{
		"component_name": 42.0,
		"responsive":     "false",
		"count":          "7",
	}, Lenient)
	require.NoError(t, err)
	assert.Equal(t, "42", out["component_name"])
	assert.Equal(t, false, out["responsive"])
	assert.Equal(t, 7.0, out["count"])
}

func TestApply_LenientUncoercibleFallsBack(t *testing.T) {
	d := mustParse(t, componentSchema)

	out, err := d.Apply(map[string]any{"component_name": "X", "count": "seven", "responsive": []any{}}, Lenient)
	require.NoError(t, err)
	assert.Equal(t, 0.0, out["count"])
	assert.Equal(t, true, out["responsive"])
}

func TestApply_LenientArrayDropsInvalidItems(t *testing.T) {
	d := mustParse(t, componentSchema)

	out, err := d.Apply(map[string]any{"component_name": "X", "tags": []any{"a", "z", 3.0, "b"}}, Lenient)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, out["tags"])
}

func TestApply_NestedDefaults(t *testing.T) {
	d := mustParse(t, componentSchema)

	out, err := d.Apply(map[string]any{"component_name": "X", "spacing": map[string]any{}}, Lenient)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"gap": 8.0}, out["spacing"])
}

func TestApply_NullTreatedAsAbsent(t *testing.T) {
	d := mustParse(t, componentSchema)

	out, err := d.Apply(map[string]any{"component_name": "X", "styling": nil}, Lenient)
	require.NoError(t, err)
	assert.Equal(t, "tailwind", out["styling"])
}

func TestApply_UnknownKeysIgnored(t *testing.T) {
	d := mustParse(t, componentSchema)

	for _, mode := range []Mode{Lenient, Strict} {
		out, err := d.Apply(map[string]any{"component_name": "X", "extra": "kept"}, mode)
		require.NoError(t, err, mode)
		assert.Equal(t, "kept", out["extra"])
	}
}

func TestApply_StrictMissingRequired(t *testing.T) {
	d := mustParse(t, componentSchema)

	_, err := d.Apply(map[string]any{}, Strict)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArguments))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Violations, 1)
	assert.Equal(t, "/component_name", ve.Violations[0].Path)
	assert.Contains(t, ve.Error(), "missing required argument")
}

func TestApply_StrictEnumAndType(t *testing.T) {
	d := mustParse(t, componentSchema)

	_, err := d.Apply(map[string]any{"component_name": "X", "styling": "sass", "count": "7"}, Strict)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Violations, 2)
}

func TestApply_StrictAppliesDefaults(t *testing.T) {
	d := mustParse(t, componentSchema)

	out, err := d.Apply(map[string]any{"component_name": "X"}, Strict)
	require.NoError(t, err)
	assert.Equal(t, "tailwind", out["styling"])
}

func TestApply_StrictDelegatesFullSchema(t *testing.T) {
	d := mustParse(t, `{"type":"object","properties":{"limit":{"type":"integer","maximum":10}}}`)

	_, err := d.Apply(map[string]any{"limit": 50.0}, Strict)
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "/limit", ve.Violations[0].Path)

	_, err = d.Apply(map[string]any{"limit": 50.0}, Lenient)
	assert.NoError(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Lenient, m)

	m, err = ParseMode("STRICT")
	require.NoError(t, err)
	assert.Equal(t, Strict, m)

	_, err = ParseMode("paranoid")
	assert.Error(t, err)
}

func TestDecodeArguments(t *testing.T) {
	for _, raw := range []string{"", "null", "  ", "{}"} {
		m, err := DecodeArguments(json.RawMessage(raw))
		require.NoError(t, err, raw)
		assert.Empty(t, m)
		assert.NotNil(t, m)
	}

	m, err := DecodeArguments(json.RawMessage(`{"text":"hi"}`))
	require.NoError(t, err)
	assert.Equal(t, "hi", m["text"])

	_, err = DecodeArguments(json.RawMessage(`[1]`))
	assert.ErrorIs(t, err, ErrInvalidArguments)
}
