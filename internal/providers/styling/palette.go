package styling

import (
	"context"
	"fmt"
	"strings"

	"github.com/golovatskygroup/mcp-frontend/internal/providers/textutil"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// hues is the Tailwind chromatic palette in color-wheel order.
var hues = []string{"red", "orange", "amber", "yellow", "lime", "green", "emerald", "teal", "cyan", "sky", "blue", "indigo", "violet", "purple", "fuchsia", "pink", "rose"}

var neutrals = map[string]bool{"slate": true, "gray": true, "zinc": true, "neutral": true, "stone": true}

var complementary = map[string]string{
	"blue":   "orange",
	"red":    "green",
	"green":  "red",
	"purple": "yellow",
	"orange": "blue",
	"yellow": "purple",
}

func hueIndex(color string) int {
	for i, h := range hues {
		if h == color {
			return i
		}
	}
	return -1
}

// baseColor maps the requested color to a Tailwind color name; anything unknown, hex codes
// included, falls back to blue.
func baseColor(requested string) string {
	c := strings.ToLower(strings.TrimSpace(requested))
	if hueIndex(c) >= 0 || neutrals[c] {
		return c
	}
	return "blue"
}

func scale(color string) []string {
	out := make([]string, len(shades))
	for i, s := range shades {
		out[i] = color + "-" + s
	}
	return out
}

// companions returns the extra colors a palette type adds to the base color.
func companions(base, paletteType string) []string {
	idx := hueIndex(base)
	switch paletteType {
	case "complementary":
		if c, ok := complementary[base]; ok {
			return []string{c}
		}
		if idx >= 0 {
			return []string{hues[(idx+len(hues)/2)%len(hues)]}
		}
		return []string{"gray"}
	case "triadic":
		if idx < 0 {
			return []string{"slate", "zinc"}
		}
		step := len(hues) / 3
		return []string{hues[(idx+step)%len(hues)], hues[(idx+2*step)%len(hues)]}
	case "analogous":
		if idx < 0 {
			return []string{"slate", "zinc"}
		}
		n := len(hues)
		return []string{hues[(idx+n-1)%n], hues[(idx+1)%n]}
	}
	return nil
}

func generatePalette(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	requested := args.StringOr("primary_color", "blue")
	paletteType := args.StringOr("palette_type", "monochromatic")
	base := baseColor(requested)
	baseScale := scale(base)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s Color Palette - %s\n\n## Color Scale\n", textutil.Title(requested), textutil.Title(paletteType))
	for _, c := range baseScale {
		fmt.Fprintf(&sb, "- **%s**: `%s`\n", c, c)
	}

	if extra := companions(base, paletteType); len(extra) > 0 {
		sb.WriteString("\n## Companion Colors\n")
		for _, c := range extra {
			s := scale(c)
			fmt.Fprintf(&sb, "- **%s**: accents `%s`, `%s`, `%s`\n", c, s[4], s[5], s[6])
		}
		fmt.Fprintf(&sb, "- **neutral**: %s\n", strings.Join(scale("gray")[:6], ", "))
	} else {
		fmt.Fprintf(&sb, "\n## Shade Roles\n- **backgrounds**: %s\n- **accents**: %s\n- **text**: %s\n",
			strings.Join(baseScale[0:3], ", "), strings.Join(baseScale[4:7], ", "), strings.Join(baseScale[6:9], ", "))
	}

	fmt.Fprintf(&sb, `
## Recommended Usage

### Light Theme
- **Background**: `+"`bg-white`, `bg-%[1]s-50`"+`
- **Surface**: `+"`bg-%[1]s-100`, `bg-%[1]s-200`"+`
- **Primary**: `+"`bg-%[1]s-600`, `text-%[1]s-600`"+`
- **Text**: `+"`text-gray-900`, `text-gray-700`, `text-gray-500`"+`

### Dark Theme
- **Background**: `+"`bg-gray-900`, `bg-gray-800`"+`
- **Surface**: `+"`bg-gray-700`, `bg-gray-600`"+`
- **Primary**: `+"`bg-%[1]s-500`, `text-%[1]s-400`"+`
- **Text**: `+"`text-white`, `text-gray-100`, `text-gray-300`"+`
`, base)

	if args.BoolOr("include_usage", true) {
		fmt.Fprintf(&sb, `
## Usage Examples

### Backgrounds
`+"```css"+`
bg-%[1]s-50  /* Very light */
bg-%[1]s-100 /* Light */
bg-%[1]s-500 /* Main */
bg-%[1]s-600 /* Hover */
bg-%[1]s-700 /* Active */
`+"```"+`

### Borders
`+"```css"+`
border-%[1]s-200 /* Subtle */
border-%[1]s-300 /* Visible */
border-%[1]s-500 /* Prominent */
`+"```"+`

### Component Examples
`+"```html"+`
<button class="bg-%[1]s-600 hover:bg-%[1]s-700 text-white px-4 py-2 rounded">
  Primary Action
</button>

<button class="bg-%[1]s-100 hover:bg-%[1]s-200 text-%[1]s-700 px-4 py-2 rounded">
  Secondary Action
</button>

<div class="bg-white border border-%[1]s-200 rounded-lg p-6 shadow-sm">
  <h3 class="text-%[1]s-800 text-lg font-semibold">Card Title</h3>
  <p class="text-gray-600 mt-2">Card content goes here.</p>
</div>
`+"```"+`
`, base)
	}

	sb.WriteString(`
## Accessibility Notes
- Ensure sufficient contrast ratios (4.5:1 for normal text, 3:1 for large text)
- Test with color blindness simulators
- Use semantic color naming (primary, secondary, etc.)
- Provide alternative indicators beyond color alone
`)
	return mcp.TextResult(sb.String()), nil
}
