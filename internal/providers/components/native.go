package components

import (
	"context"
	"fmt"
	"strings"

	"github.com/golovatskygroup/mcp-frontend/internal/providers/textutil"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

func generateNativeComponent(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
	name := textutil.Pascal(args.StringOr("component_name", "MyComponent"))
	if name == "" {
		name = "MyComponent"
	}
	platform := args.StringOr("platform", "both")

	imports := "View, Text, StyleSheet"
	if platform != "both" {
		imports += ", Platform"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# React Native Component: %s\n\n```typescript\n", name)
	sb.WriteString("import React from 'react';\n")
	fmt.Fprintf(&sb, "import { %s } from 'react-native';\n\n", imports)
	fmt.Fprintf(&sb, "interface %sProps {\n  title?: string;\n}\n\n", name)
	fmt.Fprintf(&sb, "export const %[1]s: React.FC<%[1]sProps> = ({ title = 'Hello' }) => {\n", name)
	sb.WriteString(`  return (
    <View style={styles.container}>
      <Text style={styles.title}>{title}</Text>
    </View>
  );
};

const styles = StyleSheet.create({
  container: {
    flex: 1,
    justifyContent: 'center',
    alignItems: 'center',
    padding: 16,
`)
	switch platform {
	case "ios":
		sb.WriteString("    ...Platform.select({ ios: { shadowOpacity: 0.2, shadowRadius: 4 } }),\n")
	case "android":
		sb.WriteString("    ...Platform.select({ android: { elevation: 4 } }),\n")
	}
	sb.WriteString(`  },
  title: {
    fontSize: 18,
    fontWeight: 'bold',
    textAlign: 'center',
  },
});
`)
	fmt.Fprintf(&sb, "\nexport default %s;\n```\n\nPlatform: %s\n", name, platform)

	return mcp.TextResult(sb.String()), nil
}
