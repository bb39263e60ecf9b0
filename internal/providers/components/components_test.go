package components

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golovatskygroup/mcp-frontend/internal/schema"
)

func call(t *testing.T, tool string, args schema.Args) string {
	t.Helper()
	res, err := New().Dispatch(context.Background(), tool, args)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.IsError)
	return res.Text()
}

func TestComponentGenerator_Functional(t *testing.T) {
	out := call(t, "react_component_generator", schema.Args{
		"component_name": "user_card",
		"props": []any{
			map[string]any{"name": "title", "type": "string"},
			map[string]any{"name": "onSelect", "type": "() => void", "optional": true},
		},
		"styling": "tailwind",
	})

	assert.Contains(t, out, "interface UserCardProps {")
	assert.Contains(t, out, "onSelect?: () => void;")
	assert.Contains(t, out, "export const UserCard: React.FC<UserCardProps> = ({ title, onSelect }) => {")
	assert.Contains(t, out, `className="p-4"`)
	assert.Contains(t, out, "<p>{title}</p>")
	assert.NotContains(t, out, "<p>{onSelect}</p>")
	assert.Contains(t, out, "export default UserCard;")
}

func TestComponentGenerator_ClassWithCSSModules(t *testing.T) {
	out := call(t, "react_component_generator", schema.Args{
		"component_name": "Panel",
		"component_type": "class",
		"styling":        "css-modules",
	})

	assert.Contains(t, out, "import React, { Component } from 'react';")
	assert.Contains(t, out, "import styles from './Panel.module.css';")
	assert.Contains(t, out, "export class Panel extends Component<PanelProps, PanelState>")
	assert.Contains(t, out, "className={styles.container}")
}

func TestHookGenerator(t *testing.T) {
	out := call(t, "react_hook_generator", schema.Args{
		"hook_name":     "fetch_users",
		"functionality": "Load the user list",
		"dependencies":  []any{"axios", "debounce"},
	})
	assert.Contains(t, out, "export const useFetchUsers = () => {")
	assert.Contains(t, out, "import axios from 'axios';")
	assert.Contains(t, out, "import { debounce } from 'lodash';")

	out = call(t, "react_hook_generator", schema.Args{"hook_name": "useToggle"})
	assert.Contains(t, out, "export const useToggle = () => {")
}

func TestComponentAnalysis(t *testing.T) {
	code := `const Card = (props: any) => {
  useEffect(() => { console.log(props) });
  return <div><img src="a.png"/><button onClick={() => go()}>Go</button></div>;
};`

	out := call(t, "react_component_analysis", schema.Args{"component_code": code, "analysis_type": "all"})
	assert.Contains(t, out, "useEffect without dependency array")
	assert.Contains(t, out, "Inline arrow functions in onClick")
	assert.Contains(t, out, "Console.log statements found")
	assert.Contains(t, out, "Images missing alt attributes")
	assert.Contains(t, out, "aria-label")
	assert.Contains(t, out, "Avoid using 'any' type")
	assert.Contains(t, out, "Define a Props interface")
	assert.Contains(t, out, "### Issues Found (5)")
	// 5 issues, 3 suggestions
	assert.Contains(t, out, "35/100")
}

func TestComponentAnalysis_CleanCode(t *testing.T) {
	out := call(t, "react_component_analysis", schema.Args{
		"component_code": `<img src="a.png" alt="logo"/>`,
		"analysis_type":  "accessibility",
	})
	assert.Contains(t, out, "No issues found!")
	assert.Contains(t, out, "100/100")
}

func TestPerformanceOptimizer(t *testing.T) {
	out := call(t, "react_performance_optimizer", schema.Args{
		"component_code":     "const [a] = useState(0); useEffect(() => {}, []);",
		"optimization_focus": "memory",
	})
	assert.Contains(t, out, "## Memory: State management")
	assert.NotContains(t, out, "Rendering")

	out = call(t, "react_performance_optimizer", schema.Args{"component_code": "", "optimization_focus": "rendering"})
	assert.Contains(t, out, "No obvious performance issues")
}

func TestTestingGenerator(t *testing.T) {
	out := call(t, "react_testing_generator", schema.Args{
		"component_code": "export const Profile = () => <div/>;",
		"test_type":      "snapshot",
		"coverage_level": "basic",
	})
	assert.Contains(t, out, "import Profile from './Profile';")
	assert.Contains(t, out, "toMatchSnapshot")
	assert.NotContains(t, out, "handles user interactions")
}

func TestNativeComponentGenerator(t *testing.T) {
	out := call(t, "react_native_component_generator", schema.Args{"component_name": "Badge", "platform": "android"})
	assert.Contains(t, out, "import { View, Text, StyleSheet, Platform } from 'react-native';")
	assert.Contains(t, out, "elevation: 4")
	assert.Contains(t, out, "Platform: android")
}

func TestInterfaceGenerator_FromJSON(t *testing.T) {
	out := call(t, "typescript_interface_generator", schema.Args{
		"data_source":    `{"id": 1, "name": "Ada", "tags": ["x"], "address": {"city": "Paris"}, "meta": null, "scores": [], "first-name": "A"}`,
		"interface_name": "user",
		"export":         false,
	})

	assert.Contains(t, out, "interface UserAddress {\n  city: string;\n}")
	assert.Contains(t, out, "interface User {\n  id: number;\n  name: string;\n  tags: string[];\n  address: UserAddress;\n  meta: null;\n  scores: unknown[];\n  \"first-name\": string;\n}")
	assert.NotContains(t, out, "export interface")
}

func TestInterfaceGenerator_FallsBackForDescriptions(t *testing.T) {
	out := call(t, "typescript_interface_generator", schema.Args{
		"data_source":    "a blog post with title and body",
		"interface_name": "Post",
		"export":         true,
	})
	assert.Contains(t, out, "export interface Post {")
	assert.Contains(t, out, "// Generated based on: a blog post with title and body...")
}

func TestEveryToolAcceptsEmptyArguments(t *testing.T) {
	p := New()
	for _, spec := range p.Specs() {
		res, err := p.Dispatch(context.Background(), spec.Name, schema.Args{})
		require.NoError(t, err, spec.Name)
		assert.NotEmpty(t, res.Text(), spec.Name)
	}
}
