package forgeutils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/alt"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// decomposeOptions keeps the host schema's exact field names (via json tags)
// and drops absent optional fields instead of emitting nulls.
var decomposeOptions = ojg.Options{
	UseTags: true,
	OmitNil: true,
}

// Decompose flattens a node into generic mappings (map[string]any, []any,
// scalars), the shape the host authoring pipeline ingests.
func Decompose(n *Node) any {
	return alt.Decompose(n, &decomposeOptions)
}

// EncodeJSON renders a node as JSON with the given indent and sorted keys.
// Output is for human inspection and diffing, not a persistence format.
func EncodeJSON(n *Node, indent int) string {
	opts := decomposeOptions
	opts.Indent = indent
	opts.Sort = true
	return oj.JSON(Decompose(n), &opts)
}

// EncodeYAML renders a node as YAML. Like EncodeJSON, inspection only.
func EncodeYAML(n *Node) (string, error) {
	out, err := yaml.Marshal(Decompose(n))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// QueryPrefab evaluates a JSONPath selector against a node, e.g.
// "$.Children.Wheel1.Components" or "$..MaterialCustomisationProvider".
func QueryPrefab(n *Node, selector string) ([]any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", selector, err)
	}
	return x.Get(Decompose(n)), nil
}

// PrintPrefab walks a node and emits one line per key through the configured
// trace sink, indenting nested mappings by two spaces per depth level. Keys
// are emitted in sorted order. Read-only; authored trees are assumed
// acyclic.
func PrintPrefab(n *Node) {
	printValue(Decompose(n), 0)
}

func printValue(v any, indent int) {
	m, ok := v.(map[string]any)
	if !ok {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pad := strings.Repeat("  ", indent)
	for _, k := range keys {
		if child, ok := m[k].(map[string]any); ok {
			Config.trace(pad + k + ":")
			printValue(child, indent+1)
			continue
		}
		Config.trace(fmt.Sprintf("%s%s: %v", pad, k, m[k]))
	}
}
