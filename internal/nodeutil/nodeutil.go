// Package nodeutil provides helpers for working with yaml.Node trees.
package nodeutil

import "go.yaml.in/yaml/v4"

// Resolve follows alias nodes to their anchor target.
// Returns the node unchanged if it is not an alias.
func Resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// MapValue returns the value node for key in a mapping node.
// Returns nil if m is not a mapping or the key is absent.
func MapValue(m *yaml.Node, key string) *yaml.Node {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	// Mapping content alternates key, value.
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// ScalarString returns the string value of a scalar node and whether the
// node is a scalar. Aliases are resolved first.
func ScalarString(n *yaml.Node) (string, bool) {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	return n.Value, true
}

// Copy returns a deep copy of a node tree. Alias nodes are expanded into
// a copy of their anchor target, so no node of the copy points back into
// the source tree and edits to the copy can never reach it. The expanded
// node drops its anchor name; removing the anchor-bearing original from
// the copy can therefore never strand a dangling alias.
func Copy(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		out := Copy(Resolve(n))
		out.Anchor = ""
		return out
	}
	out := *n
	if len(n.Content) > 0 {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = Copy(c)
		}
	}
	return &out
}
