package sanitizer

import (
	"go.yaml.in/yaml/v4"

	"github.com/milonpl/prototools/internal/nodeutil"
)

// equalNodes reports whether a's structure is supplied identically by b.
//
// The comparison is deliberately one-directional for mappings: every key of
// a must exist in b with an equal value, but b may carry extra keys. A
// child field set is redundant exactly when the parent supplies a superset
// of it. Sequences compare by length and index order; scalars by resolved
// tag and value, so quoting style never affects equality but a quoted "1"
// (!!str) is distinct from an unquoted 1 (!!int).
//
// Comparison failures never propagate: any panic while walking the trees
// yields not-equal.
func equalNodes(a, b *yaml.Node) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return compareNodes(a, b)
}

func compareNodes(a, b *yaml.Node) bool {
	a = nodeutil.Resolve(a)
	b = nodeutil.Resolve(b)
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(a.Content); i += 2 {
			bv := nodeutil.MapValue(b, a.Content[i].Value)
			if bv == nil || !compareNodes(a.Content[i+1], bv) {
				return false
			}
		}
		return true

	case yaml.SequenceNode:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := range a.Content {
			if !compareNodes(a.Content[i], b.Content[i]) {
				return false
			}
		}
		return true

	case yaml.ScalarNode:
		return a.Tag == b.Tag && a.Value == b.Value

	case yaml.DocumentNode:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := range a.Content {
			if !compareNodes(a.Content[i], b.Content[i]) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

// componentFields returns the key/value content pairs of a component
// mapping with the type discriminator excluded.
func componentFields(comp *yaml.Node) []*yaml.Node {
	comp = nodeutil.Resolve(comp)
	if comp == nil || comp.Kind != yaml.MappingNode {
		return nil
	}
	var fields []*yaml.Node
	for i := 0; i+1 < len(comp.Content); i += 2 {
		if comp.Content[i].Value == "type" {
			continue
		}
		fields = append(fields, comp.Content[i], comp.Content[i+1])
	}
	return fields
}

// componentsEqual reports whether the child component's configuration is
// fully supplied by the ancestor component. The type field is excluded on
// both sides. Two components carrying nothing beyond their type are equal;
// a component with fields never equals one without.
func componentsEqual(child, ancestor *yaml.Node) bool {
	cf := componentFields(child)
	af := componentFields(ancestor)
	if len(cf) == 0 && len(af) == 0 {
		return true
	}
	if len(cf) == 0 || len(af) == 0 {
		return false
	}
	return equalNodes(
		&yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: cf},
		&yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: af},
	)
}
