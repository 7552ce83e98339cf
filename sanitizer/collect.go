package sanitizer

import (
	"fmt"
	"slices"

	"go.yaml.in/yaml/v4"

	"github.com/milonpl/prototools/internal/nodeutil"
	"github.com/milonpl/prototools/parser"
	"github.com/milonpl/prototools/protoerrors"
)

// componentIndex maps a component type to the ancestor-supplied
// configurations of that type, in traversal order: a nearer ancestor's
// direct components precede those of farther ancestors within the same
// parent branch, and sibling branches follow parent declaration order.
type componentIndex map[string][]*yaml.Node

// collectAncestors walks doc's parent chain against the store and
// accumulates every ancestor component configuration per type.
//
// Unresolved parent ids are appended to warnings and their branch
// contributes nothing. Revisiting an id already on the active recursion
// path is an inheritance cycle and aborts the walk; chains deeper than
// MaxDepth abort likewise. path holds the chain of ids walked so far
// (target first) and onPath is its membership set.
func (s *Sanitizer) collectAncestors(doc *yaml.Node, path []string, onPath map[string]bool, warnings *[]string) (componentIndex, error) {
	if len(path) > s.maxDepth() {
		return nil, &protoerrors.ReferenceError{
			ID:      path[len(path)-1],
			Path:    slices.Clone(path),
			Message: fmt.Sprintf("parent chain exceeds depth limit %d", s.maxDepth()),
		}
	}

	index := make(componentIndex)
	for _, parentID := range parser.ParentIDs(doc) {
		if onPath[parentID] {
			return nil, &protoerrors.ReferenceError{
				ID:         parentID,
				Path:       append(slices.Clone(path), parentID),
				IsCircular: true,
			}
		}

		parent, ok := s.Store.Get(parentID)
		if !ok {
			*warnings = append(*warnings, fmt.Sprintf("parent prototype %q not found", parentID))
			s.log().Warn("parent prototype not found", "parent", parentID)
			continue
		}

		// The parent's direct components come first.
		if comps := parser.ComponentsNode(parent.Node); comps != nil {
			for _, comp := range comps.Content {
				comp = nodeutil.Resolve(comp)
				if comp == nil || comp.Kind != yaml.MappingNode {
					continue
				}
				ctype, ok := nodeutil.ScalarString(nodeutil.MapValue(comp, "type"))
				if !ok {
					continue
				}
				index[ctype] = append(index[ctype], comp)
			}
		}

		// Then everything the parent itself inherits.
		onPath[parentID] = true
		sub, err := s.collectAncestors(parent.Node, append(path, parentID), onPath, warnings)
		delete(onPath, parentID)
		if err != nil {
			return nil, err
		}
		for ctype, configs := range sub {
			index[ctype] = append(index[ctype], configs...)
		}
	}
	return index, nil
}
