package sanitizer

import (
	"go.yaml.in/yaml/v4"

	"github.com/milonpl/prototools/internal/nodeutil"
)

// PrototypeFieldOrder is the canonical order of top-level prototype keys.
// Keys not in this list follow in their original relative order.
var PrototypeFieldOrder = []string{
	"type",
	"abstract",
	"parent",
	"id",
	"categories",
	"name",
	"suffix",
	"description",
	"components",
}

// OrderPrototypeFields reorders the top-level keys of a prototype document
// into canonical order, in place. Nested component and field structures are
// left untouched. No keys are added or dropped.
func OrderPrototypeFields(doc *yaml.Node) {
	doc = nodeutil.Resolve(doc)
	if doc == nil || doc.Kind != yaml.MappingNode {
		return
	}

	ordered := make([]*yaml.Node, 0, len(doc.Content))
	used := make(map[int]bool, len(doc.Content)/2)

	for _, key := range PrototypeFieldOrder {
		for i := 0; i+1 < len(doc.Content); i += 2 {
			if !used[i] && doc.Content[i].Value == key {
				ordered = append(ordered, doc.Content[i], doc.Content[i+1])
				used[i] = true
				break
			}
		}
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if !used[i] {
			ordered = append(ordered, doc.Content[i], doc.Content[i+1])
		}
	}
	doc.Content = ordered
}
