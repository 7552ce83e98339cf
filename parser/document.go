package parser

import (
	"sort"

	"go.yaml.in/yaml/v4"

	"github.com/milonpl/prototools/internal/nodeutil"
)

// EntityType is the discriminator value that marks a top-level document
// entry as an entity prototype.
const EntityType = "entity"

// Prototype is one entity definition: a key-ordered YAML mapping with at
// least a "type: entity" discriminator and a unique "id".
type Prototype struct {
	// ID is the prototype's unique id, the key into the Store.
	ID string
	// SourcePath is the file the prototype was loaded from.
	SourcePath string
	// Node is the prototype's mapping node. Treat it as read-only once
	// the prototype is in a Store; sanitizing works on deep copies.
	Node *yaml.Node
}

// Parent returns the prototype's parent ids in declaration order.
//
// The parent key may be absent (no inheritance), a single id scalar, or a
// sequence of id scalars. Any other shape yields no parents, matching the
// permissive handling of hand-edited prototype files.
func (p *Prototype) Parent() []string {
	return ParentIDs(p.Node)
}

// ParentIDs extracts parent ids from a prototype mapping node.
// See Prototype.Parent for the accepted shapes.
func ParentIDs(doc *yaml.Node) []string {
	v := nodeutil.Resolve(nodeutil.MapValue(doc, "parent"))
	if v == nil {
		return nil
	}
	switch v.Kind {
	case yaml.ScalarNode:
		return []string{v.Value}
	case yaml.SequenceNode:
		ids := make([]string, 0, len(v.Content))
		for _, item := range v.Content {
			if id, ok := nodeutil.ScalarString(item); ok {
				ids = append(ids, id)
			}
		}
		return ids
	default:
		return nil
	}
}

// Components returns the prototype's components sequence node, or nil if
// the document has no components sequence.
func (p *Prototype) Components() *yaml.Node {
	return ComponentsNode(p.Node)
}

// ComponentsNode returns the components sequence node of a prototype
// mapping node, or nil if absent or not a sequence.
func ComponentsNode(doc *yaml.Node) *yaml.Node {
	v := nodeutil.Resolve(nodeutil.MapValue(doc, "components"))
	if v == nil || v.Kind != yaml.SequenceNode {
		return nil
	}
	return v
}

// Store is the loaded mapping from prototype id to its parsed document.
// It is populated once by LoadDir and read-only thereafter; the sanitizer
// never mutates stored documents.
type Store struct {
	prototypes map[string]*Prototype
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{prototypes: make(map[string]*Prototype)}
}

// Get returns the prototype for id, if present.
func (s *Store) Get(id string) (*Prototype, bool) {
	p, ok := s.prototypes[id]
	return p, ok
}

// Put adds a prototype to the store. A later prototype with the same id
// replaces the earlier one, matching load order semantics.
func (s *Store) Put(p *Prototype) {
	s.prototypes[p.ID] = p
}

// Len returns the number of prototypes in the store.
func (s *Store) Len() int {
	return len(s.prototypes)
}

// IDs returns all prototype ids in sorted order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.prototypes))
	for id := range s.prototypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
