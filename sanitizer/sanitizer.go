package sanitizer

import (
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/milonpl/prototools/internal/nodeutil"
	"github.com/milonpl/prototools/parser"
	"github.com/milonpl/prototools/protoerrors"
)

// defaultMaxDepth bounds the parent-chain walk. Real prototype hierarchies
// are a handful of levels deep; hitting this limit means a degenerate or
// malformed hierarchy.
const defaultMaxDepth = 100

// Sanitizer removes inherited-redundant components and fields from entity
// prototypes. The zero value is not usable; construct with New.
type Sanitizer struct {
	// Store is the read-only document store the parent chain is resolved
	// against. Sanitize never mutates it.
	Store *parser.Store
	// Logger is the structured logger for per-removal diagnostics.
	// If nil, logging is disabled (default).
	Logger parser.Logger
	// MaxDepth is the maximum parent-chain depth. Default: 100
	MaxDepth int
}

// New creates a Sanitizer over the given store with default settings.
func New(store *parser.Store) *Sanitizer {
	return &Sanitizer{Store: store}
}

// log returns the configured logger, or a no-op logger if none is set.
func (s *Sanitizer) log() parser.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return parser.NopLogger{}
}

func (s *Sanitizer) maxDepth() int {
	if s.MaxDepth > 0 {
		return s.MaxDepth
	}
	return defaultMaxDepth
}

// Result holds a sanitized prototype document and what was removed.
type Result struct {
	// ID is the sanitized prototype's id.
	ID string
	// Document is the sanitized copy, top-level fields in canonical order.
	Document *yaml.Node
	// RemovedComponents lists component types dropped entirely, in the
	// prototype's component order.
	RemovedComponents []string
	// StrippedFields maps a component type to the field keys dropped from
	// it, in the component's field order.
	StrippedFields map[string][]string
	// Warnings holds non-fatal diagnostics, such as unresolved parent ids.
	Warnings []string
	// Duration is the time the sanitize pass took.
	Duration time.Duration
}

// Sanitize strips from the prototype with the given id every component and
// component field already supplied, with an identical value, by some
// ancestor.
//
// The stored document is never mutated: Sanitize deep-copies it, edits the
// copy, and returns the copy with top-level fields in canonical order.
// An unknown id yields protoerrors.ErrNotFound; a cyclic parent chain
// yields protoerrors.ErrInheritanceCycle.
func (s *Sanitizer) Sanitize(id string) (*Result, error) {
	start := time.Now()

	proto, ok := s.Store.Get(id)
	if !ok {
		return nil, &protoerrors.NotFoundError{ID: id}
	}

	doc := nodeutil.Copy(proto.Node)
	result := &Result{
		ID:             id,
		Document:       doc,
		StrippedFields: make(map[string][]string),
	}

	comps := parser.ComponentsNode(doc)
	if comps == nil {
		OrderPrototypeFields(doc)
		result.Duration = time.Since(start)
		return result, nil
	}

	var warnings []string
	index, err := s.collectAncestors(doc, []string{id}, map[string]bool{id: true}, &warnings)
	if err != nil {
		return nil, err
	}
	result.Warnings = warnings

	kept := make([]*yaml.Node, 0, len(comps.Content))
	for _, comp := range comps.Content {
		resolved := nodeutil.Resolve(comp)
		if resolved == nil || resolved.Kind != yaml.MappingNode {
			kept = append(kept, comp)
			continue
		}
		ctype, ok := nodeutil.ScalarString(nodeutil.MapValue(resolved, "type"))
		if !ok {
			kept = append(kept, comp)
			continue
		}
		ancestors := index[ctype]
		if len(ancestors) == 0 {
			kept = append(kept, comp)
			continue
		}

		// Whole removal: the first ancestor that supplies this component's
		// configuration in full wins; later ancestors are not consulted.
		whole := false
		for _, anc := range ancestors {
			if componentsEqual(resolved, anc) {
				whole = true
				break
			}
		}
		if whole {
			result.RemovedComponents = append(result.RemovedComponents, ctype)
			s.log().Info("removed redundant component", "id", id, "component", ctype)
			continue
		}

		// Field stripping is independent of the whole-removal check above:
		// a component may be stripped down to its bare type without being
		// removed outright.
		if stripped := stripRedundantFields(resolved, ancestors); len(stripped) > 0 {
			result.StrippedFields[ctype] = stripped
			s.log().Info("removed redundant fields", "id", id, "component", ctype, "fields", stripped)
		}
		kept = append(kept, comp)
	}
	comps.Content = kept

	OrderPrototypeFields(doc)
	result.Duration = time.Since(start)
	s.log().Debug("sanitize complete",
		"id", id,
		"removed", len(result.RemovedComponents),
		"stripped", len(result.StrippedFields),
		"elapsed", result.Duration)
	return result, nil
}

// stripRedundantFields drops every field of comp (other than type) whose
// value at least one ancestor component supplies identically. comp's
// content is rebuilt without the redundant pairs; the dropped keys are
// returned in field order.
func stripRedundantFields(comp *yaml.Node, ancestors []*yaml.Node) []string {
	var stripped []string
	kept := make([]*yaml.Node, 0, len(comp.Content))
	for i := 0; i+1 < len(comp.Content); i += 2 {
		key, val := comp.Content[i], comp.Content[i+1]
		if key.Value != "type" && fieldRedundant(key.Value, val, ancestors) {
			stripped = append(stripped, key.Value)
			continue
		}
		kept = append(kept, key, val)
	}
	comp.Content = kept
	return stripped
}

// fieldRedundant reports whether any ancestor component supplies the field
// with an equal value.
func fieldRedundant(key string, val *yaml.Node, ancestors []*yaml.Node) bool {
	for _, anc := range ancestors {
		if av := nodeutil.MapValue(anc, key); av != nil && equalNodes(val, av) {
			return true
		}
	}
	return false
}
