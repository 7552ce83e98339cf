// Package sanitizer removes inherited-redundant configuration from entity
// prototypes.
//
// A prototype inherits every component its ancestors define. Sanitizing a
// prototype walks its parent chain, collects all ancestor-supplied
// component configurations, and strips from the prototype any component
// (or individual component field) whose value an ancestor already supplies
// identically. The result is a minimal, semantically equivalent definition.
//
//	s := sanitizer.New(store)
//	result, err := s.Sanitize("MobHuman")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("removed %d components\n", len(result.RemovedComponents))
//
// Sanitizing never mutates the store: it deep-copies the target document,
// edits the copy, and reorders its top-level fields into canonical order.
// Cyclic parent chains are detected and reported as
// protoerrors.ErrInheritanceCycle rather than recursing forever.
package sanitizer
