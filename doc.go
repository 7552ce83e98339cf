// Package prototools provides tools for working with entity prototype
// definitions stored as YAML documents.
//
// Entity prototypes form an inheritance hierarchy: a prototype may declare
// one or more parents and inherits every component configuration its
// ancestors define unless it overrides them. prototools loads a directory
// tree of prototype files into an in-memory store and removes redundant
// configuration — components and component fields whose values are already
// supplied, identically, by an ancestor.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - parser: Discover, parse, and serialize prototype YAML documents
//   - sanitizer: Strip inherited-redundant components and fields from a
//     prototype
//
// # Quick Start
//
// Load a prototype directory and sanitize one prototype:
//
//	import (
//		"github.com/milonpl/prototools/parser"
//		"github.com/milonpl/prototools/sanitizer"
//	)
//
//	p := parser.New()
//	loaded, err := p.LoadDir("Resources/Prototypes")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s := sanitizer.New(loaded.Store)
//	result, err := s.Sanitize("MobHuman")
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := parser.MarshalDocuments(result.Document)
//	os.Stdout.Write(data)
//
// Documents are represented as yaml.Node trees throughout, which preserves
// key order and scalar quoting style from the source files across a
// sanitize round trip.
package prototools
