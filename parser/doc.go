// Package parser discovers, parses, and serializes entity prototype YAML
// documents.
//
// A prototype file is a YAML document whose top level is a sequence of
// entries. Entries with type "entity" and an id key are retained as
// prototypes; everything else (reagents, recipes, comments-only files) is
// skipped. Documents are kept as yaml.Node trees so that key order and
// scalar quoting style survive a load/serialize round trip.
//
// Load a directory tree:
//
//	p := parser.New()
//	loaded, err := p.LoadDir("Resources/Prototypes")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("loaded %d prototypes from %d files\n",
//		loaded.PrototypeCount, loaded.FileCount)
//
// Per-file parse failures are recorded on the LoadResult and do not abort
// the batch.
package parser
