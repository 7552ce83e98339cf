package parser

import (
	"bytes"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// MarshalDocuments serializes one or more prototype documents as a single
// top-level YAML sequence, the same shape prototype files are read in.
//
// Output uses 2-space indentation and Unix line endings. Because the
// documents are yaml.Node trees round-tripped from the source files, key
// order and scalar quoting style are preserved; no flow-style collections
// are introduced that were not already present in the input.
func MarshalDocuments(docs ...*yaml.Node) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i, doc := range docs {
		if doc == nil {
			return nil, fmt.Errorf("parser: cannot marshal nil document at index %d", i)
		}
		seq.Content = append(seq.Content, doc)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("parser: encoding documents: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("parser: closing encoder: %w", err)
	}
	return buf.Bytes(), nil
}
