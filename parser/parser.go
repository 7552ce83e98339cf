package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/milonpl/prototools/internal/nodeutil"
	"github.com/milonpl/prototools/protoerrors"
)

// defaultMaxFileSize is the per-file size limit applied during LoadDir.
const defaultMaxFileSize = 10 * 1024 * 1024 // 10MB

// defaultExtensions are the file extensions scanned by LoadDir.
var defaultExtensions = []string{".yml", ".yaml"}

// Parser handles prototype file discovery and parsing.
type Parser struct {
	// Logger is the structured logger for diagnostic output.
	// If nil, logging is disabled (default).
	Logger Logger
	// MaxFileSize is the maximum size in bytes of a single prototype file.
	// Larger files are skipped and recorded as load errors.
	// Default: 10MB
	MaxFileSize int64
	// Extensions are the file extensions (lowercase, with dot) considered
	// during directory scans. Default: .yml, .yaml
	Extensions []string
}

// New creates a new Parser instance with default settings.
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return defaultMaxFileSize
}

func (p *Parser) extensions() []string {
	if len(p.Extensions) > 0 {
		return p.Extensions
	}
	return defaultExtensions
}

// LoadResult contains the loaded document store and load statistics.
type LoadResult struct {
	// Store maps prototype id to its parsed document.
	Store *Store
	// FileCount is the number of candidate files scanned.
	FileCount int
	// PrototypeCount is the number of entity prototypes retained.
	PrototypeCount int
	// ErrorCount is the number of files that failed to load.
	ErrorCount int
	// Errors holds one *protoerrors.ParseError per failed file.
	Errors []error
	// LoadTime is the total time spent scanning and parsing.
	LoadTime time.Duration
	// SourceSize is the total size in bytes of all files read.
	SourceSize int64
}

// LoadDir recursively discovers and parses all prototype files under root.
//
// Per-file failures (unreadable, oversized, malformed YAML) are recorded on
// the result and the batch continues; only a failure to walk the directory
// tree itself aborts the load.
func (p *Parser) LoadDir(root string) (*LoadResult, error) {
	start := time.Now()
	result := &LoadResult{Store: NewStore()}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(p.extensions(), strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		result.FileCount++

		if info, infoErr := d.Info(); infoErr == nil && info.Size() > p.maxFileSize() {
			p.recordError(result, &protoerrors.ParseError{
				Path:    path,
				Message: fmt.Sprintf("file size %d exceeds limit %d", info.Size(), p.maxFileSize()),
			})
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			p.recordError(result, &protoerrors.ParseError{
				Path:    path,
				Message: "reading file",
				Cause:   readErr,
			})
			return nil
		}
		result.SourceSize += int64(len(data))

		protos, parseErr := p.ParseBytes(data, path)
		if parseErr != nil {
			p.recordError(result, parseErr)
			return nil
		}
		for _, proto := range protos {
			result.Store.Put(proto)
		}
		if len(protos) > 0 {
			p.log().Debug("loaded prototypes", "file", path, "count", len(protos))
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("parser: scanning %s: %w", root, walkErr)
	}

	result.PrototypeCount = result.Store.Len()
	result.LoadTime = time.Since(start)
	p.log().Info("load complete",
		"files", result.FileCount,
		"prototypes", result.PrototypeCount,
		"errors", result.ErrorCount,
		"elapsed", result.LoadTime)
	return result, nil
}

func (p *Parser) recordError(result *LoadResult, err error) {
	result.Errors = append(result.Errors, err)
	result.ErrorCount++
	p.log().Warn("skipping file", "error", err)
}

// ParseReader parses prototype documents from an io.Reader.
// sourcePath is recorded on the returned prototypes for diagnostics.
func (p *Parser) ParseReader(r io.Reader, sourcePath string) ([]*Prototype, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &protoerrors.ParseError{Path: sourcePath, Message: "reading source", Cause: err}
	}
	return p.ParseBytes(data, sourcePath)
}

// ParseBytes parses prototype documents from raw file content.
//
// The content may contain multiple YAML documents; each document whose top
// level is a sequence contributes its entries. Entries that are mappings
// with type "entity" and an id key become prototypes; all other entries
// are skipped. A leading UTF-8 byte order mark is stripped.
func (p *Parser) ParseBytes(data []byte, sourcePath string) ([]*Prototype, error) {
	// Prototype files in the wild are frequently saved as "UTF-8 with BOM";
	// the yaml decoder rejects the BOM bytes as content.
	data, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return nil, &protoerrors.ParseError{Path: sourcePath, Message: "decoding UTF-8", Cause: err}
	}

	var protos []*Prototype
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &protoerrors.ParseError{Path: sourcePath, Message: "decoding YAML", Cause: err}
		}
		protos = append(protos, extractEntities(&doc, sourcePath)...)
	}
	return protos, nil
}

// extractEntities pulls entity prototypes out of one parsed YAML document.
func extractEntities(doc *yaml.Node, sourcePath string) []*Prototype {
	root := nodeutil.Resolve(doc)
	if root != nil && root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		root = nodeutil.Resolve(root.Content[0])
	}
	if root == nil || root.Kind != yaml.SequenceNode {
		return nil
	}

	var protos []*Prototype
	for _, entry := range root.Content {
		entry = nodeutil.Resolve(entry)
		if entry == nil || entry.Kind != yaml.MappingNode {
			continue
		}
		typ, ok := nodeutil.ScalarString(nodeutil.MapValue(entry, "type"))
		if !ok || typ != EntityType {
			continue
		}
		id, ok := nodeutil.ScalarString(nodeutil.MapValue(entry, "id"))
		if !ok || id == "" {
			continue
		}
		protos = append(protos, &Prototype{
			ID:         id,
			SourcePath: sourcePath,
			Node:       entry,
		})
	}
	return protos
}
