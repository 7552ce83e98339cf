package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milonpl/prototools/protoerrors"
)

func TestLoadDir(t *testing.T) {
	p := New()
	result, err := p.LoadDir("../testdata/prototypes")
	require.NoError(t, err)

	// mobs.yml, structures/walls.yml, bom.yml, broken.yml, notlist.yml;
	// readme.txt is not a candidate.
	assert.Equal(t, 5, result.FileCount)
	assert.Equal(t, 4, result.PrototypeCount)
	assert.Equal(t, result.PrototypeCount, result.Store.Len())

	// broken.yml is the only load failure; the batch continued past it.
	assert.Equal(t, 1, result.ErrorCount)
	require.Len(t, result.Errors, 1)
	assert.True(t, errors.Is(result.Errors[0], protoerrors.ErrParse))

	assert.Equal(t, []string{"BomEntity", "MobBase", "MobHuman", "WallBase"}, result.Store.IDs())
	assert.Positive(t, result.SourceSize)
}

func TestLoadDirPrototypeContents(t *testing.T) {
	p := New()
	result, err := p.LoadDir("../testdata/prototypes")
	require.NoError(t, err)

	human, ok := result.Store.Get("MobHuman")
	require.True(t, ok)
	assert.Equal(t, "MobHuman", human.ID)
	assert.True(t, strings.HasSuffix(human.SourcePath, "mobs.yml"))
	assert.Equal(t, []string{"MobBase"}, human.Parent())
	require.NotNil(t, human.Components())
	assert.Len(t, human.Components().Content, 3)

	base, ok := result.Store.Get("MobBase")
	require.True(t, ok)
	assert.Empty(t, base.Parent())
}

func TestLoadDirSkipsNonEntities(t *testing.T) {
	p := New()
	result, err := p.LoadDir("../testdata/prototypes")
	require.NoError(t, err)

	_, ok := result.Store.Get("NotAnEntity")
	assert.False(t, ok, "non-entity entries are filtered out")
	_, ok = result.Store.Get("TopLevelMapping")
	assert.False(t, ok, "documents that are not top-level sequences contribute nothing")
}

func TestLoadDirStripsBOM(t *testing.T) {
	p := New()
	result, err := p.LoadDir("../testdata/prototypes")
	require.NoError(t, err)

	_, ok := result.Store.Get("BomEntity")
	assert.True(t, ok, "files saved as UTF-8 with BOM still load")
}

func TestLoadDirMaxFileSize(t *testing.T) {
	p := New()
	p.MaxFileSize = 16 // everything is larger than this
	result, err := p.LoadDir("../testdata/prototypes")
	require.NoError(t, err)

	assert.Equal(t, 0, result.PrototypeCount)
	assert.Equal(t, 5, result.ErrorCount)
}

func TestLoadDirMissingRoot(t *testing.T) {
	p := New()
	_, err := p.LoadDir("../testdata/no-such-dir")
	assert.Error(t, err, "an unwalkable root is fatal, unlike per-file failures")
}

func TestParseBytesMultiDocument(t *testing.T) {
	src := `
- type: entity
  id: First
---
- type: entity
  id: Second
`
	p := New()
	protos, err := p.ParseBytes([]byte(src), "multi.yml")
	require.NoError(t, err)
	require.Len(t, protos, 2)
	assert.Equal(t, "First", protos[0].ID)
	assert.Equal(t, "Second", protos[1].ID)
	assert.Equal(t, "multi.yml", protos[0].SourcePath)
}

func TestParseBytesMalformed(t *testing.T) {
	p := New()
	_, err := p.ParseBytes([]byte("- type: entity\n  id: X\n bad: ["), "bad.yml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, protoerrors.ErrParse))

	var parseErr *protoerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "bad.yml", parseErr.Path)
}

func TestParseBytesEmptyAndEmptyID(t *testing.T) {
	p := New()

	protos, err := p.ParseBytes(nil, "empty.yml")
	require.NoError(t, err)
	assert.Empty(t, protos)

	protos, err = p.ParseBytes([]byte("- type: entity\n  id: \"\"\n"), "noid.yml")
	require.NoError(t, err)
	assert.Empty(t, protos, "entities without a usable id are skipped")
}

func TestParseReader(t *testing.T) {
	p := New()
	protos, err := p.ParseReader(strings.NewReader("- type: entity\n  id: FromReader\n"), "reader.yml")
	require.NoError(t, err)
	require.Len(t, protos, 1)
	assert.Equal(t, "FromReader", protos[0].ID)
}

func TestParentIDShapes(t *testing.T) {
	p := New()
	src := `
- type: entity
  id: Single
  parent: Base
- type: entity
  id: Multi
  parent: [A, B]
- type: entity
  id: None
- type: entity
  id: Bad
  parent:
    nested: map
`
	protos, err := p.ParseBytes([]byte(src), "parents.yml")
	require.NoError(t, err)
	require.Len(t, protos, 4)

	byID := make(map[string]*Prototype, len(protos))
	for _, proto := range protos {
		byID[proto.ID] = proto
	}
	assert.Equal(t, []string{"Base"}, byID["Single"].Parent())
	assert.Equal(t, []string{"A", "B"}, byID["Multi"].Parent())
	assert.Empty(t, byID["None"].Parent())
	assert.Empty(t, byID["Bad"].Parent(), "malformed parent shapes mean no inheritance")
}

func TestStoreReplacesDuplicateIDs(t *testing.T) {
	p := New()
	protos, err := p.ParseBytes([]byte(`
- type: entity
  id: Dup
  name: first
- type: entity
  id: Dup
  name: second
`), "dup.yml")
	require.NoError(t, err)
	require.Len(t, protos, 2)

	store := NewStore()
	for _, proto := range protos {
		store.Put(proto)
	}
	assert.Equal(t, 1, store.Len())
}
