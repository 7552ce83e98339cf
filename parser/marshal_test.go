package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milonpl/prototools/internal/nodeutil"
)

func TestMarshalDocumentsRoundTrip(t *testing.T) {
	src := `- type: entity
  id: MobHuman
  name: "human"
  components:
  - type: Sprite
    path: 'mob.png'
`
	p := New()
	protos, err := p.ParseBytes([]byte(src), "in.yml")
	require.NoError(t, err)
	require.Len(t, protos, 1)

	out, err := MarshalDocuments(protos[0].Node)
	require.NoError(t, err)
	text := string(out)

	// Key order survives.
	assert.Less(t, strings.Index(text, "type:"), strings.Index(text, "id:"))
	assert.Less(t, strings.Index(text, "id:"), strings.Index(text, "name:"))
	assert.Less(t, strings.Index(text, "name:"), strings.Index(text, "components:"))

	// Quoting style survives.
	assert.Contains(t, text, `"human"`)
	assert.Contains(t, text, `'mob.png'`)

	// Unix line endings, sequence-shaped output.
	assert.True(t, strings.HasPrefix(text, "- "))
	assert.True(t, strings.HasSuffix(text, "\n"))
	assert.NotContains(t, text, "\r")

	// And the output parses back to the same prototype.
	reparsed, err := p.ParseBytes(out, "out.yml")
	require.NoError(t, err)
	require.Len(t, reparsed, 1)
	assert.Equal(t, "MobHuman", reparsed[0].ID)
	comp := reparsed[0].Components().Content[0]
	path, ok := nodeutil.ScalarString(nodeutil.MapValue(comp, "path"))
	require.True(t, ok)
	assert.Equal(t, "mob.png", path)
}

func TestMarshalDocumentsMultiple(t *testing.T) {
	p := New()
	protos, err := p.ParseBytes([]byte("- type: entity\n  id: A\n- type: entity\n  id: B\n"), "in.yml")
	require.NoError(t, err)
	require.Len(t, protos, 2)

	out, err := MarshalDocuments(protos[0].Node, protos[1].Node)
	require.NoError(t, err)

	reparsed, err := p.ParseBytes(out, "out.yml")
	require.NoError(t, err)
	require.Len(t, reparsed, 2)
	assert.Equal(t, "A", reparsed[0].ID)
	assert.Equal(t, "B", reparsed[1].ID)
}

func TestMarshalDocumentsNil(t *testing.T) {
	_, err := MarshalDocuments(nil)
	assert.Error(t, err)
}

func TestMarshalDocumentsStableAcrossRoundTrips(t *testing.T) {
	src := "- type: entity\n  id: X\n  components:\n  - type: Sprite\n    path: x.png\n"
	p := New()
	protos, err := p.ParseBytes([]byte(src), "in.yml")
	require.NoError(t, err)

	first, err := MarshalDocuments(protos[0].Node)
	require.NoError(t, err)

	reparsed, err := p.ParseBytes(first, "first.yml")
	require.NoError(t, err)
	second, err := MarshalDocuments(reparsed[0].Node)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "serialization is a fixpoint after one round trip")
}
