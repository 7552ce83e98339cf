package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrototypesYAML = `- type: entity
  id: MobBase
  components:
  - type: Sprite
    path: mob.png
- type: entity
  parent: MobBase
  id: MobHuman
  components:
  - type: Sprite
    path: mob.png
  - type: Hands
    count: 2
- type: entity
  parent: Missing
  id: MobOrphan
  components: []
`

// writePrototypeDir lays out a temp prototype directory for tool tests.
func writePrototypeDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mobs.yml"), []byte(testPrototypesYAML), 0o600))
	storeCache.reset()
	return dir
}

func TestSanitizeTool(t *testing.T) {
	dir := writePrototypeDir(t)

	result, output, err := handleSanitize(context.Background(), &mcp.CallToolRequest{}, sanitizeInput{Dir: dir, ID: "MobHuman"})
	require.NoError(t, err)
	require.Nil(t, result, "success responses carry structured output only")

	assert.Equal(t, "MobHuman", output.ID)
	assert.Equal(t, []string{"Sprite"}, output.RemovedComponents)
	assert.NotContains(t, output.Document, "Sprite")
	assert.Contains(t, output.Document, "Hands")
	assert.Equal(t, 3, output.PrototypeCount)
	assert.Empty(t, output.Warnings)
}

func TestSanitizeTool_UnresolvedParentWarns(t *testing.T) {
	dir := writePrototypeDir(t)

	result, output, err := handleSanitize(context.Background(), &mcp.CallToolRequest{}, sanitizeInput{Dir: dir, ID: "MobOrphan"})
	require.NoError(t, err)
	require.Nil(t, result)

	require.Len(t, output.Warnings, 1)
	assert.Contains(t, output.Warnings[0], "Missing")
}

func TestSanitizeTool_NotFound(t *testing.T) {
	dir := writePrototypeDir(t)

	result, _, err := handleSanitize(context.Background(), &mcp.CallToolRequest{}, sanitizeInput{Dir: dir, ID: "Ghost"})
	require.NoError(t, err, "tool failures are reported in-band, not as protocol errors")
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestSanitizeTool_MissingArguments(t *testing.T) {
	result, _, err := handleSanitize(context.Background(), &mcp.CallToolRequest{}, sanitizeInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestListTool(t *testing.T) {
	dir := writePrototypeDir(t)

	result, output, err := handleListPrototypes(context.Background(), &mcp.CallToolRequest{}, listInput{Dir: dir})
	require.NoError(t, err)
	require.Nil(t, result)

	require.Len(t, output.Prototypes, 3)
	assert.Equal(t, "MobBase", output.Prototypes[0].ID)
	assert.Equal(t, 3, output.Total)
	assert.False(t, output.Truncated)
}

func TestListTool_PrefixAndLimit(t *testing.T) {
	dir := writePrototypeDir(t)

	_, output, err := handleListPrototypes(context.Background(), &mcp.CallToolRequest{}, listInput{Dir: dir, Prefix: "Mob", Limit: 2})
	require.NoError(t, err)

	assert.Len(t, output.Prototypes, 2)
	assert.Equal(t, 3, output.Total)
	assert.True(t, output.Truncated)
}

func TestCacheReusesLoadedStore(t *testing.T) {
	dir := writePrototypeDir(t)

	first, err := loadStore(dir)
	require.NoError(t, err)
	second, err := loadStore(dir)
	require.NoError(t, err)

	assert.Same(t, first, second, "second load within TTL hits the cache")
}

func TestCacheExpiry(t *testing.T) {
	c := &storeCacheStore{entries: make(map[string]*cacheEntry)}
	c.put("k", nil, -1) // already expired
	assert.Nil(t, c.get("k"))
	assert.Empty(t, c.entries, "expired entries are removed on access")
}
