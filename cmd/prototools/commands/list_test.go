package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupListFlags(t *testing.T) {
	fs, flags := SetupListFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Dir)
		assert.Empty(t, flags.Prefix)
		assert.Zero(t, flags.Limit)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--dir", "protos", "--prefix", "Mob", "--limit", "5"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "protos", flags.Dir)
		assert.Equal(t, "Mob", flags.Prefix)
		assert.Equal(t, 5, flags.Limit)
	})
}

func TestHandleList_NoArgs(t *testing.T) {
	err := HandleList([]string{})
	assert.Error(t, err)
}

func TestHandleList_Help(t *testing.T) {
	err := HandleList([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleList(t *testing.T) {
	dir := writeFixtureDir(t)

	assert.NoError(t, HandleList([]string{"--dir", dir}))
	assert.NoError(t, HandleList([]string{"--dir", dir, "--prefix", "Mob", "--limit", "1"}))
}
