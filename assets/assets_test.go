package assets

import (
	"testing"

	"github.com/automoto/superbros/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWorlds(t *testing.T) {
	levels, err := LoadWorlds()
	require.NoError(t, err)
	require.Len(t, levels, 3)

	assert.Equal(t, "world1", levels[0].Name)
	assert.Equal(t, "world2", levels[1].Name)
	assert.Equal(t, "world3", levels[2].Name)

	for _, level := range levels {
		require.NotNil(t, level.PlayerSpawn, level.Name)
		assert.Equal(t, 32, level.Grid.Cols(), level.Name)
		assert.Equal(t, 32.0, level.Grid.TileSize(), "tile size comes from the map")
	}

	first := levels[0]
	assert.Equal(t, 6, first.Grid.Rows())
	assert.Equal(t, leveldata.CellSolid, first.Grid.At(3, 0))
	assert.Equal(t, leveldata.CellSecret, first.Grid.At(4, 5))
	assert.Equal(t, 50.0, first.PlayerSpawn.X)
	assert.Equal(t, 50.0, first.PlayerSpawn.Y)
	assert.Len(t, first.Enemies, 2)
	assert.Len(t, first.MiniBosses, 1)
	assert.Empty(t, first.Bosses)

	last := levels[2]
	assert.Len(t, last.Bosses, 1)
	assert.Equal(t, leveldata.CellSpecialGround, last.Grid.At(9, 0))
	assert.Equal(t, leveldata.CellEmpty, last.Grid.At(8, 12))
}
