package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tp-group5/algokit/gridgraph"
)

func TestTileType_Walkable(t *testing.T) {
	cases := map[gridgraph.TileType]bool{
		gridgraph.Walkable: true,
		gridgraph.Spawn:    true,
		gridgraph.Goal:     true,
		gridgraph.Blocked:  false,
		gridgraph.Empty:    false,
	}
	for tt, want := range cases {
		assert.Equal(t, want, tt.Walkable(), tt.String())
	}
	assert.Equal(t, "TileType(9)", gridgraph.TileType(9).String())
}

func TestParseTileMap_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", nil, gridgraph.ErrEmptyMap},
		{"EmptyRow", []string{""}, gridgraph.ErrEmptyMap},
		{"Ragged", []string{"..", "."}, gridgraph.ErrNonRectangular},
		{"UnknownTile", []string{".x"}, gridgraph.ErrUnknownTile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseTileMap(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseTileMap_Coordinates(t *testing.T) {
	tm, err := gridgraph.ParseTileMap([]string{
		"S.#",
		"_.G",
	})
	require.NoError(t, err)

	spawn, ok := tm.Spawn()
	require.True(t, ok)
	assert.Equal(t, gridgraph.Coord{X: 0, Y: 1}, spawn, "first row is the top")

	goal, ok := tm.Goal()
	require.True(t, ok)
	assert.Equal(t, gridgraph.Coord{X: 2, Y: 0}, goal)

	tt, ok := tm.Tile(gridgraph.Coord{X: 2, Y: 1})
	require.True(t, ok)
	assert.Equal(t, gridgraph.Blocked, tt)

	walk := tm.Walkability()
	assert.Len(t, walk, 6)
	assert.False(t, walk[gridgraph.Coord{X: 0, Y: 0}], "empty is not walkable")
	assert.True(t, walk[gridgraph.Coord{X: 1, Y: 0}])
}

func TestSet_UniqueSpawnAndGoal(t *testing.T) {
	tm := gridgraph.NewTileMap(3, 1, gridgraph.Walkable)
	a, b := gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 2, Y: 0}

	tm.Set(a, gridgraph.Spawn)
	tm.Set(b, gridgraph.Spawn)

	got, _ := tm.Tile(a)
	assert.Equal(t, gridgraph.Walkable, got, "old spawn reverts to walkable")
	spawn, ok := tm.Spawn()
	require.True(t, ok)
	assert.Equal(t, b, spawn)

	// goal painted over the spawn steals the cell
	tm.Set(b, gridgraph.Goal)
	_, ok = tm.Spawn()
	assert.False(t, ok)
	goal, ok := tm.Goal()
	require.True(t, ok)
	assert.Equal(t, b, goal)

	tm.Set(b, gridgraph.Blocked)
	_, ok = tm.Goal()
	assert.False(t, ok, "overpainting forgets the goal")
}

func TestRender_RoundTripAndPath(t *testing.T) {
	rows := []string{
		"S..",
		".#.",
		"..G",
	}
	tm, err := gridgraph.ParseTileMap(rows)
	require.NoError(t, err)
	assert.Equal(t, rows, tm.Lines(nil))

	path := []gridgraph.Coord{{0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}}
	assert.Equal(t, "S**\n.#*\n..G", tm.Render(path))

	assert.Equal(t, "", (&gridgraph.TileMap{}).Render(nil))
}

func TestBounds(t *testing.T) {
	var tm gridgraph.TileMap
	_, _, ok := tm.Bounds()
	assert.False(t, ok)

	tm.Set(gridgraph.Coord{X: -2, Y: 3}, gridgraph.Walkable)
	tm.Set(gridgraph.Coord{X: 4, Y: -1}, gridgraph.Blocked)
	lo, hi, ok := tm.Bounds()
	require.True(t, ok)
	assert.Equal(t, gridgraph.Coord{X: -2, Y: -1}, lo)
	assert.Equal(t, gridgraph.Coord{X: 4, Y: 3}, hi)
	assert.Equal(t, 2, tm.Len())
}
