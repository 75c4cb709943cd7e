package bfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcppgo/mcpp/grid"
)

func squareGrid(t *testing.T, h, w int) *grid.Grid {
	t.Helper()
	rows := make([][]grid.Kind, h)
	for r := range rows {
		rows[r] = make([]grid.Kind, w)
	}
	g, err := grid.New(rows)
	require.NoError(t, err)
	return g
}

func TestPartition_Errors(t *testing.T) {
	g := squareGrid(t, 2, 2)

	_, err := Partition(g, nil)
	assert.ErrorIs(t, err, ErrNoSeeds)

	_, err = Partition(g, []grid.Coord{{R: 5, C: 5}})
	assert.ErrorIs(t, err, ErrSeedOutsideFree)

	_, err = Partition(g, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 0}})
	assert.ErrorIs(t, err, ErrSeedCollision)
}

func TestPartition_EveryFreeCellLabeled(t *testing.T) {
	g := squareGrid(t, 4, 4)
	seeds := []grid.Coord{{R: 0, C: 0}, {R: 3, C: 3}}

	lm, err := Partition(g, seeds)
	require.NoError(t, err)

	for r := 0; r < lm.H; r++ {
		for c := 0; c < lm.W; c++ {
			assert.GreaterOrEqual(t, lm.At(r, c), 0)
			assert.Less(t, lm.At(r, c), len(seeds))
		}
	}
	assert.Equal(t, 0, lm.At(0, 0))
	assert.Equal(t, 1, lm.At(3, 3))
}

func TestPartition_EqualDistanceBreaksTowardEarlierSeed(t *testing.T) {
	// 1x2 grid: seed 0 at (0,0), seed 1 at (0,1); no contested cell exists
	// here, but a symmetric 1x3 strip with seeds at the ends puts the middle
	// cell equidistant and resolved by earliest-dequeue order.
	rows := [][]grid.Kind{{grid.FREE, grid.FREE, grid.FREE}}
	g, err := grid.New(rows)
	require.NoError(t, err)

	lm, err := Partition(g, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 2}})
	require.NoError(t, err)
	assert.Equal(t, 0, lm.At(0, 0))
	assert.Equal(t, 1, lm.At(0, 2))
	assert.Equal(t, 0, lm.At(0, 1), "middle cell goes to seed 0, enqueued first")
}

func TestPartition_Disconnected(t *testing.T) {
	// two FREE cells separated by an OCCUPIED wall, each its own seed: the
	// region reachable from each seed should be exactly its own side, with
	// no ErrDisconnected since both sides are reachable by *some* seed.
	rows := [][]grid.Kind{{grid.FREE, grid.OCCUPIED, grid.FREE}}
	g, err := grid.New(rows)
	require.NoError(t, err)

	lm, err := Partition(g, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 2}})
	require.NoError(t, err)
	assert.Equal(t, 0, lm.At(0, 0))
	assert.Equal(t, 1, lm.At(0, 2))
	assert.Equal(t, grid.Occupied, lm.At(0, 1))
}

func TestPartition_DisconnectedFromAllSeeds(t *testing.T) {
	// a FREE cell walled off from the only seed must trigger ErrDisconnected.
	rows := [][]grid.Kind{{grid.FREE, grid.OCCUPIED, grid.FREE}}
	g, err := grid.New(rows)
	require.NoError(t, err)

	_, err = Partition(g, []grid.Coord{{R: 0, C: 0}})
	assert.ErrorIs(t, err, ErrDisconnected)
}
