package stc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcppgo/mcpp/grid"
)

func TestPlan_TwoByTwoFullyFree(t *testing.T) {
	lm := grid.NewLabelMatrix(2, 2, 0)

	path, err := Plan(lm, 0, grid.Coord{R: 0, C: 0})
	require.NoError(t, err)

	want := []grid.Coord{{R: 0, C: 0}, {R: 0, C: 1}, {R: 1, C: 1}, {R: 1, C: 0}}
	assert.Equal(t, want, path)
}

func TestPlan_SeedOutsideFree(t *testing.T) {
	lm := grid.NewLabelMatrix(2, 2, grid.Occupied)
	lm.Labels[0][0] = 0

	_, err := Plan(lm, 0, grid.Coord{R: 1, C: 1})
	assert.ErrorIs(t, err, ErrSeedOutsideFree)
}

func TestPlan_UnknownMSTAlgo(t *testing.T) {
	lm := grid.NewLabelMatrix(2, 2, 0)
	_, err := Plan(lm, 0, grid.Coord{R: 0, C: 0}, WithMSTAlgo("bogus"))
	assert.ErrorIs(t, err, ErrUnknownMSTAlgo)
}

func buildSplitLabelMatrix(t *testing.T) *grid.LabelMatrix {
	t.Helper()
	// two 2x2 free blocks of label 0 separated by a fully occupied 2x2 gap:
	// their mega-cells (0,0) and (0,2) are not 4-adjacent.
	lm := grid.NewLabelMatrix(2, 6, grid.Occupied)
	for _, r := range []int{0, 1} {
		lm.Labels[r][0], lm.Labels[r][1] = 0, 0
		lm.Labels[r][4], lm.Labels[r][5] = 0, 0
	}
	return lm
}

func TestPlan_DisconnectedMegaGrid_Kruskal(t *testing.T) {
	lm := buildSplitLabelMatrix(t)
	_, err := Plan(lm, 0, grid.Coord{R: 0, C: 0})
	assert.ErrorIs(t, err, ErrDisconnected)
}

func TestPlan_DisconnectedMegaGrid_DFS(t *testing.T) {
	lm := buildSplitLabelMatrix(t)
	_, err := Plan(lm, 0, grid.Coord{R: 0, C: 0}, WithMSTAlgo("dfs"))
	assert.ErrorIs(t, err, ErrDisconnected)
}

func TestPlan_NoFreeCellsForLabel(t *testing.T) {
	lm := grid.NewLabelMatrix(2, 2, grid.Occupied)
	_, err := Plan(lm, 0, grid.Coord{R: 0, C: 0})
	assert.ErrorIs(t, err, ErrSeedOutsideFree)
}

func TestPlan_PathCoversEveryLabelCellExactlyOnce(t *testing.T) {
	lm := grid.NewLabelMatrix(4, 4, 0)
	path, err := Plan(lm, 0, grid.Coord{R: 0, C: 0})
	require.NoError(t, err)

	seen := map[grid.Coord]bool{}
	for _, c := range path {
		assert.False(t, seen[c], "cell %v visited twice", c)
		seen[c] = true
	}
	assert.Len(t, path, 16)
	assert.Equal(t, grid.Coord{R: 0, C: 0}, path[0])

	for i := range path {
		next := path[(i+1)%len(path)]
		assert.NotEqual(t, path[i], next, "no two consecutive cells (including wrap) may be equal")
	}
}
