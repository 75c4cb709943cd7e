package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcppgo/mcpp/grid"
)

func TestArea_TransfersStronglyConnectedNonBridgeCell(t *testing.T) {
	lm := grid.NewLabelMatrix(1, 4, grid.Occupied)
	lm.Labels[0][0], lm.Labels[0][1], lm.Labels[0][2], lm.Labels[0][3] = 0, 0, 0, 1

	n := Area(lm, 0, 1, []grid.Coord{{R: 0, C: 2}}, 1, nil)

	assert.Equal(t, 1, n)
	assert.Equal(t, 1, lm.At(0, 2))
}

func TestArea_RespectsKeepAway(t *testing.T) {
	lm := grid.NewLabelMatrix(1, 4, grid.Occupied)
	lm.Labels[0][0], lm.Labels[0][1], lm.Labels[0][2], lm.Labels[0][3] = 0, 0, 0, 1

	keep := grid.Coord{R: 0, C: 2}
	n := Area(lm, 0, 1, []grid.Coord{{R: 0, C: 2}}, 1, &keep)

	assert.Equal(t, 0, n)
	assert.Equal(t, 0, lm.At(0, 2))
}

func TestArea_BudgetLimitsTransferCount(t *testing.T) {
	lm := grid.NewLabelMatrix(1, 5, grid.Occupied)
	lm.Labels[0][0], lm.Labels[0][1] = 0, 0
	lm.Labels[0][2], lm.Labels[0][3], lm.Labels[0][4] = 0, 0, 1

	n := Area(lm, 0, 1, []grid.Coord{{R: 0, C: 3}}, 2, nil)
	assert.Equal(t, 2, n)
}

func buildBridgeLabelMatrix(t *testing.T) *grid.LabelMatrix {
	t.Helper()
	// row0: 0 0 0
	// row1: . 1 .
	lm := grid.NewLabelMatrix(2, 3, grid.Occupied)
	lm.Labels[0][0], lm.Labels[0][1], lm.Labels[0][2] = 0, 0, 0
	lm.Labels[1][1] = 1
	return lm
}

func TestAreaSubtree_CarriesOrphanedSubtreesWithBridgeCell(t *testing.T) {
	lm := buildBridgeLabelMatrix(t)

	n := AreaSubtree(lm, 0, 1, []grid.Coord{{R: 0, C: 1}}, 10, nil)

	assert.Equal(t, 3, n)
	assert.Equal(t, 1, lm.At(0, 0))
	assert.Equal(t, 1, lm.At(0, 1))
	assert.Equal(t, 1, lm.At(0, 2))
}

func TestAreaSubtree_SkipsBridgeWhenSubtreesOvershootBudget(t *testing.T) {
	lm := buildBridgeLabelMatrix(t)

	n := AreaSubtree(lm, 0, 1, []grid.Coord{{R: 0, C: 1}}, 2, nil)

	assert.Equal(t, 0, n)
	assert.Equal(t, 0, lm.At(0, 1))
}

func TestConcurrently_SingleTargetAbsorbsAll(t *testing.T) {
	lm := grid.NewLabelMatrix(1, 3, grid.Occupied)
	lm.Labels[0][0], lm.Labels[0][1], lm.Labels[0][2] = 0, 0, 1

	Concurrently(lm, 0, map[int]int{1: 2}, nil)

	for c := 0; c < 3; c++ {
		assert.Equal(t, 1, lm.At(0, c))
	}
}

func TestConcurrently_RespectsKeepAway(t *testing.T) {
	lm := grid.NewLabelMatrix(1, 3, grid.Occupied)
	lm.Labels[0][0], lm.Labels[0][1], lm.Labels[0][2] = 0, 0, 1

	keep := grid.Coord{R: 0, C: 0}
	Concurrently(lm, 0, map[int]int{1: 2}, &keep)

	assert.Equal(t, 0, lm.At(0, 0), "keepAway cell must never be reassigned")
}
