package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcppgo/mcpp/grid"
)

// allFreeState builds a State over an h x w all-FREE grid, partitioned
// evenly among len(seeds) agents via a row-major chunking so tests don't
// depend on a real partitioner.
func allFreeState(t *testing.T, h, w int, seeds []grid.Coord) *State {
	t.Helper()
	kinds := make([][]grid.Kind, h)
	for r := range kinds {
		kinds[r] = make([]grid.Kind, w)
	}
	g, err := grid.New(kinds)
	require.NoError(t, err)

	lm := grid.NewLabelMatrix(h, w, grid.Unassigned)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			// column c belongs to whichever seed is closest by column.
			best, bestDist := 0, w*2
			for i, s := range seeds {
				d := s.C - c
				if d < 0 {
					d = -d
				}
				if d < bestDist {
					best, bestDist = i, d
				}
			}
			lm.Labels[r][c] = best
		}
	}
	for i, s := range seeds {
		lm.Labels[s.R][s.C] = i
	}

	return &State{
		Grid:   g,
		Labels: lm,
		Seeds:  append([]grid.Coord(nil), seeds...),
		Partitioner: func(g *grid.Grid, seeds []grid.Coord) (*grid.LabelMatrix, error) {
			return grid.NewLabelMatrix(g.H, g.W, grid.Unassigned), nil
		},
	}
}

func TestNoOp_RejectsAllChanges(t *testing.T) {
	s := allFreeState(t, 2, 2, []grid.Coord{{R: 0, C: 0}})
	assert.ErrorIs(t, NoOp{}.HandleNewAgent(s, grid.Coord{R: 1, C: 1}), ErrUnsupportedChange)
	assert.ErrorIs(t, NoOp{}.HandleRemovedAgent(s, 0), ErrUnsupportedChange)
}

func TestGet_UnknownName(t *testing.T) {
	_, err := Get("Bogus", DefaultConfig())
	assert.ErrorIs(t, err, ErrUnknownHandler)
}

func TestGet_KnownNames(t *testing.T) {
	for _, name := range Names() {
		h, err := Get(name, DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, h)
	}
}

func TestNames_IncludesAllSixHandlers(t *testing.T) {
	names := Names()
	assert.ElementsMatch(t, []string{"NoOp", "Redistribute", "Transfer", "Voronoi", "Propagation", "W_Transfer"}, names)
}

func TestState_AddAgent_AppendsSeedAndClaimsCell(t *testing.T) {
	s := allFreeState(t, 4, 4, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 3}})
	idx := s.addAgent(grid.Coord{R: 3, C: 3})
	assert.Equal(t, 2, idx)
	assert.Len(t, s.Seeds, 3)
	assert.Equal(t, 2, s.Labels.Labels[3][3])
}

func TestState_RemoveAgent_ShiftsHigherLabelsDown(t *testing.T) {
	s := allFreeState(t, 2, 3, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 1}, {R: 0, C: 2}})
	// manually give agent 2's cells to agent 1 first, as a real handler would.
	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			if s.Labels.Labels[r][c] == 2 {
				s.Labels.Labels[r][c] = 1
			}
		}
	}
	s.removeAgent(2)

	assert.Len(t, s.Seeds, 2)
	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			assert.LessOrEqual(t, s.Labels.Labels[r][c], 1)
		}
	}
}

func TestTransfer_HandleNewAgent_ReplansWithoutError(t *testing.T) {
	s := allFreeState(t, 4, 4, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 3}})
	h := Transfer{MaxIter: 10}
	err := h.HandleNewAgent(s, grid.Coord{R: 3, C: 3})
	require.NoError(t, err)
	assert.Len(t, s.Seeds, 3)
	assert.Len(t, s.Trajectories, 3)
}

func TestTransfer_HandleRemovedAgent_MergesAndShifts(t *testing.T) {
	s := allFreeState(t, 4, 6, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 2}, {R: 0, C: 4}})
	h := Transfer{MaxIter: 10}
	err := h.HandleRemovedAgent(s, 1)
	require.NoError(t, err)
	assert.Len(t, s.Seeds, 2)
	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			assert.GreaterOrEqual(t, s.Labels.Labels[r][c], 0)
			assert.Less(t, s.Labels.Labels[r][c], 2)
		}
	}
}

func TestTransfer_HandleRemovedAgent_NoNeighbors(t *testing.T) {
	s := allFreeState(t, 2, 2, []grid.Coord{{R: 0, C: 0}})
	h := Transfer{}
	err := h.HandleRemovedAgent(s, 0)
	assert.ErrorIs(t, err, ErrNoNeighbors)
}

func TestVoronoi_HandleNewAgent_ReplansWithoutError(t *testing.T) {
	s := allFreeState(t, 4, 4, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 3}})
	err := Voronoi{}.HandleNewAgent(s, grid.Coord{R: 3, C: 3})
	require.NoError(t, err)
	assert.Len(t, s.Seeds, 3)
}

func TestVoronoi_HandleRemovedAgent_ConsistentLabelsAfterShift(t *testing.T) {
	s := allFreeState(t, 4, 6, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 2}, {R: 0, C: 4}})
	err := Voronoi{}.HandleRemovedAgent(s, 1)
	require.NoError(t, err)
	assert.Len(t, s.Seeds, 2)
	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			lbl := s.Labels.Labels[r][c]
			assert.True(t, lbl == 0 || lbl == 1, "unexpected label %d at (%d,%d)", lbl, r, c)
		}
	}
}

func TestPropagation_HandleNewAgent_ReplansWithoutError(t *testing.T) {
	s := allFreeState(t, 4, 4, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 3}})
	err := Propagation{}.HandleNewAgent(s, grid.Coord{R: 3, C: 3})
	require.NoError(t, err)
	assert.Len(t, s.Seeds, 3)
}

func TestPropagation_HandleRemovedAgent_NoDanglingLabel(t *testing.T) {
	s := allFreeState(t, 4, 6, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 2}, {R: 0, C: 4}})
	err := Propagation{}.HandleRemovedAgent(s, 1)
	require.NoError(t, err)
	assert.Len(t, s.Seeds, 2)
	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			lbl := s.Labels.Labels[r][c]
			assert.True(t, lbl == 0 || lbl == 1, "unexpected label %d at (%d,%d)", lbl, r, c)
		}
	}
}

func TestWTransfer_HandleNewAgent_ReplansWithoutError(t *testing.T) {
	s := allFreeState(t, 4, 4, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 3}})
	err := WTransfer{}.HandleNewAgent(s, grid.Coord{R: 3, C: 3})
	require.NoError(t, err)
	assert.Len(t, s.Seeds, 3)
}

func TestWTransfer_HandleRemovedAgent_NoDanglingLabel(t *testing.T) {
	s := allFreeState(t, 4, 6, []grid.Coord{{R: 0, C: 0}, {R: 0, C: 2}, {R: 0, C: 4}})
	err := WTransfer{}.HandleRemovedAgent(s, 1)
	require.NoError(t, err)
	assert.Len(t, s.Seeds, 2)
	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			lbl := s.Labels.Labels[r][c]
			assert.True(t, lbl == 0 || lbl == 1, "unexpected label %d at (%d,%d)", lbl, r, c)
		}
	}
}

func TestWTransfer_HandleRemovedAgent_NoNeighbors(t *testing.T) {
	s := allFreeState(t, 2, 2, []grid.Coord{{R: 0, C: 0}})
	err := WTransfer{}.HandleRemovedAgent(s, 0)
	assert.ErrorIs(t, err, ErrNoNeighbors)
}

func TestRedistribute_HandleNewAgent_RebuildsFromPartitioner(t *testing.T) {
	s := allFreeState(t, 4, 4, []grid.Coord{{R: 0, C: 0}})
	called := false
	s.Partitioner = func(g *grid.Grid, seeds []grid.Coord) (*grid.LabelMatrix, error) {
		called = true
		lm := grid.NewLabelMatrix(g.H, g.W, 0)
		for i, sd := range seeds {
			lm.Labels[sd.R][sd.C] = i
		}
		return lm, nil
	}
	err := Redistribute{MaxIter: 5}.HandleNewAgent(s, grid.Coord{R: 3, C: 3})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Len(t, s.Seeds, 2)
}

func TestRedistribute_HandleRemovedAgent_PopsSeed(t *testing.T) {
	s := allFreeState(t, 4, 4, []grid.Coord{{R: 0, C: 0}, {R: 3, C: 3}})
	s.Partitioner = func(g *grid.Grid, seeds []grid.Coord) (*grid.LabelMatrix, error) {
		lm := grid.NewLabelMatrix(g.H, g.W, grid.Unassigned)
		for r := 0; r < g.H; r++ {
			for c := 0; c < g.W; c++ {
				lm.Labels[r][c] = 0
			}
		}
		return lm, nil
	}
	err := Redistribute{}.HandleRemovedAgent(s, 1)
	require.NoError(t, err)
	assert.Len(t, s.Seeds, 1)
}

func TestWeightedTree_ChainGraphLinearSubtreeCounts(t *testing.T) {
	adj := map[int]map[int]struct{}{
		0: {1: {}},
		1: {0: {}, 2: {}},
		2: {1: {}},
	}
	children, countWeight := weightedTree(adj, []int{1, 1, 1}, 0)

	assert.Equal(t, []int{1}, children[0])
	assert.Equal(t, []int{2}, children[1])
	assert.Equal(t, [2]int{3, 3}, countWeight[0])
	assert.Equal(t, [2]int{2, 2}, countWeight[1])
	assert.Equal(t, [2]int{1, 1}, countWeight[2])
}
