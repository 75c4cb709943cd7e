// Package bfs implements the multi-source BFS / Voronoi partitioner: a
// simultaneous flood fill from every agent's seed cell that assigns each
// FREE cell to the agent that reaches it first.
//
// Grounded on github.com/katalvlaran/lvlath's bfs package (queue/visited
// discipline, deterministic tie-breaking by dequeue order) generalized from
// single-source shortest-path search to a multi-source labeling fill.
package bfs

import (
	"errors"

	"github.com/mcppgo/mcpp/grid"
)

// ErrSeedOutsideFree is returned when a seed does not land on a FREE cell.
var ErrSeedOutsideFree = grid.ErrSeedOutsideFree

// ErrSeedCollision is returned when two seeds coincide.
var ErrSeedCollision = grid.ErrSeedCollision

// ErrDisconnected is returned when some FREE cell is unreachable from every
// seed.
var ErrDisconnected = grid.ErrDisconnected

// ErrNoSeeds is returned when seeds is empty.
var ErrNoSeeds = errors.New("bfs: at least one seed is required")

// queueItem pairs a cell with the label it was enqueued under.
type queueItem struct {
	cell  grid.Coord
	label int
}

// Partition runs multi-source BFS from seeds (one per agent, in agent
// index order) over g, producing a LabelMatrix satisfying invariants
// (I1)-(I3). Ties are broken by earliest dequeue, i.e. by BFS depth then by
// the order seeds/cells were enqueued, which for a FIFO queue reduces to
// insertion order — fully deterministic for a fixed seed list.
//
// Returns ErrNoSeeds if seeds is empty, ErrSeedOutsideFree if any seed is
// not FREE, ErrSeedCollision if two seeds coincide, and ErrDisconnected if
// any FREE cell is left unlabeled after the fill completes.
//
// Complexity: O(H*W) time and memory.
func Partition(g *grid.Grid, seeds []grid.Coord) (*grid.LabelMatrix, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	seen := map[grid.Coord]bool{}
	for _, s := range seeds {
		if !g.IsFree(s.R, s.C) {
			return nil, ErrSeedOutsideFree
		}
		if seen[s] {
			return nil, ErrSeedCollision
		}
		seen[s] = true
	}

	lm := grid.FromGrid(g)
	queue := make([]queueItem, 0, len(seeds))
	for i, s := range seeds {
		lm.Labels[s.R][s.C] = i
		queue = append(queue, queueItem{cell: s, label: i})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		for _, nb := range lm.Neighbors4(item.cell.R, item.cell.C) {
			if lm.Labels[nb.R][nb.C] != grid.Unassigned {
				continue
			}
			lm.Labels[nb.R][nb.C] = item.label
			queue = append(queue, queueItem{cell: nb, label: item.label})
		}
	}

	for r := 0; r < lm.H; r++ {
		for c := 0; c < lm.W; c++ {
			if lm.Labels[r][c] == grid.Unassigned {
				return lm, ErrDisconnected
			}
		}
	}

	return lm, nil
}
