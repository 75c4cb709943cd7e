// Package handler implements the six fleet-change handlers that react to an
// agent joining or leaving a running fleet: NoOp, Redistribute, Transfer,
// Voronoi, Propagation and W_Transfer. Each observes and mutates the same
// LabelMatrix and per-agent trajectories; after any handler runs, every
// affected agent's coverage walk is recomputed via package stc.
//
// Grounded on the continuous/handler/*.py files of
// _examples/original_source (base.py's factory/registry pattern, and one
// source file per handler named in the doc comment of each handler's
// implementation file here).
package handler

import (
	"sort"

	"github.com/mcppgo/mcpp/grid"
	"github.com/mcppgo/mcpp/stc"
)

// PartitionFunc runs an initial whole-grid partitioner, used by Redistribute
// to rebuild assignment from scratch.
type PartitionFunc func(g *grid.Grid, seeds []grid.Coord) (*grid.LabelMatrix, error)

// State bundles everything a fleet-change handler observes and mutates.
type State struct {
	Grid         *grid.Grid
	Labels       *grid.LabelMatrix
	Seeds        []grid.Coord
	Trajectories [][]grid.Coord

	Partitioner PartitionFunc
	STCOptions  []stc.Option
}

// NumAgents reports the current fleet size.
func (s *State) NumAgents() int { return len(s.Seeds) }

// Replan recomputes every agent's coverage trajectory from the current
// Labels, in place.
func (s *State) Replan() error {
	s.Trajectories = make([][]grid.Coord, len(s.Seeds))
	for i, seed := range s.Seeds {
		traj, err := stc.Plan(s.Labels, i, seed, s.STCOptions...)
		if err != nil {
			return err
		}
		s.Trajectories[i] = traj
	}
	return nil
}

// addAgent appends a new agent seeded at seed, claiming that cell for it.
// The caller is responsible for reassigning any cells the new agent should
// also own.
func (s *State) addAgent(seed grid.Coord) int {
	idx := len(s.Seeds)
	s.Seeds = append(s.Seeds, seed)
	s.Labels.Labels[seed.R][seed.C] = idx
	return idx
}

// removeAgent deletes agent idx from the fleet, relabeling every cell
// currently owned by a higher-indexed agent down by one so indices stay
// dense, mirroring the reference's `assigned[assigned > idx] -= 1`. Cells
// still owned by idx when this is called are left as-is; callers must
// reassign idx's cells to a surviving agent first.
func (s *State) removeAgent(idx int) {
	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			if s.Labels.Labels[r][c] > idx {
				s.Labels.Labels[r][c]--
			}
		}
	}
	s.Seeds = append(s.Seeds[:idx], s.Seeds[idx+1:]...)
}

// shiftLabel maps a label to its post-removal index: unchanged if below
// idx, decremented by one if above.
func shiftLabel(label, idx int) int {
	if label > idx {
		return label - 1
	}
	return label
}

// sortedLabels returns neighbors' keys in ascending order, so callers
// never depend on Go's randomized map iteration order when choosing among
// them.
func sortedLabels(neighbors map[int][]grid.Coord) []int {
	labels := make([]int, 0, len(neighbors))
	for label := range neighbors {
		labels = append(labels, label)
	}
	sort.Ints(labels)
	return labels
}

// smallestNeighbor returns the label in neighbors whose partition in parts
// is smallest, breaking ties by the lowest label index.
func smallestNeighbor(neighbors map[int][]grid.Coord, parts [][]grid.Coord) int {
	best, bestSize := -1, -1
	for _, label := range sortedLabels(neighbors) {
		if size := len(parts[label]); best == -1 || size < bestSize {
			best, bestSize = label, size
		}
	}
	return best
}
