package handler

import (
	"math"
	"sort"

	"github.com/mcppgo/mcpp/grid"
	"github.com/mcppgo/mcpp/transfer"
)

// Propagation handles churn by spanning the agent-adjacency graph with a
// weighted tree rooted at the changed agent, then pushing or pulling cells
// along that tree: a join pulls surplus up from oversized subtrees toward
// the new agent (bottom-up), a departure pushes the departing agent's
// share back out to its neighbors in proportion to their subtree size
// (top-down).
//
// Grounded on
// _examples/original_source/src/planner/cpp/continuous/handler/weight_reassign.py.
type Propagation struct{}

func (Propagation) HandleNewAgent(s *State, seed grid.Coord) error {
	idx := s.addAgent(seed)
	s.transferBottomUp(idx)
	return s.Replan()
}

func (Propagation) HandleRemovedAgent(s *State, idx int) error {
	s.transferTopDown(idx)
	s.removeAgent(idx)
	return s.Replan()
}

// transferBottomUp pulls each oversized subtree's surplus up toward
// changedIdx, one tree edge at a time, deepest subtrees processed first.
func (s *State) transferBottomUp(changedIdx int) {
	n := len(s.Seeds)
	free := 0
	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			if s.Labels.Labels[r][c] >= 0 {
				free++
			}
		}
	}
	target := float64(free) / float64(n)

	adj := s.Labels.AdjList()
	counts := s.Labels.AssignCounts(n)
	children, countWeight := weightedTree(adj, counts, changedIdx)

	diff := func(node int) int {
		cw := countWeight[node]
		return int(math.Round(target*float64(cw[0]))) - cw[1]
	}

	var handle func(node int)
	handle = func(node int) {
		kids := append([]int(nil), children[node]...)
		sort.SliceStable(kids, func(i, j int) bool { return diff(kids[i]) < diff(kids[j]) })
		for _, neigh := range kids {
			handle(neigh)
			amount := diff(neigh)
			if amount < 0 {
				seed := s.Seeds[neigh]
				transfer.AreaSubtree(s.Labels, neigh, node, s.Labels.AdjacentCells(neigh, node), -amount, &seed)
			}
		}
	}
	handle(changedIdx)
}

// transferTopDown redistributes changedIdx's region (and, cascading, each
// subsequent node's excess) out to its tree neighbors in proportion to
// their subtree size.
func (s *State) transferTopDown(changedIdx int) {
	n := len(s.Seeds)
	adj := s.Labels.AdjList()
	counts := s.Labels.AssignCounts(n)
	children, countWeight := weightedTree(adj, counts, changedIdx)

	areaReassign := counts[changedIdx] / (n - 1)

	amountToTransfer := func(parent int) map[int]int {
		amounts := map[int]int{}
		total := 0
		for _, child := range children[parent] {
			amounts[child] = countWeight[child][0]
			total += amounts[child]
		}
		if total == 0 {
			return amounts
		}
		for k, v := range amounts {
			amounts[k] = int(math.Round(float64(v) * float64(areaReassign) / float64(total)))
		}
		return amounts
	}

	queue := []int{changedIdx}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		transferTo := amountToTransfer(u)
		if len(transferTo) > 0 {
			var keepAway *grid.Coord
			if u != changedIdx {
				seed := s.Seeds[u]
				keepAway = &seed
			}
			transfer.Concurrently(s.Labels, u, transferTo, keepAway)
		}
		// children[u] is already deterministically ordered (weightedTree
		// sorts agent-adjacency neighbors); walk transferTo in that same
		// order rather than ranging the map directly.
		for _, node := range children[u] {
			if _, ok := transferTo[node]; ok {
				queue = append(queue, node)
			}
		}
	}
}
