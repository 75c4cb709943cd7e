package handler

import (
	"math"
	"sort"

	"github.com/mcppgo/mcpp/grid"
	"github.com/mcppgo/mcpp/transfer"
)

// WTransfer is Propagation's symmetric sibling: the same weighted
// agent-adjacency tree drives cell movement, but every tree edge is
// rebalanced in whichever direction its diff demands (push from parent to
// child as well as pull from child to parent), rather than only ever
// pulling toward the changed agent.
//
// Grounded on
// _examples/original_source/src/planner/cpp/continuous/handler/weight_redistribute.py.
type WTransfer struct{}

func (WTransfer) HandleNewAgent(s *State, seed grid.Coord) error {
	idx := s.addAgent(seed)
	s.transferBottomUpSymmetric(idx)
	return s.Replan()
}

func (WTransfer) HandleRemovedAgent(s *State, idx int) error {
	parts := s.Labels.Partition(len(s.Seeds))
	neighbors := s.Labels.Border(parts[idx])
	if len(neighbors) == 0 {
		return ErrNoNeighbors
	}
	transferTo := smallestNeighbor(neighbors, parts)

	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			if s.Labels.Labels[r][c] == idx {
				s.Labels.Labels[r][c] = transferTo
			}
		}
	}
	s.removeAgent(idx)
	transferTo = shiftLabel(transferTo, idx)

	s.transferTopDownSymmetric(transferTo)
	return s.Replan()
}

func (s *State) transferBottomUpSymmetric(changedIdx int) {
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
			} else {
				seed := s.Seeds[node]
				transfer.AreaSubtree(s.Labels, node, neigh, s.Labels.AdjacentCells(node, neigh), amount, &seed)
			}
		}
	}
	handle(changedIdx)
}

func (s *State) transferTopDownSymmetric(changedIdx int) {
	n := len(s.Seeds)
	adj := s.Labels.AdjList()
	counts := s.Labels.AssignCounts(n)
	children, countWeight := weightedTree(adj, counts, changedIdx)

	totalFree := 0
	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			if s.Labels.Labels[r][c] >= 0 {
				totalFree++
			}
		}
	}
	targetF := float64(totalFree) / float64(n)

	diff := func(node int) int {
		cw := countWeight[node]
		return int(math.Round(targetF*float64(cw[0]))) - cw[1]
	}

	queue := []int{changedIdx}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		kids := append([]int(nil), children[u]...)
		sort.SliceStable(kids, func(i, j int) bool { return diff(kids[i]) < diff(kids[j]) })
		for _, v := range kids {
			amount := diff(v)
			if amount < 0 {
				seed := s.Seeds[v]
				transfer.AreaSubtree(s.Labels, v, u, s.Labels.AdjacentCells(v, u), -amount, &seed)
			} else {
				seed := s.Seeds[u]
				transfer.AreaSubtree(s.Labels, u, v, s.Labels.AdjacentCells(u, v), amount, &seed)
			}
			queue = append(queue, v)
		}
	}
}
