package handler

import "github.com/mcppgo/mcpp/grid"

// Voronoi handles churn by bounded multi-source BFS confined to the
// neighborhood of the change: a new agent claims roughly its fair share of
// cells by expanding into whichever existing regions border its seed; a
// removed agent's cells and its former neighbors' cells are re-flooded
// together from each surviving neighbor's seed.
//
// Grounded on
// _examples/original_source/src/planner/cpp/continuous/handler/voronoi.py.
type Voronoi struct{}

func (Voronoi) HandleNewAgent(s *State, seed grid.Coord) error {
	idx := s.addAgent(seed)
	labels := s.expand(idx, seed)
	s.voronoiReassign(labels)
	return s.Replan()
}

func (Voronoi) HandleRemovedAgent(s *State, idx int) error {
	parts := s.Labels.Partition(len(s.Seeds))
	neighbors := s.Labels.Border(parts[idx])
	if len(neighbors) == 0 {
		return ErrNoNeighbors
	}

	labels := sortedLabels(neighbors)
	transferTo := labels[0]

	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			if s.Labels.Labels[r][c] == idx {
				s.Labels.Labels[r][c] = transferTo
			}
		}
	}
	s.removeAgent(idx)

	shifted := make([]int, len(labels))
	for i, l := range labels {
		shifted[i] = shiftLabel(l, idx)
	}

	s.voronoiReassign(shifted)
	return s.Replan()
}

// expand runs a bounded BFS from seed, collecting the labels of every
// other agent's cells within roughly one fair share's worth of cells of
// seed — the set voronoiReassign will then re-flood.
func (s *State) expand(newLabel int, seed grid.Coord) []int {
	free := 0
	for r := 0; r < s.Labels.H; r++ {
		for c := 0; c < s.Labels.W; c++ {
			if s.Labels.Labels[r][c] >= 0 {
				free++
			}
		}
	}
	budget := free / len(s.Seeds)

	seen := map[int]bool{}
	var labels []int
	visited := map[grid.Coord]bool{}
	queue := []grid.Coord{seed}
	for len(queue) > 0 && budget > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		budget--
		for _, nb := range s.Labels.Neighbors4(cur.R, cur.C) {
			label := s.Labels.Labels[nb.R][nb.C]
			if label < 0 {
				continue
			}
			if !seen[label] {
				seen[label] = true
				labels = append(labels, label)
			}
			queue = append(queue, nb)
		}
	}
	if !seen[newLabel] {
		labels = append(labels, newLabel)
	}
	return labels
}

// voronoiReassign re-floods the union of labels' current regions via
// multi-source BFS seeded at each label's own seed cell, confined to that
// union so the rest of the grid is untouched.
func (s *State) voronoiReassign(labels []int) {
	parts := s.Labels.Partition(len(s.Seeds))
	cells := map[grid.Coord]bool{}
	for _, label := range labels {
		for _, c := range parts[label] {
			cells[c] = true
		}
	}

	type item struct {
		cell  grid.Coord
		label int
	}
	queue := make([]item, 0, len(labels))
	for _, label := range labels {
		queue = append(queue, item{cell: s.Seeds[label], label: label})
	}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if !cells[it.cell] {
			continue
		}
		delete(cells, it.cell)
		s.Labels.Labels[it.cell.R][it.cell.C] = it.label
		for _, nb := range s.Labels.Neighbors4(it.cell.R, it.cell.C) {
			if cells[nb] {
				queue = append(queue, item{cell: nb, label: it.label})
			}
		}
	}
}
