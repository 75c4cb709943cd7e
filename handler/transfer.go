package handler

import (
	"github.com/mcppgo/mcpp/balance"
	"github.com/mcppgo/mcpp/grid"
)

// Transfer handles churn by keeping every other agent's region in place
// and running the ascending buyer/seller balance driver (package balance's
// Run) to pull cells toward or away from the changed agent.
//
// Grounded on
// _examples/original_source/src/planner/cpp/continuous/handler/transfer.py.
type Transfer struct {
	MaxIter int
}

func (h Transfer) HandleNewAgent(s *State, seed grid.Coord) error {
	s.addAgent(seed)
	return h.reassign(s)
}

func (h Transfer) HandleRemovedAgent(s *State, idx int) error {
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

	return h.reassign(s)
}

func (h Transfer) reassign(s *State) error {
	cfg := balance.DefaultConfig()
	if h.MaxIter > 0 {
		cfg.MaxIter = h.MaxIter
	}
	balance.Run(s.Labels, len(s.Seeds), s.Seeds, cfg)
	return s.Replan()
}
