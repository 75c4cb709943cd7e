package handler

import (
	"github.com/mcppgo/mcpp/balance"
	"github.com/mcppgo/mcpp/grid"
)

// Redistribute discards the current assignment and rebuilds it from
// scratch over the post-change agent set: re-run the configured initial
// partitioner, balance it, then replan every agent.
//
// Grounded on
// _examples/original_source/src/planner/cpp/continuous/handler/redistribute.py;
// its default multi_planner_name ("Transfer") is the cycling
// AreaTransferringPlanner from multi/transfer.py, so reassign here pairs
// the partitioner with balance.RunCycling.
type Redistribute struct {
	MaxIter int
}

func (h Redistribute) HandleNewAgent(s *State, seed grid.Coord) error {
	s.Seeds = append(s.Seeds, seed)
	return h.reassign(s)
}

func (h Redistribute) HandleRemovedAgent(s *State, idx int) error {
	s.Seeds = append(s.Seeds[:idx], s.Seeds[idx+1:]...)
	return h.reassign(s)
}

func (h Redistribute) reassign(s *State) error {
	lm, err := s.Partitioner(s.Grid, s.Seeds)
	if err != nil {
		return err
	}
	s.Labels = lm

	cfg := balance.DefaultConfig()
	if h.MaxIter > 0 {
		cfg.MaxIter = h.MaxIter
	}
	balance.RunCycling(s.Labels, len(s.Seeds), s.Seeds, cfg)

	return s.Replan()
}
