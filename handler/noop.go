package handler

import "github.com/mcppgo/mcpp/grid"

// NoOp rejects every fleet change, for deployments that want STC to run
// once and never react to churn.
//
// Grounded on
// _examples/original_source/src/planner/cpp/continuous/handler/no_op.py.
type NoOp struct{}

func (NoOp) HandleNewAgent(*State, grid.Coord) error { return ErrUnsupportedChange }
func (NoOp) HandleRemovedAgent(*State, int) error    { return ErrUnsupportedChange }
