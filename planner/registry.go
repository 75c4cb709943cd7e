package planner

import (
	"errors"

	"github.com/mcppgo/mcpp/balance"
	"github.com/mcppgo/mcpp/grid"
	"github.com/mcppgo/mcpp/partition/bfs"
	"github.com/mcppgo/mcpp/partition/darp"
)

// ErrUnknownPartitioner is returned by Partitioner for an unregistered
// multi_planner name.
var ErrUnknownPartitioner = errors.New("planner: unknown multi_planner name")

// PartitionFunc runs an initial whole-grid partitioner.
type PartitionFunc func(g *grid.Grid, seeds []grid.Coord) (*grid.LabelMatrix, error)

// partitioners maps a spec.md §6 multi_planner name to its constructor,
// grounded on MultiCoveragePathPlannerFactory's registry in
// multi/planner.py.
var partitioners = map[string]PartitionFunc{
	"BFS":     bfs.Partition,
	"Voronoi": bfs.Partition,
	"DARP": func(g *grid.Grid, seeds []grid.Coord) (*grid.LabelMatrix, error) {
		return darp.Partition(g, seeds)
	},
	"Transfer": func(g *grid.Grid, seeds []grid.Coord) (*grid.LabelMatrix, error) {
		lm, err := bfs.Partition(g, seeds)
		if err != nil && !errors.Is(err, bfs.ErrDisconnected) {
			return lm, err
		}
		balance.RunCycling(lm, len(seeds), seeds, balance.Config{MaxIter: 50})
		return lm, err
	},
}

// Partitioner returns the initial partitioner registered under name.
func Partitioner(name string) (PartitionFunc, error) {
	fn, ok := partitioners[name]
	if !ok {
		return nil, ErrUnknownPartitioner
	}
	return fn, nil
}

// PartitionerNames returns every registered multi_planner name.
func PartitionerNames() []string {
	names := make([]string, 0, len(partitioners))
	for name := range partitioners {
		names = append(names, name)
	}
	return names
}
