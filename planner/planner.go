package planner

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mcppgo/mcpp/config"
	"github.com/mcppgo/mcpp/grid"
	"github.com/mcppgo/mcpp/handler"
	"github.com/mcppgo/mcpp/internal/mlog"
	"github.com/mcppgo/mcpp/internal/rng"
	"github.com/mcppgo/mcpp/stc"
)

// ErrAgentNotFound is returned by HandleRemovedAgent for an unknown name.
var ErrAgentNotFound = errors.New("planner: agent name not found")

// ErrBalanceUnreached is returned by Plan when the configured partitioner
// could not reach every FREE cell (spec.md §6's disconnected-region case):
// Labels()/Trajectories() still hold the best-effort assignment, but the
// caller must not treat Plan as having fully succeeded.
var ErrBalanceUnreached = errors.New("planner: partition did not reach every free cell")

// ContinuousPlanner is the facade wiring one chosen initial partitioner,
// one chosen fleet-change handler, and per-agent STC into a single
// session: Plan produces the first assignment and trajectories,
// HandleNewAgent/HandleRemovedAgent react to fleet churn afterward.
type ContinuousPlanner struct {
	state *handler.State
	names []string

	h    handler.Handler
	rng  *rand.Rand
	cfg  config.Config
}

// New builds a ContinuousPlanner over g for n initial agents, allocating
// each a random free seed cell (mirroring allocate_initial_uav_position's
// random.choice over free cells) and a generated name.
func New(g *grid.Grid, n int, cfg config.Config) (*ContinuousPlanner, error) {
	partFn, err := Partitioner(cfg.MultiPlanner)
	if err != nil {
		return nil, err
	}
	h, err := handler.Get(cfg.Handler, handler.Config{MaxIter: cfg.MaxIter})
	if err != nil {
		return nil, err
	}

	r := rng.New(cfg.RNGSeed)
	free := g.FreeCells()
	if len(free) == 0 {
		return nil, grid.ErrNoFreeCell
	}

	taken := map[grid.Coord]bool{}
	seeds := make([]grid.Coord, 0, n)
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		seed := pickFreeCell(r, free, taken)
		taken[seed] = true
		seeds = append(seeds, seed)
		names = append(names, NewAgentName(r))
	}

	var stcOpts []stc.Option
	if cfg.MSTAlgo != "" {
		stcOpts = append(stcOpts, stc.WithMSTAlgo(cfg.MSTAlgo))
	}

	state := &handler.State{
		Grid:        g,
		Seeds:       seeds,
		Partitioner: handler.PartitionFunc(partFn),
		STCOptions:  stcOpts,
	}

	p := &ContinuousPlanner{state: state, names: names, h: h, rng: r, cfg: cfg}
	return p, nil
}

// Plan runs the configured initial partitioner over the current agent set
// and replans every agent's coverage trajectory. If the partitioner could
// not reach every free cell (grid.ErrDisconnected), Plan still installs and
// replans the best-effort partial labeling but returns ErrBalanceUnreached
// rather than silently reporting success.
func (p *ContinuousPlanner) Plan() error {
	lm, err := p.state.Partitioner(p.state.Grid, p.state.Seeds)
	if err != nil && !errors.Is(err, grid.ErrDisconnected) {
		return err
	}
	p.state.Labels = lm
	mlog.L.Info().Int("agents", len(p.state.Seeds)).Msg("initial partition built")
	if rerr := p.state.Replan(); rerr != nil {
		return rerr
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBalanceUnreached, err)
	}
	return nil
}

// Labels returns the current label assignment.
func (p *ContinuousPlanner) Labels() *grid.LabelMatrix { return p.state.Labels }

// Trajectories returns the current per-agent coverage walks, in agent
// index order.
func (p *ContinuousPlanner) Trajectories() [][]grid.Coord { return p.state.Trajectories }

// Names returns the current per-agent identity, in agent index order.
func (p *ContinuousPlanner) Names() []string { return p.names }

// HandleNewAgent admits a new agent named name at a random unclaimed free
// cell.
func (p *ContinuousPlanner) HandleNewAgent(name string) error {
	taken := map[grid.Coord]bool{}
	for _, s := range p.state.Seeds {
		taken[s] = true
	}
	seed := pickFreeCell(p.rng, p.state.Grid.FreeCells(), taken)

	if err := p.h.HandleNewAgent(p.state, seed); err != nil {
		return err
	}
	p.names = append(p.names, name)
	mlog.L.Info().Str("agent", name).Msg("agent added")
	return nil
}

// HandleRemovedAgent removes the named agent from the fleet.
func (p *ContinuousPlanner) HandleRemovedAgent(name string) error {
	idx := -1
	for i, n := range p.names {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrAgentNotFound
	}

	if err := p.h.HandleRemovedAgent(p.state, idx); err != nil {
		return err
	}
	p.names = append(p.names[:idx], p.names[idx+1:]...)
	mlog.L.Info().Str("agent", name).Msg("agent removed")
	return nil
}

func pickFreeCell(r *rand.Rand, free []grid.Coord, taken map[grid.Coord]bool) grid.Coord {
	for {
		c := free[r.Intn(len(free))]
		if !taken[c] {
			return c
		}
	}
}
