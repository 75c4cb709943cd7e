package handler

import "github.com/mcppgo/mcpp/grid"

// Handler reacts to a single fleet-change event, mutating the shared
// State's Labels/Seeds/Trajectories in place.
type Handler interface {
	// HandleNewAgent admits a new agent seeded at the given cell.
	HandleNewAgent(s *State, seed grid.Coord) error
	// HandleRemovedAgent removes the agent at idx from the fleet.
	HandleRemovedAgent(s *State, idx int) error
}

// Config carries the handler constructors' shared knobs.
type Config struct {
	MaxIter int
}

// DefaultConfig returns the reference handlers' default iteration budgets.
func DefaultConfig() Config { return Config{MaxIter: 100} }

// constructors maps a handler name to its factory, mirroring
// UAVChangeHandlerFactory's registry in base.py.
var constructors = map[string]func(Config) Handler{
	"NoOp":         func(Config) Handler { return NoOp{} },
	"Redistribute": func(cfg Config) Handler { return Redistribute{MaxIter: cfg.MaxIter} },
	"Transfer":     func(cfg Config) Handler { return Transfer{MaxIter: cfg.MaxIter} },
	"Voronoi":      func(Config) Handler { return Voronoi{} },
	"Propagation":  func(Config) Handler { return Propagation{} },
	"W_Transfer":   func(Config) Handler { return WTransfer{} },
}

// Get constructs the named handler, or ErrUnknownHandler if name is not
// registered.
func Get(name string, cfg Config) (Handler, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, ErrUnknownHandler
	}
	return ctor(cfg), nil
}

// Names returns every registered handler name.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	return names
}
