package stc

import "github.com/mcppgo/mcpp/grid"

// MegaCoord addresses a 2x2 block of the underlying grid.
type MegaCoord struct {
	R, C int
}

// toCell returns the top-left original cell of the mega-cell.
func (m MegaCoord) toCell() grid.Coord { return grid.Coord{R: m.R << 1, C: m.C << 1} }

// cellToMega maps an original cell to its mega-cell.
func cellToMega(c grid.Coord) MegaCoord { return MegaCoord{R: c.R >> 1, C: c.C >> 1} }

// megaDirs mirrors grid's fixed right/down/left/up order so walk emission
// and MST neighbor enumeration agree on direction priority.
var megaDirs = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// megaGrid is an agent's region coarsened to 2x2 blocks: free[r][c] is true
// iff any of that block's four children is FREE in the agent's masked
// view.
type megaGrid struct {
	h, w int
	free [][]bool
}

// mstAlgo selects the spanning-tree construction strategy.
type mstAlgo int

const (
	algoKruskal mstAlgo = iota
	algoDFS
)

// config holds Plan's tunables.
type config struct {
	algo mstAlgo
}

func defaultConfig() config { return config{algo: algoKruskal} }

// Option tunes a Plan call.
type Option func(*config) error

// WithMSTAlgo selects "kruskal" (default) or "dfs" for mega-grid spanning
// tree construction.
func WithMSTAlgo(name string) Option {
	return func(c *config) error {
		switch name {
		case "", "kruskal":
			c.algo = algoKruskal
		case "dfs":
			c.algo = algoDFS
		default:
			return ErrUnknownMSTAlgo
		}
		return nil
	}
}
