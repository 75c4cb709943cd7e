package grid

import "errors"

// Sentinel errors for grid and label-matrix operations.
var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrNoFreeCell indicates a grid has zero FREE cells.
	ErrNoFreeCell = errors.New("grid: no FREE cell in grid")

	// ErrOutOfBounds indicates a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrSeedOutsideFree indicates an agent seed does not land on a FREE cell.
	ErrSeedOutsideFree = errors.New("grid: seed cell is not FREE")

	// ErrSeedCollision indicates two agents share the same seed cell.
	ErrSeedCollision = errors.New("grid: two agents share the same seed cell")

	// ErrDisconnected indicates a region is not fully reachable from its seed(s).
	ErrDisconnected = errors.New("grid: region is disconnected from its seed")

	// ErrLabelIndex indicates a label falls outside [0, n).
	ErrLabelIndex = errors.New("grid: label index out of range")
)
