package darp

import "errors"

// Errors returned by Partition.
var (
	// ErrNoSeeds is returned when seeds is empty.
	ErrNoSeeds = errors.New("darp: at least one seed is required")

	// ErrSeedOutsideFree is returned when a seed does not land on a FREE cell.
	ErrSeedOutsideFree = errors.New("darp: seed is not a free cell")

	// ErrSeedCollision is returned when two seeds coincide.
	ErrSeedCollision = errors.New("darp: seeds must be distinct cells")

	// ErrBalanceUnreached is returned when the outer retry loop exhausts
	// MaxRetries without reaching a fair, fully connected assignment; the
	// caller still receives the best assignment found so far.
	ErrBalanceUnreached = errors.New("darp: fair connected assignment not reached within retry budget")
)

// config holds the tunable knobs of Partition, set via Option.
type config struct {
	maxIter     int
	maxRetries  int
	fairWeight  float64
	seed        int64
}

func defaultConfig() config {
	return config{
		maxIter:    100,
		maxRetries: 4,
		fairWeight: 0.2,
		seed:       0,
	}
}

// Option tunes a Partition call.
type Option func(*config)

// WithMaxIter bounds the inner assign/correct loop per retry round. The
// reference implementation doubles this on every retry starting from this
// value.
func WithMaxIter(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIter = n
		}
	}
}

// WithMaxRetries bounds the outer loop that relaxes the fairness threshold
// after an inner loop fails to converge.
func WithMaxRetries(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// WithFairWeight sets the fairness-error threshold's scaling factor.
func WithFairWeight(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.fairWeight = w
		}
	}
}

// WithSeed fixes the RNG seed driving the per-iteration jitter. Zero selects
// the package-wide reference seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}
