package darp

// Numeric constants from spec §4.3, carried verbatim from the reference
// DARP implementation (https://github.com/alice-st/DARP, mirrored by
// _examples/original_source/src/planner/cpp/multi/darp.py).
const (
	// Epsilon guards min-max normalization against a zero denominator.
	Epsilon = 1e-6

	// ConnectedVariation scales the connectivity-correction multiplier.
	ConnectedVariation = 0.01

	// RandomLevel bounds the per-iteration multiplicative jitter to
	// (1 +/- RandomLevel).
	RandomLevel = 1e-4
)
